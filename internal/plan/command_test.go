package plan

import (
	"testing"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeCommand_NoSpeed(t *testing.T) {
	cmd := SynthesizeCommand("asciinema", "/tmp/demo.cast", 0)
	assert.Equal(t, "asciinema play /tmp/demo.cast", cmd)
}

func TestSynthesizeCommand_WithSpeed(t *testing.T) {
	cmd := SynthesizeCommand("asciinema", "/tmp/demo.cast", 8)
	assert.Equal(t, "asciinema play -s 8.0 /tmp/demo.cast", cmd)
}

func TestSynthesizeCommand_QuotesPath(t *testing.T) {
	path := "/tmp/My Recordings/it's a demo (1).cast"

	cmd := SynthesizeCommand("asciinema", path, 4)

	words, err := shellquote.Split(cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"asciinema", "play", "-s", "4.0", path}, words)
}

func TestFinalizeCommand_LiveUntouched(t *testing.T) {
	req := &Request{Mode: ModeLive, Command: "echo  'hello'  | tee x"}
	finalizeCommand(req, "asciinema")
	assert.Equal(t, "echo  'hello'  | tee x", req.Command)
}

func TestFinalizeCommand_CastFile(t *testing.T) {
	req := &Request{Mode: ModeCastFile, CastFile: "rec.cast", Multiplier: 2}
	finalizeCommand(req, "asciinema")
	assert.Equal(t, "asciinema play -s 2.0 rec.cast", req.Command)
}
