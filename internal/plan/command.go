package plan

import (
	shellquote "github.com/kballard/go-shellquote"
)

// SynthesizeCommand builds the shell command that replays castFile with
// player. A positive multiplier adds "-s <N.0>".
func SynthesizeCommand(player, castFile string, multiplier int) string {
	argv := []string{player, "play"}
	if multiplier > 0 {
		argv = append(argv, "-s", FormatMultiplier(multiplier))
	}
	argv = append(argv, castFile)
	return shellquote.Join(argv...)
}

// finalizeCommand stores the playback command in cast-file mode. Live-mode
// commands are left exactly as the user typed them.
func finalizeCommand(req *Request, player string) {
	if req.Mode != ModeCastFile {
		return
	}
	req.Command = SynthesizeCommand(player, req.CastFile, req.Multiplier)
}
