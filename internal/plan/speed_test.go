package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpeed_Valid(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"1x", 1},
		{"2x", 2},
		{"8x", 8},
		{"16x", 16},
		{"08x", 8},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSpeed(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpeed_Invalid(t *testing.T) {
	for _, token := range []string{
		"",
		"x",
		"8",
		"8X",
		"0x",
		"-2x",
		"+2x",
		"1.5x",
		"fastx",
		"x8",
		" 8x",
		"8x ",
		"8xx",
		"99999999999999999999x",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseSpeed(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpeed)
		})
	}
}

func TestFormatMultiplier(t *testing.T) {
	assert.Equal(t, "1.0", FormatMultiplier(1))
	assert.Equal(t, "8.0", FormatMultiplier(8))
	assert.Equal(t, "12.0", FormatMultiplier(12))
}

func TestRecordingFPS(t *testing.T) {
	got, err := RecordingFPS(30, 8)
	require.NoError(t, err)
	assert.Equal(t, 240, got)

	got, err = RecordingFPS(30, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	// Fractional products round to nearest.
	got, err = RecordingFPS(25, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 38, got)

	got, err = RecordingFPS(24, 1.01)
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestRecordingFPS_OutOfRange(t *testing.T) {
	_, err := RecordingFPS(30, 1e12)
	assert.Error(t, err)

	_, err = RecordingFPS(30, 0)
	assert.Error(t, err)
}
