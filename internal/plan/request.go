// Package plan resolves command-line input into a RecordingRequest: the
// finalized description of how a terminal session is captured or replayed
// and encoded to video.
package plan

import (
	"errors"
	"fmt"
)

// Mode is the single input mode an invocation resolves to.
type Mode string

const (
	ModeNone     Mode = ""
	ModeLive     Mode = "live"
	ModeCastFile Mode = "cast-file"
	ModeUtility  Mode = "utility"
)

// Request is the recording plan handed to the encoding pipeline.
// It is built once by Validator.Validate and not modified afterwards.
type Request struct {
	Mode Mode `yaml:"mode" json:"mode"`
	// Command is the shell command to execute: the user's command in live
	// mode, the synthesized playback command in cast-file mode.
	Command  string `yaml:"command,omitempty" json:"command,omitempty"`
	CastFile string `yaml:"cast_file,omitempty" json:"cast_file,omitempty"`
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`
	// Speed is the token as supplied ("8x"); empty unless in cast-file mode.
	Speed        string `yaml:"speed,omitempty" json:"speed,omitempty"`
	Multiplier   int    `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	FPS          int    `yaml:"fps" json:"fps"`
	RecordingFPS int    `yaml:"recording_fps" json:"recording_fps"`
	Cols         int    `yaml:"cols,omitempty" json:"cols,omitempty"`
	Lines        int    `yaml:"lines,omitempty" json:"lines,omitempty"`
	CheckDeps    bool   `yaml:"check_deps,omitempty" json:"check_deps,omitempty"`
	MeasureFonts bool   `yaml:"measure_fonts,omitempty" json:"measure_fonts,omitempty"`
	// Warnings lists the non-fatal diagnostics emitted while resolving.
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// Validate checks that every field the active mode needs is set.
func (r *Request) Validate() error {
	switch r.Mode {
	case ModeLive, ModeCastFile:
	case ModeUtility:
		if !r.CheckDeps && !r.MeasureFonts {
			return errors.New("utility mode without a utility flag")
		}
		return nil
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}

	if r.Command == "" {
		return errors.New("command must be non-empty")
	}
	if r.Output == "" {
		return errors.New("output must be non-empty")
	}
	if r.FPS <= 0 || r.RecordingFPS <= 0 {
		return fmt.Errorf("fps and recording_fps must be positive, got %d and %d", r.FPS, r.RecordingFPS)
	}
	if r.Mode == ModeCastFile {
		if r.CastFile == "" {
			return errors.New("cast_file must be non-empty")
		}
		if r.Cols <= 0 || r.Lines <= 0 {
			return fmt.Errorf("cols and lines must be positive, got %dx%d", r.Cols, r.Lines)
		}
	}
	return nil
}
