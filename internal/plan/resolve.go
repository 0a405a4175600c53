package plan

import (
	"errors"
	"fmt"

	"github.com/sh2mp4/sh2mp4/internal/cast"
	"github.com/sh2mp4/sh2mp4/internal/config"
)

// Flags is the raw parsed command line. Pointer fields are nil when the
// flag was not given, so explicit values can be told apart from defaults.
type Flags struct {
	// Positional holds [command] [output] in live mode, [output] otherwise.
	Positional   []string
	CastFile     *string
	Speed        *string
	FPS          *int
	Cols         *int
	Lines        *int
	CheckDeps    bool
	MeasureFonts bool
}

// speedIgnoredWarning is emitted when --speed is given outside cast-file mode.
const speedIgnoredWarning = "--speed only applies to --cast-file mode"

// detectMode picks exactly one mode and fills command, cast file and output.
func detectMode(req *Request, f Flags, d config.Defaults) error {
	castMode := f.CastFile != nil
	utility := f.CheckDeps || f.MeasureFonts
	pos := f.Positional

	switch {
	case castMode && utility:
		return errors.New("--cast-file cannot be combined with --check-deps or --measure-fonts")
	case utility && len(pos) > 0:
		return fmt.Errorf("utility flags take no command, got %q", pos[0])
	case castMode && len(pos) > 1:
		return fmt.Errorf("both a command (%q) and --cast-file were given", pos[0])
	case utility:
		req.Mode = ModeUtility
		return nil
	case castMode:
		req.Mode = ModeCastFile
		req.CastFile = *f.CastFile
		req.Output = d.Output
		if len(pos) == 1 {
			req.Output = pos[0]
		}
		return nil
	case len(pos) > 0:
		req.Mode = ModeLive
		req.Command = pos[0]
		req.Output = d.Output
		if len(pos) > 1 {
			req.Output = pos[1]
		}
		return nil
	default:
		return errors.New("no command given; pass a command, --cast-file, --check-deps or --measure-fonts")
	}
}

// resolveGeometry sets cols/lines. Explicit flags win; otherwise cast-file
// mode uses the header, live mode asks the terminal, and anything left over
// takes the configured default.
func resolveGeometry(req *Request, f Flags, hdr *cast.Header, size TerminalSizeFunc, d config.Defaults) error {
	if f.Cols != nil && *f.Cols <= 0 {
		return fmt.Errorf("--cols must be positive, got %d", *f.Cols)
	}
	if f.Lines != nil && *f.Lines <= 0 {
		return fmt.Errorf("--lines must be positive, got %d", *f.Lines)
	}

	cols, lines := d.Cols, d.Lines
	switch req.Mode {
	case ModeCastFile:
		if hdr != nil {
			cols, lines = hdr.Width, hdr.Height
		}
	case ModeLive:
		if size != nil {
			if c, l, ok := size(); ok && c > 0 && l > 0 {
				cols, lines = c, l
			}
		}
	}

	if f.Cols != nil {
		cols = *f.Cols
	}
	if f.Lines != nil {
		lines = *f.Lines
	}
	req.Cols, req.Lines = cols, lines
	return nil
}

// resolveSpeed applies --speed in cast-file mode and discards it, with a
// warning, everywhere else. FPS is never changed here, only RecordingFPS.
func resolveSpeed(req *Request, f Flags, warn func(string)) error {
	req.RecordingFPS = req.FPS

	if f.Speed == nil {
		return nil
	}
	if req.Mode != ModeCastFile {
		warn(speedIgnoredWarning)
		return nil
	}

	multiplier, err := ParseSpeed(*f.Speed)
	if err != nil {
		return err
	}
	recordingFPS, err := RecordingFPS(req.FPS, float64(multiplier))
	if err != nil {
		return fmt.Errorf("%q: %w", *f.Speed, err)
	}

	req.Speed = *f.Speed
	req.Multiplier = multiplier
	req.RecordingFPS = recordingFPS
	return nil
}
