package plan

import (
	"fmt"
	"io"
	"os"

	"github.com/sh2mp4/sh2mp4/internal/cast"
	"github.com/sh2mp4/sh2mp4/internal/config"
	"github.com/sh2mp4/sh2mp4/internal/diag"
)

// State is a step of the validation state machine.
type State int

const (
	StateStart State = iota
	StateModeDetected
	StateGeometryResolved
	StateSpeedResolved
	StateCommandFinalized
	StateAccepted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateModeDetected:
		return "ModeDetected"
	case StateGeometryResolved:
		return "GeometryResolved"
	case StateSpeedResolved:
		return "SpeedResolved"
	case StateCommandFinalized:
		return "CommandFinalized"
	case StateAccepted:
		return "Accepted"
	case StateRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TerminalSizeFunc reports the current terminal's columns and lines.
// ok is false when no terminal is attached.
type TerminalSizeFunc func() (cols, lines int, ok bool)

// HeaderReaderFunc reads a cast file header.
type HeaderReaderFunc func(path string) (*cast.Header, error)

// Validator drives one invocation from raw flags to an accepted Request.
// A Validator is single-use.
type Validator struct {
	defaults     config.Defaults
	warnings     io.Writer
	terminalSize TerminalSizeFunc
	readHeader   HeaderReaderFunc

	state  State
	states []State
}

// Option configures a Validator.
type Option func(*Validator)

// WithWarnings sets the stream non-fatal diagnostics are written to.
// The default is os.Stderr.
func WithWarnings(w io.Writer) Option {
	return func(v *Validator) { v.warnings = w }
}

// WithTerminalSize sets the probe used for live-mode geometry.
func WithTerminalSize(fn TerminalSizeFunc) Option {
	return func(v *Validator) { v.terminalSize = fn }
}

// WithHeaderReader replaces cast.ReadHeader.
func WithHeaderReader(fn HeaderReaderFunc) Option {
	return func(v *Validator) { v.readHeader = fn }
}

// NewValidator returns a Validator that falls back to defaults.
func NewValidator(defaults config.Defaults, opts ...Option) *Validator {
	v := &Validator{
		defaults:   defaults,
		warnings:   os.Stderr,
		readHeader: cast.ReadHeader,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State returns the current state.
func (v *Validator) State() State {
	return v.state
}

// States returns every state entered so far, in order.
func (v *Validator) States() []State {
	out := make([]State, len(v.states))
	copy(out, v.states)
	return out
}

func (v *Validator) enter(s State) {
	v.state = s
	v.states = append(v.states, s)
}

func (v *Validator) reject(kind Kind, err error) (*Request, error) {
	e := &Error{Kind: kind, State: v.state, Err: err}
	v.enter(StateRejected)
	return nil, e
}

// Validate resolves f into a finalized Request. On failure it returns a
// *Error and no Request.
func (v *Validator) Validate(f Flags) (*Request, error) {
	v.state, v.states = StateStart, nil
	v.enter(StateStart)

	req := &Request{
		FPS:          v.defaults.FPS,
		CheckDeps:    f.CheckDeps,
		MeasureFonts: f.MeasureFonts,
	}
	if f.FPS != nil {
		if *f.FPS <= 0 {
			return v.reject(KindInvalidValue, fmt.Errorf("--fps must be positive, got %d", *f.FPS))
		}
		req.FPS = *f.FPS
	}

	if err := detectMode(req, f, v.defaults); err != nil {
		return v.reject(KindConflictingMode, err)
	}
	if req.Mode == ModeLive && req.Command == "" {
		return v.reject(KindInvalidValue, fmt.Errorf("command must be non-empty"))
	}
	if req.Output == "" && req.Mode != ModeUtility {
		return v.reject(KindInvalidValue, fmt.Errorf("output must be non-empty"))
	}
	v.enter(StateModeDetected)

	var hdr *cast.Header
	if req.Mode == ModeCastFile {
		var err error
		hdr, err = v.readHeader(req.CastFile)
		if err != nil {
			return v.reject(KindInvalidCastFile, err)
		}
	}
	if err := resolveGeometry(req, f, hdr, v.terminalSize, v.defaults); err != nil {
		return v.reject(KindInvalidValue, err)
	}
	v.enter(StateGeometryResolved)

	warn := func(msg string) {
		diag.Warnf(v.warnings, "%s", msg)
		req.Warnings = append(req.Warnings, msg)
	}
	if err := resolveSpeed(req, f, warn); err != nil {
		return v.reject(KindInvalidSpeed, err)
	}
	v.enter(StateSpeedResolved)

	finalizeCommand(req, v.defaults.Player)
	v.enter(StateCommandFinalized)

	if err := req.Validate(); err != nil {
		return v.reject(KindIncomplete, err)
	}
	v.enter(StateAccepted)
	return req, nil
}
