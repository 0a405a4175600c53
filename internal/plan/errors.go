package plan

import (
	"errors"
	"fmt"
)

// Kind classifies why a plan was rejected.
type Kind string

const (
	// KindConflictingMode: more than one of live command, cast file and
	// utility flag was given, or none was.
	KindConflictingMode Kind = "conflicting mode"
	// KindInvalidCastFile: the cast file is missing, unreadable or has a bad header.
	KindInvalidCastFile Kind = "invalid cast file"
	// KindInvalidSpeed: the speed token is not a positive "<int>x".
	KindInvalidSpeed Kind = "invalid speed"
	// KindInvalidValue: a flag or positional value is out of range.
	KindInvalidValue Kind = "invalid value"
	// KindUsage: an unrecognized flag or too many positional arguments.
	KindUsage Kind = "usage"
	// KindIncomplete: resolution finished with a required field still unset.
	KindIncomplete Kind = "incomplete plan"
)

// Error is returned for every rejected invocation.
type Error struct {
	Kind Kind
	// State is the validator state at the moment of rejection.
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reject builds an *Error of the given kind outside the validator, e.g. for
// flag-parsing failures detected by the command layer.
func Reject(kind Kind, err error) *Error {
	return &Error{Kind: kind, State: StateStart, Err: err}
}

// IsKind reports whether err is a plan *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
