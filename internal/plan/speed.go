package plan

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidSpeed is wrapped by ParseSpeed failures.
var ErrInvalidSpeed = errors.New("speed must look like <positive integer>x, e.g. 8x")

var speedPattern = regexp.MustCompile(`^[0-9]+x$`)

// ParseSpeed returns the integer multiplier embedded in a token like "8x".
func ParseSpeed(token string) (int, error) {
	if !speedPattern.MatchString(token) {
		return 0, fmt.Errorf("%q: %w", token, ErrInvalidSpeed)
	}
	n, err := strconv.Atoi(token[:len(token)-1])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, ErrInvalidSpeed)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q: multiplier must be positive: %w", token, ErrInvalidSpeed)
	}
	return n, nil
}

// FormatMultiplier renders a multiplier with one decimal place, as the
// playback tool's -s flag expects (8 -> "8.0").
func FormatMultiplier(multiplier int) string {
	return strconv.FormatFloat(float64(multiplier), 'f', 1, 64)
}

// RecordingFPS scales fps by multiplier, rounding to the nearest integer.
// It fails when the result does not fit a 32-bit frame rate.
func RecordingFPS(fps int, multiplier float64) (int, error) {
	scaled := math.Round(float64(fps) * multiplier)
	if scaled <= 0 || scaled > math.MaxInt32 {
		return 0, fmt.Errorf("recording fps %d x %g is out of range", fps, multiplier)
	}
	return int(scaled), nil
}
