// Package diag writes human-readable diagnostics to the error stream.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvColor forces color on or off, overriding NO_COLOR and TTY detection.
const EnvColor = "SH2MP4_COLOR"

// colorMode controls ANSI color output in diagnostics.
type colorMode int

const (
	colorOff colorMode = iota
	colorOn
)

// resolveColor determines whether to emit ANSI color codes on w.
// Priority: SH2MP4_COLOR env > NO_COLOR env > w is a terminal.
func resolveColor(w io.Writer) colorMode {
	if v := os.Getenv(EnvColor); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return colorOn
		case "0", "false", "no", "off":
			return colorOff
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return colorOff
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colorOn
	}
	return colorOff
}

func paint(s, code string, c colorMode) string {
	if c == colorOn {
		return "\033[" + code + "m" + s + "\033[0m"
	}
	return s
}

// Warnf writes a non-fatal "Warning: " line to w.
func Warnf(w io.Writer, format string, args ...any) {
	prefix := paint("Warning:", "33", resolveColor(w))
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Errorf writes a fatal "Error: " line to w.
func Errorf(w io.Writer, format string, args ...any) {
	prefix := paint("Error:", "31", resolveColor(w))
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
