package cmd

import (
	"os"

	"golang.org/x/term"
)

// terminalSize reports the size of the terminal attached to stdout.
func terminalSize() (cols, lines int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, lines, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return cols, lines, true
}

// noTerminal reports that no terminal is attached.
func noTerminal() (cols, lines int, ok bool) {
	return 0, 0, false
}
