package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal attached to stdout.
// Returns fallback when stdout is not a terminal or its size can't be read.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
