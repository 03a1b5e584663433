package cli

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 100

// terminalWidth returns the stdout column count, or a default when stdout
// is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
