package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how a report is shown on stdout.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss/glamour styled text.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea browser.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// DetectOutputMode picks an output mode for stdout. plain forces plain text,
// interactive asks for the browser. NO_COLOR, CI and TERM=dumb downgrade to
// plain; a non-terminal stdout never gets the browser.
func DetectOutputMode(plain, interactive bool) OutputMode {
	return detectOutputMode(plain, interactive, IsTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(plain, interactive, tty bool, lookupEnv func(string) (string, bool)) OutputMode {
	if plain || !tty {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, ok := lookupEnv("CI"); ok && v != "" && v != "false" {
		return OutputModePlain
	}
	if v, _ := lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}
	if interactive {
		return OutputModeInteractive
	}
	return OutputModeStyled
}
