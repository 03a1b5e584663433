package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/rshade/esgfocus/internal/report"
)

// Glamour style names accepted by TerminalOptions.Style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// defaultWrapWidth is used when TerminalOptions.Width is not positive.
const defaultWrapWidth = 80

// TerminalOptions controls the terminal preview.
type TerminalOptions struct {
	// Width is the word-wrap width in columns.
	Width int

	// Style is a glamour standard style name, or StyleAuto to detect
	// the terminal background.
	Style string
}

// RenderTerminal renders rec's Markdown document for display in a terminal.
func RenderTerminal(rec *report.Record, opts TerminalOptions) (string, error) {
	doc, err := DocumentString(rec)
	if err != nil {
		return "", err
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWrapWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != StyleAuto {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("%w: creating terminal renderer: %w", ErrRenderFailure, err)
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return "", fmt.Errorf("%w: rendering markdown: %w", ErrRenderFailure, err)
	}
	return out, nil
}
