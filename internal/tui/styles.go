// Package tui renders esgfocus reports for interactive terminals: a boxed
// emissions summary and a Bubble Tea browser for the Scope 3 breakdown and
// the selected material topics.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader   = lipgloss.Color("86")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("255")
	ColorMuted    = lipgloss.Color("241")
	ColorOK       = lipgloss.Color("42")
	ColorWarning  = lipgloss.Color("214")
	ColorCritical = lipgloss.Color("196")
	ColorInfo     = lipgloss.Color("39")
	ColorBorder   = lipgloss.Color("63")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorInfo)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// Layout.
const (
	defaultWidth  = 100
	defaultHeight = 24
	summaryHeight = 8
	minHeight     = 5
	borderPadding = 2
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyTab   = "tab"
	keySlash = "/"
	keyS     = "s"
)

// ViewState is the screen the report browser is showing.
type ViewState int

const (
	// ViewStateList shows the Scope 3 breakdown table.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one Scope 3 category.
	ViewStateDetail
	// ViewStateTopics shows the selected material topics and narratives.
	ViewStateTopics
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateTopics:
		return "topics"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
