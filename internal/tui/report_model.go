package tui

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/esgfocus/internal/report"
)

// SortField orders the Scope 3 table.
type SortField int

const (
	// SortByCatalog keeps the factor-table order.
	SortByCatalog SortField = iota
	// SortByEmissions puts the largest sources first.
	SortByEmissions
	// SortByCategory sorts alphabetically.
	SortByCategory
	numSortFields
)

func (f SortField) String() string {
	switch f {
	case SortByCatalog:
		return "Catalog"
	case SortByEmissions:
		return "Emissions"
	case SortByCategory:
		return "Category"
	default:
		return "Unknown"
	}
}

const msgSelectedOutOfBounds = "No category selected."

// ReportModel is the Bubble Tea model for browsing a generated report.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ReportModel struct {
	ctx context.Context
	rec *report.Record

	state   ViewState
	allRows []Scope3Row // catalog order, source of truth
	rows    []Scope3Row // filtered and sorted

	table     table.Model
	textInput textinput.Model
	selected  int

	width      int
	height     int
	sortBy     SortField
	showFilter bool
}

// NewReportModel creates a report browser for rec.
func NewReportModel(ctx context.Context, rec *report.Record) ReportModel {
	rows := NewScope3Rows(rec)
	m := ReportModel{
		ctx:       ctx,
		rec:       rec,
		state:     ViewStateList,
		allRows:   rows,
		rows:      append([]Scope3Row(nil), rows...),
		textInput: newTextInput(),
		width:     defaultWidth,
		height:    defaultHeight,
		sortBy:    SortByCatalog,
	}
	m.rebuildTable()
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "category"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// Init implements tea.Model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail, ViewStateTopics:
		return m.handleSecondaryUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m ReportModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter(m.textInput.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m ReportModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.table.Cursor()
		if m.selected >= 0 && m.selected < len(m.rows) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keyTab:
		m.state = ViewStateTopics
		return m, nil
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyS:
		m.sortBy = (m.sortBy + 1) % numSortFields
		m.refreshTable()
		return m, nil
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter("")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// handleSecondaryUpdate handles keys on the detail and topics screens.
func (m ReportModel) handleSecondaryUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		m.state = ViewStateList
		m.table.Focus()
	case keyTab:
		if m.state == ViewStateTopics {
			m.state = ViewStateList
			m.table.Focus()
		}
	}
	return m, nil
}

// applyFilter keeps rows whose category contains filterText, ignoring case.
func (m *ReportModel) applyFilter(filterText string) {
	query := strings.ToLower(strings.TrimSpace(filterText))
	filtered := make([]Scope3Row, 0, len(m.allRows))
	for _, r := range m.allRows {
		if query == "" || strings.Contains(strings.ToLower(r.Category), query) {
			filtered = append(filtered, r)
		}
	}
	m.rows = filtered
	m.refreshTable()
}

// refreshTable re-sorts the visible rows and rebuilds the table.
func (m *ReportModel) refreshTable() {
	switch m.sortBy {
	case SortByCatalog:
		rank := make(map[string]int, len(m.allRows))
		for i, r := range m.allRows {
			rank[r.Category] = i
		}
		sort.SliceStable(m.rows, func(i, j int) bool {
			return rank[m.rows[i].Category] < rank[m.rows[j].Category]
		})
	case SortByEmissions:
		sort.SliceStable(m.rows, func(i, j int) bool {
			return m.rows[i].Emissions > m.rows[j].Emissions
		})
	case SortByCategory:
		sort.SliceStable(m.rows, func(i, j int) bool {
			return m.rows[i].Category < m.rows[j].Category
		})
	}
	m.rebuildTable()
}

func (m *ReportModel) rebuildTable() {
	m.table = NewScope3Table(m.rows, m.height-summaryHeight-1)
}

// State returns the screen currently shown.
func (m ReportModel) State() ViewState {
	return m.state
}

// Rows returns the visible Scope 3 rows in display order.
func (m ReportModel) Rows() []Scope3Row {
	return m.rows
}
