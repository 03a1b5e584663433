package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/esgfocus/internal/emissions"
)

// View implements tea.Model.
func (m ReportModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateTopics:
		return m.renderTopicsView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m ReportModel) renderListView() string {
	sections := []string{
		RenderEmissionsSummary(m.ctx, m.rec, m.width),
		m.table.View(),
		m.renderStatusBar(),
	}
	if m.showFilter {
		sections = append(sections, LabelStyle.Render("Filter: ")+m.textInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportModel) renderStatusBar() string {
	filterStatus := ""
	if m.textInput.Value() != "" {
		filterStatus = fmt.Sprintf(" | Filtered: %d/%d", len(m.rows), len(m.allRows))
	}
	status := fmt.Sprintf(
		"Sort: %s%s | 's' sort, '/' filter, 'tab' topics, 'enter' detail, 'q' quit",
		m.sortBy, filterStatus,
	)
	return SubtleStyle.Render(status)
}

func (m ReportModel) renderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return msgSelectedOutOfBounds
	}
	row := m.rows[m.selected]

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("SCOPE 3 CATEGORY"))
	content.WriteString("\n\n")
	writeField(&content, "Category:  ", row.Category)
	writeField(&content, "Quantity:  ", emissions.FormatPlain(row.Quantity))
	writeField(&content, "Factor:    ", emissions.FormatPlain(row.Factor))
	writeField(&content, "Emissions: ", emissions.FormatTonnes(row.Emissions))
	writeField(&content, "Share:     ", fmt.Sprintf("%.1f%% of Scope 3", row.Share))
	if row.Emissions == 0 {
		content.WriteString(SubtleStyle.Render("No activity reported for this category.\n"))
	}
	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func (m ReportModel) renderTopicsView() string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("MATERIAL TOPICS"))
	content.WriteString("\n\n")

	if m.rec == nil || len(m.rec.Topics) == 0 {
		content.WriteString(InfoStyle.Render("No material topics selected."))
		content.WriteString("\n")
	} else {
		for _, name := range m.rec.TopicOrder() {
			entry := m.rec.Topics[name]
			content.WriteString(ValueStyle.Render(name))
			content.WriteString("\n")
			if n, ok := m.rec.Narratives[name]; ok {
				content.WriteString("  ")
				content.WriteString(n)
				content.WriteString("\n")
			}
			if len(entry.KPIs) > 0 {
				content.WriteString(LabelStyle.Render("  KPIs: "))
				content.WriteString(strings.Join(entry.KPIs, ", "))
				content.WriteString("\n")
			}
			if entry.Risks != "" {
				content.WriteString(LabelStyle.Render("  Risks: "))
				content.WriteString(WarningStyle.Render(entry.Risks))
				content.WriteString("\n")
			}
			if entry.Opportunities != "" {
				content.WriteString(LabelStyle.Render("  Opportunities: "))
				content.WriteString(OKStyle.Render(entry.Opportunities))
				content.WriteString("\n")
			}
		}
	}
	content.WriteString(SubtleStyle.Render("\nPress TAB or ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}
