package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/rshade/esgfocus/internal/emissions"
	"github.com/rshade/esgfocus/internal/logging"
	"github.com/rshade/esgfocus/internal/report"
)

const (
	maxCategoryDisplayLen = 40
	truncateSuffix        = "..."
)

// Scope3Row is a display-ready Scope 3 breakdown row.
type Scope3Row struct {
	Category  string
	Quantity  float64
	Factor    float64
	Emissions float64
	// Share is the row's percentage of total Scope 3 emissions.
	Share float64
}

// NewScope3Rows converts the record's breakdown into display rows.
func NewScope3Rows(rec *report.Record) []Scope3Row {
	if rec == nil {
		return nil
	}
	total := emissions.SumEmissions(rec.Scope3Details)
	out := make([]Scope3Row, 0, len(rec.Scope3Details))
	for _, r := range rec.Scope3Details {
		share := 0.0
		if total > 0 {
			share = r.Emissions() / total * 100 //nolint:mnd // Percentage calculation.
		}
		out = append(out, Scope3Row{
			Category:  r.Category(),
			Quantity:  r.Quantity(),
			Factor:    r.Factor(),
			Emissions: r.Emissions(),
			Share:     share,
		})
	}
	return out
}

func truncateCategory(s string) string {
	r := []rune(s)
	if len(r) <= maxCategoryDisplayLen {
		return s
	}
	return string(r[:maxCategoryDisplayLen-len(truncateSuffix)]) + truncateSuffix
}

// RenderEmissionsSummary renders a boxed summary of the record's scope totals,
// each scope's share of the total, the largest Scope 3 category and, when
// the total is large enough, an everyday equivalency.
func RenderEmissionsSummary(ctx context.Context, rec *report.Record, width int) string {
	if rec == nil {
		return InfoStyle.Render("No report to display.")
	}
	logger := logging.FromContext(ctx)

	total := rec.TotalEmissions()
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("EMISSIONS SUMMARY"))
	content.WriteString("  ")
	content.WriteString(SubtleStyle.Render(rec.Company + " | " + rec.Period))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Total: "))
	content.WriteString(ValueStyle.Render(emissions.FormatTonnes(total)))
	content.WriteString(LabelStyle.Render("    Topics: "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(len(rec.Topics))))
	content.WriteString("\n")

	type scopeTotal struct {
		scope emissions.Scope
		value float64
	}
	scopes := []scopeTotal{
		{emissions.Scope1, rec.ScopeTotal(emissions.Scope1)},
		{emissions.Scope2, rec.ScopeTotal(emissions.Scope2)},
		{emissions.Scope3, rec.ScopeTotal(emissions.Scope3)},
	}
	sort.SliceStable(scopes, func(i, j int) bool {
		return scopes[i].value > scopes[j].value
	})
	parts := make([]string, 0, len(scopes))
	for _, s := range scopes {
		pct := 0.0
		if total > 0 {
			pct = s.value / total * 100 //nolint:mnd // Percentage calculation.
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%.1f%%)", s.scope, emissions.FormatFloat(s.value, emissions.DisplayPrecision), pct))
	}
	content.WriteString(LabelStyle.Render(strings.Join(parts, "  ")))

	if top, ok := largestCategory(NewScope3Rows(rec)); ok {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render("Largest Scope 3 source: "))
		content.WriteString(WarningStyle.Render(fmt.Sprintf("%s (%.1f%%)", top.Category, top.Share)))
	}

	eq, err := emissions.Equivalencies(total)
	switch {
	case err != nil:
		logger.Debug().Err(err).Msg("skipping equivalency line")
	case !eq.IsEmpty:
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(eq.DisplayText))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

func largestCategory(rows []Scope3Row) (Scope3Row, bool) {
	var best Scope3Row
	found := false
	for _, r := range rows {
		if r.Emissions > 0 && (!found || r.Emissions > best.Emissions) {
			best = r
			found = true
		}
	}
	return best, found
}

// NewScope3Table creates a table model for the Scope 3 breakdown.
func NewScope3Table(rows []Scope3Row, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: maxCategoryDisplayLen},
		{Title: "Quantity", Width: 14}, //nolint:mnd // Column width.
		{Title: "Factor", Width: 10},   //nolint:mnd // Column width.
		{Title: "tCO₂e", Width: 12},    //nolint:mnd // Column width.
		{Title: "Share", Width: 8},     //nolint:mnd // Column width.
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{
			truncateCategory(r.Category),
			emissions.FormatFloat(r.Quantity, emissions.DisplayPrecision),
			emissions.FormatPlain(r.Factor),
			emissions.FormatFloat(r.Emissions, emissions.DisplayPrecision),
			fmt.Sprintf("%.1f%%", r.Share),
		}
	}

	if height < minHeight {
		height = minHeight
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}
