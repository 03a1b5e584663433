package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/esgfocus/internal/emissions"
)

func TestNewScope3Rows(t *testing.T) {
	rows := NewScope3Rows(testRecord(t))
	require.Len(t, rows, 8)

	var total float64
	for _, r := range rows {
		total += r.Share
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	waste := rows[4]
	assert.Equal(t, emissions.CatWaste, waste.Category)
	assert.InDelta(t, 9.8, waste.Emissions, 1e-9)

	assert.Nil(t, NewScope3Rows(nil))
}

func TestRenderEmissionsSummary(t *testing.T) {
	out := RenderEmissionsSummary(context.Background(), testRecord(t), 120)

	assert.Contains(t, out, "EMISSIONS SUMMARY")
	assert.Contains(t, out, "Acme Seating")
	assert.Contains(t, out, "Scope 1: 268.00")
	assert.Contains(t, out, "Largest Scope 3 source")
	assert.Contains(t, out, "Equivalent to driving")
}

func TestRenderEmissionsSummary_NilRecord(t *testing.T) {
	assert.Contains(t, RenderEmissionsSummary(context.Background(), nil, 80), "No report to display.")
}

func TestLargestCategory(t *testing.T) {
	_, ok := largestCategory([]Scope3Row{{Category: "a"}})
	assert.False(t, ok)

	top, ok := largestCategory([]Scope3Row{{Category: "a", Emissions: 1}, {Category: "b", Emissions: 3}})
	require.True(t, ok)
	assert.Equal(t, "b", top.Category)
}

func TestTruncateCategory(t *testing.T) {
	assert.Equal(t, "short", truncateCategory("short"))
	long := "Purchased Goods & Services from a very long supplier list"
	got := truncateCategory(long)
	assert.Len(t, []rune(got), maxCategoryDisplayLen)
	assert.True(t, len(got) > 3 && got[len(got)-3:] == truncateSuffix)
}

func TestNewScope3Table(t *testing.T) {
	tbl := NewScope3Table(NewScope3Rows(testRecord(t)), 1)
	assert.Len(t, tbl.Rows(), 8)
	assert.Len(t, tbl.Columns(), 5)
}
