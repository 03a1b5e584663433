package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/esgfocus/internal/emissions"
)

const customFactorSet = `
name: cea-2025
version: 1.2.0
grid_factor: 0.00071
scope1:
  - category: Diesel (litres)
    factor: 2.70
scope3:
  - category: Waste Generated (t)
    factor: 0.5
  - category: Business Travel (passenger-km)
    factor: 0.0002
`

func writeFactorSet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecodeFactorSet(t *testing.T) {
	set, err := DecodeFactorSet(strings.NewReader(customFactorSet))
	require.NoError(t, err)

	assert.Equal(t, "cea-2025", set.Name)
	assert.Equal(t, "1.2.0", set.Version)
	assert.InDelta(t, 0.00071, set.GridFactor, 1e-12)
	assert.Equal(t, []string{emissions.CatWaste, emissions.CatBusinessTravel}, set.Scope3.Categories())

	calc := emissions.NewCalculator(set)
	_, total, err := calc.Scope3([]emissions.Scope3Entry{{Category: emissions.CatWaste, Quantity: 10}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, total, 1e-9)
}

func TestDecodeFactorSet_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "major version 2",
			doc:     strings.Replace(customFactorSet, "1.2.0", "2.0.0", 1),
			wantErr: ErrIncompatibleFactorSet,
		},
		{
			name:    "pre 1.0",
			doc:     strings.Replace(customFactorSet, "1.2.0", "0.9.0", 1),
			wantErr: ErrIncompatibleFactorSet,
		},
		{
			name:    "not semver",
			doc:     strings.Replace(customFactorSet, "1.2.0", "latest", 1),
			wantErr: ErrIncompatibleFactorSet,
		},
		{
			name:    "negative factor",
			doc:     strings.Replace(customFactorSet, "factor: 0.5", "factor: -0.5", 1),
			wantErr: emissions.ErrInvalidInput,
		},
		{
			name:    "unknown field",
			doc:     customFactorSet + "extra: true\n",
			wantErr: emissions.ErrInvalidInput,
		},
		{
			name:    "missing name",
			doc:     strings.Replace(customFactorSet, "name: cea-2025", "name: ''", 1),
			wantErr: emissions.ErrInvalidInput,
		},
		{
			name:    "missing grid factor",
			doc:     strings.Replace(customFactorSet, "grid_factor: 0.00071\n", "", 1),
			wantErr: emissions.ErrInvalidInput,
		},
		{
			name:    "zero grid factor",
			doc:     strings.Replace(customFactorSet, "grid_factor: 0.00071", "grid_factor: 0", 1),
			wantErr: emissions.ErrInvalidInput,
		},
		{
			name:    "empty scope 3",
			doc:     "name: x\nversion: 1.0.0\ngrid_factor: 0.1\nscope1:\n  - category: a\n    factor: 1\n",
			wantErr: emissions.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFactorSet(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeFactorSet_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeFactorSet(&buf, emissions.DefaultFactorSet()))
	assert.Contains(t, buf.String(), "name: "+emissions.DefaultFactorSetName)

	set, err := DecodeFactorSet(&buf)
	require.NoError(t, err)
	assert.Equal(t, emissions.DefaultScope1Table().Factors(), set.Scope1.Factors())
	assert.Equal(t, emissions.DefaultScope3Table().Factors(), set.Scope3.Factors())
	assert.InDelta(t, emissions.IndiaGridFactor, set.GridFactor, 1e-15)
}

func TestResolveFactorSet(t *testing.T) {
	set, err := ResolveFactorSet("")
	require.NoError(t, err)
	assert.Equal(t, emissions.DefaultFactorSetName, set.Name)

	path := writeFactorSet(t, t.TempDir(), "custom.yaml", customFactorSet)
	set, err = ResolveFactorSet(path)
	require.NoError(t, err)
	assert.Equal(t, "cea-2025", set.Name)

	_, err = ResolveFactorSet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestListFactorSets(t *testing.T) {
	dir := t.TempDir()
	writeFactorSet(t, dir, "a-old.yaml", customFactorSet)
	writeFactorSet(t, dir, "b-new.yml", strings.Replace(customFactorSet, "1.2.0", "1.10.0", 1))
	writeFactorSet(t, dir, "c-older.yaml", strings.Replace(customFactorSet, "1.2.0", "1.0.0", 1))
	writeFactorSet(t, dir, "broken.yaml", strings.Replace(customFactorSet, "1.2.0", "3.0.0", 1))
	writeFactorSet(t, dir, "notes.txt", "ignored")

	sets, warnings, err := ListFactorSets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "1.10.0", sets[0].Version)
	assert.Equal(t, filepath.Join(dir, "b-new.yml"), sets[0].Path)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "broken.yaml")
}

func TestListFactorSets_MissingDir(t *testing.T) {
	sets, warnings, err := ListFactorSets(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Empty(t, warnings)
}
