package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input   string
		want    []Format
		wantErr bool
	}{
		{"json", []Format{FormatJSON}, false},
		{"json,md", []Format{FormatJSON, FormatMarkdown}, false},
		{" Markdown , json, md ", []Format{FormatMarkdown, FormatJSON}, false},
		{"", nil, true},
		{"docx", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormats(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Export(context.Background(), sampleRecord(t), ExportOptions{
		Dir:      dir,
		BaseName: "acme",
		Formats:  []Format{FormatJSON, FormatMarkdown},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "acme.json"),
		filepath.Join(dir, "acme.md"),
	}, paths)

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	rec, err := DecodeJSON(f)
	require.NoError(t, err)
	assert.Equal(t, "Acme Seating", rec.Company)

	md, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(md), "Scope 3 Breakdown")
}

func TestExport_Defaults(t *testing.T) {
	dir := t.TempDir()
	paths, err := Export(context.Background(), sampleRecord(t), ExportOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, DefaultBaseName+".json"),
		filepath.Join(dir, DefaultBaseName+".md"),
	}, paths)
}

func TestExport_WriteFailure(t *testing.T) {
	// A regular file where the output directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Export(context.Background(), sampleRecord(t), ExportOptions{Dir: blocker})
	assert.ErrorIs(t, err, ErrRenderFailure)
}

func TestExport_FailureRemovesWrittenFiles(t *testing.T) {
	dir := t.TempDir()
	// A directory named like the Markdown output makes only that write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "acme.md"), 0o700))

	paths, err := Export(context.Background(), sampleRecord(t), ExportOptions{
		Dir:      dir,
		BaseName: "acme",
		Formats:  []Format{FormatJSON, FormatMarkdown},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRenderFailure)
	assert.Nil(t, paths)
	assert.NoFileExists(t, filepath.Join(dir, "acme.json"))
	assert.DirExists(t, filepath.Join(dir, "acme.md"))
}

func TestExport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Export(ctx, sampleRecord(t), ExportOptions{Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExport_NilRecord(t *testing.T) {
	_, err := Export(context.Background(), nil, ExportOptions{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrRenderFailure)
}
