package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/esgfocus/internal/logging"
	"github.com/rshade/esgfocus/internal/report"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

// DefaultBaseName is the file name stem used when ExportOptions.BaseName is empty.
const DefaultBaseName = "gri_esg_report"

// ParseFormats parses a comma-separated format list such as "json,md".
// "markdown" is accepted as an alias for "md".
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		var f Format
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
			continue
		case "json":
			f = FormatJSON
		case "md", "markdown":
			f = FormatMarkdown
		default:
			return nil, fmt.Errorf("unsupported export format %q (want json or md)", part)
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no export format given")
	}
	return out, nil
}

// ExportOptions controls Export.
type ExportOptions struct {
	Dir      string
	BaseName string
	Formats  []Format
}

// Export writes rec in each requested format to Dir/BaseName.<ext> and
// returns the written paths in format order. The files are rendered
// concurrently; the first failure is returned wrapped in ErrRenderFailure
// and any file already written by this call is removed.
func Export(ctx context.Context, rec *report.Record, opts ExportOptions) ([]string, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrRenderFailure)
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []Format{FormatJSON, FormatMarkdown}
	}
	if opts.BaseName == "" {
		opts.BaseName = DefaultBaseName
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %w", ErrRenderFailure, err)
	}

	logger := logging.FromContext(ctx)
	// Each goroutine owns one index of paths.
	paths := make([]string, len(opts.Formats))

	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range opts.Formats {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, opts.BaseName+"."+string(f))
			if err := writeFormat(path, f, rec); err != nil {
				return err
			}
			paths[i] = path
			logger.Debug().Str("format", string(f)).Str("path", path).Msg("report exported")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		removeWritten(ctx, paths)
		return nil, err
	}
	return paths, nil
}

// removeWritten deletes the files a failed Export managed to write.
func removeWritten(ctx context.Context, paths []string) {
	logger := logging.FromContext(ctx)
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", p).Msg("removing partial export")
		}
	}
}

func writeFormat(path string, f Format, rec *report.Record) error {
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatJSON:
		err = RenderJSON(&buf, rec)
	case FormatMarkdown:
		err = RenderDocument(&buf, rec)
	default:
		err = fmt.Errorf("%w: unsupported format %q", ErrRenderFailure, f)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrRenderFailure, path, err)
	}
	return nil
}
