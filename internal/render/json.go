package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/esgfocus/internal/report"
)

// RenderJSON writes rec as indented JSON using the record's field names.
func RenderJSON(w io.Writer, rec *report.Record) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrRenderFailure)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("%w: encoding JSON: %w", ErrRenderFailure, err)
	}
	return nil
}

// DecodeJSON reads a record previously written by RenderJSON.
func DecodeJSON(r io.Reader) (*report.Record, error) {
	var rec report.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding report JSON: %w", err)
	}
	return &rec, nil
}
