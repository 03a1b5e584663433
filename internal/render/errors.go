// Package render turns a report.Record into its output documents: a JSON
// data dump, a Markdown report and a terminal preview.
package render

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrRenderFailure wraps any encoding or I/O failure while producing output.
// Rendering is deterministic, so callers should report it rather than retry.
var ErrRenderFailure = constError("render failure")
