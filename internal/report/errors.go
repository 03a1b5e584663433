package report

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while assembling a report.
var (
	// ErrMissingField indicates a required scalar such as company or period is empty.
	ErrMissingField = constError("missing required field")

	// ErrUnknownTopic indicates a topic that is not in the material-topic catalog.
	ErrUnknownTopic = constError("unknown material topic")
)
