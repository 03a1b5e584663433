package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the calculator. Compare with errors.Is.
var (
	// ErrInvalidInput indicates a negative, NaN or infinite quantity or factor,
	// or a category supplied more than once.
	ErrInvalidInput = constError("invalid emissions input")

	// ErrUnknownCategory indicates a category that is not in the factor table.
	ErrUnknownCategory = constError("unknown emission category")

	// ErrCalculationOverflow indicates a product or sum that overflowed float64.
	ErrCalculationOverflow = constError("calculation overflow")
)
