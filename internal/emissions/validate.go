package emissions

import (
	"fmt"
	"math"
)

// checkValue rejects negative, NaN and infinite values. what names the field
// ("quantity" or "factor") for the error message.
func checkValue(category, what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %s is not a finite number", ErrInvalidInput, category, what)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s %s %g is negative", ErrInvalidInput, category, what, v)
	}
	return nil
}

// checkProduct rejects a row or total that overflowed to infinity.
func checkProduct(category string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%w: %s", ErrCalculationOverflow, category)
	}
	return nil
}

// Round2 rounds v to DisplayPrecision decimal places.
func Round2(v float64) float64 {
	const scale = 100
	return math.Round(v*scale) / scale
}
