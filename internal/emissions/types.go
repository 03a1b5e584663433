// Package emissions computes greenhouse-gas emissions for Scope 1, 2 and 3
// from activity quantities and emission factors.
//
// Factor tables are immutable values injected into a Calculator, so alternate
// factor sets can be used side by side. All results are in tCO2e.
package emissions

import (
	"encoding/json"
	"fmt"
)

// Scope identifies a greenhouse-gas accounting scope.
type Scope int

const (
	// Scope1 covers direct emissions from fuel combustion.
	Scope1 Scope = iota + 1

	// Scope2 covers purchased electricity.
	Scope2

	// Scope3 covers value-chain categories.
	Scope3
)

// String returns the label used for the scope in reports, e.g. "Scope 1".
func (s Scope) String() string {
	switch s {
	case Scope1, Scope2, Scope3:
		return fmt.Sprintf("Scope %d", int(s))
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// CategoryRow is one computed line of an emissions breakdown.
//
// Rows are only built by the Calculator (or decoded from JSON), so Emissions
// is always Quantity * Factor.
type CategoryRow struct {
	category  string
	quantity  float64
	factor    float64
	emissions float64
}

func newCategoryRow(category string, quantity, factor float64) CategoryRow {
	return CategoryRow{
		category:  category,
		quantity:  quantity,
		factor:    factor,
		emissions: quantity * factor,
	}
}

// Category returns the category name.
func (r CategoryRow) Category() string { return r.category }

// Quantity returns the activity quantity.
func (r CategoryRow) Quantity() float64 { return r.quantity }

// Factor returns the emission factor applied to the quantity.
func (r CategoryRow) Factor() float64 { return r.factor }

// Emissions returns Quantity * Factor in tCO2e.
func (r CategoryRow) Emissions() float64 { return r.emissions }

// categoryRowJSON is the interchange shape of a row. The keys match the
// report dumps produced by earlier versions of the tool.
type categoryRowJSON struct {
	Category  string  `json:"Category"`
	Qty       float64 `json:"Qty"`
	EF        float64 `json:"EF"`
	Emissions float64 `json:"Emissions"`
}

// MarshalJSON encodes the row with Category/Qty/EF/Emissions keys.
func (r CategoryRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryRowJSON{
		Category:  r.category,
		Qty:       r.quantity,
		EF:        r.factor,
		Emissions: r.emissions,
	})
}

// UnmarshalJSON decodes a row and recomputes Emissions from Qty and EF.
func (r *CategoryRow) UnmarshalJSON(data []byte) error {
	var raw categoryRowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := checkValue(raw.Category, "quantity", raw.Qty); err != nil {
		return err
	}
	if err := checkValue(raw.Category, "factor", raw.EF); err != nil {
		return err
	}
	*r = newCategoryRow(raw.Category, raw.Qty, raw.EF)
	return nil
}

// Scope3Entry is one user-supplied value-chain activity.
// A nil FactorOverride means the table's default factor is used.
type Scope3Entry struct {
	Category       string   `yaml:"category"        json:"category"`
	Quantity       float64  `yaml:"quantity"        json:"quantity"`
	FactorOverride *float64 `yaml:"factor,omitempty" json:"factor,omitempty"`
}

// SumEmissions returns the sum of row emissions.
func SumEmissions(rows []CategoryRow) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.emissions
	}
	return total
}
