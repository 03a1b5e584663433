package emissions

import (
	"fmt"
	"sort"
)

// Calculator maps activity quantities to emissions using an injected FactorSet.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	factors FactorSet
}

// NewCalculator returns a Calculator using set.
func NewCalculator(set FactorSet) *Calculator {
	return &Calculator{factors: set}
}

// Factors returns the factor set the calculator was built with.
func (c *Calculator) Factors() FactorSet {
	return c.factors
}

// Scope1 computes fuel combustion emissions.
//
// Every fuel in the Scope 1 table yields one row, in table order; fuels absent
// from fuel count as zero. Keys not in the table return ErrUnknownCategory and
// negative or non-finite quantities return ErrInvalidInput.
func (c *Calculator) Scope1(fuel map[string]float64) ([]CategoryRow, float64, error) {
	if err := c.checkKnown(fuel); err != nil {
		return nil, 0, err
	}

	rows := make([]CategoryRow, 0, c.factors.Scope1.Len())
	total := 0.0
	for _, f := range c.factors.Scope1.entries {
		qty := fuel[f.Category]
		if err := checkValue(f.Category, "quantity", qty); err != nil {
			return nil, 0, err
		}
		row := newCategoryRow(f.Category, qty, f.Value)
		if err := checkProduct(f.Category, row.emissions); err != nil {
			return nil, 0, err
		}
		rows = append(rows, row)
		total += row.emissions
	}
	if err := checkProduct(Scope1.String(), total); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// checkKnown returns ErrUnknownCategory for the first (sorted) key of fuel
// that the Scope 1 table does not contain.
func (c *Calculator) checkKnown(fuel map[string]float64) error {
	var unknown []string
	for k := range fuel {
		if !c.factors.Scope1.Has(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: scope 1 fuel %q", ErrUnknownCategory, unknown[0])
}

// Scope2 computes purchased electricity emissions as kwh * grid factor.
func (c *Calculator) Scope2(kwh float64) (float64, error) {
	if err := checkValue("electricity", "quantity", kwh); err != nil {
		return 0, err
	}
	total := kwh * c.factors.GridFactor
	if err := checkProduct(Scope2.String(), total); err != nil {
		return 0, err
	}
	return total, nil
}

// Scope3 computes value-chain emissions.
//
// Every category in the Scope 3 table yields one row, in table order,
// regardless of the order of entries. An entry's FactorOverride replaces the
// default factor for that category; otherwise the default is used. Categories
// without an entry produce a zero-quantity row at the default factor.
func (c *Calculator) Scope3(entries []Scope3Entry) ([]CategoryRow, float64, error) {
	byCategory := make(map[string]Scope3Entry, len(entries))
	for _, e := range entries {
		if !c.factors.Scope3.Has(e.Category) {
			return nil, 0, fmt.Errorf("%w: scope 3 category %q", ErrUnknownCategory, e.Category)
		}
		if _, dup := byCategory[e.Category]; dup {
			return nil, 0, fmt.Errorf("%w: scope 3 category %q supplied twice", ErrInvalidInput, e.Category)
		}
		if err := checkValue(e.Category, "quantity", e.Quantity); err != nil {
			return nil, 0, err
		}
		if e.FactorOverride != nil {
			if err := checkValue(e.Category, "factor", *e.FactorOverride); err != nil {
				return nil, 0, err
			}
		}
		byCategory[e.Category] = e
	}

	rows := make([]CategoryRow, 0, c.factors.Scope3.Len())
	total := 0.0
	for _, f := range c.factors.Scope3.entries {
		factor := f.Value
		qty := 0.0
		if e, ok := byCategory[f.Category]; ok {
			qty = e.Quantity
			if e.FactorOverride != nil {
				factor = *e.FactorOverride
			}
		}
		row := newCategoryRow(f.Category, qty, factor)
		if err := checkProduct(f.Category, row.emissions); err != nil {
			return nil, 0, err
		}
		rows = append(rows, row)
		total += row.emissions
	}
	if err := checkProduct(Scope3.String(), total); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
