package emissions

import (
	"fmt"
	"strings"
)

// Factor pairs a category name with its emission factor.
type Factor struct {
	Category string  `yaml:"category" json:"category"`
	Value    float64 `yaml:"factor"   json:"factor"`
}

// FactorTable is an ordered, immutable mapping from category to factor.
// Iteration always follows the declared order.
type FactorTable struct {
	entries []Factor
	index   map[string]int
}

// NewFactorTable builds a table from factors in the given order.
// Empty or duplicate category names and negative or non-finite factors are
// rejected with ErrInvalidInput.
func NewFactorTable(factors ...Factor) (FactorTable, error) {
	t := FactorTable{
		entries: make([]Factor, 0, len(factors)),
		index:   make(map[string]int, len(factors)),
	}
	for _, f := range factors {
		name := strings.TrimSpace(f.Category)
		if name == "" {
			return FactorTable{}, fmt.Errorf("%w: empty category name", ErrInvalidInput)
		}
		if _, dup := t.index[name]; dup {
			return FactorTable{}, fmt.Errorf("%w: duplicate category %q", ErrInvalidInput, name)
		}
		if err := checkValue(name, "factor", f.Value); err != nil {
			return FactorTable{}, err
		}
		t.index[name] = len(t.entries)
		t.entries = append(t.entries, Factor{Category: name, Value: f.Value})
	}
	return t, nil
}

// MustFactorTable is NewFactorTable for static tables; it panics on error.
func MustFactorTable(factors ...Factor) FactorTable {
	t, err := NewFactorTable(factors...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the factor for category.
func (t FactorTable) Lookup(category string) (float64, bool) {
	i, ok := t.index[category]
	if !ok {
		return 0, false
	}
	return t.entries[i].Value, true
}

// Has reports whether category is in the table.
func (t FactorTable) Has(category string) bool {
	_, ok := t.index[category]
	return ok
}

// Categories returns the category names in declared order.
func (t FactorTable) Categories() []string {
	out := make([]string, len(t.entries))
	for i, f := range t.entries {
		out[i] = f.Category
	}
	return out
}

// Factors returns a copy of the table entries in declared order.
func (t FactorTable) Factors() []Factor {
	out := make([]Factor, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of categories.
func (t FactorTable) Len() int { return len(t.entries) }

// FactorSet bundles the factor data a Calculator needs.
type FactorSet struct {
	// Name identifies the factor source, e.g. "india-cea-defra".
	Name string

	// Version is the semantic version of the factor data.
	Version string

	// Scope1 holds fixed fuel combustion factors. Not user-overridable.
	Scope1 FactorTable

	// GridFactor is the electricity grid factor in tCO2e per kWh.
	GridFactor float64

	// Scope3 holds default value-chain factors. Entries may override them.
	Scope3 FactorTable
}

// Validate checks that the set is usable by a Calculator.
func (s FactorSet) Validate() error {
	if s.Scope1.Len() == 0 {
		return fmt.Errorf("%w: scope 1 factor table is empty", ErrInvalidInput)
	}
	if s.Scope3.Len() == 0 {
		return fmt.Errorf("%w: scope 3 factor table is empty", ErrInvalidInput)
	}
	if err := checkValue("grid", "factor", s.GridFactor); err != nil {
		return err
	}
	if s.GridFactor == 0 {
		return fmt.Errorf("%w: grid factor is missing or zero", ErrInvalidInput)
	}
	return nil
}

// DefaultScope1Table returns the India fuel-based Scope 1 factors.
func DefaultScope1Table() FactorTable {
	return MustFactorTable(
		Factor{FuelDiesel, 2.68},
		Factor{FuelPetrol, 2.31},
		Factor{FuelFurnaceOil, 3.10},
		Factor{FuelLPG, 2.95},
		Factor{FuelNaturalGas, 1.93},
	)
}

// DefaultScope3Table returns the DEFRA Scope 3 default factors.
func DefaultScope3Table() FactorTable {
	return MustFactorTable(
		Factor{CatPurchasedGoods, 1.95},
		Factor{CatCapitalGoods, 2.40},
		Factor{CatFuelEnergy, 0.000125},
		Factor{CatUpstreamTransport, 0.000055},
		Factor{CatWaste, 0.98},
		Factor{CatBusinessTravel, 0.00018},
		Factor{CatCommuting, 0.00012},
		Factor{CatEndOfLife, 1.15},
	)
}

// DefaultFactorSet returns the built-in India/CEA/DEFRA factor set.
func DefaultFactorSet() FactorSet {
	return FactorSet{
		Name:       DefaultFactorSetName,
		Version:    DefaultFactorSetVersion,
		Scope1:     DefaultScope1Table(),
		GridFactor: IndiaGridFactor,
		Scope3:     DefaultScope3Table(),
	}
}
