package emissions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func floatPtr(v float64) *float64 { return &v }

func TestScope1(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())

	tests := []struct {
		name      string
		fuel      map[string]float64
		wantTotal float64
		wantErr   error
	}{
		{
			name:      "diesel only",
			fuel:      map[string]float64{FuelDiesel: 100},
			wantTotal: 268.0, // 100 * 2.68
		},
		{
			name:      "nil map is all zero",
			fuel:      nil,
			wantTotal: 0,
		},
		{
			name: "every fuel",
			fuel: map[string]float64{
				FuelDiesel:     10,
				FuelPetrol:     20,
				FuelFurnaceOil: 30,
				FuelLPG:        40,
				FuelNaturalGas: 50,
			},
			wantTotal: 10*2.68 + 20*2.31 + 30*3.10 + 40*2.95 + 50*1.93,
		},
		{
			name:    "negative quantity",
			fuel:    map[string]float64{FuelPetrol: -1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "NaN quantity",
			fuel:    map[string]float64{FuelLPG: math.NaN()},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown fuel",
			fuel:    map[string]float64{"Coal (t)": 5},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "overflow",
			fuel:    map[string]float64{FuelDiesel: math.MaxFloat64},
			wantErr: ErrCalculationOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total, err := calc.Scope1(tt.fuel)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			require.Len(t, rows, 5)
			assert.InDelta(t, tt.wantTotal, total, tolerance)
			assert.InDelta(t, SumEmissions(rows), total, tolerance)
			for _, r := range rows {
				assert.InDelta(t, r.Quantity()*r.Factor(), r.Emissions(), tolerance)
			}
		})
	}
}

func TestScope1_RowsFollowTableOrder(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())
	rows, _, err := calc.Scope1(map[string]float64{FuelNaturalGas: 1, FuelDiesel: 1})
	require.NoError(t, err)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Category()
	}
	assert.Equal(t, DefaultScope1Table().Categories(), got)
}

func TestScope1_DieselScenario(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())
	_, total, err := calc.Scope1(map[string]float64{FuelDiesel: 100})
	require.NoError(t, err)
	assert.InDelta(t, 268.00, Round2(total), tolerance)
}

func TestScope2(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())

	t.Run("zero", func(t *testing.T) {
		got, err := calc.Scope2(0)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("100000 kWh", func(t *testing.T) {
		got, err := calc.Scope2(100000)
		require.NoError(t, err)
		assert.InDelta(t, 82.00, Round2(got), tolerance)
	})

	t.Run("linear", func(t *testing.T) {
		for _, k := range []float64{1, 12.5, 4321, 1e7} {
			single, err := calc.Scope2(k)
			require.NoError(t, err)
			double, err := calc.Scope2(2 * k)
			require.NoError(t, err)
			assert.InDelta(t, 2*single, double, tolerance*math.Max(1, double))
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, err := calc.Scope2(-5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("infinite", func(t *testing.T) {
		_, err := calc.Scope2(math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestScope3(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())

	tests := []struct {
		name          string
		entries       []Scope3Entry
		wantWaste     float64
		wantFactor    float64
		wantTotal     float64
		wantErr       error
		wantErrString string
	}{
		{
			name:       "waste with default factor",
			entries:    []Scope3Entry{{Category: CatWaste, Quantity: 10}},
			wantWaste:  9.80,
			wantFactor: 0.98,
			wantTotal:  9.80,
		},
		{
			name:       "waste with override",
			entries:    []Scope3Entry{{Category: CatWaste, Quantity: 10, FactorOverride: floatPtr(1.5)}},
			wantWaste:  15.00,
			wantFactor: 1.5,
			wantTotal:  15.00,
		},
		{
			name:       "zero override is honoured",
			entries:    []Scope3Entry{{Category: CatWaste, Quantity: 10, FactorOverride: floatPtr(0)}},
			wantWaste:  0,
			wantFactor: 0,
			wantTotal:  0,
		},
		{
			name: "other categories contribute",
			entries: []Scope3Entry{
				{Category: CatCapitalGoods, Quantity: 2},
				{Category: CatWaste, Quantity: 1},
			},
			wantWaste:  0.98,
			wantFactor: 0.98,
			wantTotal:  2*2.40 + 0.98,
		},
		{
			name:    "unknown category",
			entries: []Scope3Entry{{Category: "Franchises", Quantity: 1}},
			wantErr: ErrUnknownCategory,
		},
		{
			name: "duplicate category",
			entries: []Scope3Entry{
				{Category: CatWaste, Quantity: 1},
				{Category: CatWaste, Quantity: 2},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative override",
			entries: []Scope3Entry{{Category: CatWaste, Quantity: 1, FactorOverride: floatPtr(-0.1)}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative quantity",
			entries: []Scope3Entry{{Category: CatEndOfLife, Quantity: -3}},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total, err := calc.Scope3(tt.entries)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			require.Len(t, rows, 8)
			assert.InDelta(t, tt.wantTotal, total, tolerance)

			waste := findRow(t, rows, CatWaste)
			assert.InDelta(t, tt.wantWaste, waste.Emissions(), tolerance)
			assert.InDelta(t, tt.wantFactor, waste.Factor(), tolerance)
		})
	}
}

func TestScope3_OverrideNeverBlends(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())
	rows, _, err := calc.Scope3([]Scope3Entry{
		{Category: CatBusinessTravel, Quantity: 1000, FactorOverride: floatPtr(0.0002)},
	})
	require.NoError(t, err)

	travel := findRow(t, rows, CatBusinessTravel)
	assert.Equal(t, 0.0002, travel.Factor())

	// Untouched categories keep their defaults.
	commute := findRow(t, rows, CatCommuting)
	assert.Equal(t, 0.00012, commute.Factor())
	assert.Zero(t, commute.Quantity())
}

func TestScope3_RowsFollowTableOrderRegardlessOfInput(t *testing.T) {
	calc := NewCalculator(DefaultFactorSet())
	rows, _, err := calc.Scope3([]Scope3Entry{
		{Category: CatEndOfLife, Quantity: 1},
		{Category: CatPurchasedGoods, Quantity: 1},
		{Category: CatWaste, Quantity: 1},
	})
	require.NoError(t, err)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Category()
	}
	assert.Equal(t, DefaultScope3Table().Categories(), got)
}

func TestCalculator_SubstituteFactorSet(t *testing.T) {
	set := FactorSet{
		Name:       "test",
		Version:    "1.0.0",
		Scope1:     MustFactorTable(Factor{"Coal (t)", 2.5}),
		GridFactor: 0.5,
		Scope3:     MustFactorTable(Factor{"Freight (t-km)", 0.1}),
	}
	require.NoError(t, set.Validate())
	calc := NewCalculator(set)

	rows, total, err := calc.Scope1(map[string]float64{"Coal (t)": 4})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 10.0, total, tolerance)

	// The default tables are untouched by the substitute set.
	_, _, err = calc.Scope1(map[string]float64{FuelDiesel: 1})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	s2, err := calc.Scope2(10)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, s2, tolerance)
}

func findRow(t *testing.T, rows []CategoryRow, category string) CategoryRow {
	t.Helper()
	for _, r := range rows {
		if r.Category() == category {
			return r
		}
	}
	t.Fatalf("row %q not found", category)
	return CategoryRow{}
}
