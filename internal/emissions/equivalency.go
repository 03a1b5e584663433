package emissions

import (
	"fmt"
	"math"
)

// EquivalencyType is a category of relatable carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds the equivalencies for one emissions total.
type EquivalencyOutput struct {
	InputKg     float64             `json:"input_kg"`
	Results     []EquivalencyResult `json:"results"`
	DisplayText string              `json:"display_text"`
	IsEmpty     bool                `json:"is_empty"`
}

// Equivalencies converts an emissions total in tCO2e into miles driven and
// smartphones charged using EPA factors.
//
// Totals below MinEquivalencyThresholdKg return an empty output and no error.
// Negative or non-finite totals return ErrInvalidInput.
func Equivalencies(tonnes float64) (EquivalencyOutput, error) {
	if err := checkValue("total", "emissions", tonnes); err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	kg := tonnes * TonnesToKg
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	milesFormatted := formatEquivalencyValue(miles)
	phonesFormatted := formatEquivalencyValue(phones)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesFormatted,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencySmartphonesCharged,
				Value:          phones,
				FormattedValue: phonesFormatted,
				Label:          "smartphones charged",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
	}, nil
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
