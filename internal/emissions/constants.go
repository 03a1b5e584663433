package emissions

// Scope 1 fuel categories (India fuel-based factors, tCO2e per unit).
const (
	FuelDiesel     = "Diesel (litres)"
	FuelPetrol     = "Petrol (litres)"
	FuelFurnaceOil = "Furnace Oil (litres)"
	FuelLPG        = "LPG (kg)"
	FuelNaturalGas = "Natural Gas (scm)"
)

// IndiaGridFactor is the CEA national grid emission factor in tCO2e per kWh.
const IndiaGridFactor = 0.00082

// Scope 3 value-chain categories (DEFRA default factors, tCO2e per unit).
const (
	CatPurchasedGoods    = "Purchased Goods & Services (₹ lakh)"
	CatCapitalGoods      = "Capital Goods (₹ lakh)"
	CatFuelEnergy        = "Fuel & Energy-Related Activities (GJ)"
	CatUpstreamTransport = "Upstream T&D (t-km)"
	CatWaste             = "Waste Generated (t)"
	CatBusinessTravel    = "Business Travel (passenger-km)"
	CatCommuting         = "Employee Commuting (passenger-km)"
	CatEndOfLife         = "End-of-Life Treatment (t)"
)

// DefaultFactorSetName and DefaultFactorSetVersion identify the built-in tables.
const (
	DefaultFactorSetName    = "india-cea-defra"
	DefaultFactorSetVersion = "1.0.0"
)

// EPA equivalency factors (2024 edition), in kg CO2e per unit of activity.
// equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// TonnesToKg converts metric tonnes to kilograms.
const TonnesToKg = 1000.0

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest kg CO2e value worth an equivalency line.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)

// DisplayPrecision is the number of decimals used for emission totals.
const DisplayPrecision = 2
