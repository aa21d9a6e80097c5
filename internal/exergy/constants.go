package exergy

// Reference environment conditions (dead state) for exergy accounting.
// All work-potential figures are relative to this environment.
const (
	// ReferenceTemperatureK is the dead-state temperature in Kelvin (25 C).
	ReferenceTemperatureK = 298.15

	// ReferencePressureKPa is the dead-state pressure in kilopascals.
	ReferencePressureKPa = 101.325
)

// FuelExergyFactor converts the lower heating value of a combustible fuel
// into chemical exergy. Fuel exergy runs 1.04-1.08x LHV depending on the
// fuel; 1.06 is the conventional mid-range value.
const FuelExergyFactor = 1.06

// Fallback factors for energy sources missing from the property table.
// Unknown sources degrade to these rather than failing.
const (
	// DefaultEfficiencyFactor is the primary-to-useful conversion efficiency
	// assumed for an unrecognized source.
	DefaultEfficiencyFactor = 0.30

	// DefaultQualityFactor is the service-level quality adjustment assumed
	// for an unrecognized source.
	DefaultQualityFactor = 0.50
)

// MJPerMWh converts megawatt-hours to megajoules.
const MJPerMWh = 3600.0

// Exergy premium multipliers by source class, used for economic valuation.
// The premium is a class-level lookup, independent of the per-process
// second-law efficiency computed by Analyze.
const (
	// CleanPremiumFactor applies to solar, wind, hydro, nuclear, geothermal.
	CleanPremiumFactor = 3.0

	// FossilPremiumFactor applies to coal, oil, gas.
	FossilPremiumFactor = 1.0

	// MixedPremiumFactor applies to every other source.
	MixedPremiumFactor = 1.5
)

// PerfectionScoreMultiplier scales second-law efficiency to a 0-100 score.
const PerfectionScoreMultiplier = 100.0
