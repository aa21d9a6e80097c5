package exergy

// ValueResult prices annual energy production in thermodynamic terms.
type ValueResult struct {
	AnnualProductionMWh float64 `json:"annual_production_mwh"`

	// NominalValue is production times unit price, the figure a
	// conventional revenue model would report.
	NominalValue float64 `json:"nominal_value"`

	// ExergyEfficiency is the second-law efficiency of the source at
	// electricity end-use.
	ExergyEfficiency float64 `json:"exergy_efficiency"`

	// ExergyAdjustedValue discounts the nominal value by the second-law
	// efficiency of delivery.
	ExergyAdjustedValue float64 `json:"exergy_adjusted_value"`

	// PremiumFactor is the class-level multiplier (clean 3.0, fossil 1.0,
	// mixed 1.5). It is a coarse bucket lookup, not derived from
	// ExergyEfficiency.
	PremiumFactor float64 `json:"premium_factor"`

	// TrueValue is the nominal value scaled by the premium factor.
	TrueValue float64 `json:"true_value"`
}

// Value computes the exergy-adjusted economic value of annual production
// from the named source at the given unit price ($/MWh).
//
// Non-positive production yields a zero-valued result with the source's
// efficiency and premium still populated.
func Value(annualProductionMWh float64, source string, pricePerMWh float64) ValueResult {
	props, _ := ResolveSource(source)
	premium := props.Class.PremiumFactor()

	if annualProductionMWh <= 0 {
		// Degenerate production still reports the source's intrinsic
		// efficiency so comparisons remain meaningful.
		result, _ := Analyze(ProcessInput{
			Source:        source,
			InputEnergyMJ: DefaultComparisonEnergyMJ,
			EndUse:        Electricity,
		})
		return ValueResult{
			ExergyEfficiency: result.SecondLawEfficiency,
			PremiumFactor:    premium,
		}
	}

	result, _ := Analyze(ProcessInput{
		Source:        source,
		InputEnergyMJ: annualProductionMWh * MJPerMWh,
		EndUse:        Electricity,
	})

	nominal := annualProductionMWh * pricePerMWh

	return ValueResult{
		AnnualProductionMWh: annualProductionMWh,
		NominalValue:        nominal,
		ExergyEfficiency:    result.SecondLawEfficiency,
		ExergyAdjustedValue: nominal * result.SecondLawEfficiency,
		PremiumFactor:       premium,
		TrueValue:           nominal * premium,
	}
}
