package tea

import "math"

// capexBreakdown computes the capital cost categories.
// Installation is the increment above equipment cost implied by the
// installation factor, so a factor of 1.0 adds nothing.
func capexBreakdown(a ProjectAssumptions) CapexBreakdown {
	capacityKW := a.CapacityMW * KWPerMW
	equipment := capacityKW * a.CapexPerKW
	return CapexBreakdown{
		Equipment:      equipment,
		Installation:   equipment * (a.InstallationFactor - 1),
		Land:           a.LandCost,
		GridConnection: a.GridConnectionCost,
	}
}

// opexBreakdown computes the year-1 operating cost categories.
func opexBreakdown(a ProjectAssumptions, annualProduction, totalCapex float64) OpexBreakdown {
	capacityKW := a.CapacityMW * KWPerMW
	return OpexBreakdown{
		CapacityBased: capacityKW * a.OpexPerKWYear,
		Fixed:         a.FixedOpexAnnual,
		Variable:      annualProduction * a.VariableOpexPerMWh,
		Insurance:     totalCapex * a.InsuranceRate,
	}
}

// annualRevenue returns the revenue for the given project year (1-based):
// escalated electricity sales plus carbon credits.
func annualRevenue(a ProjectAssumptions, annualProduction float64, year int) float64 {
	price := a.ElectricityPricePerMWh * math.Pow(1+a.PriceEscalationRate, float64(year-1))
	electricity := annualProduction * price
	carbon := annualProduction * a.CarbonIntensityAvoided * a.CarbonCreditPerTon
	return electricity + carbon
}

// escalatedOpex returns the operating cost for the given project year,
// escalating the year-1 figure at the fixed OpexEscalationRate.
func escalatedOpex(annualOpex float64, year int) float64 {
	return annualOpex * math.Pow(1+OpexEscalationRate, float64(year-1))
}

// cashFlows builds the year-indexed net cash-flow sequence.
// Entry 0 is the negative capital outlay; entries 1..N are revenue minus
// escalated operating cost. Length is always LifetimeYears+1.
func cashFlows(a ProjectAssumptions, totalCapex, annualOpex, annualProduction float64) []float64 {
	flows := make([]float64, 0, a.LifetimeYears+1)
	flows = append(flows, -totalCapex)
	for year := 1; year <= a.LifetimeYears; year++ {
		revenue := annualRevenue(a, annualProduction, year)
		flows = append(flows, revenue-escalatedOpex(annualOpex, year))
	}
	return flows
}
