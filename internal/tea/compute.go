package tea

// Compute runs the full techno-economic analysis for one assumption set.
//
// Missing (zero) fields are merged with the documented defaults first, then
// the hard constraints are validated; a *ValidationError naming the
// offending field is returned before any computation. The calculation
// itself is pure and deterministic, so concurrent callers need no
// synchronization.
func Compute(assumptions ProjectAssumptions) (FinancialResult, error) {
	a := assumptions.withDefaults()
	if err := a.Validate(); err != nil {
		return FinancialResult{}, err
	}

	production := a.annualProduction()
	lifetimeProduction := production * float64(a.LifetimeYears)

	capex := capexBreakdown(a)
	totalCapex := capex.Total()

	opex := opexBreakdown(a, production, totalCapex)
	annualOpex := opex.Total()

	flows := cashFlows(a, totalCapex, annualOpex, production)

	irr := SolveIRR(flows)
	irrPercent := 0.0
	if irr.Converged {
		irrPercent = irr.Rate * 100
	}

	return FinancialResult{
		LCOE:         lcoe(a, totalCapex, annualOpex, production),
		NPV:          NPVAt(flows, a.DiscountRate),
		IRR:          irrPercent,
		IRRConverged: irr.Converged,
		PaybackYears: payback(flows, a.LifetimeYears),

		TotalCapex:        totalCapex,
		AnnualOpex:        annualOpex,
		TotalLifetimeCost: totalLifetimeCost(a, totalCapex, annualOpex),

		AnnualProductionMWh:   production,
		LifetimeProductionMWh: lifetimeProduction,

		AnnualRevenue:      annualRevenue(a, production, 1),
		LifetimeRevenueNPV: lifetimeRevenueNPV(a, production),

		Capex:       capex,
		Opex:        opex,
		CashFlows:   flows,
		Assumptions: a,
	}, nil
}
