package tea

// CapexBreakdown splits total capital cost by category.
type CapexBreakdown struct {
	Equipment      float64 `json:"equipment"`
	Installation   float64 `json:"installation"`
	Land           float64 `json:"land"`
	GridConnection float64 `json:"grid_connection"`
}

// Total returns the summed capital cost.
func (b CapexBreakdown) Total() float64 {
	return b.Equipment + b.Installation + b.Land + b.GridConnection
}

// OpexBreakdown splits annual operating cost by category.
type OpexBreakdown struct {
	CapacityBased float64 `json:"capacity_based"`
	Fixed         float64 `json:"fixed"`
	Variable      float64 `json:"variable"`
	Insurance     float64 `json:"insurance"`
}

// Total returns the summed annual operating cost.
func (b OpexBreakdown) Total() float64 {
	return b.CapacityBased + b.Fixed + b.Variable + b.Insurance
}

// FinancialResult is the full output of a techno-economic analysis.
// It is a value object: computed once, never mutated.
type FinancialResult struct {
	// LCOE is the levelized cost of energy in $/MWh. +Inf when discounted
	// production is zero.
	LCOE float64 `json:"lcoe"`

	// NPV is the net present value in dollars.
	NPV float64 `json:"npv"`

	// IRR is the internal rate of return as a percentage. A value of 0
	// with IRRConverged=false means the solver found no real root, not a
	// computed zero return.
	IRR          float64 `json:"irr"`
	IRRConverged bool    `json:"irr_converged"`

	// PaybackYears is the interpolated payback period. Equal to the
	// project lifetime when the project never pays back within it.
	PaybackYears float64 `json:"payback_years"`

	TotalCapex        float64 `json:"total_capex"`
	AnnualOpex        float64 `json:"annual_opex"`
	TotalLifetimeCost float64 `json:"total_lifetime_cost"` // discounted

	AnnualProductionMWh   float64 `json:"annual_production_mwh"`
	LifetimeProductionMWh float64 `json:"lifetime_production_mwh"`

	AnnualRevenue      float64 `json:"annual_revenue"` // year 1
	LifetimeRevenueNPV float64 `json:"lifetime_revenue_npv"`

	Capex CapexBreakdown `json:"capex_breakdown"`
	Opex  OpexBreakdown  `json:"opex_breakdown"`

	// CashFlows is year-indexed with length LifetimeYears+1; entry 0 is
	// the negative capital outlay.
	CashFlows []float64 `json:"cash_flows"`

	// Assumptions is the defaulted input set the result was computed from.
	Assumptions ProjectAssumptions `json:"assumptions"`
}
