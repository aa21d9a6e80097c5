package tea

import "math"

// Root-finding parameters for the IRR solver chain.
const (
	// irrNPVTolerance is the residual at which a rate counts as a root.
	irrNPVTolerance = 1e-6

	// irrDerivativeFloor is the |dNPV/dr| below which Newton-Raphson is
	// considered stalled.
	irrDerivativeFloor = 1e-10

	// irrMaxIterations bounds the Newton-Raphson fallback.
	irrMaxIterations = 1000

	// irrBisectMaxIterations bounds the primary bisection solver.
	irrBisectMaxIterations = 200

	// irrBracketLow is just above -100%; an IRR at or below total loss of
	// capital is not meaningful.
	irrBracketLow = -0.999

	// irrBracketHigh caps the bracket expansion at 1,000,000% return.
	irrBracketHigh = 1e4

	// irrNewtonStart is the initial guess for the Newton-Raphson fallback.
	irrNewtonStart = 0.10
)

// NPVAt discounts the year-indexed cash-flow sequence at the given rate,
// including year 0.
func NPVAt(flows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// npvDerivative is dNPV/dr for the cash-flow sequence.
func npvDerivative(flows []float64, rate float64) float64 {
	var d float64
	for t, cf := range flows {
		d += -float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return d
}

// IRRSolution is the tagged result of the IRR solver chain. Rate is only
// meaningful when Converged is true; callers reporting a headline IRR for a
// non-convergent solve should treat it as "no real root", not a zero return.
type IRRSolution struct {
	Rate      float64
	Converged bool
}

// SolveIRR finds the discount rate at which the cash-flow sequence has zero
// net present value.
//
// Two-stage strategy: a bracketing bisection solver first, then bounded
// Newton-Raphson from irrNewtonStart when no sign change can be bracketed
// (all-positive or all-negative flow patterns, multiple-root pathologies).
// Non-finite intermediate results mark the solution non-convergent.
func SolveIRR(flows []float64) IRRSolution {
	if len(flows) == 0 {
		return IRRSolution{}
	}

	if sol, ok := bisectIRR(flows); ok {
		return sol
	}
	return newtonIRR(flows)
}

// bisectIRR brackets a sign change of NPV over the rate axis and bisects.
// Returns ok=false when no bracket exists within the search bounds.
func bisectIRR(flows []float64) (IRRSolution, bool) {
	lo, hi := irrBracketLow, 1.0
	npvLo := NPVAt(flows, lo)

	// Expand the upper bound geometrically until the sign flips.
	npvHi := NPVAt(flows, hi)
	for sameSign(npvLo, npvHi) {
		hi *= 2
		if hi > irrBracketHigh {
			return IRRSolution{}, false
		}
		npvHi = NPVAt(flows, hi)
	}

	for i := 0; i < irrBisectMaxIterations; i++ {
		mid := (lo + hi) / 2
		npvMid := NPVAt(flows, mid)

		if math.IsNaN(npvMid) || math.IsInf(npvMid, 0) {
			return IRRSolution{}, false
		}
		if math.Abs(npvMid) < irrNPVTolerance {
			return IRRSolution{Rate: mid, Converged: true}, true
		}

		if sameSign(npvLo, npvMid) {
			lo, npvLo = mid, npvMid
		} else {
			hi = mid
		}
	}

	// Interval collapsed without meeting the residual tolerance; the
	// midpoint is still a bracketed root to within the interval width.
	return IRRSolution{Rate: (lo + hi) / 2, Converged: true}, true
}

// newtonIRR is the bounded Newton-Raphson fallback. A stalled derivative or
// a non-finite iterate returns the last rate tagged non-convergent.
func newtonIRR(flows []float64) IRRSolution {
	rate := irrNewtonStart
	for i := 0; i < irrMaxIterations; i++ {
		npv := NPVAt(flows, rate)
		if math.Abs(npv) < irrNPVTolerance {
			return IRRSolution{Rate: rate, Converged: true}
		}

		deriv := npvDerivative(flows, rate)
		if math.Abs(deriv) < irrDerivativeFloor {
			return IRRSolution{Rate: rate}
		}

		rate -= npv / deriv
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return IRRSolution{}
		}
	}
	return IRRSolution{Rate: rate}
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

// lcoe computes the levelized cost of energy: total discounted cost over
// total discounted production. Capital applies undiscounted at t=0;
// operating cost escalates at the fixed rate and discounts at the project
// rate; production discounts at the same rate with no escalation.
//
// Zero discounted production reports +Inf, not an error.
func lcoe(a ProjectAssumptions, totalCapex, annualOpex, annualProduction float64) float64 {
	r := a.DiscountRate

	discountedCost := totalCapex
	var discountedProduction float64
	for t := 1; t <= a.LifetimeYears; t++ {
		factor := math.Pow(1+r, float64(t))
		discountedCost += escalatedOpex(annualOpex, t) / factor
		discountedProduction += annualProduction / factor
	}

	if discountedProduction == 0 {
		return math.Inf(1)
	}
	return discountedCost / discountedProduction
}

// payback returns the interpolated year at which cumulative cash flow first
// crosses zero. Projects that never recover their outlay within the
// lifetime report the lifetime itself as a "never pays back" sentinel.
func payback(flows []float64, lifetimeYears int) float64 {
	var cumulative float64
	for year, cf := range flows {
		cumulative += cf
		if cumulative >= 0 {
			if year > 0 && cf > 0 {
				// Linear interpolation within the crossing year.
				excess := cumulative
				return float64(year-1) + (cf-excess)/cf
			}
			return float64(year)
		}
	}
	return float64(lifetimeYears)
}

// lifetimeRevenueNPV discounts each year's revenue at the project rate.
func lifetimeRevenueNPV(a ProjectAssumptions, annualProduction float64) float64 {
	var total float64
	for t := 1; t <= a.LifetimeYears; t++ {
		total += annualRevenue(a, annualProduction, t) / math.Pow(1+a.DiscountRate, float64(t))
	}
	return total
}

// totalLifetimeCost is capital plus discounted escalating operating cost.
func totalLifetimeCost(a ProjectAssumptions, totalCapex, annualOpex float64) float64 {
	total := totalCapex
	for t := 1; t <= a.LifetimeYears; t++ {
		total += escalatedOpex(annualOpex, t) / math.Pow(1+a.DiscountRate, float64(t))
	}
	return total
}
