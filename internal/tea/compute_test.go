package tea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceAssumptions is a 100 MW solar project with round numbers.
func referenceAssumptions() ProjectAssumptions {
	return ProjectAssumptions{
		ProjectName:    "Test Solar Project",
		TechnologyType: "solar",
		CapacityMW:     100,
		CapacityFactor: 0.25,
		CapexPerKW:     1000,
		OpexPerKWYear:  20,
	}
}

func TestCompute(t *testing.T) {
	result, err := Compute(referenceAssumptions())
	require.NoError(t, err)

	// 8760 h * 0.25 * 100 MW.
	assert.InDelta(t, 219000, result.AnnualProductionMWh, 1e-6)
	assert.InDelta(t, 219000*25, result.LifetimeProductionMWh, 1e-6)

	// 100,000 kW * $1000/kW.
	assert.InDelta(t, 100_000_000, result.Capex.Equipment, 1e-6)
	// Installation factor 1.2 adds 20% of equipment.
	assert.InDelta(t, 20_000_000, result.Capex.Installation, 1e-6)
	assert.InDelta(t, 120_000_000, result.TotalCapex, 1e-6)

	// 100,000 kW * $20/kW-yr + insurance 1% of capex.
	assert.InDelta(t, 2_000_000, result.Opex.CapacityBased, 1e-6)
	assert.InDelta(t, 1_200_000, result.Opex.Insurance, 1e-6)
	assert.InDelta(t, 3_200_000, result.AnnualOpex, 1e-6)

	// Year-1 revenue: 219,000 MWh * $50/MWh, no carbon credits.
	assert.InDelta(t, 10_950_000, result.AnnualRevenue, 1e-6)

	assert.Greater(t, result.LCOE, 0.0)
	assert.Greater(t, result.LifetimeRevenueNPV, 0.0)
	assert.Greater(t, result.TotalLifetimeCost, result.TotalCapex)
}

func TestComputeCashFlowInvariants(t *testing.T) {
	for _, lifetime := range []int{1, 5, 25, 40} {
		a := referenceAssumptions()
		a.LifetimeYears = lifetime

		result, err := Compute(a)
		require.NoError(t, err)

		assert.Len(t, result.CashFlows, lifetime+1, "lifetime %d", lifetime)
		assert.Negative(t, result.CashFlows[0])
		assert.InDelta(t, -result.TotalCapex, result.CashFlows[0], 1e-9)
	}
}

func TestComputeSingleYearExact(t *testing.T) {
	// One-year project with a hand-computable LCOE:
	// (capex*(1+r) + opex) / production, with r = 0.08.
	a := referenceAssumptions()
	a.LifetimeYears = 1

	result, err := Compute(a)
	require.NoError(t, err)

	wantLCOE := (120_000_000*1.08 + 3_200_000) / 219_000
	assert.InDelta(t, wantLCOE, result.LCOE, 1e-6)

	// NPV = -capex + (revenue - opex)/1.08.
	wantNPV := -120_000_000 + (10_950_000-3_200_000)/1.08
	assert.InDelta(t, wantNPV, result.NPV, 1e-3)

	// Deeply unprofitable: IRR is the rate recovering 7.75M from 120M.
	require.True(t, result.IRRConverged)
	assert.InDelta(t, (7.75/120-1)*100, result.IRR, 1e-2)

	// Never crosses zero, so payback reports the lifetime sentinel.
	assert.InDelta(t, 1.0, result.PaybackYears, 1e-9)
}

func TestComputeLCOEMonotonicity(t *testing.T) {
	base, err := Compute(referenceAssumptions())
	require.NoError(t, err)

	t.Run("higher capex raises LCOE", func(t *testing.T) {
		a := referenceAssumptions()
		a.CapexPerKW = 1500
		result, err := Compute(a)
		require.NoError(t, err)
		assert.Greater(t, result.LCOE, base.LCOE)
	})

	t.Run("higher capacity factor lowers LCOE", func(t *testing.T) {
		a := referenceAssumptions()
		a.CapacityFactor = 0.35
		result, err := Compute(a)
		require.NoError(t, err)
		assert.Less(t, result.LCOE, base.LCOE)
	})
}

func TestComputeNonConvergentIRR(t *testing.T) {
	// Operating costs dwarf revenue, so every cash flow is negative and
	// no discount rate zeroes the NPV.
	a := referenceAssumptions()
	a.VariableOpexPerMWh = 1000

	result, err := Compute(a)
	require.NoError(t, err)

	assert.False(t, result.IRRConverged)
	assert.Zero(t, result.IRR)
	assert.InDelta(t, float64(a.LifetimeYears), result.PaybackYears, 1e-9)
	assert.Negative(t, result.NPV)
}

func TestComputeCarbonRevenue(t *testing.T) {
	a := referenceAssumptions()
	a.CarbonCreditPerTon = 30
	a.CarbonIntensityAvoided = 0.5

	result, err := Compute(a)
	require.NoError(t, err)

	// 219,000 MWh * 0.5 t/MWh * $30/t on top of electricity sales.
	assert.InDelta(t, 10_950_000+219_000*0.5*30, result.AnnualRevenue, 1e-6)
}

func TestComputeProductionOverride(t *testing.T) {
	a := referenceAssumptions()
	a.AnnualProductionMWh = 300_000

	result, err := Compute(a)
	require.NoError(t, err)

	assert.InDelta(t, 300_000, result.AnnualProductionMWh, 1e-9)
	// Variable opex follows the override.
	a.VariableOpexPerMWh = 2
	result, err = Compute(a)
	require.NoError(t, err)
	assert.InDelta(t, 600_000, result.Opex.Variable, 1e-6)
}

func TestComputeDeterminism(t *testing.T) {
	first, err := Compute(referenceAssumptions())
	require.NoError(t, err)
	second, err := Compute(referenceAssumptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
