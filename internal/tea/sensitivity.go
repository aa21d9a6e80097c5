package tea

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// sensitivityParams maps sweepable parameter names (the YAML field names) to
// accessors. Integer-valued fields (lifetime, depreciation) are not
// sweepable: a percentage scale of a year count is not meaningful.
var sensitivityParams = map[string]func(*ProjectAssumptions) *float64{
	"capacity_mw":               func(a *ProjectAssumptions) *float64 { return &a.CapacityMW },
	"capacity_factor":           func(a *ProjectAssumptions) *float64 { return &a.CapacityFactor },
	"annual_production_mwh":     func(a *ProjectAssumptions) *float64 { return &a.AnnualProductionMWh },
	"capex_per_kw":              func(a *ProjectAssumptions) *float64 { return &a.CapexPerKW },
	"installation_factor":       func(a *ProjectAssumptions) *float64 { return &a.InstallationFactor },
	"land_cost":                 func(a *ProjectAssumptions) *float64 { return &a.LandCost },
	"grid_connection_cost":      func(a *ProjectAssumptions) *float64 { return &a.GridConnectionCost },
	"opex_per_kw_year":          func(a *ProjectAssumptions) *float64 { return &a.OpexPerKWYear },
	"fixed_opex_annual":         func(a *ProjectAssumptions) *float64 { return &a.FixedOpexAnnual },
	"variable_opex_per_mwh":     func(a *ProjectAssumptions) *float64 { return &a.VariableOpexPerMWh },
	"insurance_rate":            func(a *ProjectAssumptions) *float64 { return &a.InsuranceRate },
	"discount_rate":             func(a *ProjectAssumptions) *float64 { return &a.DiscountRate },
	"debt_ratio":                func(a *ProjectAssumptions) *float64 { return &a.DebtRatio },
	"interest_rate":             func(a *ProjectAssumptions) *float64 { return &a.InterestRate },
	"tax_rate":                  func(a *ProjectAssumptions) *float64 { return &a.TaxRate },
	"electricity_price_per_mwh": func(a *ProjectAssumptions) *float64 { return &a.ElectricityPricePerMWh },
	"price_escalation_rate":     func(a *ProjectAssumptions) *float64 { return &a.PriceEscalationRate },
	"carbon_credit_per_ton":     func(a *ProjectAssumptions) *float64 { return &a.CarbonCreditPerTon },
	"carbon_intensity_avoided":  func(a *ProjectAssumptions) *float64 { return &a.CarbonIntensityAvoided },
}

// SensitivityParameters returns the sweepable parameter names, for CLI help
// and error messages. Order is unspecified.
func SensitivityParameters() []string {
	names := make([]string, 0, len(sensitivityParams))
	for name := range sensitivityParams {
		names = append(names, name)
	}
	return names
}

// SensitivityResult carries parallel arrays: LCOE[i] and NPV[i] are the
// metrics with the swept parameter scaled by (1 + Variations[i]/100).
type SensitivityResult struct {
	Parameter  string    `json:"parameter"`
	Variations []float64 `json:"variations"`
	LCOE       []float64 `json:"lcoe"`
	NPV        []float64 `json:"npv"`
}

// RunSensitivity re-runs the full calculation once per variation with the
// named parameter scaled from its defaulted base value, all else fixed.
//
// Variations are independent full recomputations with no shared state, so
// they run concurrently (bounded by NumCPU) and are collected in input
// order. A variation that produces invalid assumptions (e.g. -100% on
// capacity) fails the whole sweep with that variation's validation error.
func RunSensitivity(
	ctx context.Context,
	assumptions ProjectAssumptions,
	parameter string,
	variations []float64,
) (SensitivityResult, error) {
	accessor, ok := sensitivityParams[parameter]
	if !ok {
		return SensitivityResult{}, fmt.Errorf("%w: %q", ErrUnknownParameter, parameter)
	}
	if len(variations) == 0 {
		return SensitivityResult{}, ErrNoVariations
	}

	// Defaults merge first so variations scale the effective base value.
	base := assumptions.withDefaults()
	if err := base.Validate(); err != nil {
		return SensitivityResult{}, err
	}
	baseValue := *accessor(&base)

	result := SensitivityResult{
		Parameter:  parameter,
		Variations: variations,
		LCOE:       make([]float64, len(variations)),
		NPV:        make([]float64, len(variations)),
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, pct := range variations {
		i, pct := i, pct
		g.Go(func() error {
			scaled := base
			*accessor(&scaled) = baseValue * (1 + pct/100)

			r, err := Compute(scaled)
			if err != nil {
				return fmt.Errorf("variation %+.1f%%: %w", pct, err)
			}
			result.LCOE[i] = r.LCOE
			result.NPV[i] = r.NPV
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SensitivityResult{}, err
	}
	return result, nil
}
