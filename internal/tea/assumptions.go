package tea

// Unit conversion and convention constants.
const (
	// HoursPerYear is the production convention (leap years ignored).
	HoursPerYear = 8760

	// KWPerMW converts megawatts to kilowatts.
	KWPerMW = 1000.0

	// OpexEscalationRate is the fixed annual operating-cost escalation.
	OpexEscalationRate = 0.02
)

// Default assumption values for a generic clean-energy project.
const (
	DefaultCapacityFactor         = 0.25
	DefaultInstallationFactor     = 1.2
	DefaultInsuranceRate          = 0.01
	DefaultLifetimeYears          = 25
	DefaultDiscountRate           = 0.08
	DefaultDebtRatio              = 0.6
	DefaultInterestRate           = 0.05
	DefaultTaxRate                = 0.21
	DefaultDepreciationYears      = 20
	DefaultElectricityPricePerMWh = 50.0
	DefaultPriceEscalationRate    = 0.02
)

// ProjectAssumptions is the full input set for a techno-economic analysis.
//
// Zero values for fields whose default is non-zero (capacity factor,
// installation factor, lifetime, discount rate, ...) mean "not set" and are
// filled from the defaults before validation. Fields whose default is zero
// (land cost, carbon credit, ...) are taken as given.
type ProjectAssumptions struct {
	ProjectName    string `yaml:"project_name" json:"project_name"`
	TechnologyType string `yaml:"technology_type" json:"technology_type"`

	// Capacity and production.
	CapacityMW          float64 `yaml:"capacity_mw" json:"capacity_mw"`
	CapacityFactor      float64 `yaml:"capacity_factor" json:"capacity_factor"`
	AnnualProductionMWh float64 `yaml:"annual_production_mwh" json:"annual_production_mwh"` // override; 0 derives from capacity

	// Capital costs.
	CapexPerKW         float64 `yaml:"capex_per_kw" json:"capex_per_kw"`
	InstallationFactor float64 `yaml:"installation_factor" json:"installation_factor"`
	LandCost           float64 `yaml:"land_cost" json:"land_cost"`
	GridConnectionCost float64 `yaml:"grid_connection_cost" json:"grid_connection_cost"`

	// Operating costs.
	OpexPerKWYear      float64 `yaml:"opex_per_kw_year" json:"opex_per_kw_year"`
	FixedOpexAnnual    float64 `yaml:"fixed_opex_annual" json:"fixed_opex_annual"`
	VariableOpexPerMWh float64 `yaml:"variable_opex_per_mwh" json:"variable_opex_per_mwh"`
	InsuranceRate      float64 `yaml:"insurance_rate" json:"insurance_rate"`

	// Financial parameters.
	LifetimeYears     int     `yaml:"project_lifetime_years" json:"project_lifetime_years"`
	DiscountRate      float64 `yaml:"discount_rate" json:"discount_rate"`
	DebtRatio         float64 `yaml:"debt_ratio" json:"debt_ratio"`
	InterestRate      float64 `yaml:"interest_rate" json:"interest_rate"`
	TaxRate           float64 `yaml:"tax_rate" json:"tax_rate"`
	DepreciationYears int     `yaml:"depreciation_years" json:"depreciation_years"`

	// Revenue assumptions.
	ElectricityPricePerMWh float64 `yaml:"electricity_price_per_mwh" json:"electricity_price_per_mwh"`
	PriceEscalationRate    float64 `yaml:"price_escalation_rate" json:"price_escalation_rate"`
	CarbonCreditPerTon     float64 `yaml:"carbon_credit_per_ton" json:"carbon_credit_per_ton"`
	CarbonIntensityAvoided float64 `yaml:"carbon_intensity_avoided" json:"carbon_intensity_avoided"`
}

// DefaultAssumptions returns assumptions with every defaulted field
// populated. Loading a YAML file on top of this value gives file entries
// precedence with file-absent fields keeping their defaults.
func DefaultAssumptions() ProjectAssumptions {
	return ProjectAssumptions{
		ProjectName:            "Unnamed Project",
		TechnologyType:         "generic",
		CapacityFactor:         DefaultCapacityFactor,
		InstallationFactor:     DefaultInstallationFactor,
		InsuranceRate:          DefaultInsuranceRate,
		LifetimeYears:          DefaultLifetimeYears,
		DiscountRate:           DefaultDiscountRate,
		DebtRatio:              DefaultDebtRatio,
		InterestRate:           DefaultInterestRate,
		TaxRate:                DefaultTaxRate,
		DepreciationYears:      DefaultDepreciationYears,
		ElectricityPricePerMWh: DefaultElectricityPricePerMWh,
		PriceEscalationRate:    DefaultPriceEscalationRate,
	}
}

// withDefaults fills unset (zero) fields whose documented default is
// non-zero. Fields defaulting to zero pass through untouched.
func (a ProjectAssumptions) withDefaults() ProjectAssumptions {
	if a.ProjectName == "" {
		a.ProjectName = "Unnamed Project"
	}
	if a.TechnologyType == "" {
		a.TechnologyType = "generic"
	}
	if a.CapacityFactor == 0 {
		a.CapacityFactor = DefaultCapacityFactor
	}
	if a.InstallationFactor == 0 {
		a.InstallationFactor = DefaultInstallationFactor
	}
	if a.InsuranceRate == 0 {
		a.InsuranceRate = DefaultInsuranceRate
	}
	if a.LifetimeYears == 0 {
		a.LifetimeYears = DefaultLifetimeYears
	}
	if a.DiscountRate == 0 {
		a.DiscountRate = DefaultDiscountRate
	}
	if a.DebtRatio == 0 {
		a.DebtRatio = DefaultDebtRatio
	}
	if a.InterestRate == 0 {
		a.InterestRate = DefaultInterestRate
	}
	if a.TaxRate == 0 {
		a.TaxRate = DefaultTaxRate
	}
	if a.DepreciationYears == 0 {
		a.DepreciationYears = DefaultDepreciationYears
	}
	if a.ElectricityPricePerMWh == 0 {
		a.ElectricityPricePerMWh = DefaultElectricityPricePerMWh
	}
	if a.PriceEscalationRate == 0 {
		a.PriceEscalationRate = DefaultPriceEscalationRate
	}
	return a
}

// Validate checks the hard constraints on a defaulted assumption set.
// The first violation is returned as a *ValidationError naming the field.
func (a ProjectAssumptions) Validate() error {
	if a.CapacityMW <= 0 {
		return validationErr("capacity_mw", "must be greater than 0")
	}
	if a.CapexPerKW <= 0 {
		return validationErr("capex_per_kw", "must be greater than 0")
	}
	if a.CapacityFactor <= 0 || a.CapacityFactor > 1 {
		return validationErr("capacity_factor", "must be in (0, 1]")
	}
	if a.DiscountRate < 0 || a.DiscountRate > 1 {
		return validationErr("discount_rate", "must be between 0 and 1")
	}
	if a.LifetimeYears < 1 {
		return validationErr("project_lifetime_years", "must be at least 1")
	}
	if a.InstallationFactor < 1 {
		return validationErr("installation_factor", "must be at least 1")
	}
	return nil
}

// annualProduction returns the annual energy production in MWh, honoring an
// explicit override when present.
func (a ProjectAssumptions) annualProduction() float64 {
	if a.AnnualProductionMWh > 0 {
		return a.AnnualProductionMWh
	}
	return HoursPerYear * a.CapacityFactor * a.CapacityMW
}
