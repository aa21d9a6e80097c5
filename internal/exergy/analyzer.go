package exergy

// ProcessInput describes one energy-conversion process to analyze.
type ProcessInput struct {
	// Source is the energy source name, resolved against the source
	// property table (unknown names degrade to defaults).
	Source string

	// InputEnergyMJ is the primary energy entering the process, in MJ.
	// Must be greater than 0.
	InputEnergyMJ float64

	// OutputTempK is the delivery temperature in Kelvin for heat end-uses.
	// Zero means not supplied.
	OutputTempK float64

	// EndUse classifies the delivered service. Zero value is Electricity.
	EndUse EndUse

	// Steps optionally decomposes the process for component-level
	// destruction accounting, in process order.
	Steps []ProcessStep
}

// Result holds the first- and second-law decomposition of one process.
// It is a value object: created per call, never mutated afterwards.
type Result struct {
	SourceKnown bool `json:"source_known"`

	InputEnergyMJ float64 `json:"input_energy_mj"`
	InputExergyMJ float64 `json:"input_exergy_mj"`

	UsefulEnergyMJ float64 `json:"useful_energy_mj"`
	UsefulExergyMJ float64 `json:"useful_exergy_mj"`

	// EnergyLossMJ = InputEnergyMJ - UsefulEnergyMJ. Energy is conserved;
	// the loss leaves as rejected heat.
	EnergyLossMJ float64 `json:"energy_loss_mj"`

	// ExergyDestructionMJ = InputExergyMJ - UsefulExergyMJ. Exergy is not
	// conserved; destruction is work potential irreversibly lost.
	ExergyDestructionMJ float64 `json:"exergy_destruction_mj"`

	FirstLawEfficiency  float64 `json:"first_law_efficiency"`
	SecondLawEfficiency float64 `json:"second_law_efficiency"`

	// DestructionRatio is the fraction of input exergy destroyed.
	DestructionRatio float64 `json:"exergy_destruction_ratio"`

	// ImprovementPotentialMJ is the recoverable work under ideal operation
	// (van Gool formulation: destruction scaled by the remaining
	// inefficiency).
	ImprovementPotentialMJ float64 `json:"improvement_potential_mj"`

	// PerfectionScore is SecondLawEfficiency on a 0-100 scale.
	PerfectionScore float64 `json:"thermodynamic_perfection"`

	// CarnotFactor is 1 - T0/T for the supplied output temperature.
	// Valid only when CarnotValid is set.
	CarnotFactor float64 `json:"carnot_factor"`
	CarnotValid  bool    `json:"carnot_valid"`

	// Components is the per-step destruction breakdown, present only when
	// the input carried process steps.
	Components []ComponentResult `json:"components,omitempty"`
}

// CarnotFactor returns the maximum fraction of heat at hotTempK convertible
// to work against a sink at coldTempK. A non-positive temperature
// differential yields 0, never a negative factor.
func CarnotFactor(hotTempK, coldTempK float64) float64 {
	if hotTempK <= coldTempK {
		return 0
	}
	return 1 - coldTempK/hotTempK
}

// HeatExergy returns the work potential of heatMJ delivered at tempK,
// relative to the reference environment. Heat at or below the reference
// temperature carries no exergy.
func HeatExergy(heatMJ, tempK float64) float64 {
	if tempK <= ReferenceTemperatureK {
		return 0
	}
	return heatMJ * CarnotFactor(tempK, ReferenceTemperatureK)
}

// Analyze performs the exergy accounting for a single process.
//
// The only rejected input is a non-positive energy quantity; every other
// input degrades gracefully (unknown sources resolve to defaults, missing
// temperatures fall back to the end-use quality value).
func Analyze(input ProcessInput) (Result, error) {
	if input.InputEnergyMJ <= 0 {
		return Result{}, ErrNonPositiveEnergy
	}

	props, known := ResolveSource(input.Source)

	// Fuels carry chemical exergy above their heating value; direct
	// conversion sources (and nuclear, by convention) enter at parity.
	inputExergy := input.InputEnergyMJ
	if props.Fuel {
		inputExergy = input.InputEnergyMJ * FuelExergyFactor
	}

	usefulEnergy := input.InputEnergyMJ * props.Efficiency

	var usefulExergy float64
	if input.EndUse.IsHeat() && input.OutputTempK > 0 {
		usefulExergy = HeatExergy(usefulEnergy, input.OutputTempK)
	} else {
		usefulExergy = usefulEnergy * input.EndUse.Quality()
	}

	energyLoss := input.InputEnergyMJ - usefulEnergy
	destruction := inputExergy - usefulExergy

	firstLaw := safeRatio(usefulEnergy, input.InputEnergyMJ)
	secondLaw := safeRatio(usefulExergy, inputExergy)
	destructionRatio := safeRatio(destruction, inputExergy)

	result := Result{
		SourceKnown:            known,
		InputEnergyMJ:          input.InputEnergyMJ,
		InputExergyMJ:          inputExergy,
		UsefulEnergyMJ:         usefulEnergy,
		UsefulExergyMJ:         usefulExergy,
		EnergyLossMJ:           energyLoss,
		ExergyDestructionMJ:    destruction,
		FirstLawEfficiency:     firstLaw,
		SecondLawEfficiency:    secondLaw,
		DestructionRatio:       destructionRatio,
		ImprovementPotentialMJ: destruction * (1 - secondLaw),
		PerfectionScore:        secondLaw * PerfectionScoreMultiplier,
	}

	if input.OutputTempK > 0 {
		result.CarnotFactor = CarnotFactor(input.OutputTempK, ReferenceTemperatureK)
		result.CarnotValid = true
	}

	if len(input.Steps) > 0 {
		result.Components = analyzeComponents(input.Steps)
	}

	return result, nil
}

// safeRatio divides a by b, returning 0 for a zero denominator.
func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
