package exergy

// ProcessStep is one named stage of a conversion chain with measured (or
// modeled) exergy flows at its boundary.
type ProcessStep struct {
	Name           string  `yaml:"name" json:"name"`
	InputExergyMJ  float64 `yaml:"input_exergy_mj" json:"input_exergy_mj"`
	OutputExergyMJ float64 `yaml:"output_exergy_mj" json:"output_exergy_mj"`
}

// ComponentResult attributes exergy destruction to one process step.
type ComponentResult struct {
	Name           string  `json:"name"`
	InputExergyMJ  float64 `json:"input_exergy_mj"`
	OutputExergyMJ float64 `json:"output_exergy_mj"`
	DestructionMJ  float64 `json:"exergy_destruction_mj"`

	// DestructionShare is this step's fraction of total destruction across
	// all steps. Shares sum to 1.0 whenever total destruction is non-zero.
	DestructionShare float64 `json:"destruction_share"`

	// Efficiency is the step's exergetic conversion ratio (output/input).
	Efficiency float64 `json:"efficiency"`
}

// analyzeComponents computes per-step destruction and each step's share of
// the total. Steps are returned in input order.
func analyzeComponents(steps []ProcessStep) []ComponentResult {
	components := make([]ComponentResult, 0, len(steps))

	var totalDestruction float64
	for _, step := range steps {
		destruction := step.InputExergyMJ - step.OutputExergyMJ
		totalDestruction += destruction
		components = append(components, ComponentResult{
			Name:           step.Name,
			InputExergyMJ:  step.InputExergyMJ,
			OutputExergyMJ: step.OutputExergyMJ,
			DestructionMJ:  destruction,
			Efficiency:     safeRatio(step.OutputExergyMJ, step.InputExergyMJ),
		})
	}

	// Zero total destruction leaves all shares at 0 rather than dividing.
	if totalDestruction != 0 {
		for i := range components {
			components[i].DestructionShare = components[i].DestructionMJ / totalDestruction
		}
	}

	return components
}
