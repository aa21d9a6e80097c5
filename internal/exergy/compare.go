package exergy

import "sort"

// DefaultComparisonEnergyMJ is the nominal input energy used for technology
// entries that do not specify one, so efficiencies stay comparable.
const DefaultComparisonEnergyMJ = 1000.0

// Technology identifies one entrant in a cross-technology comparison.
type Technology struct {
	Name          string  `yaml:"name" json:"name"`
	Source        string  `yaml:"source" json:"source"`
	InputEnergyMJ float64 `yaml:"input_energy_mj" json:"input_energy_mj"`
}

// TechnologySummary is one ranked row of a comparison.
type TechnologySummary struct {
	Name                string  `json:"technology"`
	Source              string  `json:"source"`
	FirstLawEfficiency  float64 `json:"first_law_efficiency"`
	SecondLawEfficiency float64 `json:"second_law_efficiency"`
	DestructionRatio    float64 `json:"exergy_destruction_ratio"`
	PerfectionScore     float64 `json:"thermodynamic_perfection"`
}

// Comparison ranks technologies by thermodynamic merit.
type Comparison struct {
	// Rankings is ordered by second-law efficiency, best first. Ties keep
	// their input order, so repeated runs over the same list produce the
	// same ranking.
	Rankings []TechnologySummary `json:"comparison"`

	// Best is the name of the top-ranked technology, empty for an empty
	// comparison.
	Best string `json:"best_technology"`
}

// Compare analyzes each technology independently at electricity end-use and
// ranks by second-law efficiency descending.
//
// Entries with a non-positive input energy are analyzed at
// DefaultComparisonEnergyMJ; since both efficiencies are intensive this only
// matters for degenerate inputs, never for the ranking itself.
func Compare(technologies []Technology) Comparison {
	rankings := make([]TechnologySummary, 0, len(technologies))

	for _, tech := range technologies {
		energy := tech.InputEnergyMJ
		if energy <= 0 {
			energy = DefaultComparisonEnergyMJ
		}

		// Analyze cannot fail here: energy is forced positive above.
		result, _ := Analyze(ProcessInput{
			Source:        tech.Source,
			InputEnergyMJ: energy,
			EndUse:        Electricity,
		})

		rankings = append(rankings, TechnologySummary{
			Name:                tech.Name,
			Source:              tech.Source,
			FirstLawEfficiency:  result.FirstLawEfficiency,
			SecondLawEfficiency: result.SecondLawEfficiency,
			DestructionRatio:    result.DestructionRatio,
			PerfectionScore:     result.PerfectionScore,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SecondLawEfficiency > rankings[j].SecondLawEfficiency
	})

	comparison := Comparison{Rankings: rankings}
	if len(rankings) > 0 {
		comparison.Best = rankings[0].Name
	}
	return comparison
}
