package exergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentBreakdown(t *testing.T) {
	result, err := Analyze(ProcessInput{
		Source:        "coal",
		InputEnergyMJ: 1000,
		EndUse:        Electricity,
		Steps: []ProcessStep{
			{Name: "boiler", InputExergyMJ: 1000, OutputExergyMJ: 550},
			{Name: "turbine", InputExergyMJ: 550, OutputExergyMJ: 400},
			{Name: "generator", InputExergyMJ: 400, OutputExergyMJ: 380},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Components, 3)

	// Input order is preserved.
	assert.Equal(t, "boiler", result.Components[0].Name)
	assert.Equal(t, "turbine", result.Components[1].Name)
	assert.Equal(t, "generator", result.Components[2].Name)

	assert.InDelta(t, 450, result.Components[0].DestructionMJ, 1e-9)
	assert.InDelta(t, 150, result.Components[1].DestructionMJ, 1e-9)
	assert.InDelta(t, 20, result.Components[2].DestructionMJ, 1e-9)

	// Shares sum to 1 and attribute destruction proportionally.
	var shareSum float64
	for _, c := range result.Components {
		shareSum += c.DestructionShare
	}
	assert.InDelta(t, 1.0, shareSum, 1e-6)
	assert.InDelta(t, 450.0/620.0, result.Components[0].DestructionShare, 1e-9)

	assert.InDelta(t, 0.55, result.Components[0].Efficiency, 1e-9)
	assert.InDelta(t, 400.0/550.0, result.Components[1].Efficiency, 1e-9)
}

func TestComponentBreakdownEdgeCases(t *testing.T) {
	t.Run("no steps yields no components", func(t *testing.T) {
		result, err := Analyze(ProcessInput{Source: "solar", InputEnergyMJ: 100})
		require.NoError(t, err)
		assert.Empty(t, result.Components)
	})

	t.Run("zero total destruction leaves shares at zero", func(t *testing.T) {
		components := analyzeComponents([]ProcessStep{
			{Name: "ideal", InputExergyMJ: 100, OutputExergyMJ: 100},
			{Name: "also ideal", InputExergyMJ: 50, OutputExergyMJ: 50},
		})
		require.Len(t, components, 2)
		for _, c := range components {
			assert.Zero(t, c.DestructionShare)
			assert.Zero(t, c.DestructionMJ)
		}
	})

	t.Run("zero input exergy guards efficiency", func(t *testing.T) {
		components := analyzeComponents([]ProcessStep{
			{Name: "dead", InputExergyMJ: 0, OutputExergyMJ: 0},
			{Name: "live", InputExergyMJ: 100, OutputExergyMJ: 60},
		})
		assert.Zero(t, components[0].Efficiency)
		assert.InDelta(t, 1.0, components[1].DestructionShare, 1e-9)
	})
}
