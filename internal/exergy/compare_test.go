package exergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	comparison := Compare([]Technology{
		{Name: "Solar Farm", Source: "solar", InputEnergyMJ: 1000},
		{Name: "Coal Plant", Source: "coal", InputEnergyMJ: 1000},
		{Name: "Wind Farm", Source: "wind", InputEnergyMJ: 1000},
	})

	require.Len(t, comparison.Rankings, 3)

	// Wind (0.88) > solar (0.85) > coal (~0.302).
	assert.Equal(t, "Wind Farm", comparison.Rankings[0].Name)
	assert.Equal(t, "Solar Farm", comparison.Rankings[1].Name)
	assert.Equal(t, "Coal Plant", comparison.Rankings[2].Name)
	assert.Equal(t, "Wind Farm", comparison.Best)

	for i := 1; i < len(comparison.Rankings); i++ {
		assert.GreaterOrEqual(t,
			comparison.Rankings[i-1].SecondLawEfficiency,
			comparison.Rankings[i].SecondLawEfficiency)
	}
}

func TestCompareTieBreakIsStable(t *testing.T) {
	// Identical sources tie exactly on second-law efficiency; the input
	// order must survive the sort.
	comparison := Compare([]Technology{
		{Name: "Site A", Source: "wind", InputEnergyMJ: 1000},
		{Name: "Site B", Source: "wind", InputEnergyMJ: 2000},
		{Name: "Site C", Source: "wind", InputEnergyMJ: 500},
	})

	require.Len(t, comparison.Rankings, 3)
	assert.Equal(t, "Site A", comparison.Rankings[0].Name)
	assert.Equal(t, "Site B", comparison.Rankings[1].Name)
	assert.Equal(t, "Site C", comparison.Rankings[2].Name)
	assert.Equal(t, "Site A", comparison.Best)
}

func TestCompareEdgeCases(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		comparison := Compare(nil)
		assert.Empty(t, comparison.Rankings)
		assert.Empty(t, comparison.Best)
	})

	t.Run("missing input energy defaults", func(t *testing.T) {
		comparison := Compare([]Technology{{Name: "Solar", Source: "solar"}})
		require.Len(t, comparison.Rankings, 1)
		// Efficiency is intensive, so the defaulted energy yields the
		// same figure as any explicit quantity.
		assert.InDelta(t, 0.85, comparison.Rankings[0].SecondLawEfficiency, 1e-9)
	})

	t.Run("unknown sources still rank", func(t *testing.T) {
		comparison := Compare([]Technology{
			{Name: "Mystery", Source: "anti-matter", InputEnergyMJ: 1000},
			{Name: "Solar", Source: "solar", InputEnergyMJ: 1000},
		})
		assert.Equal(t, "Solar", comparison.Best)
	})
}
