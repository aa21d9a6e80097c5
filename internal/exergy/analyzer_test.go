package exergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name             string
		input            ProcessInput
		wantInputExergy  float64
		wantUsefulEnergy float64
		wantUsefulExergy float64
		wantFirstLaw     float64
		wantSecondLaw    float64
		wantKnown        bool
	}{
		{
			name:             "solar to electricity",
			input:            ProcessInput{Source: "solar", InputEnergyMJ: 1000, EndUse: Electricity},
			wantInputExergy:  1000, // renewables enter at parity
			wantUsefulEnergy: 850,
			wantUsefulExergy: 850,
			wantFirstLaw:     0.85,
			wantSecondLaw:    0.85,
			wantKnown:        true,
		},
		{
			name:             "coal to electricity carries fuel exergy factor",
			input:            ProcessInput{Source: "coal", InputEnergyMJ: 1000, EndUse: Electricity},
			wantInputExergy:  1060,
			wantUsefulEnergy: 320,
			wantUsefulExergy: 320,
			wantFirstLaw:     0.32,
			wantSecondLaw:    320.0 / 1060.0,
			wantKnown:        true,
		},
		{
			name:             "wind to electricity",
			input:            ProcessInput{Source: "wind", InputEnergyMJ: 500, EndUse: Electricity},
			wantInputExergy:  500,
			wantUsefulEnergy: 440,
			wantUsefulExergy: 440,
			wantFirstLaw:     0.88,
			wantSecondLaw:    0.88,
			wantKnown:        true,
		},
		{
			name:             "unknown source degrades to generic factors",
			input:            ProcessInput{Source: "fusion", InputEnergyMJ: 1000, EndUse: Electricity},
			wantInputExergy:  1000,
			wantUsefulEnergy: 300,
			wantUsefulExergy: 300,
			wantFirstLaw:     0.30,
			wantSecondLaw:    0.30,
			wantKnown:        false,
		},
		{
			name:             "source names match case-insensitively",
			input:            ProcessInput{Source: "  Solar ", InputEnergyMJ: 1000, EndUse: Electricity},
			wantInputExergy:  1000,
			wantUsefulEnergy: 850,
			wantUsefulExergy: 850,
			wantFirstLaw:     0.85,
			wantSecondLaw:    0.85,
			wantKnown:        true,
		},
		{
			name:             "chemical end use scales by quality",
			input:            ProcessInput{Source: "gas", InputEnergyMJ: 1000, EndUse: Chemical},
			wantInputExergy:  1060,
			wantUsefulEnergy: 520,
			wantUsefulExergy: 468, // 520 * 0.9
			wantFirstLaw:     0.52,
			wantSecondLaw:    468.0 / 1060.0,
			wantKnown:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Analyze(tt.input)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantInputExergy, result.InputExergyMJ, 1e-9)
			assert.InDelta(t, tt.wantUsefulEnergy, result.UsefulEnergyMJ, 1e-9)
			assert.InDelta(t, tt.wantUsefulExergy, result.UsefulExergyMJ, 1e-9)
			assert.InDelta(t, tt.wantFirstLaw, result.FirstLawEfficiency, 1e-9)
			assert.InDelta(t, tt.wantSecondLaw, result.SecondLawEfficiency, 1e-9)
			assert.Equal(t, tt.wantKnown, result.SourceKnown)

			// Accounting identities hold exactly for every input.
			assert.Equal(t, result.InputEnergyMJ-result.UsefulEnergyMJ, result.EnergyLossMJ)
			assert.Equal(t, result.InputExergyMJ-result.UsefulExergyMJ, result.ExergyDestructionMJ)
			assert.GreaterOrEqual(t, result.UsefulExergyMJ, 0.0)
			assert.GreaterOrEqual(t, result.ExergyDestructionMJ, 0.0)
			assert.InDelta(t, result.SecondLawEfficiency*100, result.PerfectionScore, 1e-9)
		})
	}
}

func TestAnalyzeCoalDestruction(t *testing.T) {
	result, err := Analyze(ProcessInput{Source: "coal", InputEnergyMJ: 1000, EndUse: Electricity})
	require.NoError(t, err)

	assert.InDelta(t, 740.0, result.ExergyDestructionMJ, 1e-9)
	assert.InDelta(t, 0.302, result.SecondLawEfficiency, 1e-3)
	assert.InDelta(t, 740.0/1060.0, result.DestructionRatio, 1e-9)
	assert.InDelta(t, 740.0*(1-320.0/1060.0), result.ImprovementPotentialMJ, 1e-9)
}

func TestAnalyzeHeatEndUse(t *testing.T) {
	t.Run("output temperature drives useful exergy", func(t *testing.T) {
		result, err := Analyze(ProcessInput{
			Source:        "gas",
			InputEnergyMJ: 1000,
			EndUse:        HighTempHeat,
			OutputTempK:   1000,
		})
		require.NoError(t, err)

		carnot := 1 - ReferenceTemperatureK/1000
		assert.InDelta(t, 520*carnot, result.UsefulExergyMJ, 1e-9)
		require.True(t, result.CarnotValid)
		assert.InDelta(t, carnot, result.CarnotFactor, 1e-9)
	})

	t.Run("heat at reference temperature carries no exergy", func(t *testing.T) {
		result, err := Analyze(ProcessInput{
			Source:        "gas",
			InputEnergyMJ: 1000,
			EndUse:        LowTempHeat,
			OutputTempK:   ReferenceTemperatureK,
		})
		require.NoError(t, err)

		assert.Zero(t, result.UsefulExergyMJ)
		require.True(t, result.CarnotValid)
		assert.Zero(t, result.CarnotFactor)
	})

	t.Run("heat end use without temperature falls back to quality value", func(t *testing.T) {
		result, err := Analyze(ProcessInput{
			Source:        "gas",
			InputEnergyMJ: 1000,
			EndUse:        MediumTempHeat,
		})
		require.NoError(t, err)

		assert.InDelta(t, 520*0.4, result.UsefulExergyMJ, 1e-9)
		assert.False(t, result.CarnotValid)
	})

	t.Run("temperature on non-heat end use still reports carnot", func(t *testing.T) {
		result, err := Analyze(ProcessInput{
			Source:        "solar",
			InputEnergyMJ: 1000,
			EndUse:        Electricity,
			OutputTempK:   1000,
		})
		require.NoError(t, err)

		// Electricity exergy ignores temperature; the Carnot factor is
		// informational only.
		assert.InDelta(t, 850, result.UsefulExergyMJ, 1e-9)
		require.True(t, result.CarnotValid)
		assert.InDelta(t, 0.70185, result.CarnotFactor, 1e-5)
	})
}

func TestAnalyzeRejectsNonPositiveEnergy(t *testing.T) {
	for _, energy := range []float64{0, -1, -1000} {
		_, err := Analyze(ProcessInput{Source: "solar", InputEnergyMJ: energy})
		assert.ErrorIs(t, err, ErrNonPositiveEnergy)
	}
}

func TestCarnotFactor(t *testing.T) {
	tests := []struct {
		name string
		hot  float64
		cold float64
		want float64
	}{
		{"1000K against reference", 1000, ReferenceTemperatureK, 0.70185},
		{"equal temperatures clamp to zero", ReferenceTemperatureK, ReferenceTemperatureK, 0},
		{"inverted differential clamps to zero", 200, ReferenceTemperatureK, 0},
		{"600K against reference", 600, ReferenceTemperatureK, 1 - ReferenceTemperatureK/600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CarnotFactor(tt.hot, tt.cold), 1e-5)
		})
	}
}

func TestHeatExergy(t *testing.T) {
	assert.Zero(t, HeatExergy(100, ReferenceTemperatureK))
	assert.Zero(t, HeatExergy(100, 200))
	assert.InDelta(t, 100*(1-ReferenceTemperatureK/500), HeatExergy(100, 500), 1e-9)
}

func TestResolveSource(t *testing.T) {
	props, known := ResolveSource("coal")
	require.True(t, known)
	assert.True(t, props.Fuel)
	assert.Equal(t, ClassFossil, props.Class)

	props, known = ResolveSource("no-such-source")
	assert.False(t, known)
	assert.InDelta(t, DefaultEfficiencyFactor, props.Efficiency, 1e-9)
	assert.InDelta(t, DefaultQualityFactor, props.Quality, 1e-9)
	assert.False(t, props.Fuel)
	assert.Equal(t, ClassMixed, props.Class)
}
