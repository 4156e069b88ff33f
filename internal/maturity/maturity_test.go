package maturity

import (
	"testing"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStrategy(t *testing.T) {
	for _, mode := range domain.AggregationModes() {
		t.Run(string(mode), func(t *testing.T) {
			strategy, err := CreateStrategy(mode)
			require.NoError(t, err)
			assert.Equal(t, mode, strategy.Name())
		})
	}

	_, err := CreateStrategy("median")
	assert.Error(t, err)
}

func TestStrategies_SpreadComponents(t *testing.T) {
	cfg := &domain.SimulationConfig{
		InitialMaturity: 0.9,
		Components: domain.MaturityComponents{
			DiplomacySecurity:     0.2,
			PrimaryIndustryEnergy: 0.4,
			EducationWelfare:      0.6,
			CultureSpirit:         0.8,
		},
		Weights: domain.DefaultWeights(),
	}

	tests := []struct {
		mode    domain.AggregationMode
		index   float64
		harmony bool
	}{
		{domain.AggregationFixed, 0.9, false},
		{domain.AggregationWeighted, 0.46, true},
		{domain.AggregationMean, 0.5, true},
		{domain.AggregationMinimum, 0.2, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			strategy, err := CreateStrategy(tt.mode)
			require.NoError(t, err)

			reading := Read(strategy, cfg)
			assert.InDelta(t, tt.index, reading.Index, 1e-12)
			if tt.harmony {
				require.NotNil(t, reading.Harmony)
				assert.InDelta(t, 0.2, *reading.Harmony, 1e-12)
			} else {
				assert.Nil(t, reading.Harmony)
			}
		})
	}
}

func TestWeightedStrategy_NormalisesWeights(t *testing.T) {
	cfg := &domain.SimulationConfig{
		Components: domain.MaturityComponents{DiplomacySecurity: 1, PrimaryIndustryEnergy: 0, EducationWelfare: 0, CultureSpirit: 0},
		Weights:    domain.ComponentWeights{DiplomacySecurity: 3, PrimaryIndustryEnergy: 1, EducationWelfare: 0, CultureSpirit: 0},
	}
	assert.InDelta(t, 0.75, NewWeightedStrategy().Index(cfg), 1e-12)

	cfg.Weights = domain.ComponentWeights{}
	assert.Equal(t, 0.0, NewWeightedStrategy().Index(cfg))
}

func TestHarmony_IsMinimum(t *testing.T) {
	assert.Equal(t, 0.1, Harmony(domain.MaturityComponents{DiplomacySecurity: 0.9, PrimaryIndustryEnergy: 0.5, EducationWelfare: 0.1, CultureSpirit: 0.7}))
	assert.Equal(t, 0.5, Harmony(domain.UniformComponents(0.5)))
}
