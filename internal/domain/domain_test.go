package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		InitialResource:    100,
		InitialDesire:      80,
		InitialMaturity:    0.5,
		Components:         UniformComponents(0.5),
		Weights:            DefaultWeights(),
		DesireGrowthRate:   1.0,
		ResourceGrowthRate: 0.5,
		HorizonYears:       20,
		Aggregation:        AggregationWeighted,
		VerdictPolicy:      "three-band",
	}
}

func TestSimulationConfig_Validate_Valid(t *testing.T) {
	for _, mode := range AggregationModes() {
		t.Run(string(mode), func(t *testing.T) {
			cfg := validConfig()
			cfg.Aggregation = mode
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestSimulationConfig_Validate_ZeroRatesAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.DesireGrowthRate = 0
	cfg.ResourceGrowthRate = 0
	assert.NoError(t, cfg.Validate())
}

func TestSimulationConfig_Validate_Rejections(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(*SimulationConfig)
		field  string
	}{
		{"zero horizon", func(c *SimulationConfig) { c.HorizonYears = 0 }, "horizon_years"},
		{"negative horizon", func(c *SimulationConfig) { c.HorizonYears = -3 }, "horizon_years"},
		{"horizon above ceiling", func(c *SimulationConfig) { c.HorizonYears = MaxHorizonYears + 1 }, "horizon_years"},
		{"unknown aggregation", func(c *SimulationConfig) { c.Aggregation = "median" }, "maturity_aggregation"},
		{"NaN resource", func(c *SimulationConfig) { c.InitialResource = math.NaN() }, "initial_resource"},
		{"negative desire", func(c *SimulationConfig) { c.InitialDesire = -1 }, "initial_desire"},
		{"infinite alpha", func(c *SimulationConfig) { c.DesireGrowthRate = math.Inf(1) }, "desire_growth_rate"},
		{"negative beta", func(c *SimulationConfig) { c.ResourceGrowthRate = -0.1 }, "resource_growth_rate"},
		{"component above one", func(c *SimulationConfig) { c.Components.EducationWelfare = 1.2 }, "maturity_components.education_welfare"},
		{"component NaN", func(c *SimulationConfig) { c.Components.CultureSpirit = math.NaN() }, "maturity_components.culture_spirit"},
		{"negative weight", func(c *SimulationConfig) { c.Weights.DiplomacySecurity = -0.3 }, "component_weights.diplomacy_security"},
		{"zero weights", func(c *SimulationConfig) { c.Weights = ComponentWeights{} }, "component_weights"},
		{"fixed maturity above one", func(c *SimulationConfig) {
			c.Aggregation = AggregationFixed
			c.InitialMaturity = 1.5
		}, "initial_maturity"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %T", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSimulationConfig_Validate_IgnoresUnusedInputs(t *testing.T) {
	// Components are not consulted in fixed mode, weights only in weighted mode.
	cfg := validConfig()
	cfg.Aggregation = AggregationFixed
	cfg.Components.DiplomacySecurity = 7
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Aggregation = AggregationMean
	cfg.Weights = ComponentWeights{}
	assert.NoError(t, cfg.Validate())
}

func TestAggregationMode_Next(t *testing.T) {
	assert.Equal(t, AggregationWeighted, AggregationFixed.Next())
	assert.Equal(t, AggregationFixed, AggregationMinimum.Next())
	assert.Equal(t, AggregationFixed, AggregationMode("bogus").Next())
}

func TestMaturityComponents_SetAndValues(t *testing.T) {
	var c MaturityComponents
	for i := 0; i < ComponentCount; i++ {
		c.Set(i, float64(i+1)/10)
	}
	assert.Equal(t, [ComponentCount]float64{0.1, 0.2, 0.3, 0.4}, c.Values())
}

func TestTrajectory_Series(t *testing.T) {
	traj := Trajectory{
		Resource: []float64{1, 2},
		Desire:   []float64{1, 1},
		Score:    []float64{0, 0.5},
	}
	names := []string{}
	for _, s := range traj.Series() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Resource", "Desire", "Score"}, names)
	assert.Equal(t, 0.5, traj.FinalScore())

	traj.Harmony = []float64{0.2, 0.2}
	assert.Len(t, traj.Series(), 4)
}

func TestTone_YAMLRoundTrip(t *testing.T) {
	var v Verdict
	require.NoError(t, yaml.Unmarshal([]byte("label: Fine\ntone: warning\n"), &v))
	assert.Equal(t, ToneCaution, v.Tone)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "tone: caution")

	err = yaml.Unmarshal([]byte("label: Fine\ntone: sparkly\n"), &v)
	assert.Error(t, err)
}
