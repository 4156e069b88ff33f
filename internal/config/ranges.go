package config

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// Range bounds an interactive input
type Range struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) validate(name string) error {
	for _, v := range []float64{r.Min, r.Max, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("range %s must be finite", name)
		}
	}
	if r.Min > r.Max {
		return fmt.Errorf("range %s: min %g is above max %g", name, r.Min, r.Max)
	}
	if r.Step <= 0 {
		return fmt.Errorf("range %s: step must be positive", name)
	}
	return nil
}

// ParameterRanges are the slider bounds of each adjustable parameter.
// They bound the front ends; the engine itself only enforces the model
// preconditions.
type ParameterRanges struct {
	HorizonYears       Range `yaml:"horizon_years" json:"horizon_years"`
	InitialResource    Range `yaml:"initial_resource" json:"initial_resource"`
	InitialDesire      Range `yaml:"initial_desire" json:"initial_desire"`
	InitialMaturity    Range `yaml:"initial_maturity" json:"initial_maturity"`
	Component          Range `yaml:"component" json:"component"`
	DesireGrowthRate   Range `yaml:"desire_growth_rate" json:"desire_growth_rate"`
	ResourceGrowthRate Range `yaml:"resource_growth_rate" json:"resource_growth_rate"`
}

// DefaultRanges returns the widest bounds used by any preset
func DefaultRanges() ParameterRanges {
	return ParameterRanges{
		HorizonYears:       Range{Min: 1, Max: 100, Step: 1},
		InitialResource:    Range{Min: 0, Max: 500, Step: 5},
		InitialDesire:      Range{Min: 0, Max: 500, Step: 5},
		InitialMaturity:    Range{Min: 0, Max: 1, Step: 0.05},
		Component:          Range{Min: 0, Max: 1, Step: 0.05},
		DesireGrowthRate:   Range{Min: 0, Max: 2, Step: 0.1},
		ResourceGrowthRate: Range{Min: 0, Max: 2, Step: 0.1},
	}
}

// Validate checks every range
func (p ParameterRanges) Validate() error {
	checks := []struct {
		name string
		r    Range
	}{
		{"horizon_years", p.HorizonYears},
		{"initial_resource", p.InitialResource},
		{"initial_desire", p.InitialDesire},
		{"initial_maturity", p.InitialMaturity},
		{"component", p.Component},
		{"desire_growth_rate", p.DesireGrowthRate},
		{"resource_growth_rate", p.ResourceGrowthRate},
	}
	for _, c := range checks {
		if err := c.r.validate(c.name); err != nil {
			return err
		}
	}
	if p.HorizonYears.Min < 1 {
		return fmt.Errorf("range horizon_years must start at 1 or above")
	}
	if p.HorizonYears.Max > domain.MaxHorizonYears {
		return fmt.Errorf("range horizon_years cannot exceed %d", domain.MaxHorizonYears)
	}
	return nil
}
