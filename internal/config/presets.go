package config

import (
	"sort"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

// DefaultPreset is used when a file names no preset
const DefaultPreset = "weighted"

// Preset bundles a starting configuration with the slider bounds that go with it
type Preset struct {
	Name        string
	Description string
	Simulation  domain.SimulationConfig
	Ranges      ParameterRanges
}

// Default returns the baseline configuration: R0=100, D0=80, T0=0.5, all
// components at 0.5, α=1.0, β=0.5, 20 years, weighted aggregation and the
// three-band verdict.
func Default() domain.SimulationConfig {
	return domain.SimulationConfig{
		InitialResource:    100,
		InitialDesire:      80,
		InitialMaturity:    0.5,
		Components:         domain.UniformComponents(0.5),
		Weights:            domain.DefaultWeights(),
		DesireGrowthRate:   1.0,
		ResourceGrowthRate: 0.5,
		HorizonYears:       20,
		Aggregation:        domain.AggregationWeighted,
		VerdictPolicy:      verdict.ThreeBand,
	}
}

func presetTable() map[string]Preset {
	classic := Default()
	classic.Aggregation = domain.AggregationFixed
	classic.VerdictPolicy = verdict.TwoBand
	classicRanges := DefaultRanges()
	classicRanges.DesireGrowthRate = Range{Min: 0, Max: 1, Step: 0.05}
	classicRanges.ResourceGrowthRate = Range{Min: 0, Max: 1, Step: 0.05}

	weighted := Default()
	weightedRanges := DefaultRanges()
	weightedRanges.HorizonYears = Range{Min: 1, Max: 50, Step: 1}
	weightedRanges.DesireGrowthRate = Range{Min: 0.1, Max: 2, Step: 0.1}
	weightedRanges.ResourceGrowthRate = Range{Min: 0.1, Max: 2, Step: 0.1}

	balanced := Default()
	balanced.Aggregation = domain.AggregationMean
	balanced.VerdictPolicy = verdict.FourBand

	harmony := Default()
	harmony.Aggregation = domain.AggregationMinimum
	harmony.VerdictPolicy = verdict.FourBand

	return map[string]Preset{
		"classic": {
			Name:        "classic",
			Description: "Single fixed maturity scalar, sign-only verdict",
			Simulation:  classic,
			Ranges:      classicRanges,
		},
		"weighted": {
			Name:        "weighted",
			Description: "Weighted average of the four components, three-band verdict",
			Simulation:  weighted,
			Ranges:      weightedRanges,
		},
		"balanced": {
			Name:        "balanced",
			Description: "Unweighted mean of the four components, four-band verdict",
			Simulation:  balanced,
			Ranges:      DefaultRanges(),
		},
		"harmony": {
			Name:        "harmony",
			Description: "Weakest component drives T, four-band verdict",
			Simulation:  harmony,
			Ranges:      DefaultRanges(),
		},
	}
}

// Presets returns every preset sorted by name
func Presets() []Preset {
	table := presetTable()
	out := make([]Preset, 0, len(table))
	for _, p := range table {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetByName looks up a preset; an empty name selects DefaultPreset
func PresetByName(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := presetTable()[name]
	if !ok {
		return Preset{}, &domain.ValidationError{Field: "preset", Value: name, Reason: "unknown preset"}
	}
	return p, nil
}
