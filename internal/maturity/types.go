package maturity

import "github.com/rgehrsitz/sustainsim/internal/domain"

// Strategy reduces the maturity inputs of a configuration to the scalar T.
// Implementations are stateless; T is computed once per run and held
// constant across the horizon.
type Strategy interface {
	Name() domain.AggregationMode
	Index(cfg *domain.SimulationConfig) float64
	// ReportsHarmony is false when the components play no part in T,
	// in which case the harmony readout is undefined.
	ReportsHarmony() bool
}

// Reading is the outcome of aggregation: T and, when defined, S
type Reading struct {
	Index   float64
	Harmony *float64
}

// Harmony returns the weakest component, the bottleneck readout S
func Harmony(c domain.MaturityComponents) float64 {
	values := c.Values()
	lowest := values[0]
	for _, v := range values[1:] {
		lowest = min(lowest, v)
	}
	return lowest
}

// Read applies the strategy to cfg and attaches the harmony readout
func Read(s Strategy, cfg *domain.SimulationConfig) Reading {
	r := Reading{Index: s.Index(cfg)}
	if s.ReportsHarmony() {
		h := Harmony(cfg.Components)
		r.Harmony = &h
	}
	return r
}
