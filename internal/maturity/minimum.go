package maturity

import "github.com/rgehrsitz/sustainsim/internal/domain"

// MinimumStrategy models a bottleneck: the weakest dimension is T.
// T and the harmony readout coincide under this strategy.
type MinimumStrategy struct{}

func NewMinimumStrategy() *MinimumStrategy { return &MinimumStrategy{} }

func (s *MinimumStrategy) Name() domain.AggregationMode { return domain.AggregationMinimum }

func (s *MinimumStrategy) ReportsHarmony() bool { return true }

func (s *MinimumStrategy) Index(cfg *domain.SimulationConfig) float64 {
	return Harmony(cfg.Components)
}
