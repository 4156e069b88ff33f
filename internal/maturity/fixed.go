package maturity

import "github.com/rgehrsitz/sustainsim/internal/domain"

// FixedStrategy uses InitialMaturity as T and ignores the components.
type FixedStrategy struct{}

func NewFixedStrategy() *FixedStrategy { return &FixedStrategy{} }

func (s *FixedStrategy) Name() domain.AggregationMode { return domain.AggregationFixed }

func (s *FixedStrategy) ReportsHarmony() bool { return false }

func (s *FixedStrategy) Index(cfg *domain.SimulationConfig) float64 {
	return cfg.InitialMaturity
}
