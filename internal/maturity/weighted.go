package maturity

import "github.com/rgehrsitz/sustainsim/internal/domain"

// WeightedStrategy: T = Σ(w_i c_i) / Σ w_i
// Weights need not sum to one. A zero total is rejected by validation;
// Index returns 0 in that case rather than NaN.
type WeightedStrategy struct{}

func NewWeightedStrategy() *WeightedStrategy { return &WeightedStrategy{} }

func (s *WeightedStrategy) Name() domain.AggregationMode { return domain.AggregationWeighted }

func (s *WeightedStrategy) ReportsHarmony() bool { return true }

func (s *WeightedStrategy) Index(cfg *domain.SimulationConfig) float64 {
	components := cfg.Components.Values()
	weights := cfg.Weights.Values()

	var weighted, total float64
	for i := range components {
		weighted += weights[i] * components[i]
		total += weights[i]
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
