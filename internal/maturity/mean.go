package maturity

import "github.com/rgehrsitz/sustainsim/internal/domain"

// MeanStrategy gives every dimension equal say.
type MeanStrategy struct{}

func NewMeanStrategy() *MeanStrategy { return &MeanStrategy{} }

func (s *MeanStrategy) Name() domain.AggregationMode { return domain.AggregationMean }

func (s *MeanStrategy) ReportsHarmony() bool { return true }

func (s *MeanStrategy) Index(cfg *domain.SimulationConfig) float64 {
	var sum float64
	for _, v := range cfg.Components.Values() {
		sum += v
	}
	return sum / domain.ComponentCount
}
