package maturity

import (
	"fmt"

	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// CreateStrategy returns the aggregation strategy for mode
func CreateStrategy(mode domain.AggregationMode) (Strategy, error) {
	switch mode {
	case domain.AggregationFixed:
		return NewFixedStrategy(), nil
	case domain.AggregationWeighted:
		return NewWeightedStrategy(), nil
	case domain.AggregationMean:
		return NewMeanStrategy(), nil
	case domain.AggregationMinimum:
		return NewMinimumStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown maturity aggregation: %q", string(mode))
	}
}
