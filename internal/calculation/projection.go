package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/maturity"
)

// Score is the sustainability metric T × (R − D)
func Score(t, resource, desire float64) float64 {
	return t * (resource - desire)
}

// Project generates the yearly series for an already validated cfg.
// T is held constant; Resource grows by βT and Desire by α(1−T) per year.
func Project(cfg domain.SimulationConfig, reading maturity.Reading) domain.Trajectory {
	n := cfg.HorizonYears + 1
	t := reading.Index

	traj := domain.Trajectory{
		Years:    make([]int, n),
		Resource: make([]float64, n),
		Desire:   make([]float64, n),
		Score:    make([]float64, n),
	}

	resourceStep := cfg.ResourceGrowthRate * t
	desireStep := cfg.DesireGrowthRate * (1 - t)

	traj.Resource[0] = cfg.InitialResource
	traj.Desire[0] = cfg.InitialDesire
	traj.Score[0] = Score(t, cfg.InitialResource, cfg.InitialDesire)

	for year := 0; year < cfg.HorizonYears; year++ {
		next := year + 1
		traj.Years[next] = next
		traj.Resource[next] = traj.Resource[year] + resourceStep
		traj.Desire[next] = traj.Desire[year] + desireStep
		traj.Score[next] = Score(t, traj.Resource[next], traj.Desire[next])
	}

	if reading.Harmony != nil {
		traj.Harmony = make([]float64, n)
		for i := range traj.Harmony {
			traj.Harmony[i] = *reading.Harmony
		}
	}

	return traj
}

// CheckFinite rejects a trajectory that overflowed float64. Finite inputs
// with very large rates can push the stocks to ±Inf and the score to NaN.
func CheckFinite(cfg domain.SimulationConfig, traj domain.Trajectory) error {
	for i := range traj.Score {
		switch {
		case notFinite(traj.Resource[i]):
			return &domain.ValidationError{Field: "resource_growth_rate", Value: cfg.ResourceGrowthRate,
				Reason: fmt.Sprintf("resource overflows in year %d", i)}
		case notFinite(traj.Desire[i]):
			return &domain.ValidationError{Field: "desire_growth_rate", Value: cfg.DesireGrowthRate,
				Reason: fmt.Sprintf("desire overflows in year %d", i)}
		case notFinite(traj.Score[i]):
			return &domain.ValidationError{Field: "desire_growth_rate", Value: cfg.DesireGrowthRate,
				Reason: fmt.Sprintf("score is not finite in year %d", i)}
		}
	}
	return nil
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
