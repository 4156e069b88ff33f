package domain

import (
	"fmt"
	"math"
)

// MaxHorizonYears caps a run so a single request cannot allocate unbounded
// trajectories
const MaxHorizonYears = 1000

// ValidationError reports the configuration field that rejected a run
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite number")
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return invalid(field, v, "cannot be negative")
	}
	return nil
}

func checkUnit(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return invalid(field, v, "must be between 0 and 1")
	}
	return nil
}

// Validate checks the preconditions of a simulation run. The first offending
// field is returned as a *ValidationError. Policy names are resolved by the
// engine, not here.
func (c *SimulationConfig) Validate() error {
	if c.HorizonYears < 1 {
		return invalid("horizon_years", c.HorizonYears, "must be at least 1")
	}
	if c.HorizonYears > MaxHorizonYears {
		return invalid("horizon_years", c.HorizonYears, fmt.Sprintf("must be at most %d", MaxHorizonYears))
	}
	if !c.Aggregation.IsValid() {
		return invalid("maturity_aggregation", string(c.Aggregation), "must be one of fixed, weighted, mean, minimum")
	}
	if err := checkNonNegative("initial_resource", c.InitialResource); err != nil {
		return err
	}
	if err := checkNonNegative("initial_desire", c.InitialDesire); err != nil {
		return err
	}
	if err := checkNonNegative("desire_growth_rate", c.DesireGrowthRate); err != nil {
		return err
	}
	if err := checkNonNegative("resource_growth_rate", c.ResourceGrowthRate); err != nil {
		return err
	}

	if c.Aggregation == AggregationFixed {
		return checkUnit("initial_maturity", c.InitialMaturity)
	}

	for i, v := range c.Components.Values() {
		if err := checkUnit("maturity_components."+ComponentNames[i], v); err != nil {
			return err
		}
	}

	if c.Aggregation == AggregationWeighted {
		for i, w := range c.Weights.Values() {
			if err := checkNonNegative("component_weights."+ComponentNames[i], w); err != nil {
				return err
			}
		}
		if c.Weights.Sum() <= 0 {
			return invalid("component_weights", nil, "must not all be zero")
		}
	}

	return nil
}
