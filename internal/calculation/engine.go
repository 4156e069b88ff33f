package calculation

import (
	"fmt"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/maturity"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

// SimulationEngine runs the resource/desire recurrence and classifies the
// outcome. It holds no per-run state and is safe for concurrent use.
type SimulationEngine struct {
	Policies *verdict.Registry
	Logger   Logger
}

// NewSimulationEngine creates an engine with the built-in verdict policies
func NewSimulationEngine() *SimulationEngine {
	return NewSimulationEngineWithPolicies(verdict.NewRegistry())
}

// NewSimulationEngineWithPolicies creates an engine that classifies against policies
func NewSimulationEngineWithPolicies(policies *verdict.Registry) *SimulationEngine {
	if policies == nil {
		policies = verdict.NewRegistry()
	}
	return &SimulationEngine{
		Policies: policies,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the engine logger; nil installs NopLogger
func (e *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputeMaturityIndex validates cfg and returns T together with the
// harmony readout S (nil in fixed mode).
func (e *SimulationEngine) ComputeMaturityIndex(cfg domain.SimulationConfig) (maturity.Reading, error) {
	if err := cfg.Validate(); err != nil {
		return maturity.Reading{}, err
	}
	strategy, err := maturity.CreateStrategy(cfg.Aggregation)
	if err != nil {
		return maturity.Reading{}, err
	}
	return maturity.Read(strategy, &cfg), nil
}

// Simulate runs one forward simulation of cfg.HorizonYears steps.
//
// Score follows the post-step rule: Score[n+1] is computed from the already
// advanced Resource[n+1] and Desire[n+1], and Score[0] from the initial pair.
func (e *SimulationEngine) Simulate(cfg domain.SimulationConfig) (*domain.SimulationResult, error) {
	if cfg.VerdictPolicy == "" {
		cfg.VerdictPolicy = verdict.DefaultPolicy
	}
	reading, err := e.ComputeMaturityIndex(cfg)
	if err != nil {
		e.Logger.Debugf("rejecting configuration: %v", err)
		return nil, err
	}
	policy, err := e.Policies.Get(cfg.VerdictPolicy)
	if err != nil {
		return nil, &domain.ValidationError{Field: "verdict_policy", Value: cfg.VerdictPolicy, Reason: "no such policy"}
	}

	trajectory := Project(cfg, reading)
	if err := CheckFinite(cfg, trajectory); err != nil {
		e.Logger.Warnf("rejecting configuration: %v", err)
		return nil, err
	}
	final := trajectory.FinalScore()
	result := &domain.SimulationResult{
		Config:        cfg,
		MaturityIndex: reading.Index,
		HarmonyIndex:  reading.Harmony,
		Trajectory:    trajectory,
		FinalScore:    final,
		Policy:        policy.Name,
		Verdict:       policy.Classify(final),
	}

	e.Logger.Debugf("simulated %d years: aggregation=%s T=%.4f final score=%.4f verdict=%s",
		cfg.HorizonYears, cfg.Aggregation, reading.Index, final, result.Verdict.Label)
	return result, nil
}

// Classify maps score to a verdict under the named policy
func (e *SimulationEngine) Classify(score float64, policyName string) (domain.Verdict, error) {
	policy, err := e.Policies.Get(policyName)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("classify: %w", err)
	}
	return policy.Classify(score), nil
}
