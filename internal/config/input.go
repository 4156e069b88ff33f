package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
	"gopkg.in/yaml.v3"
)

// Configuration is the on-disk input: an optional preset, the simulation
// parameters overlaid on it, optional slider bounds and custom policies.
type Configuration struct {
	Preset     string                  `yaml:"preset,omitempty" json:"preset,omitempty"`
	Simulation domain.SimulationConfig `yaml:"simulation" json:"simulation"`
	Ranges     ParameterRanges         `yaml:"ranges" json:"ranges"`
	Policies   []verdict.Policy        `yaml:"policies,omitempty" json:"policies,omitempty"`
}

// Registry returns a policy registry holding the built-ins plus the custom policies
func (c *Configuration) Registry() (*verdict.Registry, error) {
	registry := verdict.NewRegistry()
	for i, p := range c.Policies {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("policy %d: %w", i, err)
		}
	}
	return registry, nil
}

// FromPreset builds a configuration from a named preset with nothing overridden
func FromPreset(name string) (*Configuration, error) {
	preset, err := PresetByName(name)
	if err != nil {
		return nil, err
	}
	return &Configuration{
		Preset:     preset.Name,
		Simulation: preset.Simulation,
		Ranges:     preset.Ranges,
	}, nil
}

// InputParser handles parsing of input configuration files. Policies are
// treated as already registered when checking a config's verdict_policy,
// so a long-running server can accept names it loaded at startup.
type InputParser struct {
	Policies []verdict.Policy
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseYAML(data)
}

// ParseYAML decodes YAML over the named preset and validates the result
func (ip *InputParser) ParseYAML(data []byte) (*Configuration, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config, err := FromPreset(head.Preset)
	if err != nil {
		return nil, err
	}

	// yaml.v3 leaves fields that are absent from the document untouched,
	// so the preset values survive wherever the file is silent.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ParseJSON is the JSON counterpart of ParseYAML. An empty body yields the
// preset unchanged; fallbackPreset applies when the body names none.
func (ip *InputParser) ParseJSON(data []byte, fallbackPreset string) (*Configuration, error) {
	var head struct {
		Preset string `json:"preset"`
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &head); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	if head.Preset == "" {
		head.Preset = fallbackPreset
	}

	config, err := FromPreset(head.Preset)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := config.Ranges.Validate(); err != nil {
		return fmt.Errorf("ranges validation failed: %w", err)
	}

	registry := verdict.NewRegistry()
	for _, p := range ip.Policies {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("policy validation failed: %w", err)
		}
	}
	for i, p := range config.Policies {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("policy validation failed: policy %d: %w", i, err)
		}
	}

	if err := config.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}

	policy := config.Simulation.VerdictPolicy
	if policy == "" {
		policy = verdict.DefaultPolicy
	}
	if _, err := registry.Get(policy); err != nil {
		return fmt.Errorf("simulation validation failed: %w",
			&domain.ValidationError{Field: "verdict_policy", Value: policy, Reason: "no such policy"})
	}

	return nil
}
