package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds engine tuning parameters. A zero-value file is valid; omitted
// fields keep their defaults.
type Config struct {
	// PlanningHorizonWeeks bounds each supplier's deliverable quantity
	PlanningHorizonWeeks int `yaml:"planning_horizon_weeks"`
	// CostWeight and TimeWeight blend the balanced LP objective
	CostWeight float64 `yaml:"cost_weight"`
	TimeWeight float64 `yaml:"time_weight"`
	// FeasibilityTolerance is the fraction of requested demand that must be
	// allocated for a scenario to count as feasible
	FeasibilityTolerance float64 `yaml:"feasibility_tolerance"`
	// Solver selects the LP backend: auto, simplex, greedy, or none
	Solver string `yaml:"solver"`
	// QualifiedOnly restricts allocation to aerospace-qualified suppliers
	QualifiedOnly bool `yaml:"qualified_only"`
}

// Default returns the engine defaults
func Default() Config {
	return Config{
		PlanningHorizonWeeks: 12,
		CostWeight:           0.6,
		TimeWeight:           0.4,
		FeasibilityTolerance: 0.95,
		Solver:               "auto",
		QualifiedOnly:        true,
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configuration-level misuse before any computation starts
func (c Config) Validate() error {
	if c.PlanningHorizonWeeks <= 0 {
		return fmt.Errorf("planning_horizon_weeks must be positive, got %d", c.PlanningHorizonWeeks)
	}
	if c.CostWeight < 0 || c.TimeWeight < 0 {
		return fmt.Errorf("objective weights cannot be negative, got cost=%g time=%g", c.CostWeight, c.TimeWeight)
	}
	if c.CostWeight+c.TimeWeight == 0 {
		return fmt.Errorf("objective weights cannot both be zero")
	}
	if c.FeasibilityTolerance <= 0 || c.FeasibilityTolerance > 1 {
		return fmt.Errorf("feasibility_tolerance must be in (0, 1], got %g", c.FeasibilityTolerance)
	}
	switch c.Solver {
	case "auto", "simplex", "greedy", "none":
	default:
		return fmt.Errorf("unknown solver %q (valid: auto, simplex, greedy, none)", c.Solver)
	}
	return nil
}
