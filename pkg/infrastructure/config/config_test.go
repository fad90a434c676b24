package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 12, cfg.PlanningHorizonWeeks)
	assert.Equal(t, 0.6, cfg.CostWeight)
	assert.Equal(t, 0.4, cfg.TimeWeight)
	assert.Equal(t, 0.95, cfg.FeasibilityTolerance)
	assert.Equal(t, "auto", cfg.Solver)
	assert.True(t, cfg.QualifiedOnly)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "planning_horizon_weeks: 8\nsolver: greedy\nqualified_only: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.PlanningHorizonWeeks)
	assert.Equal(t, "greedy", cfg.Solver)
	assert.False(t, cfg.QualifiedOnly)
	// Untouched fields keep defaults.
	assert.Equal(t, 0.6, cfg.CostWeight)
	assert.Equal(t, 0.95, cfg.FeasibilityTolerance)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero horizon", func(c *Config) { c.PlanningHorizonWeeks = 0 }},
		{"negative cost weight", func(c *Config) { c.CostWeight = -0.1 }},
		{"both weights zero", func(c *Config) { c.CostWeight = 0; c.TimeWeight = 0 }},
		{"zero tolerance", func(c *Config) { c.FeasibilityTolerance = 0 }},
		{"tolerance above one", func(c *Config) { c.FeasibilityTolerance = 1.1 }},
		{"unknown solver", func(c *Config) { c.Solver = "cplex" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
