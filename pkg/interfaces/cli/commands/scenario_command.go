package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/interfaces/cli/output"
)

// ScenarioCommand evaluates a single disruption scenario under one policy
type ScenarioCommand struct {
	config Config
	logger zerolog.Logger
}

// NewScenarioCommand creates a new scenario command with the given configuration
func NewScenarioCommand(config Config) *ScenarioCommand {
	return &ScenarioCommand{
		config: config,
		logger: newLogger(config.Verbose),
	}
}

// Execute runs the scenario command
func (c *ScenarioCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		showHelp()
		return nil
	}

	policy, err := entities.ParsePolicy(c.config.Strategy)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	disruption, err := entities.NewDisruption(
		entities.SupplierID(c.config.Disrupted), c.config.DisruptionWeeks)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	engineCfg, err := loadEngineConfig(c.config.ConfigFile)
	if err != nil {
		return err
	}
	suppliers, err := loadCatalog(c.config.SuppliersFile, c.logger)
	if err != nil {
		return err
	}
	evaluator, err := buildEvaluator(engineCfg, c.logger)
	if err != nil {
		return err
	}

	result, err := evaluator.RunScenario(ctx, suppliers, disruption,
		c.config.QuantityKg, c.config.QualifiedOnly, policy)
	if err != nil {
		return err
	}

	switch c.config.Format {
	case "", "text":
		fmt.Println(output.FormatResultSummary(result))
		return nil
	case "json":
		return output.WriteJSON(os.Stdout, []*entities.ScenarioResult{result})
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
}

func showHelp() {
	fmt.Println(`supplyplan - supplier allocation and disruption scenario evaluation

Usage:
  supplyplan [flags]

Flags:
  -suppliers string    Path to supplier catalog CSV (default: built-in catalog)
  -config string       Path to YAML engine config (default: built-in defaults)
  -disrupted string    ID of the disrupted supplier (empty = baseline)
  -weeks int           Disruption duration in weeks (1-52)
  -quantity float      Order quantity in kg (default 5000)
  -qualified-only      Restrict to aerospace-qualified suppliers (default true)
  -strategy string     Allocation policy: proportional, cheapest_first,
                       fastest_first, min_cost, min_time, balanced
  -compare             Run every policy and print a comparison
  -format string       Output format: text, json (default text)
  -verbose             Enable diagnostic logging
  -help                Show this help message

Examples:
  supplyplan -disrupted Titan-RU -weeks 12 -quantity 5000 -strategy proportional
  supplyplan -disrupted Titan-RU -weeks 12 -compare -format json`)
}
