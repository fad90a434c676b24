package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/interfaces/cli/output"
)

// CompareCommand runs the same scenario under every allocation policy
type CompareCommand struct {
	config Config
	logger zerolog.Logger
}

// NewCompareCommand creates a new compare command with the given configuration
func NewCompareCommand(config Config) *CompareCommand {
	return &CompareCommand{
		config: config,
		logger: newLogger(config.Verbose),
	}
}

// Execute runs the compare command
func (c *CompareCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		showHelp()
		return nil
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

	results, err := evaluator.Compare(ctx, suppliers, disruption,
		c.config.QuantityKg, c.config.QualifiedOnly)
	if err != nil {
		return err
	}

	switch c.config.Format {
	case "", "text":
		for _, r := range results {
			fmt.Println(output.FormatResultSummary(r))
			fmt.Println()
		}
		output.WriteComparisonTable(os.Stdout, results)
		return nil
	case "json":
		return output.WriteJSON(os.Stdout, results)
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
}
