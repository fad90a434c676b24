package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mfields/supplyplan/pkg/application/services/allocation"
	"github.com/mfields/supplyplan/pkg/application/services/evaluation"
	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/infrastructure/config"
	csvrepo "github.com/mfields/supplyplan/pkg/infrastructure/repositories/csv"
	"github.com/mfields/supplyplan/pkg/infrastructure/repositories/memory"
	"github.com/mfields/supplyplan/pkg/infrastructure/solver"
)

// Config holds configuration shared by the CLI commands
type Config struct {
	SuppliersFile   string
	ConfigFile      string
	Disrupted       string
	DisruptionWeeks int
	QuantityKg      float64
	QualifiedOnly   bool
	Strategy        string
	Format          string
	Verbose         bool
	Help            bool
}

func newLogger(verbose bool) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

// loadEngineConfig reads the YAML engine config, or returns defaults when no
// path is given
func loadEngineConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadCatalog builds the supplier catalog from a CSV file, or the built-in
// default catalog when no file is given
func loadCatalog(suppliersFile string, logger zerolog.Logger) ([]*entities.Supplier, error) {
	var suppliers []*entities.Supplier
	if suppliersFile == "" {
		suppliers = memory.DefaultSuppliers()
		logger.Info().Int("suppliers", len(suppliers)).Msg("using built-in catalog")
	} else {
		loaded, err := csvrepo.NewLoader().LoadSuppliers(suppliersFile)
		if err != nil {
			return nil, fmt.Errorf("error loading suppliers: %w", err)
		}
		suppliers = loaded
		logger.Info().Int("suppliers", len(suppliers)).Str("file", suppliersFile).Msg("catalog loaded")
	}

	repo := memory.NewSupplierRepository(len(suppliers))
	if err := repo.LoadSuppliers(suppliers); err != nil {
		return nil, fmt.Errorf("failed to load suppliers into repository: %w", err)
	}
	return repo.GetAllSuppliers()
}

// buildEvaluator resolves the solver backend once and wires the evaluator.
// A missing backend is tolerated: heuristic policies still run, LP policies
// report solver.ErrNoBackend.
func buildEvaluator(engineCfg config.Config, logger zerolog.Logger) (*evaluation.Evaluator, error) {
	heuristics := allocation.NewHeuristicAllocator(engineCfg.PlanningHorizonWeeks)

	var optimizer *allocation.Optimizer
	backend, err := solver.Resolve(engineCfg.Solver)
	switch {
	case err == nil:
		optimizer = allocation.NewOptimizer(backend,
			engineCfg.PlanningHorizonWeeks, engineCfg.CostWeight, engineCfg.TimeWeight)
		logger.Info().Str("backend", backend.Name()).Msg("solver backend resolved")
	case errors.Is(err, solver.ErrNoBackend):
		logger.Warn().Str("preference", engineCfg.Solver).Msg("no solver backend; LP strategies disabled")
	default:
		return nil, err
	}

	return evaluation.NewEvaluator(heuristics, optimizer, engineCfg.FeasibilityTolerance), nil
}
