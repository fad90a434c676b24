package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mfields/supplyplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		suppliersFile = flag.String("suppliers", "", "Path to supplier catalog CSV (default: built-in catalog)")
		configFile    = flag.String("config", "", "Path to YAML engine config")
		disrupted     = flag.String("disrupted", "", "ID of the disrupted supplier (empty = baseline)")
		weeks         = flag.Int("weeks", 0, "Disruption duration in weeks (1-52)")
		quantity      = flag.Float64("quantity", 5000, "Order quantity in kg")
		qualifiedOnly = flag.Bool("qualified-only", true, "Restrict to aerospace-qualified suppliers")
		strategy      = flag.String("strategy", "proportional", "Allocation policy")
		compare       = flag.Bool("compare", false, "Run every policy and print a comparison")
		format        = flag.String("format", "text", "Output format: text, json")
		verbose       = flag.Bool("verbose", false, "Enable diagnostic logging")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		SuppliersFile:   *suppliersFile,
		ConfigFile:      *configFile,
		Disrupted:       *disrupted,
		DisruptionWeeks: *weeks,
		QuantityKg:      *quantity,
		QualifiedOnly:   *qualifiedOnly,
		Strategy:        *strategy,
		Format:          *format,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	ctx := context.Background()

	var err error
	if *compare {
		err = commands.NewCompareCommand(config).Execute(ctx)
	} else {
		err = commands.NewScenarioCommand(config).Execute(ctx)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
