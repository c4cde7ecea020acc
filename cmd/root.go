package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/grocery-sim/grocery-sim/sim"
	"github.com/grocery-sim/grocery-sim/sim/swarm"
	"github.com/grocery-sim/grocery-sim/sim/trace"
)

var (
	// CLI flags for simulation runs
	seed         int64  // Master seed for all randomness
	days         int    // Simulated horizon in days
	cashiers     int    // Checkout lane capacity
	numSuppliers int    // Number of suppliers serving the store
	initialStock []int  // Per-supplier initial stock (run command)
	logLevel     string // Log verbosity level
	configPath   string // Optional YAML store/run config
	outputPath   string // Ledger CSV target path
	traceLevel   string // Decision trace level (none, decisions)

	// CLI flags for the swarm search
	swarmSize    int     // Particles per iteration
	iterations   int     // Iteration budget
	lowerBound   float64 // Per-supplier lower stock bound
	upperBound   float64 // Per-supplier upper stock bound
	evalSeed     int64   // Pinned seed of each objective evaluation
	evalDays     int     // Horizon of each objective evaluation
	evalCashiers int     // Checkout lanes during objective evaluations
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "grocery-sim",
	Short: "Discrete-event simulator for grocery store economics",
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadConfigs merges the optional YAML config with the CLI flags. Flags
// win for seed, horizon, cashiers and supplier count.
func loadConfigs() (sim.RunConfig, sim.StoreConfig) {
	cfg, err := LoadFileConfig(configPath)
	if err != nil {
		logrus.Fatalf("Could not load config: %v", err)
	}
	runCfg, storeCfg := cfg.Run, cfg.Store
	runCfg.Seed = seed
	runCfg.Days = days
	runCfg.NumSuppliers = numSuppliers
	storeCfg.Checkouts = cashiers
	return runCfg, storeCfg
}

// newTrace builds the decision trace requested via --trace.
func newTrace() *trace.SimulationTrace {
	if !trace.IsValidTraceLevel(traceLevel) {
		logrus.Fatalf("Invalid trace level: %s", traceLevel)
	}
	return trace.NewSimulationTrace(trace.TraceLevel(traceLevel))
}

// exportLedger writes the ledger CSV, falling back to a timestamped path
// if the target is unwritable. An empty ledger is reported, not fatal.
func exportLedger(ledger *sim.Ledger) {
	path, err := ledger.ExportCSV(outputPath)
	if errors.Is(err, sim.ErrEmptyLedger) {
		logrus.Warn("No data collected during the simulation; export skipped.")
		return
	}
	if err != nil {
		logrus.Fatalf("Could not export ledger: %v", err)
	}
	fmt.Printf("Daily balance exported to '%s'\n", path)
}

// runProduction executes one full-horizon simulation with the given
// initial stock, prints the summary, and exports the ledger.
func runProduction(quantities []int) {
	runCfg, storeCfg := loadConfigs()
	tr := newTrace()

	s, err := sim.NewSimulation(runCfg, storeCfg, tr)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	if len(quantities) > 0 {
		if err := s.SeedInitialStock(quantities); err != nil {
			logrus.Fatalf("Invalid initial stock: %v", err)
		}
	}

	startTime := time.Now()
	s.Run()

	sim.Summarize(s.Ledger).Print(time.Since(startTime))
	if tr.Enabled() {
		ts := trace.Summarize(tr)
		fmt.Printf("Discount decisions   : %d (mean %.2f%%, max %.2f%%, floored %d)\n",
			ts.TotalDiscounts, ts.MeanDiscountPct, ts.MaxDiscountPct, ts.FlooredCount)
		fmt.Printf("Stockout misses      : %d\n", ts.StockoutCount)
	}
	exportLedger(s.Ledger)
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one grocery store simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if len(initialStock) > 0 && len(initialStock) != numSuppliers {
			logrus.Fatalf("--initial-stock needs %d values, got %d", numSuppliers, len(initialStock))
		}
		runProduction(initialStock)
	},
}

// optimizeCmd searches for the profit-maximizing initial stock allocation,
// then runs the full-horizon simulation with the best vector found.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search initial stock allocation by particle swarm, then run the full simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if lowerBound <= 0 || upperBound <= lowerBound {
			logrus.Fatalf("Invalid stock bounds [%v, %v]", lowerBound, upperBound)
		}

		// Evaluation runs reuse the configured economics but pin their
		// own short horizon, lane count, and seed.
		fileCfg, err := LoadFileConfig(configPath)
		if err != nil {
			logrus.Fatalf("Could not load config: %v", err)
		}
		evalCfg := sim.EvaluationConfig{Run: fileCfg.Run, Store: fileCfg.Store}
		evalCfg.Run.Seed = evalSeed
		evalCfg.Run.Days = evalDays
		evalCfg.Run.NumSuppliers = numSuppliers
		evalCfg.Store.Checkouts = evalCashiers

		lb := make([]float64, numSuppliers)
		ub := make([]float64, numSuppliers)
		for i := range lb {
			lb[i] = lowerBound
			ub[i] = upperBound
		}

		swarmCfg := swarm.DefaultConfig()
		swarmCfg.SwarmSize = swarmSize
		swarmCfg.Iterations = iterations

		fmt.Println("Starting optimization with particle swarm...")
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemSwarm)
		result, err := swarm.Minimize(sim.Objective(evalCfg), lb, ub, swarmCfg, rng)
		if err != nil {
			logrus.Fatalf("Optimization failed: %v", err)
		}

		best := make([]int, numSuppliers)
		for i, x := range result.Position {
			best[i] = int(x)
		}
		fmt.Printf("Optimal initial stock per supplier: %v (fitness %.2f, %d evaluations)\n",
			best, result.Fitness, result.Evaluations)

		fmt.Println("\nRunning main simulation with optimal strategy...")
		runProduction(best)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	for _, c := range []*cobra.Command{runCmd, optimizeCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Master seed for all randomness")
		c.Flags().IntVar(&days, "days", 30, "Simulated horizon in days")
		c.Flags().IntVar(&cashiers, "cashiers", 5, "Number of checkout lanes")
		c.Flags().IntVar(&numSuppliers, "suppliers", 5, "Number of suppliers")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&configPath, "config", "", "Optional YAML store/run config file")
		c.Flags().StringVar(&outputPath, "output", "daily_balance.csv", "Ledger CSV output path")
		c.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	}

	runCmd.Flags().IntSliceVar(&initialStock, "initial-stock", nil, "Comma-separated initial stock per supplier")

	// Swarm search configs
	optimizeCmd.Flags().IntVar(&swarmSize, "swarm-size", 8, "Particles per iteration")
	optimizeCmd.Flags().IntVar(&iterations, "iterations", 4, "Swarm iteration budget")
	optimizeCmd.Flags().Float64Var(&lowerBound, "lower-bound", 5, "Per-supplier lower stock bound")
	optimizeCmd.Flags().Float64Var(&upperBound, "upper-bound", 50, "Per-supplier upper stock bound")
	optimizeCmd.Flags().Int64Var(&evalSeed, "eval-seed", 999, "Seed pinned by each objective evaluation")
	optimizeCmd.Flags().IntVar(&evalDays, "eval-days", 10, "Horizon of each objective evaluation (days)")
	optimizeCmd.Flags().IntVar(&evalCashiers, "eval-cashiers", 3, "Checkout lanes during objective evaluations")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(optimizeCmd)
}
