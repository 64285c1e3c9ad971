package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blackbox-bench/harness-core/internal/driver"
	"github.com/blackbox-bench/harness-core/internal/observer"
	"github.com/blackbox-bench/harness-core/internal/search"
	"github.com/blackbox-bench/harness-core/internal/solver"
	"github.com/blackbox-bench/harness-core/internal/suite"
	"github.com/blackbox-bench/harness-core/internal/timing"
	"github.com/blackbox-bench/harness-core/pkg/config"
	"github.com/blackbox-bench/harness-core/pkg/logger"
	"github.com/blackbox-bench/harness-core/pkg/utils"
)

func buildObserver(cfg *config.Config) (observer.Observer, error) {
	switch cfg.Observer.Backend {
	case "none":
		return observer.NopObserver{}, nil
	case "sqlite":
		options := observer.FormatOptions(
			cfg.Experiment.AlgorithmName,
			cfg.Suite.Name,
			cfg.Experiment.FirstFunction,
			cfg.Experiment.LastFunction,
			cfg.Observer.AlgorithmInfo,
		)
		return observer.NewSQLite("sqlite", options, cfg.Observer.ResultRoot)
	default:
		return nil, fmt.Errorf("unknown observer backend %q", cfg.Observer.Backend)
	}
}

func buildStrategy(cfg *config.Config) (search.Strategy, error) {
	switch cfg.Experiment.Strategy {
	case "random":
		return search.NewRandomSearch(utils.NewRandSource(cfg.Experiment.RandomSeed)), nil
	case "grid":
		return search.NewGridSearch(), nil
	case "directed":
		lineSearch, err := solver.ParseLineSearch(cfg.Experiment.LineSearch)
		if err != nil {
			return nil, err
		}
		return search.NewDirectedSearch(solver.NewGonumSolver, lineSearch), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Experiment.Strategy)
	}
}

func run() error {
	var configPath string
	var logLevel string

	flag.StringVar(&configPath, "config", "", "path to the experiment configuration file")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger.SetDefault(logger.New(logLevel, "text", os.Stdout))

	benchSuite, err := suite.New(cfg.Suite.Name, cfg.Suite.Dimensions, cfg.Suite.InstancesPerFunction)
	if err != nil {
		return fmt.Errorf("building suite: %w", err)
	}

	obs, err := buildObserver(cfg)
	if err != nil {
		return fmt.Errorf("building observer: %w", err)
	}
	defer func() {
		if err := obs.Close(); err != nil {
			logger.Error("closing observer", "error", err)
		}
	}()

	strategy, err := buildStrategy(cfg)
	if err != nil {
		return fmt.Errorf("building strategy: %w", err)
	}

	d, err := driver.New(benchSuite, obs, strategy, timing.NewTracker(), driver.Options{
		BudgetMultiplier:     cfg.Experiment.BudgetMultiplier,
		IndependentRestarts:  cfg.Experiment.IndependentRestarts,
		FirstFunction:        cfg.Experiment.FirstFunction,
		LastFunction:         cfg.Experiment.LastFunction,
		InstancesPerFunction: cfg.Suite.InstancesPerFunction,
	})
	if err != nil {
		return err
	}

	logger.Info("running the experiment",
		"suite", cfg.Suite.Name,
		"strategy", strategy.Name(),
		"functions", fmt.Sprintf("f%02d-f%02d", cfg.Experiment.FirstFunction, cfg.Experiment.LastFunction),
		"problems", benchSuite.NumberOfProblems())

	fmt.Println("Running the experiment... (it takes time, be patient)")
	if err := d.Run(); err != nil {
		return err
	}
	fmt.Println("Done!")
	return nil
}

func main() {
	if err := run(); err != nil {
		logger.Error("experiment failed", "error", err)
		os.Exit(1)
	}
}
