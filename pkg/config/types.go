package config

// Config represents the full experiment configuration
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Suite      SuiteConfig      `yaml:"suite"`
	Observer   ObserverConfig   `yaml:"observer"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// SuiteConfig selects the benchmark suite and its problem grid
type SuiteConfig struct {
	Name                 string `yaml:"name"`
	Dimensions           []int  `yaml:"dimensions"`
	InstancesPerFunction int    `yaml:"instances_per_function"`
}

// ObserverConfig selects the evaluation-trace backend
type ObserverConfig struct {
	Backend       string `yaml:"backend"` // sqlite or none
	ResultRoot    string `yaml:"result_root"`
	AlgorithmInfo string `yaml:"algorithm_info"`
}

// ExperimentConfig holds the fixed experiment parameters. These are
// configuration values, not command-line flags.
type ExperimentConfig struct {
	AlgorithmName       string `yaml:"algorithm_name"`
	Strategy            string `yaml:"strategy"` // random, grid or directed
	BudgetMultiplier    int    `yaml:"budget_multiplier"`
	IndependentRestarts int    `yaml:"independent_restarts"`
	FirstFunction       int    `yaml:"first_function"`
	LastFunction        int    `yaml:"last_function"`
	RandomSeed          int64  `yaml:"random_seed"`
	LineSearch          string `yaml:"line_search"` // standard or modified
}

// Default returns the configuration the experiment runs with when no file is
// given: the constrained suite over all default dimensions, full function
// range, no restarts.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Suite: SuiteConfig{
			Name:                 "toybox-constrained",
			Dimensions:           []int{2, 3, 5, 10, 20, 40},
			InstancesPerFunction: 15,
		},
		Observer: ObserverConfig{
			Backend:       "sqlite",
			ResultRoot:    "results",
			AlgorithmInfo: "Evolutionary search algorithm",
		},
		Experiment: ExperimentConfig{
			AlgorithmName:       "rayes",
			Strategy:            "directed",
			BudgetMultiplier:    100000,
			IndependentRestarts: 0,
			FirstFunction:       1,
			LastFunction:        48,
			RandomSeed:          0xdeadbeef,
			LineSearch:          "modified",
		},
	}
}
