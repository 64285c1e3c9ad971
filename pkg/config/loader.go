package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if err := validateSuite(&cfg.Suite); err != nil {
		return fmt.Errorf("suite validation failed: %w", err)
	}
	if err := validateObserver(&cfg.Observer); err != nil {
		return fmt.Errorf("observer validation failed: %w", err)
	}
	if err := validateExperiment(&cfg.Experiment); err != nil {
		return fmt.Errorf("experiment validation failed: %w", err)
	}

	return nil
}

// validateSuite validates the suite configuration
func validateSuite(s *SuiteConfig) error {
	if s.Name == "" {
		return fmt.Errorf("suite name cannot be empty")
	}
	if len(s.Dimensions) == 0 {
		return fmt.Errorf("at least one dimension must be given")
	}
	prev := 0
	for _, d := range s.Dimensions {
		if d <= 0 {
			return fmt.Errorf("dimension must be positive, got %d", d)
		}
		if d <= prev {
			return fmt.Errorf("dimensions must be strictly ascending, got %v", s.Dimensions)
		}
		prev = d
	}
	if s.InstancesPerFunction <= 0 {
		return fmt.Errorf("instances_per_function must be positive, got %d", s.InstancesPerFunction)
	}
	return nil
}

// validateObserver validates the observer configuration
func validateObserver(o *ObserverConfig) error {
	validBackends := map[string]bool{
		"sqlite": true,
		"none":   true,
	}
	if !validBackends[o.Backend] {
		return fmt.Errorf("invalid backend: %s (must be sqlite or none)", o.Backend)
	}
	if o.Backend == "sqlite" && o.ResultRoot == "" {
		return fmt.Errorf("result_root cannot be empty for the sqlite backend")
	}
	return nil
}

// validateExperiment validates the experiment configuration
func validateExperiment(e *ExperimentConfig) error {
	if e.AlgorithmName == "" {
		return fmt.Errorf("algorithm_name cannot be empty")
	}

	validStrategies := map[string]bool{
		"random":   true,
		"grid":     true,
		"directed": true,
	}
	if !validStrategies[e.Strategy] {
		return fmt.Errorf("invalid strategy: %s (must be random, grid, or directed)", e.Strategy)
	}

	if e.BudgetMultiplier <= 0 {
		return fmt.Errorf("budget_multiplier must be positive, got %d", e.BudgetMultiplier)
	}
	if e.IndependentRestarts < 0 {
		return fmt.Errorf("independent_restarts cannot be negative, got %d", e.IndependentRestarts)
	}
	if e.FirstFunction <= 0 {
		return fmt.Errorf("first_function must be positive, got %d", e.FirstFunction)
	}
	if e.LastFunction < e.FirstFunction {
		return fmt.Errorf("last_function (%d) cannot be smaller than first_function (%d)", e.LastFunction, e.FirstFunction)
	}

	validLineSearches := map[string]bool{
		"standard": true,
		"modified": true,
	}
	if !validLineSearches[e.LineSearch] {
		return fmt.Errorf("invalid line_search: %s (must be standard or modified)", e.LineSearch)
	}

	return nil
}
