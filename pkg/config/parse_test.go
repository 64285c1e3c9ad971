package config

import (
	"strings"
	"testing"
)

const validYAML = `
log_level: info
suite:
  name: toybox
  dimensions: [2, 3, 5]
  instances_per_function: 15
observer:
  backend: none
  result_root: results
  algorithm_info: "test run"
experiment:
  algorithm_name: gs
  strategy: grid
  budget_multiplier: 100
  independent_restarts: 0
  first_function: 1
  last_function: 4
  random_seed: 12345
  line_search: modified
`

func TestParseConfigYAMLValid(t *testing.T) {
	cfg, err := ParseConfigYAMLString(validYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Suite.Name != "toybox" {
		t.Errorf("expected suite name toybox, got %s", cfg.Suite.Name)
	}
	if len(cfg.Suite.Dimensions) != 3 {
		t.Errorf("expected 3 dimensions, got %d", len(cfg.Suite.Dimensions))
	}
	if cfg.Experiment.Strategy != "grid" {
		t.Errorf("expected strategy grid, got %s", cfg.Experiment.Strategy)
	}
	if cfg.Experiment.BudgetMultiplier != 100 {
		t.Errorf("expected budget multiplier 100, got %d", cfg.Experiment.BudgetMultiplier)
	}
	if cfg.Experiment.RandomSeed != 12345 {
		t.Errorf("expected seed 12345, got %d", cfg.Experiment.RandomSeed)
	}
}

func TestParseConfigYAMLDefaults(t *testing.T) {
	// An empty document keeps every default.
	cfg, err := ParseConfigYAMLString("{}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.Experiment.BudgetMultiplier != def.Experiment.BudgetMultiplier {
		t.Errorf("expected default budget multiplier %d, got %d",
			def.Experiment.BudgetMultiplier, cfg.Experiment.BudgetMultiplier)
	}
	if cfg.Suite.InstancesPerFunction != 15 {
		t.Errorf("expected 15 instances per function, got %d", cfg.Suite.InstancesPerFunction)
	}
}

func TestParseConfigYAMLInvalid(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "bad strategy",
			mutate:  func(s string) string { return strings.Replace(s, "strategy: grid", "strategy: annealing", 1) },
			wantErr: "invalid strategy",
		},
		{
			name:    "zero multiplier",
			mutate:  func(s string) string { return strings.Replace(s, "budget_multiplier: 100", "budget_multiplier: 0", 1) },
			wantErr: "budget_multiplier must be positive",
		},
		{
			name:    "negative restarts",
			mutate:  func(s string) string { return strings.Replace(s, "independent_restarts: 0", "independent_restarts: -1", 1) },
			wantErr: "independent_restarts cannot be negative",
		},
		{
			name:    "bad dimension",
			mutate:  func(s string) string { return strings.Replace(s, "[2, 3, 5]", "[2, 0, 5]", 1) },
			wantErr: "dimension must be positive",
		},
		{
			name:    "unsorted dimensions",
			mutate:  func(s string) string { return strings.Replace(s, "[2, 3, 5]", "[3, 2, 5]", 1) },
			wantErr: "strictly ascending",
		},
		{
			name:    "function range inverted",
			mutate:  func(s string) string { return strings.Replace(s, "last_function: 4", "last_function: 0", 1) },
			wantErr: "cannot be smaller than first_function",
		},
		{
			name:    "bad observer backend",
			mutate:  func(s string) string { return strings.Replace(s, "backend: none", "backend: kafka", 1) },
			wantErr: "invalid backend",
		},
		{
			name:    "bad line search",
			mutate:  func(s string) string { return strings.Replace(s, "line_search: modified", "line_search: wolfe", 1) },
			wantErr: "invalid line_search",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfigYAMLString(c.mutate(validYAML))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", c.wantErr)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := validateConfig(Default()); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
