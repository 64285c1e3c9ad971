// Package solver defines the contract between the harness and an external
// gradient-free solver. Solvers are capability-typed: they are constructed
// from plain objective and constraint callables, so the driver never depends
// on a concrete solver library.
package solver

import "fmt"

// ObjectiveFunc evaluates a point to a scalar objective value. An error
// aborts the solver run and is surfaced unchanged from Run, so callers can
// use sentinel errors (such as a budget signal) to stop the solver.
type ObjectiveFunc func(x []float64) (float64, error)

// ConstraintFunc evaluates a point to a vector of constraint values, where
// g[i] <= 0 means constraint i is satisfied
type ConstraintFunc func(x []float64) ([]float64, error)

// LineSearch selects the line-search variant of the solver
type LineSearch int

const (
	LineSearchStandard LineSearch = iota
	LineSearchModified
)

func (l LineSearch) String() string {
	switch l {
	case LineSearchStandard:
		return "standard"
	case LineSearchModified:
		return "modified"
	default:
		return fmt.Sprintf("linesearch(%d)", int(l))
	}
}

// ParseLineSearch converts a config string into a LineSearch value
func ParseLineSearch(s string) (LineSearch, error) {
	switch s {
	case "standard":
		return LineSearchStandard, nil
	case "modified":
		return LineSearchModified, nil
	default:
		return 0, fmt.Errorf("unknown line search variant %q", s)
	}
}

// Config carries everything needed to construct one solver run
type Config struct {
	Objective   ObjectiveFunc
	Constraints ConstraintFunc
	Lower       []float64
	Upper       []float64
	Initial     []float64
	LineSearch  LineSearch
}

func (c *Config) validate() error {
	if c.Objective == nil {
		return fmt.Errorf("objective function is required")
	}
	n := len(c.Initial)
	if n == 0 {
		return fmt.Errorf("initial point is required")
	}
	if len(c.Lower) != n || len(c.Upper) != n {
		return fmt.Errorf("bound vectors must match the initial point length %d, got %d / %d",
			n, len(c.Lower), len(c.Upper))
	}
	for j := 0; j < n; j++ {
		if c.Lower[j] > c.Upper[j] {
			return fmt.Errorf("lower bound %d exceeds upper bound (%v > %v)", j, c.Lower[j], c.Upper[j])
		}
	}
	return nil
}

// Result describes how a solver run ended
type Result struct {
	// X is the best point found
	X []float64
	// F is the objective value at X
	F float64
	// Termination is the solver's termination criterion in textual form
	Termination string
}

// Solver is one configured run of an external search algorithm
type Solver interface {
	// Name identifies the solver implementation
	Name() string
	// Run executes the solver to convergence. Errors returned by the
	// evaluation callables pass through unchanged.
	Run() (*Result, error)
}

// Factory constructs a solver from a run configuration
type Factory func(cfg Config) (Solver, error)
