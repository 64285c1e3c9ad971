// Package search implements the budget-governed search strategies. A
// strategy consumes an evaluation budget and an Evaluator and performs no
// I/O beyond evaluation calls.
package search

import (
	"errors"

	"github.com/blackbox-bench/harness-core/internal/solver"
)

// ErrBudgetExhausted signals that the evaluation budget has been spent. It is
// an expected, non-fatal termination condition, not a failure.
var ErrBudgetExhausted = errors.New("evaluation budget exhausted")

// Evaluator is the gateway through which a strategy reaches the currently
// active problem. It holds no state of its own: counters and logging live in
// the problem behind it, so every evaluation is counted and traced no matter
// which strategy triggered it. A suite problem satisfies this interface
// directly.
type Evaluator interface {
	Dimension() int
	NumberOfObjectives() int
	NumberOfConstraints() int
	LowerBounds() []float64
	UpperBounds() []float64
	InitialSolution() []float64
	Evaluations() int
	EvaluationsConstraints() int
	EvaluateObjective(x []float64) []float64
	EvaluateConstraints(x []float64) []float64
}

// TotalEvaluations returns the combined objective and constraint evaluation
// count, which is what the budget is accounted against.
func TotalEvaluations(ev Evaluator) int {
	return ev.Evaluations() + ev.EvaluationsConstraints()
}

// Strategy is a pluggable search procedure. Run consumes up to budget
// evaluations on the given evaluator. Budget exhaustion is normal
// termination; a returned error means the strategy was misapplied or broke
// internally.
type Strategy interface {
	// Name identifies the strategy
	Name() string
	// Run performs the search until the budget is spent or an internal
	// termination criterion fires
	Run(ev Evaluator, budget int) error
}

// BudgetedObjective wraps ev's objective as a solver callable that checks
// the budget before every evaluation. Once the total evaluation count
// exceeds budget it returns ErrBudgetExhausted instead of evaluating.
func BudgetedObjective(ev Evaluator, budget int) solver.ObjectiveFunc {
	return func(x []float64) (float64, error) {
		if TotalEvaluations(ev) > budget {
			return 0, ErrBudgetExhausted
		}
		y := ev.EvaluateObjective(x)
		return y[0], nil
	}
}

// BudgetedConstraints wraps ev's constraints the same way
func BudgetedConstraints(ev Evaluator, budget int) solver.ConstraintFunc {
	return func(x []float64) ([]float64, error) {
		if TotalEvaluations(ev) > budget {
			return nil, ErrBudgetExhausted
		}
		return ev.EvaluateConstraints(x), nil
	}
}
