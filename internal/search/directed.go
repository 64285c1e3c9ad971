package search

import (
	"errors"
	"fmt"

	"github.com/blackbox-bench/harness-core/internal/solver"
	"github.com/blackbox-bench/harness-core/pkg/logger"
)

// DirectedSearch wraps an external solver behind budget-checked evaluators.
// It applies to single-objective constrained problems. Budget exhaustion is
// converted into normal termination; any other solver failure is reported
// and swallowed, so one broken solver run never takes down the experiment.
type DirectedSearch struct {
	factory    solver.Factory
	lineSearch solver.LineSearch
}

// NewDirectedSearch creates a directed search strategy backed by the solver
// the factory constructs
func NewDirectedSearch(factory solver.Factory, lineSearch solver.LineSearch) *DirectedSearch {
	return &DirectedSearch{factory: factory, lineSearch: lineSearch}
}

func (s *DirectedSearch) Name() string {
	return "directed"
}

// Run evaluates the warm-up pair at the initial solution, then hands the
// budget-checked evaluators to the external solver. The warm-up guarantees
// at least one logged point even if the solver fails immediately.
func (s *DirectedSearch) Run(ev Evaluator, budget int) error {
	if ev.NumberOfObjectives() != 1 {
		return fmt.Errorf("directed search requires a single objective, got %d", ev.NumberOfObjectives())
	}
	if ev.NumberOfConstraints() == 0 {
		return fmt.Errorf("directed search requires a constrained problem")
	}

	initial := append([]float64(nil), ev.InitialSolution()...)
	ev.EvaluateConstraints(initial)
	ev.EvaluateObjective(initial)

	slv, err := s.factory(solver.Config{
		Objective:   BudgetedObjective(ev, budget),
		Constraints: BudgetedConstraints(ev, budget),
		Lower:       ev.LowerBounds(),
		Upper:       ev.UpperBounds(),
		Initial:     initial,
		LineSearch:  s.lineSearch,
	})
	if err != nil {
		logger.Warn("solver construction failed", "error", err)
		return nil
	}

	result, err := slv.Run()
	switch {
	case errors.Is(err, ErrBudgetExhausted):
		// Expected: the solver does not know about the external budget.
	case err != nil:
		logger.Warn("unexpected solver error", "solver", slv.Name(), "error", err)
	default:
		logger.Info("solver finished", "solver", slv.Name(), "termination", result.Termination)
	}
	return nil
}
