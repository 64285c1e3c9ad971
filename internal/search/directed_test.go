package search

import (
	"errors"
	"testing"

	"github.com/blackbox-bench/harness-core/internal/solver"
)

// scriptedSolver drives the budget-checked callables the way a real solver
// would, using whatever behavior the test scripts in.
type scriptedSolver struct {
	run func() (*solver.Result, error)
}

func (s *scriptedSolver) Name() string                 { return "scripted" }
func (s *scriptedSolver) Run() (*solver.Result, error) { return s.run() }

// greedyFactory builds a solver that keeps evaluating until a callable
// returns an error, then propagates that error.
func greedyFactory(maxCalls int) solver.Factory {
	return func(cfg solver.Config) (solver.Solver, error) {
		return &scriptedSolver{run: func() (*solver.Result, error) {
			x := append([]float64(nil), cfg.Initial...)
			for i := 0; i < maxCalls; i++ {
				if _, err := cfg.Constraints(x); err != nil {
					return nil, err
				}
				if _, err := cfg.Objective(x); err != nil {
					return nil, err
				}
			}
			return &solver.Result{X: x, Termination: "converged"}, nil
		}}, nil
	}
}

func TestDirectedSearchApplicability(t *testing.T) {
	s := NewDirectedSearch(greedyFactory(1), solver.LineSearchModified)

	unconstrained := newFakeEvaluator(2, 0, -5, 5)
	if err := s.Run(unconstrained, 10); err == nil {
		t.Fatal("expected error for unconstrained problem")
	}

	multiObjective := newFakeEvaluator(2, 1, -5, 5)
	multiObjective.objectives = 2
	if err := s.Run(multiObjective, 10); err == nil {
		t.Fatal("expected error for multi-objective problem")
	}
}

func TestDirectedSearchWarmUpPair(t *testing.T) {
	ev := newFakeEvaluator(2, 1, -5, 5)
	s := NewDirectedSearch(greedyFactory(0), solver.LineSearchModified)
	if err := s.Run(ev, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Exactly one constraint and one objective evaluation at the initial
	// solution, constraints first.
	if ev.Evaluations() != 1 || ev.EvaluationsConstraints() != 1 {
		t.Fatalf("expected warm-up pair only, got %d/%d",
			ev.Evaluations(), ev.EvaluationsConstraints())
	}
	init := ev.InitialSolution()
	for j := range init {
		if ev.constraintPoints[0][j] != init[j] || ev.objectivePoints[0][j] != init[j] {
			t.Fatalf("warm-up must evaluate the initial solution, got %v / %v",
				ev.constraintPoints[0], ev.objectivePoints[0])
		}
	}
}

func TestDirectedSearchZeroBudget(t *testing.T) {
	ev := newFakeEvaluator(2, 1, -5, 5)
	s := NewDirectedSearch(greedyFactory(1000), solver.LineSearchModified)
	if err := s.Run(ev, 0); err != nil {
		t.Fatalf("Run must absorb budget exhaustion, got %v", err)
	}

	// The warm-up pair is unconditional; after it the total (2) already
	// exceeds the zero budget, so the solver performs no evaluations.
	if ev.Evaluations() != 1 || ev.EvaluationsConstraints() != 1 {
		t.Fatalf("expected zero post-warm-up evaluations, got %d/%d",
			ev.Evaluations(), ev.EvaluationsConstraints())
	}
}

func TestDirectedSearchBudgetExhaustedMidRun(t *testing.T) {
	ev := newFakeEvaluator(2, 1, -5, 5)
	s := NewDirectedSearch(greedyFactory(1000), solver.LineSearchModified)
	if err := s.Run(ev, 10); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Warm-up pair plus solver evaluations: the wrappers allow calls while
	// total <= 10, so the total lands at 11 and never beyond.
	if got := TotalEvaluations(ev); got != 11 {
		t.Fatalf("expected total evaluation count 11, got %d", got)
	}
}

func TestDirectedSearchSwallowsSolverFailure(t *testing.T) {
	boom := errors.New("solver exploded")
	factory := func(cfg solver.Config) (solver.Solver, error) {
		return &scriptedSolver{run: func() (*solver.Result, error) {
			return nil, boom
		}}, nil
	}

	ev := newFakeEvaluator(2, 1, -5, 5)
	s := NewDirectedSearch(factory, solver.LineSearchModified)
	if err := s.Run(ev, 100); err != nil {
		t.Fatalf("solver failure must not escape the strategy, got %v", err)
	}
	// The warm-up pair still happened, so the run is logged.
	if ev.Evaluations() != 1 || ev.EvaluationsConstraints() != 1 {
		t.Fatalf("expected warm-up pair despite failure, got %d/%d",
			ev.Evaluations(), ev.EvaluationsConstraints())
	}
}

func TestDirectedSearchSwallowsFactoryFailure(t *testing.T) {
	factory := func(cfg solver.Config) (solver.Solver, error) {
		return nil, errors.New("bad config")
	}
	ev := newFakeEvaluator(2, 1, -5, 5)
	s := NewDirectedSearch(factory, solver.LineSearchModified)
	if err := s.Run(ev, 100); err != nil {
		t.Fatalf("factory failure must not escape the strategy, got %v", err)
	}
}
