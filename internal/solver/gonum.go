package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/blackbox-bench/harness-core/pkg/utils"
)

// constraint violations and bound excursions are folded into the objective
// with a quadratic penalty of this weight
const penaltyWeight = 1e6

// GonumSolver runs a gonum/optimize method over the penalized objective.
// The modified line-search variant maps to Nelder-Mead, which tolerates the
// non-smooth penalty surface; the standard variant maps to L-BFGS with
// finite-difference gradients.
type GonumSolver struct {
	cfg Config
}

// NewGonumSolver is a Factory for GonumSolver
func NewGonumSolver(cfg Config) (Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid solver config: %w", err)
	}
	return &GonumSolver{cfg: cfg}, nil
}

func (s *GonumSolver) Name() string {
	return "gonum-" + s.cfg.LineSearch.String()
}

func (s *GonumSolver) Run() (*Result, error) {
	var evalErr error

	fn := func(p []float64) float64 {
		if evalErr != nil {
			return math.Inf(1)
		}
		v, err := s.penalized(p)
		if err != nil {
			evalErr = err
			return math.Inf(1)
		}
		return v
	}

	problem := optimize.Problem{
		Func: fn,
		Status: func() (optimize.Status, error) {
			if evalErr != nil {
				return optimize.Failure, evalErr
			}
			return optimize.NotTerminated, nil
		},
	}

	var method optimize.Method
	switch s.cfg.LineSearch {
	case LineSearchModified:
		method = &optimize.NelderMead{}
	default:
		method = &optimize.LBFGS{}
	}

	initial := append([]float64(nil), s.cfg.Initial...)
	utils.ClampVector(initial, s.cfg.Lower, s.cfg.Upper)

	res, err := optimize.Minimize(problem, initial, nil, method)
	if evalErr != nil {
		return nil, evalErr
	}
	if err != nil {
		return nil, fmt.Errorf("solver run failed: %w", err)
	}

	return &Result{
		X:           res.X,
		F:           res.F,
		Termination: res.Status.String(),
	}, nil
}

// penalized evaluates constraints first and the objective second, mirroring
// the evaluation order of the warm-up pair, and adds quadratic penalties for
// violated constraints and out-of-bound coordinates.
func (s *GonumSolver) penalized(p []float64) (float64, error) {
	penalty := 0.0
	for j := range p {
		if d := s.cfg.Lower[j] - p[j]; d > 0 {
			penalty += d * d
		}
		if d := p[j] - s.cfg.Upper[j]; d > 0 {
			penalty += d * d
		}
	}

	x := append([]float64(nil), p...)
	utils.ClampVector(x, s.cfg.Lower, s.cfg.Upper)

	if s.cfg.Constraints != nil {
		g, err := s.cfg.Constraints(x)
		if err != nil {
			return 0, err
		}
		for _, v := range g {
			if v > 0 {
				penalty += v * v
			}
		}
	}

	f, err := s.cfg.Objective(x)
	if err != nil {
		return 0, err
	}
	return f + penaltyWeight*penalty, nil
}
