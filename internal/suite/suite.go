// Package suite supplies the benchmark problem stream. The harness core only
// depends on the Problem and Suite interfaces; the built-in toybox suite
// exists so the binary and the integration tests have something to run
// against without an external provider.
package suite

import "github.com/blackbox-bench/harness-core/internal/observer"

// Problem is one parametrized benchmark instance (function id x dimension x
// instance). Evaluations go through the problem so that counting and trace
// logging happen as side effects, never in the caller.
type Problem interface {
	// ID identifies the problem within its suite, e.g. "f03_d05_i07"
	ID() string
	Dimension() int
	NumberOfObjectives() int
	NumberOfConstraints() int
	// LowerBounds and UpperBounds have length Dimension
	LowerBounds() []float64
	UpperBounds() []float64
	// InitialSolution is a feasible starting point inside the bounds
	InitialSolution() []float64
	// Evaluations counts objective evaluations performed so far
	Evaluations() int
	// EvaluationsConstraints counts constraint evaluations performed so far
	EvaluationsConstraints() int
	// FinalTargetHit reports whether the best objective value seen reached
	// the problem's final target
	FinalTargetHit() bool
	// EvaluateObjective evaluates the objectives at x, increments the
	// objective evaluation counter and logs the point
	EvaluateObjective(x []float64) []float64
	// EvaluateConstraints evaluates the constraints at x, increments the
	// constraint evaluation counter and logs the point
	EvaluateConstraints(x []float64) []float64
}

// Suite yields problems grouped by ascending dimension, then function id,
// then instance. The iteration order is stable.
type Suite interface {
	// NextProblem returns the next problem with the observer attached, or
	// nil when the stream is exhausted
	NextProblem(obs observer.Observer) Problem
	// NumberOfProblems returns the total problem count of the suite
	NumberOfProblems() int
	// DecodeProblemIndex splits a flat problem index into zero-based
	// function, dimension and instance indices
	DecodeProblemIndex(index int) (functionIdx, dimensionIdx, instanceIdx int)
}
