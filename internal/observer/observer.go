// Package observer persists evaluation traces. The harness core never calls
// an observer directly: problems record every point they evaluate as a side
// effect, so a strategy cannot forget to log.
package observer

// Kind distinguishes objective from constraint evaluations
type Kind string

const (
	KindObjective  Kind = "objective"
	KindConstraint Kind = "constraint"
)

// Evaluation is one logged point evaluation
type Evaluation struct {
	ProblemID string
	Kind      Kind
	Ordinal   int // 1-based evaluation count of this kind on this problem
	X         []float64
	Y         []float64
}

// Observer receives the evaluation stream of an experiment run
type Observer interface {
	// ObserveProblem announces that subsequent evaluations belong to the
	// given problem
	ObserveProblem(problemID string, dimension int)
	// Record logs a single evaluation
	Record(ev Evaluation)
	// Close flushes and releases the backend
	Close() error
}

// NopObserver discards everything. Useful for dry runs and tests.
type NopObserver struct{}

func (NopObserver) ObserveProblem(string, int) {}
func (NopObserver) Record(Evaluation)          {}
func (NopObserver) Close() error               { return nil }
