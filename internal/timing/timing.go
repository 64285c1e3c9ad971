// Package timing aggregates per-dimension evaluation throughput across a
// heterogeneous problem stream and reports it at the end of a run.
package timing

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blackbox-bench/harness-core/pkg/utils"
)

// noDimension marks the idle state, before the first observation or after
// a flush with no follow-up problem.
const noDimension = -1

// Tracker is a small state machine fed once per completed problem. Problems
// arrive grouped by dimension; whenever the dimension changes the tracker
// closes the current segment and records a seconds-per-evaluation summary
// for the dimension just finished.
type Tracker struct {
	now    func() time.Time
	output io.Writer

	previousDimension     int
	cumulativeEvaluations int
	segmentStart          time.Time
	overallStart          time.Time
	summaries             []string
}

// NewTracker creates an idle tracker writing its report to stdout.
func NewTracker() *Tracker {
	return &Tracker{
		now:               time.Now,
		output:            os.Stdout,
		previousDimension: noDimension,
	}
}

// WithClock replaces the wall-clock source. Used by tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// WithOutput redirects the final report.
func (t *Tracker) WithOutput(w io.Writer) *Tracker {
	t.output = w
	return t
}

// Observe records a completed problem of the given dimension and its logged
// evaluation count. A dimension change flushes the finished segment and
// starts a new one; otherwise the evaluations accumulate into the current
// segment.
func (t *Tracker) Observe(dimension, evaluations int) {
	if t.overallStart.IsZero() {
		t.overallStart = t.now()
	}
	if t.previousDimension == dimension {
		t.cumulativeEvaluations += evaluations
		return
	}

	t.flush()
	t.previousDimension = dimension
	t.cumulativeEvaluations = evaluations
	t.segmentStart = t.now()
}

// flush closes the current segment, appending its summary line if it saw
// any evaluations.
func (t *Tracker) flush() {
	if t.cumulativeEvaluations <= 0 {
		return
	}
	elapsed := t.now().Sub(t.segmentStart).Seconds()
	perEvaluation := elapsed / float64(t.cumulativeEvaluations)
	t.summaries = append(t.summaries,
		fmt.Sprintf("d=%d done in %.2e seconds/evaluation\n", t.previousDimension, perEvaluation))
}

// Finalize flushes the last open segment and writes the report: one line per
// dimension group followed by the total wall-clock time since the first
// observed problem. The tracker returns to the idle state.
func (t *Tracker) Finalize() error {
	t.flush()
	t.previousDimension = noDimension
	t.cumulativeEvaluations = 0

	var elapsed time.Duration
	if !t.overallStart.IsZero() {
		elapsed = t.now().Sub(t.overallStart)
	}

	if _, err := fmt.Fprintln(t.output); err != nil {
		return fmt.Errorf("writing timing report: %w", err)
	}
	for _, line := range t.summaries {
		if _, err := io.WriteString(t.output, line); err != nil {
			return fmt.Errorf("writing timing report: %w", err)
		}
	}
	if _, err := fmt.Fprintf(t.output, "Total elapsed time: %s\n", utils.FormatElapsed(elapsed)); err != nil {
		return fmt.Errorf("writing timing report: %w", err)
	}
	return nil
}
