// Package driver runs a search strategy over every problem of a benchmark
// suite, handling the function-range filter, per-problem budgets, restarts
// and the consistency checks on the evaluation counters.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blackbox-bench/harness-core/internal/observer"
	"github.com/blackbox-bench/harness-core/internal/search"
	"github.com/blackbox-bench/harness-core/internal/suite"
	"github.com/blackbox-bench/harness-core/internal/timing"
	"github.com/blackbox-bench/harness-core/pkg/logger"
)

// ErrEvaluationCountRegression signals that a problem's evaluation counters
// decreased across a strategy call. That breaks the evaluation pipeline's
// contract, so the whole run aborts.
var ErrEvaluationCountRegression = errors.New("evaluation counters decreased")

// Options selects which problems the driver accepts and how hard it works
// on each.
type Options struct {
	// BudgetMultiplier scales the per-problem budget: budget = dimension * multiplier
	BudgetMultiplier int
	// IndependentRestarts is the number of extra strategy invocations allowed
	// per problem while budget remains
	IndependentRestarts int
	// FirstFunction and LastFunction bound the accepted function ids, inclusive
	FirstFunction int
	LastFunction  int
	// InstancesPerFunction is the suite's instance count, needed to translate
	// the function range into a problem-counter window
	InstancesPerFunction int
}

func (o Options) validate() error {
	if o.BudgetMultiplier < 1 {
		return fmt.Errorf("budget multiplier must be at least 1, got %d", o.BudgetMultiplier)
	}
	if o.IndependentRestarts < 0 {
		return fmt.Errorf("independent restarts must not be negative, got %d", o.IndependentRestarts)
	}
	if o.FirstFunction < 1 || o.LastFunction < o.FirstFunction {
		return fmt.Errorf("invalid function range [%d, %d]", o.FirstFunction, o.LastFunction)
	}
	if o.InstancesPerFunction < 1 {
		return fmt.Errorf("instances per function must be at least 1, got %d", o.InstancesPerFunction)
	}
	return nil
}

// Driver owns the experiment loop. It holds exclusive access to the active
// problem and hands it to exactly one strategy invocation at a time.
type Driver struct {
	suite    suite.Suite
	observer observer.Observer
	strategy search.Strategy
	tracker  *timing.Tracker
	opts     Options
	output   io.Writer
}

// New creates a driver. The tracker may be shared with the caller for
// output redirection; the end-of-suite marker goes to stdout unless
// WithOutput redirects it.
func New(s suite.Suite, obs observer.Observer, strategy search.Strategy, tracker *timing.Tracker, opts Options) (*Driver, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid driver options: %w", err)
	}
	return &Driver{
		suite:    s,
		observer: obs,
		strategy: strategy,
		tracker:  tracker,
		opts:     opts,
		output:   os.Stdout,
	}, nil
}

// WithOutput redirects the end-of-suite marker.
func (d *Driver) WithOutput(w io.Writer) *Driver {
	d.output = w
	return d
}

// Run iterates the problem stream until it is exhausted. Problems outside
// the configured function range are skipped; accepted problems run through
// runProblem and feed the timing tracker. Only an evaluation-count
// regression aborts the run.
func (d *Driver) Run() error {
	// cnt counts problems seen at the current dimension, across functions
	// and instances. It resets on every dimension change, which maps the
	// configured function range onto a window of counter values.
	cnt := 1
	prevDimension := 0

	for {
		p := d.suite.NextProblem(d.observer)
		if p == nil {
			break
		}

		dimension := p.Dimension()
		if dimension != prevDimension {
			cnt = 1
		}
		prevDimension = dimension

		lo := (d.opts.FirstFunction - 1) * d.opts.InstancesPerFunction
		hi := d.opts.LastFunction*d.opts.InstancesPerFunction + 1
		if !(lo < cnt && cnt < hi) {
			cnt++
			continue
		}

		if err := d.runProblem(p); err != nil {
			return err
		}
		d.tracker.Observe(dimension, p.Evaluations())
		cnt++
	}

	if _, err := fmt.Fprintf(d.output, "\n***** End of suite *****\n"); err != nil {
		return fmt.Errorf("writing end-of-suite marker: %w", err)
	}
	return d.tracker.Finalize()
}

// runProblem invokes the strategy on one problem at least once, and up to
// 1 + IndependentRestarts times while budget remains and the target is
// unmet.
func (d *Driver) runProblem(p suite.Problem) error {
	budget := p.Dimension() * d.opts.BudgetMultiplier

	for run := 1; run <= 1+d.opts.IndependentRestarts; run++ {
		done := p.Evaluations() + p.EvaluationsConstraints()
		remaining := budget - done

		if (p.FinalTargetHit() && p.NumberOfConstraints() == 0) || remaining <= 0 {
			break
		}

		if err := d.strategy.Run(p, remaining); err != nil {
			logger.Warn("strategy rejected problem",
				"strategy", d.strategy.Name(), "problem", p.ID(), "error", err)
			break
		}

		// A strategy call that performed no objective evaluations is a
		// malfunction: warn and stop restarting this problem.
		if p.Evaluations() == done {
			logger.Warn("budget has not been exhausted",
				"problem", p.ID(), "done", done, "budget", budget)
			break
		}
		if p.Evaluations()+p.EvaluationsConstraints() < done {
			return fmt.Errorf("problem %s after run %d: %w", p.ID(), run, ErrEvaluationCountRegression)
		}
	}
	return nil
}
