package suite

import (
	"fmt"

	"github.com/blackbox-bench/harness-core/internal/observer"
)

// DefaultDimensions is the standard dimension ladder of the built-in suites
var DefaultDimensions = []int{2, 3, 5, 10, 20, 40}

// BenchSuite is the built-in Suite implementation
type BenchSuite struct {
	name       string
	dimensions []int
	instances  int
	functions  []functionSpec

	next int
}

// New creates a built-in suite. Supported names are "toybox" (unconstrained,
// single objective) and "toybox-constrained" (single objective with linear
// constraints). Dimensions defaults to DefaultDimensions when empty.
func New(name string, dimensions []int, instances int) (*BenchSuite, error) {
	var functions []functionSpec
	switch name {
	case "toybox":
		functions = toyboxFunctions
	case "toybox-constrained":
		functions = toyboxConstrainedFunctions
	default:
		return nil, fmt.Errorf("unknown suite %q", name)
	}

	if len(dimensions) == 0 {
		dimensions = DefaultDimensions
	}
	for _, d := range dimensions {
		if d <= 0 {
			return nil, fmt.Errorf("suite dimension must be positive, got %d", d)
		}
	}
	if instances <= 0 {
		return nil, fmt.Errorf("instances must be positive, got %d", instances)
	}

	return &BenchSuite{
		name:       name,
		dimensions: append([]int(nil), dimensions...),
		instances:  instances,
		functions:  functions,
	}, nil
}

// Name returns the suite name
func (s *BenchSuite) Name() string {
	return s.name
}

func (s *BenchSuite) NumberOfProblems() int {
	return len(s.dimensions) * len(s.functions) * s.instances
}

// DecodeProblemIndex splits a flat index into zero-based function, dimension
// and instance indices. The stream is dimension-major: all functions and
// instances of one dimension come before the next dimension.
func (s *BenchSuite) DecodeProblemIndex(index int) (functionIdx, dimensionIdx, instanceIdx int) {
	perDimension := len(s.functions) * s.instances
	dimensionIdx = index / perDimension
	rem := index % perDimension
	functionIdx = rem / s.instances
	instanceIdx = rem % s.instances
	return
}

// NextProblem returns the next problem in the stream with the observer
// attached, or nil once the suite is exhausted.
func (s *BenchSuite) NextProblem(obs observer.Observer) Problem {
	if s.next >= s.NumberOfProblems() {
		return nil
	}
	fnIdx, dimIdx, instIdx := s.DecodeProblemIndex(s.next)
	s.next++

	p := newBenchProblem(fnIdx+1, s.dimensions[dimIdx], instIdx+1, s.functions[fnIdx])
	if obs != nil {
		obs.ObserveProblem(p.ID(), p.Dimension())
		p.obs = obs
	}
	return p
}
