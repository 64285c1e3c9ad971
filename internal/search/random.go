package search

import (
	"fmt"

	"github.com/blackbox-bench/harness-core/pkg/utils"
)

// RandomSearch samples points uniformly within the bounds until the budget
// is spent. It carries no state between iterations; with a fixed seed the
// sampled sequence is fully reproducible.
type RandomSearch struct {
	rng *utils.RandSource
}

// NewRandomSearch creates a random search strategy drawing from rng
func NewRandomSearch(rng *utils.RandSource) *RandomSearch {
	return &RandomSearch{rng: rng}
}

func (s *RandomSearch) Name() string {
	return "random"
}

// Run performs exactly budget evaluation rounds. Each round evaluates the
// objectives at one uniform sample and, if the problem has constraints, the
// constraints at the same point.
func (s *RandomSearch) Run(ev Evaluator, budget int) error {
	if budget <= 0 {
		return fmt.Errorf("random search requires a positive budget, got %d", budget)
	}

	dimension := ev.Dimension()
	lower, upper := ev.LowerBounds(), ev.UpperBounds()
	hasConstraints := ev.NumberOfConstraints() > 0

	x := make([]float64, dimension)
	for i := 0; i < budget; i++ {
		s.rng.UniformVector(lower, upper, x)
		ev.EvaluateObjective(x)
		if hasConstraints {
			ev.EvaluateConstraints(x)
		}
	}
	return nil
}
