package search

import (
	"fmt"
	"math"
)

// GridSearch enumerates an axis-aligned grid over the bounds. The node
// coordinates and the enumeration order are a pure function of dimension,
// bounds and budget, so a run is deterministic and restartable.
type GridSearch struct{}

// NewGridSearch creates a grid search strategy
func NewGridSearch() *GridSearch {
	return &GridSearch{}
}

func (s *GridSearch) Name() string {
	return "grid"
}

// MaxNodes returns the largest per-dimension node index for the given budget,
// floor(budget^(1/dimension)) - 1, clamped to at least 1. The clamp keeps a
// tiny budget from producing a zero-step degenerate grid; with maxNodes = 1
// only the corner points reachable within budget are evaluated.
func MaxNodes(budget, dimension int) int {
	maxNodes := int(math.Floor(math.Pow(float64(budget), 1.0/float64(dimension)))) - 1
	if maxNodes < 1 {
		maxNodes = 1
	}
	return maxNodes
}

// Run walks the grid as a mixed-radix odometer: dimension 0 increments
// fastest; on overflow the index resets and the carry moves to the next
// dimension. Enumeration stops when the carry propagates past the last
// dimension or the evaluation count reaches budget, whichever comes first.
func (s *GridSearch) Run(ev Evaluator, budget int) error {
	if budget <= 0 {
		return fmt.Errorf("grid search requires a positive budget, got %d", budget)
	}
	if ev.NumberOfConstraints() > 0 {
		return fmt.Errorf("grid search requires an unconstrained problem, got %d constraints",
			ev.NumberOfConstraints())
	}

	dimension := ev.Dimension()
	lower, upper := ev.LowerBounds(), ev.UpperBounds()

	maxNodes := MaxNodes(budget, dimension)
	nodes := make([]int, dimension)
	step := make([]float64, dimension)
	for j := 0; j < dimension; j++ {
		step[j] = (upper[j] - lower[j]) / float64(maxNodes)
	}

	x := make([]float64, dimension)
	for evaluations := 0; evaluations < budget; evaluations++ {
		for j := 0; j < dimension; j++ {
			x[j] = lower[j] + step[j]*float64(nodes[j])
		}
		ev.EvaluateObjective(x)

		if !advance(nodes, maxNodes) {
			break
		}
	}
	return nil
}

// advance moves the odometer to the next grid node. It returns false when
// every index is at maxNodes, i.e. the grid is exhausted.
func advance(nodes []int, maxNodes int) bool {
	for j := range nodes {
		if nodes[j] < maxNodes {
			nodes[j]++
			for i := 0; i < j; i++ {
				nodes[i] = 0
			}
			return true
		}
	}
	return false
}
