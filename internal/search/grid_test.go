package search

import (
	"math"
	"testing"
)

func TestMaxNodes(t *testing.T) {
	cases := []struct {
		budget, dimension, want int
	}{
		{25, 2, 4},
		{16, 2, 3},
		{100, 2, 9},
		{4, 2, 1},
		{3, 2, 1},  // floor(sqrt(3)) - 1 = 0, clamped
		{1, 5, 1},  // smallest possible budget, clamped
		{10, 1, 9}, // one dimension: budget^(1/1) = budget
		{7, 1, 6},
		{5, 3, 1}, // 5^(1/3) ~ 1.7, clamped
	}
	for _, c := range cases {
		if got := MaxNodes(c.budget, c.dimension); got != c.want {
			t.Errorf("MaxNodes(%d, %d) = %d, want %d", c.budget, c.dimension, got, c.want)
		}
	}
}

func TestGridSearchEvaluationCount(t *testing.T) {
	cases := []struct {
		dimension, budget int
	}{
		{1, 10},
		{2, 25},
		{2, 30},
		{2, 3},
		{3, 5},
		{3, 100},
	}
	for _, c := range cases {
		ev := newFakeEvaluator(c.dimension, 0, -5, 5)
		s := NewGridSearch()
		if err := s.Run(ev, c.budget); err != nil {
			t.Fatalf("dim %d budget %d: %v", c.dimension, c.budget, err)
		}

		maxNodes := MaxNodes(c.budget, c.dimension)
		gridSize := int(math.Pow(float64(maxNodes+1), float64(c.dimension)))
		want := c.budget
		if gridSize < want {
			want = gridSize
		}
		if got := ev.Evaluations(); got != want {
			t.Errorf("dim %d budget %d: expected %d evaluations, got %d",
				c.dimension, c.budget, want, got)
		}
	}
}

func TestGridSearchBounds(t *testing.T) {
	ev := newFakeEvaluator(3, 0, -2, 8)
	s := NewGridSearch()
	if err := s.Run(ev, 64); err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertWithinBounds(t, ev.objectivePoints, ev.lower, ev.upper)
}

func TestGridSearchDeterministic(t *testing.T) {
	run := func() [][]float64 {
		ev := newFakeEvaluator(2, 0, -5, 5)
		if err := NewGridSearch().Run(ev, 30); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return ev.objectivePoints
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("point %d coordinate %d differs: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestGridSearchExactFiveByFive(t *testing.T) {
	// dimension=2, bounds [-5,5]^2, budget 25: maxNodes = 4, step 2.5,
	// a 5x5 grid exactly exhausting the budget.
	ev := newFakeEvaluator(2, 0, -5, 5)
	if err := NewGridSearch().Run(ev, 25); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if ev.Evaluations() != 25 {
		t.Fatalf("expected 25 evaluations, got %d", ev.Evaluations())
	}

	first := ev.objectivePoints[0]
	if first[0] != -5 || first[1] != -5 {
		t.Errorf("first node must be the lower corner, got %v", first)
	}
	second := ev.objectivePoints[1]
	if second[0] != -2.5 || second[1] != -5 {
		t.Errorf("dimension 0 must increment fastest, got %v", second)
	}
	last := ev.objectivePoints[24]
	if last[0] != 5 || last[1] != 5 {
		t.Errorf("last node must be the upper corner, got %v", last)
	}

	// All 25 nodes are distinct.
	seen := map[[2]float64]bool{}
	for _, p := range ev.objectivePoints {
		key := [2]float64{p[0], p[1]}
		if seen[key] {
			t.Fatalf("node %v enumerated twice", p)
		}
		seen[key] = true
	}
}

func TestGridSearchSmallBudgetClamp(t *testing.T) {
	// dimension=3, budget=5: maxNodes clamps to 1, so the grid is the 8
	// corner points and only the first 5 are reachable within budget.
	ev := newFakeEvaluator(3, 0, -5, 5)
	if err := NewGridSearch().Run(ev, 5); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ev.Evaluations() != 5 {
		t.Fatalf("expected 5 evaluations, got %d", ev.Evaluations())
	}
	for i, p := range ev.objectivePoints {
		for j := range p {
			if p[j] != -5 && p[j] != 5 {
				t.Fatalf("point %d (%v) is not a corner of the box", i, p)
			}
		}
	}
}

func TestGridSearchRejectsConstrainedProblem(t *testing.T) {
	ev := newFakeEvaluator(2, 1, -5, 5)
	if err := NewGridSearch().Run(ev, 25); err == nil {
		t.Fatal("expected error for constrained problem")
	}
	if ev.Evaluations() != 0 {
		t.Fatalf("rejected run must not evaluate, got %d", ev.Evaluations())
	}
}

func TestGridSearchRejectsNonPositiveBudget(t *testing.T) {
	ev := newFakeEvaluator(2, 0, -5, 5)
	if err := NewGridSearch().Run(ev, 0); err == nil {
		t.Fatal("expected error for zero budget")
	}
}
