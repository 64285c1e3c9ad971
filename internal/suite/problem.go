package suite

import (
	"fmt"

	"github.com/blackbox-bench/harness-core/internal/observer"
	"github.com/blackbox-bench/harness-core/pkg/utils"
)

// finalTarget is the precision below which the optimum counts as reached
const finalTarget = 1e-8

// benchProblem is the built-in Problem implementation: a shifted test
// function with optional linear constraints, evaluated inside a box.
type benchProblem struct {
	id        string
	dimension int
	spec      functionSpec

	lower, upper []float64
	shift        []float64
	// one row of constraint coefficients per constraint; a point x is
	// feasible when row . (x - shift) <= 0 for every row
	consRows [][]float64

	obs observer.Observer

	evaluations            int
	evaluationsConstraints int
	bestObserved           float64
	evaluated              bool
}

func newBenchProblem(function int, dimension int, instance int, spec functionSpec) *benchProblem {
	p := &benchProblem{
		id:        fmt.Sprintf("f%02d_d%02d_i%02d", function, dimension, instance),
		dimension: dimension,
		spec:      spec,
		lower:     make([]float64, dimension),
		upper:     make([]float64, dimension),
		shift:     make([]float64, dimension),
	}
	for j := 0; j < dimension; j++ {
		p.lower[j] = -5.0
		p.upper[j] = 5.0
	}

	// Instance offsets and constraint coefficients are derived from a
	// deterministic seed so a problem is fully reproducible from its
	// (function, dimension, instance) triple.
	seed := int64(function)*1_000_003 + int64(dimension)*10_007 + int64(instance)
	rng := utils.NewRandSource(seed)
	for j := 0; j < dimension; j++ {
		p.shift[j] = rng.UniformFloat64(-4.0, 4.0)
	}
	p.consRows = make([][]float64, spec.constraints)
	for i := range p.consRows {
		row := make([]float64, dimension)
		for j := range row {
			row[j] = rng.UniformFloat64(-1.0, 1.0)
		}
		p.consRows[i] = row
	}

	return p
}

func (p *benchProblem) ID() string                { return p.id }
func (p *benchProblem) Dimension() int            { return p.dimension }
func (p *benchProblem) NumberOfObjectives() int   { return 1 }
func (p *benchProblem) NumberOfConstraints() int  { return len(p.consRows) }
func (p *benchProblem) LowerBounds() []float64    { return p.lower }
func (p *benchProblem) UpperBounds() []float64    { return p.upper }
func (p *benchProblem) Evaluations() int          { return p.evaluations }
func (p *benchProblem) EvaluationsConstraints() int { return p.evaluationsConstraints }

// InitialSolution is the center of the box
func (p *benchProblem) InitialSolution() []float64 {
	x := make([]float64, p.dimension)
	for j := range x {
		x[j] = 0.5 * (p.lower[j] + p.upper[j])
	}
	return x
}

func (p *benchProblem) FinalTargetHit() bool {
	return p.evaluated && p.bestObserved <= finalTarget
}

func (p *benchProblem) EvaluateObjective(x []float64) []float64 {
	z := make([]float64, p.dimension)
	for j := range z {
		z[j] = x[j] - p.shift[j]
	}
	y := []float64{p.spec.objective(z)}

	p.evaluations++
	if !p.evaluated || y[0] < p.bestObserved {
		p.bestObserved = y[0]
		p.evaluated = true
	}
	if p.obs != nil {
		p.obs.Record(observer.Evaluation{
			ProblemID: p.id,
			Kind:      observer.KindObjective,
			Ordinal:   p.evaluations,
			X:         append([]float64(nil), x...),
			Y:         append([]float64(nil), y...),
		})
	}
	return y
}

func (p *benchProblem) EvaluateConstraints(x []float64) []float64 {
	y := make([]float64, len(p.consRows))
	for i, row := range p.consRows {
		g := 0.0
		for j := range row {
			g += row[j] * (x[j] - p.shift[j])
		}
		y[i] = g
	}

	p.evaluationsConstraints++
	if p.obs != nil {
		p.obs.Record(observer.Evaluation{
			ProblemID: p.id,
			Kind:      observer.KindConstraint,
			Ordinal:   p.evaluationsConstraints,
			X:         append([]float64(nil), x...),
			Y:         append([]float64(nil), y...),
		})
	}
	return y
}
