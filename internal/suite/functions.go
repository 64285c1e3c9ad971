package suite

import "math"

// objectiveFunc evaluates a shifted test function at z = x - shift. Every
// function has its optimum 0 at z = 0.
type objectiveFunc func(z []float64) float64

type functionSpec struct {
	name        string
	objective   objectiveFunc
	constraints int
}

func sphere(z []float64) float64 {
	s := 0.0
	for _, v := range z {
		s += v * v
	}
	return s
}

func ellipsoid(z []float64) float64 {
	n := len(z)
	s := 0.0
	for i, v := range z {
		exp := 0.0
		if n > 1 {
			exp = float64(i) / float64(n-1)
		}
		s += math.Pow(1e6, exp) * v * v
	}
	return s
}

func rastrigin(z []float64) float64 {
	s := 10.0 * float64(len(z))
	for _, v := range z {
		s += v*v - 10.0*math.Cos(2.0*math.Pi*v)
	}
	return s
}

func rosenbrock(z []float64) float64 {
	s := 0.0
	for i := 0; i+1 < len(z); i++ {
		w0 := z[i] + 1.0
		w1 := z[i+1] + 1.0
		d := w1 - w0*w0
		s += 100.0*d*d + z[i]*z[i]
	}
	return s
}

// toyboxFunctions is the unconstrained function set
var toyboxFunctions = []functionSpec{
	{name: "sphere", objective: sphere},
	{name: "ellipsoid", objective: ellipsoid},
	{name: "rastrigin", objective: rastrigin},
	{name: "rosenbrock", objective: rosenbrock},
}

// toyboxConstrainedFunctions pairs each objective with linear constraints
var toyboxConstrainedFunctions = []functionSpec{
	{name: "sphere", objective: sphere, constraints: 1},
	{name: "ellipsoid", objective: ellipsoid, constraints: 2},
	{name: "sphere", objective: sphere, constraints: 3},
	{name: "rastrigin", objective: rastrigin, constraints: 2},
}
