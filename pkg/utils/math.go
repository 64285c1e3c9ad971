package utils

// Clamp limits x to the interval [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampVector limits every coordinate of x to its bound interval, in place,
// and returns x
func ClampVector(x, lower, upper []float64) []float64 {
	for j := range x {
		x[j] = Clamp(x[j], lower[j], upper[j])
	}
	return x
}
