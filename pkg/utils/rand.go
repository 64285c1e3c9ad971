package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seeded uniform random number generator. A fixed seed makes
// every sampling-based strategy reproducible run to run.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed falls back to the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// NormFloat64 returns a normally distributed random number with mean and stddev
func (r *RandSource) NormFloat64(mean, stddev float64) float64 {
	return r.rng.NormFloat64()*stddev + mean
}

// UniformVector fills dst with coordinates sampled uniformly in
// [lower[j], upper[j]) and returns it. dst must have the same length as the
// bound vectors.
func (r *RandSource) UniformVector(lower, upper, dst []float64) []float64 {
	for j := range dst {
		dst[j] = r.UniformFloat64(lower[j], upper[j])
	}
	return dst
}
