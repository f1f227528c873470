package core

import (
	"math/rand/v2"
	"time"
)

// RandomSource yields independent Bernoulli trials.
type RandomSource interface {
	// Chance returns true with probability p.
	Chance(p float64) bool
}

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the wall clock. Sequences differ
// between runs.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Chance returns true with probability p. Values outside [0, 1] are clamped.
func (r *RNG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}
