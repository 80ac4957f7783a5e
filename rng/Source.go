// Package rng implements the planner's single seedable random source,
// the Bernoulli/uniform draws the simulators route through it, a running
// mean/variance accumulator, and pooled particle allocation.
package rng

import "math/rand"

// Source is the single seedable random number generator a Planner and the
// Simulator it drives must share. Routing every stochastic draw through one
// Source keeps a run reproducible from its seed, instead of relying on
// process-wide rand state.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewSource(int64(seed)))}
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform draw in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// UniformIndex returns a uniform draw among a slice's indices, or -1 if the
// slice is empty.
func (s *Source) UniformIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}

// Shuffle performs an in-place Fisher-Yates shuffle using the Source.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
