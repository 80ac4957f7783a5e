// Package belief implements the particle belief state: a multiset of owned
// particles with O(1) uniform sampling and insertion (spec §4.1).
package belief

import (
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
)

// State is a multiset of owned simulator.State particles. The zero value is
// an empty State ready to use. No ordering guarantees are made between Add
// calls and Sample draws.
type State struct {
	particles []simulator.State
}

// New returns an empty belief State.
func New() *State {
	return &State{}
}

// Add inserts a particle, taking ownership of it.
func (b *State) Add(p simulator.State) {
	b.particles = append(b.particles, p)
}

// Sample returns a uniformly drawn, borrowed particle. The caller must not
// retain or mutate the returned value beyond the current rollout; callers
// that need an owned copy should call sim.Copy on the result.
func (b *State) Sample(src *rng.Source) (simulator.State, bool) {
	if len(b.particles) == 0 {
		return nil, false
	}
	i := src.UniformIndex(len(b.particles))
	return b.particles[i], true
}

// Size returns the number of particles currently held.
func (b *State) Size() int {
	return len(b.particles)
}

// Clear discards every particle, returning each to sim's pool.
func (b *State) Clear(sim simulator.Simulator) {
	for _, p := range b.particles {
		sim.Free(p)
	}
	b.particles = nil
}

// Copy returns a deep copy of b: every particle is copied via sim.Copy.
func (b *State) Copy(sim simulator.Simulator) *State {
	cp := &State{particles: make([]simulator.State, len(b.particles))}
	for i, p := range b.particles {
		cp.particles[i] = sim.Copy(p)
	}
	return cp
}

// Each iterates over every particle in an unspecified order.
func (b *State) Each(fn func(simulator.State)) {
	for _, p := range b.particles {
		fn(p)
	}
}
