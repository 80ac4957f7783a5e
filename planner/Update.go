package planner

import (
	"github.com/dfki-ni/rageplan/belief"
	"github.com/dfki-ni/rageplan/simulator"
)

// Update applies one real (action, observation) step to the planner's
// belief, descending the tree to the matching child and reseeding its
// belief by filtering (spec §4.3 step 1) and, when too few particles
// survive, by local-move transformations (step 2). Returns OutOfParticles
// when no consistent particle can be produced (step 3).
func (p *Planner) Update(action, observation int, terminal bool) UpdateStatus {
	p.hist.Add(action, observation)

	newBelief := belief.New()

	// Step 1: filter. Keep particles whose simulated step under the
	// executed action produced the real observation; each survivor is
	// advanced to its post-action state.
	p.root.Belief.Each(func(particle simulator.State) {
		trial := p.sim.Copy(particle)
		result := p.sim.Step(trial, action)
		if result.Observation == observation {
			newBelief.Add(trial)
		} else {
			p.sim.Free(trial)
		}
	})

	// Step 2: transform. Generate replacements by repeatedly drawing a
	// particle from the prior belief, stepping it, and perturbing it with
	// LocalMove until it is consistent with the real observation, or until
	// MaxAttempts is exhausted.
	numTransforms := p.params.NumTransforms()
	maxAttempts := p.params.MaxAttempts()
	for attempts := 0; newBelief.Size() < numTransforms && attempts < maxAttempts; attempts++ {
		base, ok := p.root.Belief.Sample(p.src)
		if !ok {
			break
		}
		trial := p.sim.Copy(base)
		p.sim.Step(trial, action)
		if p.sim.LocalMove(trial, p.hist, observation) {
			newBelief.Add(trial)
		} else {
			p.sim.Free(trial)
		}
	}

	// Release the prior root's particles; ownership of survivors has moved
	// to newBelief via fresh copies.
	p.root.Belief.Clear(p.sim)

	// Descend to the matching child, carrying over any tree statistics
	// accumulated there during search, then overwrite its belief.
	an, ok := p.root.Actions[action]
	var child *BeliefNode
	if ok {
		child = an.Children[observation]
	}
	if child == nil {
		child = newBeliefNode()
	}
	child.Belief.Clear(p.sim)
	child.Belief = newBelief
	p.root = child

	switch {
	case terminal:
		return Terminal
	case newBelief.Size() == 0:
		return OutOfParticles
	default:
		return NonTerminal
	}
}
