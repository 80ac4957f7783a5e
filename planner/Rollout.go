package planner

import (
	"math"

	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/simulator"
)

// rollout runs a Monte-Carlo trajectory from state (mutated in place) to
// depth p.maxDepth, accumulating discounted reward, using whichever of the
// four rollout-knowledge levels is configured (spec §4.3).
func (p *Planner) rollout(state simulator.State, h *history.History, depth int) float64 {
	if depth >= p.maxDepth {
		return 0
	}

	candidates := p.knowledgeActions(p.params.RolloutKnowledge, state, h)
	if len(candidates) == 0 {
		return 0
	}

	var action int
	switch p.params.RolloutKnowledge {
	case PGS, PGSShaping:
		action = p.pgsBestAction(state, h, candidates)
	default:
		action = candidates[p.src.UniformIndex(len(candidates))]
	}

	result := p.step(state, action)
	h.Add(action, result.Observation)

	if result.Terminal {
		return result.Reward
	}

	future := p.rollout(state, h, depth+1)
	return result.Reward + p.sim.Discount()*future
}

// pgsBestAction scores each candidate by one-step simulation evaluated with
// Pgs/PgsRO and returns an arg-max, breaking ties uniformly among every
// candidate that ties for the best score (spec §4.3 rollout-knowledge level
// 3/4).
func (p *Planner) pgsBestAction(state simulator.State, h *history.History, candidates []int) int {
	oldPhi := p.sim.Pgs(state)

	best := math.Inf(-1)
	var bestActions []int
	for _, a := range candidates {
		trial := p.sim.Copy(state)
		p.sim.Step(trial, a)
		newPhi := p.sim.PgsRO(state, trial, a, oldPhi)
		p.sim.Free(trial)

		if newPhi > best {
			best = newPhi
			bestActions = []int{a}
		} else if newPhi == best {
			bestActions = append(bestActions, a)
		}
	}
	return bestActions[p.src.UniformIndex(len(bestActions))]
}
