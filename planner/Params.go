package planner

import "time"

// Params configures one Planner, translating the CLI/paramfile knobs of
// spec §6 (--minDoubles/--maxDoubles/--timeout/--treeKnowledge/
// --rolloutKnowledge/--fTable) into the quantities the search loop consumes.
type Params struct {
	// SimDoubles determines NumSimulations = NumStartStates = 2^SimDoubles.
	SimDoubles int

	// TransformDoubles determines NumTransforms = 2^(SimDoubles+TransformDoubles),
	// floored at 1.
	TransformDoubles int

	// TransformAttempts scales MaxAttempts = NumTransforms * TransformAttempts.
	TransformAttempts int

	// Timeout bounds one decision step's wall-clock budget; Accuracy bounds
	// rollout depth via maxDepth = ceil(log_gamma(Accuracy)).
	Timeout  time.Duration
	Accuracy float64

	// ExplorationConstant overrides UCB1's c; 0 means "use the Simulator's
	// RewardRange()".
	ExplorationConstant float64

	TreeKnowledge    Knowledge
	RolloutKnowledge Knowledge

	// UseFTable enables IRE pruning of PgsLegal candidates (spec §4.3 "IRE
	// interaction"). Per spec Open Question 3, IRE is evaluated for every
	// PgsLegal call, not only when RolloutKnowledge == Preferred.
	UseFTable bool

	// PGSAlpha scales the potential-based shaping bonus for PGSShaping
	// rollouts and the planner's own reward-shaping step function.
	PGSAlpha float64

	// TransitionRate is the IRE learning rate eta.
	TransitionRate float64

	// ActivationThreshold is the (negative) IRE activation threshold.
	ActivationThreshold float64

	Verbose int
}

// NumSimulations returns 2^SimDoubles.
func (p Params) NumSimulations() int {
	return 1 << uint(p.SimDoubles)
}

// NumStartStates returns 2^SimDoubles.
func (p Params) NumStartStates() int {
	return 1 << uint(p.SimDoubles)
}

// NumTransforms returns 2^(SimDoubles+TransformDoubles), floored at 1.
func (p Params) NumTransforms() int {
	shift := p.SimDoubles + p.TransformDoubles
	if shift < 0 {
		return 1
	}
	n := 1 << uint(shift)
	if n < 1 {
		return 1
	}
	return n
}

// MaxAttempts returns NumTransforms * TransformAttempts.
func (p Params) MaxAttempts() int {
	return p.NumTransforms() * p.TransformAttempts
}
