// Package simulator defines the contract a POMDP domain must satisfy to be
// driven by the planner (package planner). It is a capability interface: the
// planner holds a Simulator value and never type-switches on it, in contrast
// to the original C++ SIMULATOR base class and its RTTI-flavoured downcasts.
package simulator

import "github.com/dfki-ni/rageplan/history"

// State is a single immutable-per-rollout particle. Concrete domains
// (domain/assembly, domain/hotel) define their own state struct and satisfy
// this marker interface; the planner never inspects a State's fields
// directly, it only ever passes States back into the Simulator that produced
// them.
type State interface {
	// Clone returns a deep copy suitable for independent mutation.
	Clone() State
}

// StepResult is the outcome of simulating one action from one state.
type StepResult struct {
	Observation int
	Reward      float64
	Terminal    bool
}

// Simulator is the black-box transition/observation generator, legal-action
// generator, and local-move belief repair contract described in spec §4.2.
// An implementation's Step, Pgs and PgsRO must depend only on the given
// state, action, and the Simulator's own random source - never on
// process-global state - so that a run is reproducible from its seed.
type Simulator interface {
	// CreateStartState draws an initial state from the prior.
	CreateStartState() State

	// Copy returns an independent copy of state, suitable for separate
	// mutation inside a rollout.
	Copy(state State) State

	// Free returns state to the simulator's pool. Callers must not use state
	// after calling Free.
	Free(state State)

	// Step performs the stochastic transition + observation + reward: state
	// is mutated in place to become the successor state.
	Step(state State, action int) StepResult

	// Pgs evaluates the potential function Phi(s) used for potential-based
	// reward shaping.
	Pgs(state State) float64

	// PgsRO computes Phi(new) incrementally from Phi(old) when only local
	// deltas apply, avoiding a full Pgs recomputation during rollouts.
	PgsRO(old, new State, action int, oldPhi float64) float64

	// Legal returns the full candidate action set at state given history.
	Legal(state State, h *history.History) []int

	// Preferred returns the pruned "preferred" candidate action set used by
	// rollout-knowledge level Preferred.
	Preferred(state State, h *history.History) []int

	// PgsLegal returns the stricter legal set used by PGS-shaped rollouts.
	// The planner applies IRE/F-table pruning to the returned set (spec §4.3
	// "IRE interaction").
	PgsLegal(state State, h *history.History) []int

	// LocalMove applies one small random perturbation to state in place and
	// reports whether the perturbed state is consistent with the last
	// (action, observation) pair recorded in h and stepObs. Callers must
	// discard state (or treat it as unusable) when LocalMove returns false,
	// since the perturbation is applied regardless of the outcome.
	LocalMove(state State, h *history.History, stepObs int) bool

	// InitializeFTable registers this domain's action -> feature map and
	// activation threshold with ftable.
	InitializeFTable(t FTableInitializer)

	// NumActions is the size of the contiguous action index space.
	NumActions() int

	// NumObservations is the size of the observation index space.
	NumObservations() int

	// Discount is the POMDP discount factor gamma.
	Discount() float64

	// RewardRange bounds |reward| for any single step, used to auto-tune the
	// UCB exploration constant.
	RewardRange() float64
}

// FTableInitializer is the subset of ftable.Table a Simulator needs to
// register its action -> feature map without importing package ftable
// directly (which would otherwise import simulator back for State).
type FTableInitializer interface {
	Register(action, feature int)
	SetActivationThreshold(threshold float64)
}

// Stringer is satisfied by simulators that can render a State, observation,
// or action for --verbose run output (spec E.4 Display* features).
type Stringer interface {
	DisplayState(state State) string
	DisplayAction(action int) string
	DisplayObservation(state State, observation int) string
}
