package assembly

import (
	"fmt"

	"github.com/dfki-ni/rageplan/domain/shared"
	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
)

// Action indices are contiguous (spec §4.6): Perceive(=0), InspectTruck(=1),
// InspectContainer[c], BringGlue[t], BringPart[c].
const (
	ActionPerceive = iota
	ActionInspectTruck
	actionBlockStart
)

// Sim implements simulator.Simulator for the assembly domain.
type Sim struct {
	cfg  Config
	src  *rng.Source
	pool *rng.Pool[State]
}

// New constructs an assembly Sim from cfg, drawing stochastic draws from
// src (spec §9 "a single seedable RNG per planner").
func New(cfg Config, src *rng.Source) *Sim {
	return &Sim{cfg: cfg, src: src, pool: rng.NewPool[State]()}
}

func (s *Sim) inspectContainerAction(c int) int { return actionBlockStart + c }
func (s *Sim) bringGlueAction(t int) int        { return actionBlockStart + s.cfg.NParts() + t }
func (s *Sim) bringPartAction(c int) int {
	return actionBlockStart + s.cfg.NParts() + s.cfg.NTypes() + c
}

type actionKind int

const (
	kindPerceive actionKind = iota
	kindInspectTruck
	kindInspectContainer
	kindBringGlue
	kindBringPart
)

func (s *Sim) classify(action int) (actionKind, int) {
	switch {
	case action == ActionPerceive:
		return kindPerceive, 0
	case action == ActionInspectTruck:
		return kindInspectTruck, 0
	case action < actionBlockStart+s.cfg.NParts():
		return kindInspectContainer, action - actionBlockStart
	case action < actionBlockStart+s.cfg.NParts()+s.cfg.NTypes():
		return kindBringGlue, action - actionBlockStart - s.cfg.NParts()
	default:
		return kindBringPart, action - actionBlockStart - s.cfg.NParts() - s.cfg.NTypes()
	}
}

// NumActions implements simulator.Simulator.
func (s *Sim) NumActions() int {
	return actionBlockStart + 2*s.cfg.NParts() + s.cfg.NTypes()
}

// NumObservations implements simulator.Simulator.
func (s *Sim) NumObservations() int {
	return numAPOObservations
}

// Discount implements simulator.Simulator.
func (s *Sim) Discount() float64 { return s.cfg.Discount }

// RewardRange implements simulator.Simulator.
func (s *Sim) RewardRange() float64 {
	max := func(vals ...float64) float64 {
		m := 0.0
		for _, v := range vals {
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
		return m
	}
	return max(s.cfg.RewardAssembleOK, s.cfg.RewardMissingPart, s.cfg.RewardGlueOK,
		s.cfg.RewardWrongGoal, s.cfg.RewardRestock, s.cfg.RewardBringGlue,
		s.cfg.RewardWait, s.cfg.RewardPerceive)
}

// CreateStartState implements simulator.Simulator: draws a fresh particle
// from the prior, with one ground-truth truck type drawn uniformly per
// product and flat priors over the assistant's beliefs.
func (s *Sim) CreateStartState() simulator.State {
	st := s.pool.Get()
	st.WorkerAction = WorkerNone
	st.TargetPart = 0
	st.Pose = PosePart
	st.Outcome = OutcomeOK
	st.ActiveProduct = 0
	st.GlueHeld = NoGlue

	st.Products = make([]Product, s.cfg.NObjects())
	for i := range st.Products {
		typeAssumed := s.cfg.NTypes() <= 1
		st.Products[i] = Product{
			Type:              s.cfg.Types[s.src.Intn(s.cfg.NTypes())],
			AssembledParts:    make([]bool, s.cfg.NParts()),
			ProbType:          0.5,
			LikelihoodType:    1,
			LikelihoodNotType: 1,
			TypeAssumed:       typeAssumed,
		}
	}

	st.Containers = make([]Container, s.cfg.NParts())
	for c := range st.Containers {
		storage := s.cfg.Storage[c]
		st.Containers[c] = Container{
			Capacity:           storage,
			Cost:               s.cfg.PartCost[c],
			Priority:           s.cfg.PartPriority[c],
			Storage:            storage,
			Empty:              storage == 0,
			LikelihoodEmpty:    1,
			LikelihoodNotEmpty: 1,
			ProbEmpty:          0.5,
			Active:             true,
		}
		if storage > st.Containers[c].Capacity {
			st.Containers[c].Capacity = storage
		}
	}
	return st
}

// Copy implements simulator.Simulator.
func (s *Sim) Copy(state simulator.State) simulator.State {
	return state.(*State).Clone()
}

// Free implements simulator.Simulator.
func (s *Sim) Free(state simulator.State) {
	st := state.(*State)
	s.pool.Put(st)
}

func asState(state simulator.State) *State { return state.(*State) }

// Step implements simulator.Simulator (spec §4.6 "Transition semantics").
func (s *Sim) Step(state simulator.State, action int) simulator.StepResult {
	st := asState(state)
	kind, idx := s.classify(action)

	var actionReward float64
	var observation int

	switch kind {
	case kindPerceive:
		observation = s.perceive(st)
		actionReward = s.cfg.RewardPerceive

	case kindInspectTruck:
		observation, actionReward = s.inspectTruck(st)

	case kindInspectContainer:
		observation, actionReward = s.inspectContainer(st, idx)

	case kindBringGlue:
		st.GlueHeld = s.cfg.Types[idx]
		observation = 1
		actionReward = s.cfg.RewardBringGlue

	case kindBringPart:
		observation = 1
		actionReward = s.bringPart(st, idx)
	}

	tickReward := s.tick(st)

	return simulator.StepResult{
		Observation: observation,
		Reward:      actionReward + tickReward,
		Terminal:    st.AllComplete(),
	}
}

// perceive samples the worker's true (activity, pose, outcome) with
// probability PerceiveAcc; otherwise randomises one of the three components
// uniformly (spec §4.6 "Perceive").
func (s *Sim) perceive(st *State) int {
	activity, pose, outcome := st.WorkerAction, st.Pose, st.Outcome
	if !s.src.Bernoulli(s.cfg.PerceiveAcc) {
		switch s.src.Intn(3) {
		case 0:
			activity = s.src.Intn(NumActivities)
		case 1:
			pose = s.src.Intn(NumPoses)
		default:
			outcome = s.src.Intn(NumOutcomes)
		}
	}
	return encodeAPO(activity, pose, outcome)
}

// inspectTruck draws a binary observation of whether the active product's
// true type is type 0, Bayesian-updates ProbType, and marks TypeAssumed once
// confident (spec §4.6 "InspectTruck").
func (s *Sim) inspectTruck(st *State) (int, float64) {
	p := &st.Products[st.ActiveProduct]
	hypothesis := p.Type == s.cfg.Types[0]

	var observed bool
	if hypothesis {
		observed = s.src.Bernoulli(s.cfg.PerceiveAcc)
	} else {
		observed = s.src.Bernoulli(1 - s.cfg.PerceiveAcc)
	}

	p.LikelihoodType, p.LikelihoodNotType = shared.UpdateLikelihoods(
		p.LikelihoodType, p.LikelihoodNotType, observed, s.cfg.PerceiveAcc)
	p.ProbType = shared.ProbFromLikelihoods(p.LikelihoodType, p.LikelihoodNotType)
	if shared.BinEntropyCheck(p.ProbType, s.cfg.BinEntropyLimit) {
		p.TypeAssumed = true
	}

	obs := 0
	if observed {
		obs = 1
	}
	return obs, s.cfg.RewardPerceive
}

// inspectContainer draws a binary observation of whether container c is
// non-empty and Bayesian-updates its emptiness belief (spec §4.6
// "InspectContainer").
func (s *Sim) inspectContainer(st *State, c int) (int, float64) {
	cont := &st.Containers[c]
	nonEmpty := cont.Storage > 0

	var observed bool
	if nonEmpty {
		observed = s.src.Bernoulli(s.cfg.PerceiveAcc)
	} else {
		observed = s.src.Bernoulli(1 - s.cfg.PerceiveAcc)
	}
	observedEmpty := !observed

	cont.LikelihoodEmpty, cont.LikelihoodNotEmpty = shared.UpdateLikelihoods(
		cont.LikelihoodEmpty, cont.LikelihoodNotEmpty, observedEmpty, s.cfg.PerceiveAcc)
	cont.ProbEmpty = shared.ProbFromLikelihoods(cont.LikelihoodEmpty, cont.LikelihoodNotEmpty)

	obs := 0
	if observed {
		obs = 1
	}
	return obs, s.cfg.RewardPerceive
}

// bringPart simulates cost[c] worker ticks during the robot's absence, then
// refills container c by RefillAmount, clamped at capacity (spec §4.6
// "BringPart").
func (s *Sim) bringPart(st *State, c int) float64 {
	cont := &st.Containers[c]

	var absenceReward float64
	ticks := int(cont.Cost)
	for i := 0; i < ticks; i++ {
		absenceReward += s.tick(st)
	}

	before := cont.Storage
	refilled := before + s.cfg.RefillAmount
	overflow := refilled > cont.Capacity
	if overflow {
		refilled = cont.Capacity
	}
	cont.Storage = refilled
	cont.Empty = refilled == 0
	cont.Needed = false
	cont.LikelihoodEmpty = 1
	cont.LikelihoodNotEmpty = 1
	cont.ProbEmpty = 0

	var restockReward float64
	if overflow {
		restockReward = s.cfg.RewardWrongGoal
	} else {
		restockReward = s.cfg.RewardRestock
	}
	return absenceReward + restockReward
}

// Pgs implements simulator.Simulator (spec §4.6 "PGS potential").
func (s *Sim) Pgs(state simulator.State) float64 {
	st := asState(state)
	phi := 0.0
	for _, p := range st.Products {
		if p.Complete {
			phi += s.cfg.PGSBringGoal
		} else {
			phi += s.cfg.PGSUncertain
		}
	}
	for _, c := range st.Containers {
		if c.Needed {
			phi += s.cfg.PGSBringNotGoal
		}
	}
	active := st.Products[st.ActiveProduct]
	if !shared.BinEntropyCheck(active.ProbType, s.cfg.BinEntropyLimit) {
		phi += s.cfg.PGSUncertain
	}
	return phi
}

// PgsRO implements simulator.Simulator: diffs old and new rather than
// recomputing the full weighted sum (spec §4.6 "PGS_RO").
func (s *Sim) PgsRO(oldState, newState simulator.State, action int, oldPhi float64) float64 {
	old, new := asState(oldState), asState(newState)
	phi := oldPhi

	for i := range new.Products {
		if old.Products[i].Complete != new.Products[i].Complete {
			if new.Products[i].Complete {
				phi += s.cfg.PGSBringGoal - s.cfg.PGSUncertain
			} else {
				phi += s.cfg.PGSUncertain - s.cfg.PGSBringGoal
			}
		}
	}
	for i := range new.Containers {
		if old.Containers[i].Needed != new.Containers[i].Needed {
			if new.Containers[i].Needed {
				phi += s.cfg.PGSBringNotGoal
			} else {
				phi -= s.cfg.PGSBringNotGoal
			}
		}
	}

	oldActive := old.Products[old.ActiveProduct]
	newActive := new.Products[new.ActiveProduct]
	oldUncertain := !shared.BinEntropyCheck(oldActive.ProbType, s.cfg.BinEntropyLimit)
	newUncertain := !shared.BinEntropyCheck(newActive.ProbType, s.cfg.BinEntropyLimit)
	if oldUncertain != newUncertain {
		if newUncertain {
			phi += s.cfg.PGSUncertain
		} else {
			phi -= s.cfg.PGSUncertain
		}
	}
	return phi
}

// Legal implements simulator.Simulator: the full contiguous action space.
func (s *Sim) Legal(state simulator.State, h *history.History) []int {
	n := s.NumActions()
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Preferred implements simulator.Simulator: prefer restocking any needed
// container, then resolving type uncertainty, then bringing the active
// type's glue when it is needed and not held; perceiving only when none of
// these applies.
func (s *Sim) Preferred(state simulator.State, h *history.History) []int {
	st := asState(state)
	var out []int
	for c, cont := range st.Containers {
		if cont.Needed {
			out = append(out, s.bringPartAction(c))
		}
	}
	active := st.Products[st.ActiveProduct]
	if !active.TypeAssumed {
		out = append(out, ActionInspectTruck)
	}
	if s.cfg.NeedsGlue[active.Type] && st.GlueHeld != active.Type {
		out = append(out, s.bringGlueAction(active.Type))
	}
	if len(out) == 0 {
		out = append(out, ActionPerceive)
	}
	return out
}

// PgsLegal implements simulator.Simulator.
func (s *Sim) PgsLegal(state simulator.State, h *history.History) []int {
	out := s.Preferred(state, h)
	out = append(out, ActionPerceive)
	return out
}

// LocalMove implements simulator.Simulator (spec §4.6 LocalMove, §9 Open
// Question 2: both InspectContainer and BringPart history are validated).
func (s *Sim) LocalMove(state simulator.State, h *history.History, stepObs int) bool {
	st := asState(state)
	last, ok := h.Back()
	if !ok {
		return true
	}

	switch s.src.Intn(3) {
	case 0:
		c := s.src.Intn(s.cfg.NParts())
		delta := 1
		if s.src.Bernoulli(0.5) {
			delta = -1
		}
		newStorage := st.Containers[c].Storage + delta
		if newStorage < 0 {
			newStorage = 0
		}
		if newStorage > st.Containers[c].Capacity {
			newStorage = st.Containers[c].Capacity
		}
		st.Containers[c].Storage = newStorage
		st.Containers[c].Empty = newStorage == 0
	case 1:
		p := &st.Products[st.ActiveProduct]
		part := s.src.Intn(len(p.AssembledParts))
		p.AssembledParts[part] = !p.AssembledParts[part]
	default:
		p := &st.Products[st.ActiveProduct]
		p.Type = s.cfg.Types[s.src.Intn(s.cfg.NTypes())]
	}

	return s.consistent(st, last.Action, stepObs)
}

func (s *Sim) consistent(st *State, action, obs int) bool {
	kind, idx := s.classify(action)
	switch kind {
	case kindPerceive:
		return encodeAPO(st.WorkerAction, st.Pose, st.Outcome) == obs
	case kindInspectContainer:
		nonEmpty := st.Containers[idx].Storage > 0
		want := 0
		if nonEmpty {
			want = 1
		}
		return want == obs
	case kindBringPart:
		return st.Containers[idx].Storage > 0
	default:
		return true
	}
}

// InitializeFTable implements simulator.Simulator: each part's
// InspectContainer/BringPart actions share one feature, and each type's
// BringGlue action maps to its own feature (spec §4.3/§4.6 IRE).
func (s *Sim) InitializeFTable(t simulator.FTableInitializer) {
	t.SetActivationThreshold(s.cfg.Activation)
	for c := 0; c < s.cfg.NParts(); c++ {
		t.Register(s.inspectContainerAction(c), c)
		t.Register(s.bringPartAction(c), c)
	}
	for ty := 0; ty < s.cfg.NTypes(); ty++ {
		t.Register(s.bringGlueAction(ty), s.cfg.NParts()+ty)
	}
}

// DisplayState implements simulator.Stringer.
func (s *Sim) DisplayState(state simulator.State) string {
	st := asState(state)
	return fmt.Sprintf("activeProduct=%d workerAction=%d glueHeld=%d", st.ActiveProduct, st.WorkerAction, st.GlueHeld)
}

// DisplayAction implements simulator.Stringer.
func (s *Sim) DisplayAction(action int) string {
	kind, idx := s.classify(action)
	switch kind {
	case kindPerceive:
		return "Perceive"
	case kindInspectTruck:
		return "InspectTruck"
	case kindInspectContainer:
		return fmt.Sprintf("InspectContainer[%s]", s.cfg.Parts[idx])
	case kindBringGlue:
		return fmt.Sprintf("BringGlue[%d]", idx)
	default:
		return fmt.Sprintf("BringPart[%s]", s.cfg.Parts[idx])
	}
}

// DisplayObservation implements simulator.Stringer.
func (s *Sim) DisplayObservation(state simulator.State, observation int) string {
	activity, pose, outcome := decodeAPO(observation)
	return fmt.Sprintf("activity=%d pose=%d outcome=%d", activity, pose, outcome)
}
