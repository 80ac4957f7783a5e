package hotel

import (
	"fmt"

	"github.com/dfki-ni/rageplan/domain/shared"
	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
)

// Action indices (spec §4.7): Perceive and InspectContainer each report a
// whole bit-vector in one call, InspectObject reports a three-valued type
// reading; BringPart[c] follows.
const (
	ActionPerceive = iota
	ActionInspectObject
	ActionInspectContainer
	actionBlockStart
)

// Sim implements simulator.Simulator for the insect-hotel domain.
type Sim struct {
	cfg  Config
	src  *rng.Source
	pool *rng.Pool[State]

	// uniqueParts[0]/[1] are the parts that belong only to hotel type 0/1;
	// computed once since the domain only ever distinguishes two types
	// (hotel_robot.cpp's "STRONG ASSUMPTION: ONLY TWO HOTEL TYPES").
	uniqueParts [2][]int
}

// New constructs a hotel Sim from cfg, drawing stochastic draws from src.
func New(cfg Config, src *rng.Source) *Sim {
	s := &Sim{cfg: cfg, src: src, pool: rng.NewPool[State]()}
	if cfg.NTypes() >= 2 {
		s.uniqueParts[0] = setDifference(cfg.TypeMap[0], cfg.TypeMap[1])
		s.uniqueParts[1] = setDifference(cfg.TypeMap[1], cfg.TypeMap[0])
	}
	return s
}

func setDifference(a, b []int) []int {
	var out []int
	for _, v := range a {
		if !containsInt(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *Sim) bringPartAction(c int) int { return actionBlockStart + c }

type actionKind int

const (
	kindPerceive actionKind = iota
	kindInspectObject
	kindInspectContainer
	kindBringPart
)

func (s *Sim) classify(action int) (actionKind, int) {
	switch {
	case action == ActionPerceive:
		return kindPerceive, 0
	case action == ActionInspectObject:
		return kindInspectObject, 0
	case action == ActionInspectContainer:
		return kindInspectContainer, 0
	default:
		return kindBringPart, action - actionBlockStart
	}
}

// NumActions implements simulator.Simulator.
func (s *Sim) NumActions() int { return actionBlockStart + s.cfg.NParts() }

// NumObservations implements simulator.Simulator: the bit-vector space over
// all containers, widened to fit InspectObject's 3-valued observation.
func (s *Sim) NumObservations() int {
	n := 1 << uint(s.cfg.NParts())
	if n < 3 {
		return 3
	}
	return n
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
	return max(s.cfg.RewardPerceive, s.cfg.RewardWrongPerceive, s.cfg.RewardRestock,
		s.cfg.RewardGoodRestock, s.cfg.RewardWrongGoal, s.cfg.RewardPartMissing,
		s.cfg.RewardAssemble, s.cfg.RewardHotelComplete, s.cfg.RewardWait)
}

// CreateStartState implements simulator.Simulator.
func (s *Sim) CreateStartState() simulator.State {
	st := s.pool.Get()

	st.Worker.Action = WorkerNone
	st.Worker.Object = PartNone
	st.Worker.Result = OutcomeOK
	st.Worker.Hotel = 0

	st.Worker.Parts = make([]PartRecord, s.cfg.NParts())
	for i := range st.Worker.Parts {
		name := ""
		if i < len(s.cfg.Parts) {
			name = s.cfg.Parts[i]
		}
		st.Worker.Parts[i] = PartRecord{Name: name, Number: i, Priority: s.cfg.PartPriority[i]}
	}

	st.Worker.Hotels = make([]HotelRecord, s.cfg.NObjects())
	for i := range st.Worker.Hotels {
		name := ""
		if i < len(s.cfg.Objects) {
			name = s.cfg.Objects[i]
		}
		st.Worker.Hotels[i] = HotelRecord{Name: name, Type: s.src.Intn(s.cfg.NTypes())}
	}

	st.Hotels = make([]HotelBelief, s.cfg.NObjects())
	for i := range st.Hotels {
		st.Hotels[i] = HotelBelief{LikelihoodT0: 1, LikelihoodNotT0: 1, ProbT0: 0.5}
	}

	st.Containers = make([]Container, s.cfg.NParts())
	for c := range st.Containers {
		st.Containers[c] = Container{
			ID:                     c,
			Name:                   s.cfg.Parts[c],
			Cost:                   s.cfg.PartCost[c],
			Priority:               s.cfg.PartPriority[c],
			NonEmpty:               s.src.Bernoulli(0.5),
			LikelihoodEmpty:        1,
			LikelihoodNotEmpty:     1,
			ProbEmpty:              0.5,
			LikelihoodAssembled:    1,
			LikelihoodNotAssembled: 1,
			ProbAssembled:          0.5,
			Active:                 true,
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
	s.pool.Put(state.(*State))
}

func asState(state simulator.State) *State { return state.(*State) }

// Step implements simulator.Simulator (spec §4.7 "Transition semantics").
func (s *Sim) Step(state simulator.State, action int) simulator.StepResult {
	st := asState(state)
	kind, idx := s.classify(action)

	var reward float64
	var observation int

	switch kind {
	case kindPerceive:
		observation, reward = s.perceive(st)
	case kindInspectObject:
		observation, reward = s.inspectObject(st)
	case kindInspectContainer:
		observation, reward = s.inspectContainer(st)
	case kindBringPart:
		observation, reward = s.bringPart(st, idx)
	}

	reward += s.tick(st)

	return simulator.StepResult{
		Observation: observation,
		Reward:      reward,
		Terminal:    st.AllComplete(),
	}
}

// perceive reports a bit-vector of which parts are currently assembled,
// randomising one bit with probability 1-PerceiveAcc, and Bayesian-updates
// each container's assembly belief (spec §4.7 "Perceive").
func (s *Sim) perceive(st *State) (int, float64) {
	efficiency := s.cfg.PerceiveAcc
	bits := make([]bool, s.cfg.NParts())
	for i, p := range st.Worker.Parts {
		bits[i] = p.Assembled
	}
	if s.src.Bernoulli(1 - efficiency) {
		r := s.src.Intn(len(bits))
		bits[r] = !bits[r]
	}

	for i, observed := range bits {
		c := &st.Containers[i]
		c.LikelihoodAssembled, c.LikelihoodNotAssembled = shared.UpdateLikelihoods(
			c.LikelihoodAssembled, c.LikelihoodNotAssembled, observed, efficiency)
		c.ProbAssembled = shared.ProbFromLikelihoods(c.LikelihoodAssembled, c.LikelihoodNotAssembled)
	}

	return EncodeBits(bits), s.cfg.RewardPerceive
}

// inspectContainer reports a bit-vector of which containers are currently
// non-empty, randomising one bit with probability 1-PerceiveAcc, and
// Bayesian-updates each container's emptiness belief (spec §4.7
// "InspectContainer").
func (s *Sim) inspectContainer(st *State) (int, float64) {
	efficiency := s.cfg.PerceiveAcc
	bits := make([]bool, s.cfg.NParts())
	for i, c := range st.Containers {
		bits[i] = c.NonEmpty
	}
	if s.src.Bernoulli(1 - efficiency) {
		r := s.src.Intn(len(bits))
		bits[r] = !bits[r]
	}

	for i, observed := range bits {
		c := &st.Containers[i]
		observedEmpty := !observed
		c.LikelihoodEmpty, c.LikelihoodNotEmpty = shared.UpdateLikelihoods(
			c.LikelihoodEmpty, c.LikelihoodNotEmpty, observedEmpty, efficiency)
		c.ProbEmpty = shared.ProbFromLikelihoods(c.LikelihoodEmpty, c.LikelihoodNotEmpty)
	}

	return EncodeBits(bits), s.cfg.RewardPerceive
}

// inspectObject classifies the active hotel's type as ambiguous, type A or
// type B depending on which type's unique parts have been assembled, then
// Bayesian-updates the type belief on an unambiguous reading (spec §4.7
// "InspectObject").
func (s *Sim) inspectObject(st *State) (int, float64) {
	hotel := st.Worker.Hotel
	uniqueA, uniqueB := false, false
	for _, p := range s.uniqueParts[0] {
		if st.Worker.Parts[p].Assembled {
			uniqueA = true
		}
	}
	for _, p := range s.uniqueParts[1] {
		if st.Worker.Parts[p].Assembled {
			uniqueB = true
		}
	}

	if (!uniqueA && !uniqueB) || (uniqueA && uniqueB) {
		return ObjectAmbiguous, s.cfg.RewardWrongPerceive
	}

	efficiency := s.cfg.PerceiveAcc
	trueType := st.Worker.Hotels[hotel].Type
	observedTypeA := trueType == 0
	if !s.src.Bernoulli(efficiency) {
		observedTypeA = !observedTypeA
	}

	belief := &st.Hotels[hotel]
	belief.LikelihoodT0, belief.LikelihoodNotT0 = shared.UpdateLikelihoods(
		belief.LikelihoodT0, belief.LikelihoodNotT0, observedTypeA, efficiency)
	belief.ProbT0 = shared.ProbFromLikelihoods(belief.LikelihoodT0, belief.LikelihoodNotT0)
	if !belief.AssumedType && shared.BinEntropyCheck(belief.ProbT0, s.cfg.BinEntropyLimit) {
		belief.AssumedType = true
	}

	if observedTypeA {
		return ObjectTypeA, s.cfg.RewardPerceive
	}
	return ObjectTypeB, s.cfg.RewardPerceive
}

// bringPart simulates cost[c] worker ticks during the robot's absence, then
// resolves the restock and its reward gate: bringing a part is penalised
// unless the assistant reliably believes it is empty, unassembled, and (for
// type-unique parts) matched to the believed hotel type (spec §4.7
// "BringPart").
func (s *Sim) bringPart(st *State, part int) (int, float64) {
	c := &st.Containers[part]

	var absenceReward float64
	for i := 0; i < int(c.Cost); i++ {
		absenceReward += s.tick(st)
	}

	if !s.src.Bernoulli(s.cfg.BringSuccess) {
		return 0, absenceReward + s.cfg.RewardRestock
	}

	reliable := shared.BinEntropyCheck(c.ProbEmpty, s.cfg.BinEntropyLimit) &&
		shared.BinEntropyCheck(c.ProbAssembled, s.cfg.BinEntropyLimit)
	needed := c.Needed
	empty := !c.NonEmpty
	assembled := st.Worker.Parts[part].Assembled
	uniqueA := containsInt(s.uniqueParts[0], part)
	uniqueB := containsInt(s.uniqueParts[1], part)
	hotel := st.Worker.Hotel
	typeKnown := st.Hotels[hotel].AssumedType
	partMatch := (st.Hotels[hotel].ProbT0 > 0.5 && uniqueA) || (st.Hotels[hotel].ProbT0 < 0.5 && uniqueB)

	var reward float64
	switch {
	case !reliable || assembled || !empty:
		reward = s.cfg.RewardWrongGoal
	case (uniqueA || uniqueB) && (!typeKnown || !partMatch):
		reward = s.cfg.RewardWrongGoal
	case needed:
		reward = s.cfg.RewardGoodRestock
	default:
		reward = s.cfg.RewardRestock
	}

	c.LikelihoodEmpty = 1
	c.LikelihoodNotEmpty = 1
	c.ProbEmpty = 0
	c.NonEmpty = true
	c.Needed = false

	return 1, absenceReward + reward
}

// Pgs implements simulator.Simulator (spec §4.7 "PGS potential").
func (s *Sim) Pgs(state simulator.State) float64 {
	st := asState(state)
	phi := 0.0
	for _, h := range st.Worker.Hotels {
		if h.Complete {
			phi += s.cfg.PGSGoal
		} else {
			phi += s.cfg.PGSUncertain
		}
	}
	for _, c := range st.Containers {
		if c.Needed {
			phi += s.cfg.PGSNotGoal
		}
	}
	if !shared.BinEntropyCheck(st.Hotels[st.Worker.Hotel].ProbT0, s.cfg.BinEntropyLimit) {
		phi += s.cfg.PGSUncertain
	}
	for _, c := range st.Containers {
		if !shared.BinEntropyCheck(c.ProbEmpty, s.cfg.BinEntropyLimit) {
			phi += s.cfg.PGSUncertain
		}
	}
	return phi
}

// PgsRO implements simulator.Simulator: diffs old and new rather than
// recomputing the full weighted sum (spec §4.7 "PGS_RO").
func (s *Sim) PgsRO(oldState, newState simulator.State, action int, oldPhi float64) float64 {
	old, new := asState(oldState), asState(newState)
	var points, oldPoints float64

	if new.Worker.Action == WorkerNone && new.Worker.Result == OutcomeDone {
		points += s.cfg.PGSGoal
		oldPoints += s.cfg.PGSUncertain
	}

	kind, idx := s.classify(action)
	if kind == kindBringPart {
		if old.Containers[idx].Needed {
			oldPoints += s.cfg.PGSNotGoal
		}
	}

	if kind == kindInspectObject {
		hotel := new.Worker.Hotel
		if !shared.BinEntropyCheck(new.Hotels[hotel].ProbT0, s.cfg.BinEntropyLimit) {
			points += s.cfg.PGSUncertain
		}
		if !shared.BinEntropyCheck(old.Hotels[hotel].ProbT0, s.cfg.BinEntropyLimit) {
			oldPoints += s.cfg.PGSUncertain
		}
	}

	if kind == kindInspectContainer {
		for _, c := range new.Containers {
			if !shared.BinEntropyCheck(c.ProbEmpty, s.cfg.BinEntropyLimit) {
				points += s.cfg.PGSUncertain
			}
		}
		for _, c := range old.Containers {
			if !shared.BinEntropyCheck(c.ProbEmpty, s.cfg.BinEntropyLimit) {
				oldPoints += s.cfg.PGSUncertain
			}
		}
	}

	return oldPhi - oldPoints + points
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

// Preferred implements simulator.Simulator: hotel_robot.cpp's
// GeneratePreferred is just GenerateLegal, so Preferred mirrors Legal.
func (s *Sim) Preferred(state simulator.State, h *history.History) []int {
	return s.Legal(state, h)
}

// PgsLegal implements simulator.Simulator: always allow Perceive and
// InspectContainer, InspectObject only while the hotel type is unresolved,
// and BringPart only for IRE-active containers (spec §4.7 "PGSLegal").
func (s *Sim) PgsLegal(state simulator.State, h *history.History) []int {
	st := asState(state)
	out := []int{ActionPerceive}
	if !st.Hotels[st.Worker.Hotel].AssumedType {
		out = append(out, ActionInspectObject)
	}
	out = append(out, ActionInspectContainer)
	for c, cont := range st.Containers {
		if cont.Active {
			out = append(out, s.bringPartAction(c))
		}
	}
	return out
}

// LocalMove implements simulator.Simulator (spec §4.7 LocalMove): one of
// three uniformly chosen perturbations, validated against the last recorded
// (action, observation) pair.
func (s *Sim) LocalMove(state simulator.State, h *history.History, stepObs int) bool {
	st := asState(state)
	last, ok := h.Back()
	if !ok {
		return true
	}
	action := last.Action

	switch s.src.Intn(3) {
	case 0:
		part := s.src.Intn(s.cfg.NParts())
		st.Containers[part].NonEmpty = !st.Containers[part].NonEmpty
		st.Containers[part].ProbEmpty = 1 - st.Containers[part].ProbEmpty

		kind, idx := s.classify(action)
		if kind == kindBringPart && idx == part && !st.Containers[part].NonEmpty {
			return false
		}
		if kind == kindInspectContainer {
			bits := make([]bool, s.cfg.NParts())
			for i, c := range st.Containers {
				bits[i] = c.NonEmpty
			}
			if EncodeBits(bits) != last.Observation {
				return false
			}
		}

	case 1:
		part := s.src.Intn(len(st.Worker.Parts))
		st.Worker.Parts[part].Assembled = !st.Worker.Parts[part].Assembled

		if action == ActionPerceive {
			bits := make([]bool, s.cfg.NParts())
			for i, p := range st.Worker.Parts {
				bits[i] = p.Assembled
			}
			if EncodeBits(bits) != last.Observation {
				return false
			}
		}

	default:
		hotel := st.Worker.Hotel
		st.Worker.Hotels[hotel].Type = s.src.Intn(s.cfg.NTypes())

		if action == ActionInspectObject {
			uniqueA, uniqueB := false, false
			for _, p := range s.uniqueParts[0] {
				if st.Worker.Parts[p].Assembled {
					uniqueA = true
				}
			}
			for _, p := range s.uniqueParts[1] {
				if st.Worker.Parts[p].Assembled {
					uniqueB = true
				}
			}
			newObs := ObjectAmbiguous
			if uniqueA != uniqueB {
				if st.Worker.Hotels[hotel].Type == 0 && uniqueA {
					newObs = ObjectTypeA
				} else if st.Worker.Hotels[hotel].Type == 1 && uniqueB {
					newObs = ObjectTypeB
				} else {
					newObs = ObjectAmbiguous
				}
			}
			if newObs != last.Observation {
				return false
			}
		}
	}
	return true
}

// InitializeFTable implements simulator.Simulator: each container's
// BringPart action maps to its own feature, mirroring hotel_robot.cpp's
// initializeFTable (inspect actions are left unregistered, as there).
func (s *Sim) InitializeFTable(t simulator.FTableInitializer) {
	t.SetActivationThreshold(s.cfg.Activation)
	for c := 0; c < s.cfg.NParts(); c++ {
		t.Register(s.bringPartAction(c), c)
	}
}

// DisplayState implements simulator.Stringer.
func (s *Sim) DisplayState(state simulator.State) string {
	st := asState(state)
	return fmt.Sprintf("hotel=%d action=%d object=%d", st.Worker.Hotel, st.Worker.Action, st.Worker.Object)
}

// DisplayAction implements simulator.Stringer.
func (s *Sim) DisplayAction(action int) string {
	kind, idx := s.classify(action)
	switch kind {
	case kindPerceive:
		return "Perceive"
	case kindInspectObject:
		return "InspectObject"
	case kindInspectContainer:
		return "InspectContainer"
	default:
		return fmt.Sprintf("BringPart[%s]", s.cfg.Parts[idx])
	}
}

// DisplayObservation implements simulator.Stringer.
func (s *Sim) DisplayObservation(state simulator.State, observation int) string {
	bits := DecodeBits(observation, s.cfg.NParts())
	return fmt.Sprintf("%v", bits)
}
