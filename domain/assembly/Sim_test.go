package assembly

import (
	"testing"

	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/rng"
)

func TestEncodeDecodeAPOBijection(t *testing.T) {
	for activity := 0; activity < NumActivities; activity++ {
		for pose := 0; pose < NumPoses; pose++ {
			for outcome := 0; outcome < NumOutcomes; outcome++ {
				idx := encodeAPO(activity, pose, outcome)
				if idx < 0 || idx >= numAPOObservations {
					t.Fatalf("encodeAPO(%d,%d,%d) = %d out of range", activity, pose, outcome, idx)
				}
				gotA, gotP, gotO := decodeAPO(idx)
				if gotA != activity || gotP != pose || gotO != outcome {
					t.Errorf("decodeAPO(encodeAPO(%d,%d,%d)) = (%d,%d,%d), want original",
						activity, pose, outcome, gotA, gotP, gotO)
				}
			}
		}
	}
}

func TestTwoTypeAssemblyScenario(t *testing.T) {
	cfg := PresetMWE()
	src := rng.New(1)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	if sim.NumActions() != 2+cfg.NParts()+cfg.NTypes()+cfg.NParts() {
		t.Fatalf("NumActions = %d, want %d", sim.NumActions(), 2+cfg.NParts()+cfg.NTypes()+cfg.NParts())
	}

	h := history.New()
	terminal := false
	for step := 0; step < 500 && !terminal; step++ {
		legal := sim.Legal(state, h)
		if len(legal) != sim.NumActions() {
			t.Fatalf("Legal returned %d actions, want %d", len(legal), sim.NumActions())
		}
		action := legal[step%len(legal)]
		result := sim.Step(state, action)
		h.Add(action, result.Observation)
		terminal = result.Terminal
	}

	if !terminal {
		t.Fatalf("assembly did not complete within step budget")
	}
	if !asState(state).AllComplete() {
		t.Fatalf("state reports terminal but AllComplete() is false")
	}
}

func TestBringPartClearsNeededAndEmpty(t *testing.T) {
	cfg := PresetMWE()
	src := rng.New(2)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	st := asState(state)
	st.Containers[0].Storage = 0
	st.Containers[0].Empty = true
	st.Containers[0].Needed = true
	st.Containers[0].LikelihoodEmpty = 0.9
	st.Containers[0].LikelihoodNotEmpty = 0.1
	st.Containers[0].ProbEmpty = 0.9

	sim.Step(state, sim.bringPartAction(0))

	c := st.Containers[0]
	if c.Needed {
		t.Errorf("Needed still true after BringPart")
	}
	if c.ProbEmpty != 0 {
		t.Errorf("ProbEmpty = %v after BringPart, want 0", c.ProbEmpty)
	}
	if c.LikelihoodEmpty != 1 || c.LikelihoodNotEmpty != 1 {
		t.Errorf("likelihoods not reset after BringPart: got (%v,%v)", c.LikelihoodEmpty, c.LikelihoodNotEmpty)
	}
	if c.Storage <= 0 {
		t.Errorf("Storage = %d after BringPart, want positive", c.Storage)
	}
}

func TestLocalMoveAgreesWithItsOwnConsistencyCheck(t *testing.T) {
	cfg := PresetMWE()
	src := rng.New(3)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	st := asState(state)
	st.Containers[0].Storage = 3

	h := history.New()
	action := sim.inspectContainerAction(0)
	h.Add(action, 1) // observed non-empty

	for i := 0; i < 50; i++ {
		trial := sim.Copy(state)
		ok := sim.LocalMove(trial, h, 1)
		want := sim.consistent(asState(trial), action, 1)
		if ok != want {
			t.Fatalf("LocalMove returned %v but consistent() recomputes %v on the same perturbed state", ok, want)
		}
	}
}

func TestPgsROMatchesFullRecomputeAfterBringGlue(t *testing.T) {
	cfg := PresetMWE()
	src := rng.New(4)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	oldPhi := sim.Pgs(state)

	newState := sim.Copy(state)
	st := asState(newState)
	activeType := st.Products[st.ActiveProduct].Type
	for i, part := range cfg.TypeMap[activeType] {
		_ = i
		st.Products[st.ActiveProduct].AssembledParts[part] = true
	}
	st.Products[st.ActiveProduct].Complete = true

	gotDiff := sim.PgsRO(state, newState, sim.bringGlueAction(activeType), oldPhi)
	gotFull := sim.Pgs(newState)

	if abs(gotDiff-gotFull) > 1e-9 {
		t.Errorf("PgsRO = %v, full Pgs recompute = %v", gotDiff, gotFull)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
