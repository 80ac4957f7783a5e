package hotel

import (
	"testing"

	"github.com/dfki-ni/rageplan/belief"
	"github.com/dfki-ni/rageplan/ftable"
	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
)

func TestEncodeDecodeBitsBijection(t *testing.T) {
	const n = 5
	for idx := 0; idx < 1<<n; idx++ {
		bits := DecodeBits(idx, n)
		if got := EncodeBits(bits); got != idx {
			t.Errorf("EncodeBits(DecodeBits(%d)) = %d, want %d", idx, got, idx)
		}
	}
}

func TestInsectHotelAssemblyScenario(t *testing.T) {
	cfg := PresetAIDemo()
	src := rng.New(7)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	h := history.New()
	terminal := false
	for step := 0; step < 2000 && !terminal; step++ {
		legal := sim.Legal(state, h)
		action := legal[step%len(legal)]
		result := sim.Step(state, action)
		h.Add(action, result.Observation)
		terminal = result.Terminal
	}

	if !terminal {
		t.Fatalf("hotel assembly did not complete within step budget")
	}
	if !asState(state).AllComplete() {
		t.Fatalf("state reports terminal but AllComplete() is false")
	}
}

// TestInspectObjectAmbiguousWhenNoUniquePartAssembled verifies the ambiguous
// classification (spec §4.7 "InspectObject") fires before either hotel
// type's unique parts have been assembled.
func TestInspectObjectAmbiguousWhenNoUniquePartAssembled(t *testing.T) {
	cfg := PresetAIDemo()
	src := rng.New(8)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	obs, reward := sim.inspectObject(asState(state))
	if obs != ObjectAmbiguous {
		t.Errorf("inspectObject = %d before any unique part assembled, want ObjectAmbiguous", obs)
	}
	if reward != cfg.RewardWrongPerceive {
		t.Errorf("reward = %v, want RewardWrongPerceive", reward)
	}
}

func TestInspectObjectResolvesOnceUniquePartAssembled(t *testing.T) {
	cfg := PresetAIDemo()
	src := rng.New(9)
	sim := New(cfg, src)

	state := sim.CreateStartState()
	st := asState(state)
	st.Worker.Hotels[0].Type = 0
	uniquePartA := sim.uniqueParts[0][0]
	st.Worker.Parts[uniquePartA].Assembled = true

	obs, _ := sim.inspectObject(st)
	if obs == ObjectAmbiguous {
		t.Errorf("inspectObject still ambiguous after assembling a type-unique part")
	}
}

// TestOutOfParticlesFilterDepletion exercises a filter-style belief update:
// stepping every particle with an action and keeping only those whose
// observation matches a target that none can produce leaves the filtered
// belief empty (spec §4.1 "OutOfParticles").
func TestOutOfParticlesFilterDepletion(t *testing.T) {
	cfg := PresetAIDemo()
	src := rng.New(10)
	sim := New(cfg, src)

	b := belief.New()
	for i := 0; i < 8; i++ {
		b.Add(sim.CreateStartState())
	}

	filtered := belief.New()
	impossibleObservation := sim.NumObservations() + 1000
	b.Each(func(p simulator.State) {
		cp := sim.Copy(p)
		result := sim.Step(cp, ActionInspectContainer)
		if result.Observation == impossibleObservation {
			filtered.Add(cp)
		} else {
			sim.Free(cp)
		}
	})

	if filtered.Size() != 0 {
		t.Fatalf("filtered belief size = %d, want 0 particles matching an impossible observation", filtered.Size())
	}
}

func TestFTablePrunesLowValueContainerFeature(t *testing.T) {
	cfg := PresetAIDemo()
	src := rng.New(11)
	sim := New(cfg, src)

	ft := ftable.New(cfg.TransitionRate)
	sim.InitializeFTable(ft)

	action := sim.bringPartAction(0)
	feature, ok := ft.Feature(action)
	if !ok {
		t.Fatalf("BringPart[0] has no registered feature")
	}

	for i := 0; i < 20; i++ {
		ft.Update(action, -100, 0)
	}

	if ft.Active(action) {
		t.Errorf("feature still active after repeated strongly negative updates")
	}

	legal := sim.Legal(nil, history.New())
	pruned := ft.FilterActive(legal)
	for _, a := range pruned {
		if a == action {
			t.Errorf("FilterActive kept a pruned action")
		}
	}
}
