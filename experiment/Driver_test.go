package experiment

import (
	"io"
	"testing"

	"github.com/dfki-ni/rageplan/domain/assembly"
	"github.com/dfki-ni/rageplan/planner"
	"github.com/dfki-ni/rageplan/rng"
)

func smallParams() planner.Params {
	return planner.Params{
		SimDoubles:          4,
		TransformDoubles:    0,
		TransformAttempts:   5,
		Accuracy:            0.1,
		TreeKnowledge:       planner.Random,
		RolloutKnowledge:    planner.Random,
		TransitionRate:      1.0,
		ActivationThreshold: -100,
	}
}

func TestDriverRunEpisodeReachesTerminalOrStepCap(t *testing.T) {
	src := rng.New(1)
	sim := assembly.New(assembly.PresetMWE(), src)
	d := NewDriver(sim, src, smallParams())

	run := d.RunEpisode(io.Discard, 200, 0)

	if run.Steps == 0 {
		t.Fatalf("RunEpisode took 0 steps")
	}
	if !run.Terminal && !run.OutOfParticles && run.Steps < 200 {
		t.Fatalf("RunEpisode stopped early (%d steps) without reaching a terminal or out-of-particles state", run.Steps)
	}
}

func TestDriverStepAccumulatesDiscountedReturn(t *testing.T) {
	src := rng.New(2)
	sim := assembly.New(assembly.PresetMWE(), src)
	d := NewDriver(sim, src, smallParams())

	action, err := d.PlanAction()
	if err != nil {
		t.Fatalf("PlanAction: %v", err)
	}
	result, _ := d.Step(action)

	if d.undiscReturn != result.Reward {
		t.Errorf("undiscReturn = %v, want %v after a single step", d.undiscReturn, result.Reward)
	}
	if d.discountedReturn != result.Reward {
		t.Errorf("discountedReturn = %v, want %v for the first (undiscounted) step", d.discountedReturn, result.Reward)
	}
}
