package experiment

import (
	"io"
	"testing"

	"github.com/dfki-ni/rageplan/domain/hotel"
	"github.com/dfki-ni/rageplan/rng"
)

func TestRunnerAggregatesAcrossRuns(t *testing.T) {
	seed := uint64(3)
	newDriver := func() *Driver {
		src := rng.New(seed)
		seed++
		sim := hotel.New(hotel.PresetAIDemo(), src)
		return NewDriver(sim, src, smallParams())
	}

	runner := NewRunner(newDriver, 300, 0, io.Discard)
	results := runner.Run(4)

	if results.Runs != 4 {
		t.Fatalf("Runs = %d, want 4", results.Runs)
	}
	if results.Steps.Count() != 4 {
		t.Errorf("Steps.Count() = %d, want 4", results.Steps.Count())
	}
	if results.DiscountedReturn.Count() != 4 {
		t.Errorf("DiscountedReturn.Count() = %d, want 4", results.DiscountedReturn.Count())
	}
}
