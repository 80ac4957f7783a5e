package experiment

import (
	"time"

	"github.com/dfki-ni/rageplan/rng"
)

// RunResult is one completed episode's outcome, the quantities rrlib.h's
// RESULTS struct accumulates per run.
type RunResult struct {
	WallTime           time.Duration
	DiscountedReturn   float64
	UndiscountedReturn float64
	Steps              int
	Terminal           bool
	OutOfParticles     bool
}

// Results aggregates RunResult values across --runs using rng.RunningStat,
// mirroring rrlib.h's RESULTS/STATISTIC accumulator (spec E.4).
type Results struct {
	WallTime           *rng.RunningStat
	DiscountedReturn   *rng.RunningStat
	UndiscountedReturn *rng.RunningStat
	Steps              *rng.RunningStat

	Runs           int
	Terminated     int
	OutOfParticles int
}

// NewResults returns an empty Results accumulator.
func NewResults() *Results {
	return &Results{
		WallTime:           rng.NewRunningStat(),
		DiscountedReturn:   rng.NewRunningStat(),
		UndiscountedReturn: rng.NewRunningStat(),
		Steps:              rng.NewRunningStat(),
	}
}

// Record folds one run's outcome into the aggregate.
func (r *Results) Record(run RunResult) {
	r.WallTime.Add(run.WallTime.Seconds())
	r.DiscountedReturn.Add(run.DiscountedReturn)
	r.UndiscountedReturn.Add(run.UndiscountedReturn)
	r.Steps.Add(float64(run.Steps))
	r.Runs++
	if run.Terminal {
		r.Terminated++
	}
	if run.OutOfParticles {
		r.OutOfParticles++
	}
}
