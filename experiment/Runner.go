package experiment

import (
	"io"
	"time"

	"github.com/samuelfneumann/progressbar"
)

// Runner repeats a fresh Driver for --runs episodes, aggregating Results and
// reporting progress with the teacher's progressbar dependency, the same
// role it plays in experiment.Online (spec E.2 "Progress reporting").
type Runner struct {
	newDriver func() *Driver
	maxSteps  int
	verbose   int
	log       io.Writer
}

// NewRunner returns a Runner that builds a fresh Driver via newDriver for
// each run, stepping it for at most maxSteps decisions.
func NewRunner(newDriver func() *Driver, maxSteps, verbose int, log io.Writer) *Runner {
	return &Runner{newDriver: newDriver, maxSteps: maxSteps, verbose: verbose, log: log}
}

// Run executes runs independent episodes and returns the aggregated
// Results.
func (r *Runner) Run(runs int) *Results {
	results := NewResults()

	bar := progressbar.New(50, runs, time.Second, true)
	bar.Display()

	for i := 0; i < runs; i++ {
		d := r.newDriver()
		run := d.RunEpisode(r.log, r.maxSteps, r.verbose)
		results.Record(run)
		bar.Increment()
	}
	bar.Close()

	return results
}
