package experiment

import (
	"fmt"
	"io"
	"time"

	"github.com/dfki-ni/rageplan/planner"
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
	"gonum.org/v1/gonum/mat"
)

// Driver wraps one planner.Planner and one simulator.Simulator around a
// single ground-truth particle, mirroring rrlib.h's RRLIB Init/PlanAction/
// Update shape: PlanAction asks the planner for the next action, Step
// executes it against the ground-truth state and folds the resulting
// observation back into the planner's belief (spec E.4).
type Driver struct {
	sim    simulator.Simulator
	src    *rng.Source
	plan   *planner.Planner
	ground simulator.State

	steps            int
	discountedReturn float64
	undiscReturn     float64
	discountFactor   float64

	terminal       bool
	outOfParticles bool
}

// NewDriver constructs a Driver: it builds a Planner over sim (drawing its
// root belief from sim.CreateStartState via planner.New) and seeds the
// ground-truth particle from the same prior.
func NewDriver(sim simulator.Simulator, src *rng.Source, params planner.Params) *Driver {
	return &Driver{
		sim:            sim,
		src:            src,
		plan:           planner.New(sim, src, params),
		ground:         sim.CreateStartState(),
		discountFactor: 1,
	}
}

// PlanAction runs search from the planner's current root and returns the
// chosen action.
func (d *Driver) PlanAction() (int, error) {
	return d.plan.Search()
}

// Step executes action against the ground-truth particle and applies the
// resulting observation to the planner's belief (spec §6 "Update returns
// one of {Terminal, NonTerminal, OutOfParticles}").
func (d *Driver) Step(action int) (simulator.StepResult, planner.UpdateStatus) {
	result := d.sim.Step(d.ground, action)
	status := d.plan.Update(action, result.Observation, result.Terminal)

	d.steps++
	d.undiscReturn += result.Reward
	d.discountedReturn += d.discountFactor * result.Reward
	d.discountFactor *= d.sim.Discount()

	switch status {
	case planner.Terminal:
		d.terminal = true
	case planner.OutOfParticles:
		d.outOfParticles = true
	}
	return result, status
}

// Done reports whether the episode has reached a terminal state or run out
// of belief particles.
func (d *Driver) Done() bool {
	return d.terminal || d.outOfParticles
}

// RunEpisode drives the decision loop to completion or maxSteps, whichever
// comes first, logging one line per decision when verbose is nonzero (spec
// §6/E.4 "--verbose run output"). At verbose>=2 it also prints the root
// belief node's per-action Q-value row, captured before Step's Update call
// discards that root (spec E.3 "gonum.org/v1/gonum/mat").
func (d *Driver) RunEpisode(w io.Writer, maxSteps, verbose int) RunResult {
	start := time.Now()
	for d.steps < maxSteps && !d.Done() {
		action, err := d.PlanAction()
		if err != nil {
			break
		}
		var q *mat.VecDense
		if verbose >= 2 {
			q = d.qValues()
		}
		result, status := d.Step(action)
		if verbose > 0 {
			d.logStep(w, q, action, result, status)
		}
	}
	return RunResult{
		WallTime:           time.Since(start),
		DiscountedReturn:   d.discountedReturn,
		UndiscountedReturn: d.undiscReturn,
		Steps:              d.steps,
		Terminal:           d.terminal,
		OutOfParticles:     d.outOfParticles,
	}
}

// qValues renders the current root belief node's per-action value estimate
// as a dense vector indexed by action, zero at actions the tree never
// expanded.
func (d *Driver) qValues() *mat.VecDense {
	root := d.plan.Root()
	q := mat.NewVecDense(d.sim.NumActions(), nil)
	for a, an := range root.Actions {
		q.SetVec(a, an.Value)
	}
	return q
}

func (d *Driver) logStep(w io.Writer, q *mat.VecDense, action int, result simulator.StepResult, status planner.UpdateStatus) {
	if q != nil {
		fmt.Fprintf(w, "  Q=%v\n", mat.Formatted(q, mat.Prefix("     "), mat.Squeeze()))
	}
	display, ok := d.sim.(simulator.Stringer)
	if !ok {
		fmt.Fprintf(w, "step %d: action=%d reward=%.3f status=%v\n",
			d.steps, action, result.Reward, status)
		return
	}
	fmt.Fprintf(w, "step %d: action=%s observation=%s reward=%.3f status=%v\n",
		d.steps, display.DisplayAction(action),
		display.DisplayObservation(d.ground, result.Observation),
		result.Reward, status)
}

// InteractiveRun drives the decision loop from an externally supplied
// action feed, one action per value received from actions (it stops when
// the channel is closed), printing one verbose line
// per decision to w regardless of the verbose setting; this is
// rrlib.h's InteractiveRun supplemented for manual domain testing (spec
// E.4), not robot RPC-driven play.
func (d *Driver) InteractiveRun(w io.Writer, actions <-chan int, maxSteps int) RunResult {
	start := time.Now()
	for d.steps < maxSteps && !d.Done() {
		action, ok := <-actions
		if !ok {
			break
		}
		result, status := d.Step(action)
		d.logStep(w, nil, action, result, status)
	}
	return RunResult{
		WallTime:           time.Since(start),
		DiscountedReturn:   d.discountedReturn,
		UndiscountedReturn: d.undiscReturn,
		Steps:              d.steps,
		Terminal:           d.terminal,
		OutOfParticles:     d.outOfParticles,
	}
}
