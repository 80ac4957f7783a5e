package config

import (
	"fmt"

	"github.com/dfki-ni/rageplan/planner"
)

// ParseKnowledge inverts planner.Knowledge.String for --treeKnowledge and
// --rolloutKnowledge flag values.
func ParseKnowledge(s string) (planner.Knowledge, error) {
	switch s {
	case "", "random":
		return planner.Random, nil
	case "preferred":
		return planner.Preferred, nil
	case "pgs":
		return planner.PGS, nil
	case "pgs+shaping":
		return planner.PGSShaping, nil
	default:
		return 0, fmt.Errorf("config: unknown knowledge level %q", s)
	}
}

// PlannerParams builds a planner.Params from a parsed Options and ParamFile,
// translating --minDoubles/--maxDoubles/--timeout/--treeKnowledge/
// --rolloutKnowledge/--fTable (spec §6) into the quantities planner.Params
// consumes.
func PlannerParams(opt Options, p ParamFile) (planner.Params, error) {
	tree, err := ParseKnowledge(opt.TreeKnowledge)
	if err != nil {
		return planner.Params{}, err
	}
	rollout, err := ParseKnowledge(opt.RolloutKnowledge)
	if err != nil {
		return planner.Params{}, err
	}

	simDoubles := opt.MaxDoubles
	if simDoubles == 0 {
		simDoubles = opt.MinDoubles
	}
	transformDoubles := opt.MinDoubles - opt.MaxDoubles

	transitionRate := p.TransitionRate
	if transitionRate == 0 {
		transitionRate = 1.0
	}

	timeout := opt.Timeout
	if timeout == 0 {
		timeout = p.Timeout
	}

	// Accuracy bounds rollout-depth truncation; it has no paramfile key of
	// its own (spec §6 lists none), so it keeps this fixed default.
	const defaultAccuracy = 0.005

	return planner.Params{
		SimDoubles:          simDoubles,
		TransformDoubles:    transformDoubles,
		TransformAttempts:   10,
		Timeout:             timeout,
		Accuracy:            defaultAccuracy,
		ExplorationConstant: 0,
		TreeKnowledge:       tree,
		RolloutKnowledge:    rollout,
		UseFTable:           opt.FTable || p.IRE,
		PGSAlpha:            p.PGSAlpha,
		TransitionRate:      transitionRate,
		ActivationThreshold: p.Activation,
		Verbose:             opt.Verbose,
	}, nil
}
