package planner

import "github.com/pkg/errors"

// errLegalEmpty reports the one class of planner failure spec §7 treats as
// fatal rather than modelled: an empty legal action set at a non-terminal
// node. Wrapped with github.com/pkg/errors, the same style the pack's
// tree-search code (hiveGo's MCTS searcher) uses for invariant violations.
func errLegalEmpty(op string, node *BeliefNode) error {
	return errors.Errorf("%s: no legal actions at non-terminal node (visits=%d)",
		op, node.Visits)
}
