package planner

import "github.com/dfki-ni/rageplan/belief"

// ActionNode is one action edge out of a BeliefNode: a value estimate, a
// visit count, and a mapping from observation index to the BeliefNode it
// leads to.
type ActionNode struct {
	Action   int
	Value    float64
	Visits   int
	Children map[int]*BeliefNode
}

func newActionNode(action int) *ActionNode {
	return &ActionNode{Action: action, Children: make(map[int]*BeliefNode)}
}

// update folds one simulated return into this action's running value
// estimate via the standard incremental-mean rule.
func (n *ActionNode) update(ret float64) {
	n.Visits++
	n.Value += (ret - n.Value) / float64(n.Visits)
}

// BeliefNode is a tree node: a mean value, a visit count, a belief-state
// particle bag, and one ActionNode per legal action at this node. The fan-out
// is fixed when the node is expanded (spec §4.3 "Progressive widening: None").
type BeliefNode struct {
	Value    float64
	Visits   int
	Belief   *belief.State
	Actions  map[int]*ActionNode
	expanded bool
}

func newBeliefNode() *BeliefNode {
	return &BeliefNode{
		Belief:  belief.New(),
		Actions: make(map[int]*ActionNode),
	}
}

func (n *BeliefNode) update(ret float64) {
	n.Visits++
	n.Value += (ret - n.Value) / float64(n.Visits)
}

// action returns the ActionNode for a, creating it if absent.
func (n *BeliefNode) action(a int) *ActionNode {
	an, ok := n.Actions[a]
	if !ok {
		an = newActionNode(a)
		n.Actions[a] = an
	}
	return an
}

// BestAction returns the most-visited action, breaking visit-count ties by
// the higher value estimate (remaining ties fall to map iteration order),
// used once search time/budget is exhausted (spec §5 "Cancellation /
// timeout"). It reports false when no action has been visited.
func (n *BeliefNode) BestAction() (int, bool) {
	best := -1
	bestValue := 0.0
	bestVisits := -1
	for a, an := range n.Actions {
		if an.Visits == 0 {
			continue
		}
		if an.Visits > bestVisits || (an.Visits == bestVisits && an.Value > bestValue) {
			best = a
			bestValue = an.Value
			bestVisits = an.Visits
		}
	}
	return best, best >= 0
}
