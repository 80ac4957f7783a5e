// Package planner implements the generic POMCP-style online planner: belief
// particle management, progressive-widening-free UCB1 tree search, and
// PBRS-shaped rollouts driven by any simulator.Simulator (spec §4.3).
package planner

import (
	"math"
	"sort"
	"time"

	"github.com/dfki-ni/rageplan/ftable"
	"github.com/dfki-ni/rageplan/history"
	"github.com/dfki-ni/rageplan/rng"
	"github.com/dfki-ni/rageplan/simulator"
	"gonum.org/v1/gonum/floats"
)

// UpdateStatus is the outcome of applying one real (action, observation,
// reward) step to the planner's belief, per spec §6.
type UpdateStatus int

const (
	NonTerminal UpdateStatus = iota
	Terminal
	OutOfParticles
)

// Planner owns the search tree and the belief pools; it is the single owner
// of both, per spec §4.3/§5's "no parallelism inside the planner" model.
type Planner struct {
	sim    simulator.Simulator
	src    *rng.Source
	params Params
	ftab   *ftable.Table
	root   *BeliefNode
	hist   *history.History

	maxDepth int
}

// New constructs a Planner, draws NumStartStates() start-state particles
// into the root belief, and registers the simulator's F-table mapping.
func New(sim simulator.Simulator, src *rng.Source, params Params) *Planner {
	ftab := ftable.New(params.TransitionRate)
	ftab.SetActivationThreshold(params.ActivationThreshold)
	sim.InitializeFTable(ftab)

	root := newBeliefNode()
	for i := 0; i < params.NumStartStates(); i++ {
		root.Belief.Add(sim.CreateStartState())
	}

	p := &Planner{
		sim:    sim,
		src:    src,
		params: params,
		ftab:   ftab,
		root:   root,
		hist:   history.New(),
	}
	p.maxDepth = maxDepth(params.Accuracy, sim.Discount())
	return p
}

// maxDepth computes the gamma-horizon truncation depth ceil(log_gamma(accuracy)).
func maxDepth(accuracy, gamma float64) int {
	if gamma <= 0 || gamma >= 1 || accuracy <= 0 {
		return 100
	}
	d := math.Ceil(math.Log(accuracy) / math.Log(gamma))
	if d < 1 {
		d = 1
	}
	return int(d)
}

// explorationConstant returns the UCB1 constant c: the configured override,
// or the simulator's RewardRange by default.
func (p *Planner) explorationConstant() float64 {
	if p.params.ExplorationConstant != 0 {
		return p.params.ExplorationConstant
	}
	return p.sim.RewardRange()
}

// Search runs up to NumSimulations() rollouts (or until Timeout elapses,
// whichever comes first) and returns the root's BestAction.
func (p *Planner) Search() (int, error) {
	var deadline time.Time
	if p.params.Timeout > 0 {
		deadline = time.Now().Add(p.params.Timeout)
	}

	n := p.params.NumSimulations()
	for i := 0; i < n; i++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		p.simulateOnce()
	}

	action, ok := p.root.BestAction()
	if !ok {
		return 0, errLegalEmpty("Search", p.root)
	}
	return action, nil
}

// simulateOnce samples one particle from the root belief and runs one
// simulated trajectory through the tree.
func (p *Planner) simulateOnce() {
	particle, ok := p.root.Belief.Sample(p.src)
	if !ok {
		return
	}
	state := p.sim.Copy(particle)
	h := p.hist.Copy()
	p.simulateTree(p.root, state, h, 0)
	p.sim.Free(state)
}

// simulateTree descends (or expands) the tree from node, mutating state in
// place to its successor at each level, and returns the discounted return
// accumulated from this node downward.
func (p *Planner) simulateTree(node *BeliefNode, state simulator.State, h *history.History, depth int) float64 {
	if depth >= p.maxDepth {
		return 0
	}

	if !node.expanded {
		p.expand(node, state, h)
		return p.rollout(state, h, depth)
	}

	if len(node.Actions) == 0 {
		return 0
	}

	action := p.selectAction(node)
	an := node.action(action)
	oldEstimate := an.Value

	result := p.step(state, action)
	h.Add(action, result.Observation)

	child, ok := an.Children[result.Observation]
	if !ok {
		child = newBeliefNode()
		an.Children[result.Observation] = child
	}
	child.Belief.Add(p.sim.Copy(state))

	var future float64
	if !result.Terminal {
		future = p.simulateTree(child, state, h, depth+1)
	}

	ret := result.Reward + p.sim.Discount()*future
	an.update(ret)
	node.update(ret)

	if p.params.UseFTable {
		p.ftab.Update(action, ret, oldEstimate)
	}

	return ret
}

// expand populates node's fixed action fan-out from the knowledge-level
// appropriate candidate set, applying IRE pruning when PGS-based knowledge
// is used (spec §4.3 "IRE interaction": IRE always gates PgsLegal).
func (p *Planner) expand(node *BeliefNode, state simulator.State, h *history.History) {
	candidates := p.knowledgeActions(p.params.TreeKnowledge, state, h)
	for _, a := range candidates {
		node.action(a)
	}
	node.expanded = true
}

// knowledgeActions returns the candidate action set for a given Knowledge
// level, applying F-table pruning for the PGS levels.
func (p *Planner) knowledgeActions(k Knowledge, state simulator.State, h *history.History) []int {
	var candidates []int
	switch k {
	case Preferred:
		candidates = p.sim.Preferred(state, h)
	case PGS, PGSShaping:
		candidates = p.sim.PgsLegal(state, h)
		candidates = p.ftab.FilterActive(candidates)
	default:
		candidates = p.sim.Legal(state, h)
	}
	return candidates
}

// selectAction runs UCB1 over node's fixed action set, trying every
// unvisited action first (picked uniformly at random among the untried
// set), per spec §4.3.
func (p *Planner) selectAction(node *BeliefNode) int {
	actions := make([]int, 0, len(node.Actions))
	for a := range node.Actions {
		actions = append(actions, a)
	}
	sort.Ints(actions)

	var untried []int
	for _, a := range actions {
		if node.Actions[a].Visits == 0 {
			untried = append(untried, a)
		}
	}
	if len(untried) > 0 {
		return untried[p.src.UniformIndex(len(untried))]
	}

	c := p.explorationConstant()
	logN := math.Log(float64(node.Visits))
	scores := make([]float64, len(actions))
	for i, a := range actions {
		an := node.Actions[a]
		scores[i] = an.Value + c*math.Sqrt(logN/float64(an.Visits))
	}
	best := floats.Max(scores)

	var bestActions []int
	for i, a := range actions {
		if scores[i] == best {
			bestActions = append(bestActions, a)
		}
	}
	return bestActions[p.src.UniformIndex(len(bestActions))]
}

// step wraps simulator.Step with the planner's own potential-based reward
// shaping when RolloutKnowledge or TreeKnowledge is PGSShaping (spec §4.3
// "Reward shaping").
// gamma_shaping is fixed at 1 so policy invariance holds (spec §9).
func (p *Planner) step(state simulator.State, action int) simulator.StepResult {
	if p.params.RolloutKnowledge != PGSShaping && p.params.TreeKnowledge != PGSShaping {
		return p.sim.Step(state, action)
	}

	before := p.sim.Copy(state)
	oldPhi := p.sim.Pgs(before)
	result := p.sim.Step(state, action)
	newPhi := p.sim.PgsRO(before, state, action, oldPhi)
	p.sim.Free(before)

	result.Reward += p.params.PGSAlpha * (newPhi - oldPhi)
	return result
}

// Root exposes the current root belief node (read-only use: CLI verbose
// output, tests).
func (p *Planner) Root() *BeliefNode {
	return p.root
}

// History exposes the planner's real (as opposed to per-rollout simulated)
// history.
func (p *Planner) History() *history.History {
	return p.hist
}
