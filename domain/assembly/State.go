package assembly

import "github.com/dfki-ni/rageplan/simulator"

// Worker activities (spec §4.4).
const (
	WorkerNone = iota
	WorkerWait
	WorkerAssemble
	WorkerGlue
)

// Worker poses, used by the Perceive observation codec.
const (
	PosePart = iota
	PoseGlue
)

// Worker outcomes.
const (
	OutcomeFail = iota
	OutcomeOK
)

// NoGlue marks GlueHeld as empty-handed.
const NoGlue = -1

// Product is one partially-observed truck: its ground-truth type, assembly
// progress, and the assistant's belief over its type (spec §3).
type Product struct {
	Type           int
	Complete       bool
	AssembledParts []bool

	ProbType          float64
	LikelihoodType    float64
	LikelihoodNotType float64
	TypeAssumed       bool
}

func (p Product) clone() Product {
	cp := p
	cp.AssembledParts = append([]bool(nil), p.AssembledParts...)
	return cp
}

// Container is one part storage slot: ground-truth stock plus the
// assistant's belief over whether it is empty (spec §3).
type Container struct {
	Capacity int
	Cost     float64
	Priority int
	Storage  int
	Needed   bool
	Empty    bool

	LikelihoodEmpty    float64
	LikelihoodNotEmpty float64
	ProbEmpty          float64

	Active bool // IRE feature-active flag
}

// State is one assembly particle (spec §3).
type State struct {
	WorkerAction  int
	TargetPart    int
	Pose          int
	Outcome       int
	ActiveProduct int
	GlueHeld      int

	Products   []Product
	Containers []Container
}

// Clone returns a deep copy of s.
func (s *State) Clone() simulator.State {
	cp := &State{
		WorkerAction:  s.WorkerAction,
		TargetPart:    s.TargetPart,
		Pose:          s.Pose,
		Outcome:       s.Outcome,
		ActiveProduct: s.ActiveProduct,
		GlueHeld:      s.GlueHeld,
		Products:      make([]Product, len(s.Products)),
		Containers:    append([]Container(nil), s.Containers...),
	}
	for i, p := range s.Products {
		cp.Products[i] = p.clone()
	}
	return cp
}

// AllComplete reports whether every product has been finished.
func (s *State) AllComplete() bool {
	for _, p := range s.Products {
		if !p.Complete {
			return false
		}
	}
	return true
}
