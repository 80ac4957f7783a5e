package hotel

import "github.com/dfki-ni/rageplan/simulator"

// Worker activities.
const (
	WorkerNone = iota
	WorkerWait
	WorkerAssemble
	WorkerRemove
)

// Worker outcomes. OutcomeDone additionally marks a just-completed hotel,
// distinguishing it from an ordinary idle OutcomeOK tick.
const (
	OutcomeFail = iota
	OutcomeOK
	OutcomeDone
)

// PartNone marks WorkerState.Object as empty-handed.
const PartNone = -1

// PartRecord is one shared part/container slot and its assembly status.
type PartRecord struct {
	Name      string
	Number    int
	Priority  int
	Assembled bool
}

func (p PartRecord) clone() PartRecord { return p }

// HotelRecord is one object to assemble: its ground-truth type and progress.
type HotelRecord struct {
	Name            string
	Type            int
	Complete        bool
	PercentComplete float64
}

// WorkerState is the ground-truth worker policy-graph state (spec §4.5).
type WorkerState struct {
	Action int
	Object int
	Result int
	Hotel  int // index of the hotel currently being assembled

	Hotels []HotelRecord
	Parts  []PartRecord
}

func (w WorkerState) clone() WorkerState {
	cp := w
	cp.Hotels = append([]HotelRecord(nil), w.Hotels...)
	cp.Parts = make([]PartRecord, len(w.Parts))
	for i, p := range w.Parts {
		cp.Parts[i] = p.clone()
	}
	return cp
}

// HotelBelief is the assistant's belief over one hotel's type (spec §4.7).
type HotelBelief struct {
	ProbT0          float64
	LikelihoodT0    float64
	LikelihoodNotT0 float64
	AssumedType     bool
}

// Container is one part/storage slot as tracked by the assistant: its
// ground-truth stock plus belief over emptiness and assembly status.
type Container struct {
	ID       int
	Name     string
	Cost     float64
	Priority int

	NonEmpty bool // ground truth
	Needed   bool

	LikelihoodEmpty    float64
	LikelihoodNotEmpty float64
	ProbEmpty          float64

	LikelihoodAssembled    float64
	LikelihoodNotAssembled float64
	ProbAssembled          float64

	Active bool // IRE feature-active flag
}

// State is one hotel particle (spec §3).
type State struct {
	Worker     WorkerState
	Hotels     []HotelBelief
	Containers []Container
}

// Clone returns a deep copy of s.
func (s *State) Clone() simulator.State {
	cp := &State{
		Worker:     s.Worker.clone(),
		Hotels:     append([]HotelBelief(nil), s.Hotels...),
		Containers: append([]Container(nil), s.Containers...),
	}
	return cp
}

// AllComplete reports whether every hotel has been finished.
func (s *State) AllComplete() bool {
	for _, h := range s.Worker.Hotels {
		if !h.Complete {
			return false
		}
	}
	return true
}
