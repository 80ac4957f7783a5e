// Package history implements the append-only (action, observation) sequence
// the planner threads through a run, used by Simulator.Legal/Preferred/
// PgsLegal/LocalMove to condition on what has already been seen.
package history

// Entry is one (action, observation) pair in a run's history.
type Entry struct {
	Action      int
	Observation int
}

// History is an append-only sequence of Entries. The zero value is an empty
// History ready to use.
type History struct {
	entries []Entry
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Add appends one (action, observation) pair.
func (h *History) Add(action, observation int) {
	h.entries = append(h.entries, Entry{Action: action, Observation: observation})
}

// Len returns the number of entries recorded.
func (h *History) Len() int {
	return len(h.entries)
}

// Back returns the most recently added entry and whether one exists.
func (h *History) Back() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// At returns the entry at index i.
func (h *History) At(i int) Entry {
	return h.entries[i]
}

// Truncate drops every entry at or past index i.
func (h *History) Truncate(i int) {
	h.entries = h.entries[:i]
}

// Copy returns an independent copy of h.
func (h *History) Copy() *History {
	cp := make([]Entry, len(h.entries))
	copy(cp, h.entries)
	return &History{entries: cp}
}
