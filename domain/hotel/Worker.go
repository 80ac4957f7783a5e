package hotel

func containsInt(v []int, target int) bool {
	for _, x := range v {
		if x == target {
			return true
		}
	}
	return false
}

// currentHotelAssembly reports whether every part required by the active
// hotel's type is assembled, and whether any part outside that type is
// assembled (spec §4.5 "wrong parts").
func (s *Sim) currentHotelAssembly(st *State) (fully, wrong bool) {
	h := &st.Worker.Hotels[st.Worker.Hotel]
	allowed := s.cfg.TypeMap[h.Type]

	fully = true
	for _, part := range allowed {
		if !st.Worker.Parts[part].Assembled {
			fully = false
			break
		}
	}

	for _, p := range st.Worker.Parts {
		if p.Assembled && !containsInt(allowed, p.Number) {
			wrong = true
			break
		}
	}
	return fully, wrong
}

// firstWrongAssembledPart returns the first assembled part outside the
// active hotel's type, in part-number order.
func (s *Sim) firstWrongAssembledPart(st *State) (int, bool) {
	h := &st.Worker.Hotels[st.Worker.Hotel]
	allowed := s.cfg.TypeMap[h.Type]
	for _, p := range st.Worker.Parts {
		if p.Assembled && !containsInt(allowed, p.Number) {
			return p.Number, true
		}
	}
	return 0, false
}

// randomUnassembledPart searches, with up to len(typeParts) random draws,
// for an unassembled part belonging to typeParts (spec §4.5 "worker picks a
// random unassembled part").
func (s *Sim) randomUnassembledPart(st *State, typeIdx int) (int, bool) {
	typeParts := s.cfg.TypeMap[typeIdx]
	trials := len(typeParts)
	for trials > 0 {
		candidate := typeParts[s.src.Intn(len(typeParts))]
		if !st.Worker.Parts[candidate].Assembled {
			return candidate, true
		}
		trials--
	}
	return 0, false
}

// attemptAssemble resolves one Assemble attempt at part: it succeeds iff
// the shared container is currently non-empty, consuming it on success and
// marking it Needed on failure.
func (s *Sim) attemptAssemble(st *State, part int) bool {
	c := &st.Containers[part]
	if !c.NonEmpty {
		c.Needed = true
		return false
	}
	c.NonEmpty = false
	h := &st.Worker.Hotels[st.Worker.Hotel]
	st.Worker.Parts[part].Assembled = true
	h.PercentComplete += 100.0 / float64(len(s.cfg.TypeMap[h.Type]))
	return true
}

// attemptRemove resolves one Remove attempt at part: it succeeds iff the
// part is currently assembled, restocking the shared container on success.
func (s *Sim) attemptRemove(st *State, part int) bool {
	p := &st.Worker.Parts[part]
	if !p.Assembled {
		return false
	}
	st.Containers[part].NonEmpty = true
	p.Assembled = false
	h := &st.Worker.Hotels[st.Worker.Hotel]
	h.PercentComplete -= 100.0 / float64(len(s.cfg.TypeMap[h.Type]))
	return true
}

// tick advances the worker policy graph by one step, applying its outcome
// to shared container stock and returning the reward it generated (spec
// §4.5).
func (s *Sim) tick(st *State) float64 {
	if st.AllComplete() {
		return 0
	}

	fully, wrong := s.currentHotelAssembly(st)
	if fully && !wrong && !st.Worker.Hotels[st.Worker.Hotel].Complete {
		h := &st.Worker.Hotels[st.Worker.Hotel]
		h.Complete = true
		if st.Worker.Hotel < len(st.Worker.Hotels)-1 {
			st.Worker.Hotel++
		}
		st.Worker.Action = WorkerNone
		st.Worker.Object = PartNone

		// The next hotel in line may already be marked complete only when
		// it is the same one we just finished (single-hotel problems never
		// advance the index); report the Done outcome in that case, mirroring
		// the worker sim and its outcome generator running back to back.
		if st.Worker.Hotels[st.Worker.Hotel].Complete {
			st.Worker.Result = OutcomeDone
			return s.cfg.RewardHotelComplete
		}
		return 0
	}

	switch st.Worker.Action {
	case WorkerNone:
		h := &st.Worker.Hotels[st.Worker.Hotel]

		if wrong && s.src.Bernoulli(s.cfg.Expertise) {
			if part, ok := s.firstWrongAssembledPart(st); ok {
				st.Worker.Action = WorkerRemove
				st.Worker.Object = part
				return 0
			}
		}

		st.Worker.Object = PartNone
		if s.src.Bernoulli(s.cfg.WorkerDelay) {
			return 0
		}

		hotelType := h.Type
		if s.src.Bernoulli(1 - s.cfg.Expertise) {
			hotelType = 1 - hotelType
		}
		if part, ok := s.randomUnassembledPart(st, hotelType); ok {
			st.Worker.Action = WorkerAssemble
			st.Worker.Object = part
		}
		return 0

	case WorkerAssemble:
		part := st.Worker.Object
		if s.attemptAssemble(st, part) {
			st.Worker.Result = OutcomeOK
			st.Worker.Action = WorkerNone
			return s.cfg.RewardAssemble
		}
		st.Worker.Result = OutcomeFail
		st.Worker.Action = WorkerWait
		return s.cfg.RewardPartMissing

	case WorkerWait:
		st.Worker.Action = WorkerNone
		return s.cfg.RewardWait

	case WorkerRemove:
		part := st.Worker.Object
		if s.attemptRemove(st, part) {
			st.Worker.Result = OutcomeOK
		} else {
			st.Worker.Result = OutcomeFail
		}
		st.Worker.Action = WorkerNone
		return 0
	}
	return 0
}
