package assembly

// firstUnassembledPart returns the first part (in declared type-map order)
// of product p still unassembled.
func (s *Sim) firstUnassembledPart(p *Product) (int, bool) {
	for _, part := range s.cfg.TypeMap[p.Type] {
		if !p.AssembledParts[part] {
			return part, true
		}
	}
	return 0, false
}

// advanceActiveProduct moves to the next incomplete product, clamping at
// the last index once every product is complete.
func (s *State) advanceActiveProduct() {
	for s.ActiveProduct < len(s.Products)-1 && s.Products[s.ActiveProduct].Complete {
		s.ActiveProduct++
	}
}

// attemptAssemble resolves one Assemble attempt at the worker's target part:
// it succeeds iff the part's storage count is positive, decrementing it on
// success and setting Needed on failure (spec §4.4).
func (s *Sim) attemptAssemble(st *State) bool {
	part := st.TargetPart
	c := &st.Containers[part]
	if c.Storage <= 0 {
		c.Needed = true
		return false
	}
	c.Storage--
	if c.Storage == 0 {
		c.Empty = true
	}
	st.Products[st.ActiveProduct].AssembledParts[part] = true
	return true
}

// tick advances the worker policy graph by one step, applying its outcome
// to shared storage and returning the reward it generated (spec §4.4).
func (s *Sim) tick(st *State) float64 {
	if st.ActiveProduct >= len(st.Products) {
		return 0
	}

	switch st.WorkerAction {
	case WorkerNone:
		p := &st.Products[st.ActiveProduct]
		if part, ok := s.firstUnassembledPart(p); ok {
			st.WorkerAction = WorkerAssemble
			st.TargetPart = part
			st.Pose = PosePart
			return 0
		}
		if s.cfg.NeedsGlue[p.Type] && st.GlueHeld != p.Type {
			st.WorkerAction = WorkerGlue
			st.Pose = PoseGlue
			return 0
		}
		p.Complete = true
		st.advanceActiveProduct()
		return 0

	case WorkerAssemble:
		if s.attemptAssemble(st) {
			st.Outcome = OutcomeOK
			st.WorkerAction = WorkerNone
			return s.cfg.RewardAssembleOK
		}
		st.Outcome = OutcomeFail
		st.WorkerAction = WorkerWait
		return s.cfg.RewardMissingPart

	case WorkerWait:
		st.WorkerAction = WorkerNone
		return s.cfg.RewardWait

	case WorkerGlue:
		p := &st.Products[st.ActiveProduct]
		if st.GlueHeld == p.Type {
			st.Outcome = OutcomeOK
			st.WorkerAction = WorkerNone
			st.GlueHeld = NoGlue
			p.Complete = true
			st.advanceActiveProduct()
			return s.cfg.RewardGlueOK
		}
		st.Outcome = OutcomeFail
		st.WorkerAction = WorkerWait
		return s.cfg.RewardMissingPart
	}
	return 0
}
