package sat

// trail.go implements the Trail & Levels component (spec §3/§4.3): the
// chronological assignment trail plus the decision-level bookkeeping used
// to backjump. There is deliberately no separate propagation FIFO queue;
// the propagation head g (trail[:g] already processed, trail[g:] pending)
// plays that role, mirroring the original's single g index.

// enqueue assigns l true with the given reason clause (NilClause for a
// decision or a root-level unit) and pushes it onto the trail. It reports
// false if l was already false (an immediate conflict) and leaves the
// state unchanged in that case; if l was already true it is a no-op
// reporting true.
func (s *Solver) enqueue(l Literal, reason ClauseID) bool {
	switch s.LitValue(l) {
	case True:
		return true
	case False:
		return false
	}

	v := l.Var()
	if l.IsPositive() {
		s.value[v] = True
	} else {
		s.value[v] = False
	}
	s.lev[v] = int32(s.decisionLevel())
	s.reason[v] = reason
	s.tloc[v] = int32(len(s.trail))
	s.trail = append(s.trail, l)

	s.bumpAgility(l)

	return true
}

// assume opens a new decision level and enqueues l as the decision
// literal. It reports false if l was already false at the current level
// (the caller is expected to have checked this cannot happen for a fresh
// decision); the new level is opened either way.
func (s *Solver) assume(l Literal) bool {
	s.levelStart = append(s.levelStart, int32(len(s.trail)))
	return s.enqueue(l, NilClause)
}

// levelOf returns the decision level at which v was assigned.
func (s *Solver) levelOf(v Var) int32 {
	return s.lev[v]
}

// reasonOf returns the reason clause for v's assignment, or NilClause if v
// is a decision variable or unassigned.
func (s *Solver) reasonOf(v Var) ClauseID {
	return s.reason[v]
}

// cancelUntil undoes all assignments made at decision levels above level,
// restoring each undone variable to the Decision Heap with its
// phase-saved value (spec §3 oval(v)) recorded for reuse. level must be
// <= the current decision level.
func (s *Solver) cancelUntil(level int) {
	if s.decisionLevel() <= level {
		return
	}
	s.ensureOrder()

	cut := int(s.levelStart[level+1])
	for i := len(s.trail) - 1; i >= cut; i-- {
		l := s.trail[i]
		v := l.Var()

		s.oval[v] = s.value[v]
		s.value[v] = Unset
		s.lev[v] = -1
		s.reason[v] = NilClause
		s.tloc[v] = -1

		s.order.Insert(int(v), s.activity[v])
	}

	s.trail = s.trail[:cut]
	s.levelStart = s.levelStart[:level+1]
	if s.g > len(s.trail) {
		s.g = len(s.trail)
	}
}

// pendingLiterals returns the slice of trail literals not yet processed
// by the Propagator (trail[g:]).
func (s *Solver) pendingLiterals() []Literal {
	return s.trail[s.g:]
}
