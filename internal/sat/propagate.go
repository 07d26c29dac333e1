package sat

// propagate.go implements the Propagator (spec §4.3): draining the trail
// head, walking watch lists, repairing watched clauses or firing unit
// propagations, detecting conflicts, and performing lazy level-0
// tombstoning along the way.

// propagate drains the pending portion of the trail (trail[g:]). It
// returns the id of a conflicting clause the moment one is found, leaving
// any remaining pending literals unprocessed; the Controller is
// responsible for calling propagate again after backjumping. It returns
// NilClause once g has caught up with the end of the trail.
func (s *Solver) propagate() ClauseID {
	for s.g < len(s.trail) {
		l := s.trail[s.g]
		s.g++
		if c := s.propagateFalsified(l.Opposite()); c != NilClause {
			return c
		}
	}
	return NilClause
}

// propagateFalsified walks the watch list of fl, a literal that has just
// become false, repairing each clause that watches it. It splices a clause
// out of fl's list in O(1) as it goes whenever a replacement watch is
// found, tracking the last node that stayed (prev) so it can patch that
// node's next-pointer directly rather than rescanning the list (spec
// §4.3's wll).
func (s *Solver) propagateFalsified(fl Literal) ClauseID {
	var prev ClauseID = NilClause
	c := s.store.Head(fl)

	for c != NilClause {
		// Normalize: ensure literal(c,0) == fl, keeping "position 0 is the
		// false-watched slot" true for the rest of this iteration.
		which := s.store.watchSlotFor(c, fl)
		next := s.store.wnext(c, which)
		if which == 1 {
			s.store.SwapLits(c, 0, 1)
			s.store.swapWnext(c)
		}

		// Blocking check: the clause is already satisfied by its other
		// watch. Leave it on fl's list unchanged.
		lit1 := s.store.Lit(c, 1)
		if s.isTrue(lit1) {
			prev = c
			c = next
			continue
		}

		if replacement := s.repairClause(c, fl); !replacement.IsNil() {
			if prev == NilClause {
				s.store.SetHead(fl, next)
			} else {
				s.store.setWnext(prev, 0, next)
			}
			s.store.setWnext(c, 0, s.store.Head(replacement))
			s.store.SetHead(replacement, c)
			c = next
			continue
		}

		// No replacement watch: c stays on fl's list either way.
		if s.isFalse(lit1) {
			return c // conflict
		}
		if !s.enqueue(lit1, c) {
			return c // unit propagation immediately contradicted
		}

		prev = c
		c = next
	}

	return NilClause
}

// repairClause scans clause c's non-watched literals (positions 2 through
// size-1) for a literal to replace fl as a watch. Along the way, any
// literal that is false at level 0 is dropped as a tombstone (lazy
// level-0 removal) rather than considered as a candidate; the clause is
// compacted in place regardless of whether a replacement is found. fl is
// only moved into the clause's tail when a replacement is actually found;
// otherwise it stays (unwatched by this call) at position 0, where the
// caller already normalized it.
//
// It returns the replacement literal, or NilLiteral if none was found —
// in which case literal(c,1) is the only other watch left to check for
// conflict/unit.
func (s *Solver) repairClause(c ClauseID, fl Literal) Literal {
	size := s.store.Size(c)
	tail := make([]Literal, 0, size)

	var replacement Literal
	found := false

	for i := int32(2); i < size; i++ {
		m := s.store.Lit(c, i)
		if s.levelOf(m.Var()) == 0 && s.isFalse(m) {
			continue // tombstone
		}
		if !found && !s.isFalse(m) {
			replacement = m
			found = true
			continue
		}
		tail = append(tail, m)
	}

	if found {
		tail = append(tail, fl)
		s.store.setLit(c, 0, replacement)
	}
	for i, m := range tail {
		s.store.setLit(c, int32(2+i), m)
	}
	s.store.ShrinkClause(c, int32(2+len(tail)))

	if !found {
		return NilLiteral
	}
	return replacement
}
