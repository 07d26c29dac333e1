package sat

import (
	"fmt"
	"sort"
	"time"
)

// controller.go implements the Controller (spec §4.5): the outer state
// machine sequencing decision, propagation, conflict analysis, backjump
// and learning, plus the agility-triggered restart heuristic (§4.6) and
// lemma purging (§4.7). The step names in comments below (C2, C5, ...)
// follow Knuth's numbering for cross-reference, not because the control
// flow is literally laid out as a switch over them.

// Solve runs the search to completion (or until MaxConflicts is
// exhausted) and returns True (satisfiable, with a model available via
// Model), False (unsatisfiable), or Unset (the conflict budget was spent
// before a verdict was reached).
func (s *Solver) Solve() LBool {
	if s.unsat {
		return False
	}
	s.startTime = time.Now()

	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()

	for {
		// C2/C3/C4: propagate until fixpoint or conflict.
		if confl := s.propagate(); confl != NilClause {
			s.TotalConflicts++
			if s.TotalConflicts%10000 == 0 {
				s.printSearchStats()
			}

			// C7
			if s.decisionLevel() == 0 {
				s.unsat = true
				s.printSearchStats()
				s.printSeparator()
				return False
			}
			s.handleConflict(confl)
			continue
		}

		// C5
		if s.NumAssigns() == s.NumVariables() {
			s.saveModel()
			s.printSearchStats()
			s.printSeparator()
			return True
		}

		if s.nLemmas > s.opts.MaxLemmas {
			s.purge()
		}

		if s.shouldRestart() {
			s.restart()
			continue
		}

		if s.opts.MaxConflicts >= 0 && s.TotalConflicts >= s.opts.MaxConflicts {
			return Unset
		}

		// C6
		if !s.decide() {
			return Unset
		}
	}
}

// Model returns the satisfying assignment found by the most recent
// successful Solve call, indexed by Var-1 (model[0] is variable 1's
// value). It is only meaningful after Solve returned True.
func (s *Solver) Model() []bool {
	return s.model
}

func (s *Solver) saveModel() {
	model := make([]bool, s.nvars)
	for v := 1; v <= s.nvars; v++ {
		model[v-1] = s.value[v] == True
	}
	s.model = model
}

// handleConflict implements C7/C8/C9: analyze the conflict, backjump,
// fold in the previous lemma if subsumed, and install the new one.
func (s *Solver) handleConflict(confl ClauseID) {
	learnt, dp := s.analyze(confl)
	epoch := s.stamp.epochValue()
	lbd := s.computeLBD(learnt, epoch)

	// C8
	s.cancelUntil(dp)

	s.trySubsumePrevLemma(learnt, dp, epoch)

	// C9
	s.learn(learnt, lbd)
}

// learn installs a freshly derived clause. A unit clause is simply
// enqueued at level 0 with no reason; a longer clause is appended to the
// store, watched on its asserting literal (position 0) and the
// highest-level literal of its tail (position 1), and that asserting
// literal is enqueued with the new clause as its reason.
func (s *Solver) learn(learnt []Literal, lbd int32) {
	if len(learnt) == 1 {
		s.enqueue(learnt[0], NilClause)
		s.lastLemma = NilClause
		return
	}

	hi := 1
	for i := 2; i < len(learnt); i++ {
		if s.levelOf(learnt[i].Var()) > s.levelOf(learnt[hi].Var()) {
			hi = i
		}
	}
	learnt[1], learnt[hi] = learnt[hi], learnt[1]

	c := s.store.AppendClause(learnt, lbd)
	s.store.AttachWatches(c)
	s.enqueue(learnt[0], c)

	if s.clauseActivity == nil {
		s.clauseActivity = make(map[ClauseID]float64)
	}
	s.clauseActivity[c] = s.clauseInc

	s.lastLemma = c
	s.learnts = append(s.learnts, c)
	s.nLemmas++
}

// decide implements C6: repeatedly delete-max from the decision heap
// until an unassigned variable is found, then pushes a decision literal
// chosen by phase saving.
func (s *Solver) decide() bool {
	s.ensureOrder()
	v, ok := s.order.DeleteMax(func(cand int) bool {
		return s.value[Var(cand)] == Unset
	})
	if !ok {
		return false
	}

	positive := !s.opts.PhaseSaving || s.oval[Var(v)] == True
	l := Lit(Var(v), positive)

	s.TotalDecisions++
	s.assume(l)
	return true
}

// locked reports whether clause c is currently the reason for one of its
// two watched variables (spec §4.1).
func (s *Solver) locked(c ClauseID) bool {
	for _, i := range [2]int32{0, 1} {
		v := s.store.Lit(c, i).Var()
		if s.value[v] != Unset && s.reason[v] == c {
			return true
		}
	}
	return false
}

// purge implements §4.7: learned, non-locked clauses are sorted by LBD
// ascending then activity descending (best first) and the worse half is
// dropped. Original clauses (LBD 0) are never candidates since they never
// appear in s.learnts.
func (s *Solver) purge() {
	type candidate struct {
		id  ClauseID
		lbd int32
		act float64
	}

	candidates := make([]candidate, 0, len(s.learnts))
	locked := make([]ClauseID, 0)
	for _, c := range s.learnts {
		if s.locked(c) {
			locked = append(locked, c)
			continue
		}
		candidates = append(candidates, candidate{c, s.store.LBD(c), s.clauseActivity[c]})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].lbd != candidates[j].lbd {
			return candidates[i].lbd < candidates[j].lbd
		}
		return candidates[i].act > candidates[j].act
	})

	keep := len(candidates) / 2
	dropped := candidates[keep:]
	for _, cand := range dropped {
		s.store.DetachWatches(cand.id)
		delete(s.clauseActivity, cand.id)
	}

	newLearnts := make([]ClauseID, 0, len(locked)+keep)
	newLearnts = append(newLearnts, locked...)
	for _, cand := range candidates[:keep] {
		newLearnts = append(newLearnts, cand.id)
	}
	s.learnts = newLearnts
	s.nLemmas = len(s.learnts)
	s.TotalPurges++
}

// bumpAgility updates the restart agility counter (spec §4.6) to reflect
// whether l's polarity matches the previously saved phase for its
// variable.
func (s *Solver) bumpAgility(l Literal) {
	s.agility -= s.agility >> 13

	v := l.Var()
	newVal := False
	if l.IsPositive() {
		newVal = True
	}
	if s.oval[v] != newVal {
		s.agility += 1 << 19
	}
}

// shouldRestart reports whether the agility ratio has dropped below
// threshold and enough conflicts have elapsed since the last restart.
func (s *Solver) shouldRestart() bool {
	ratio := float64(s.agility) / float64(uint64(1)<<32)
	return ratio < s.opts.RestartAgilityThreshold &&
		s.TotalConflicts-s.lastRestartEpoch >= int64(s.opts.RestartMinInterval)
}

func (s *Solver) restart() {
	s.cancelUntil(0)
	s.lastRestartEpoch = s.TotalConflicts
	s.TotalRestarts++
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time       conflicts       restarts         purges        learnts")
}

func (s *Solver) printSearchStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalConflicts,
		s.TotalRestarts,
		s.TotalPurges,
		len(s.learnts))
}
