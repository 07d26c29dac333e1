package sat

import (
	"fmt"
	"time"

	"github.com/watchsat/watchsat/internal/order"
)

// Options configures a Solver. The zero value is not meaningful; start
// from DefaultOptions.
type Options struct {
	// ClauseDecay and VariableDecay are the activity decay constants
	// applied after every conflict (spec §4.5/C9).
	ClauseDecay   float64
	VariableDecay float64

	// PhaseSaving enables remembering each variable's last assigned
	// polarity (spec §3's oval(v)) and reusing it as the decision
	// default, rather than always deciding positive.
	PhaseSaving bool

	// MaxLemmas is the lemma-purging budget (spec §4.7): once the number
	// of learned clauses exceeds this, C5 purges non-locked, high-LBD
	// learnts.
	MaxLemmas int

	// RestartAgilityThreshold and RestartMinInterval parameterize the
	// agility-triggered restart heuristic (spec §4.6): a restart is
	// considered once the agility ratio drops below the threshold and at
	// least RestartMinInterval conflicts have elapsed since the last one.
	RestartAgilityThreshold float64
	RestartMinInterval      uint32

	// MaxConflicts bounds the search if non-negative; -1 means no bound.
	MaxConflicts int64
}

// DefaultOptions mirrors the teacher's tuning (decay constants) extended
// with the purge/restart knobs spec §4.6/§4.7 call for.
var DefaultOptions = Options{
	ClauseDecay:             0.999,
	VariableDecay:           0.95,
	PhaseSaving:             true,
	MaxLemmas:               10000,
	RestartAgilityThreshold: 0.25,
	RestartMinInterval:      1000,
	MaxConflicts:            -1,
}

// Solver holds the entire state of a single, single-threaded CDCL search:
// the Clause Store/Watch Index (store.go), the Trail & Levels (trail.go),
// the Decision Heap (external, internal/order), and the scratch state used
// by the Propagator (propagate.go) and Conflict Analyzer (analyze.go). The
// Controller (controller.go) is the only thing that drives it.
type Solver struct {
	opts Options

	store *Store
	nvars int

	// Per-variable state (spec §3), each sized nvars+1 and indexed
	// directly by Var (index 0 unused).
	value  []LBool
	oval   []LBool
	lev    []int32
	reason []ClauseID
	tloc   []int32

	activity  []float64
	varInc    float64
	clauseInc float64

	order *order.VarOrder

	// Trail & Levels (spec §3).
	trail      []Literal
	g          int     // propagation head: trail[:g] has been processed.
	levelStart []int32 // di: trail length just before level d's decision.

	stamp  *stampSet
	lstamp []uint32 // per-level tag used by minimization and LBD computation.

	nLemmas        int
	lastLemma      ClauseID
	learnts        []ClauseID
	clauseActivity map[ClauseID]float64

	// Agility & restart (spec §4.6).
	agility          uint32
	lastRestartEpoch int64

	unsat bool
	model []bool

	startTime time.Time

	// Search statistics, surfaced for CLI reporting; not contractual.
	TotalConflicts    int64
	TotalDecisions    int64
	TotalPropagations int64
	TotalRestarts     int64
	TotalPurges       int64

	// Scratch buffers reused across calls to avoid reallocating on every
	// conflict (mirrors the teacher's tmpLearnts/tmpWatchers pattern).
	analyzeBuf []Literal
}

// NewSolver returns an empty Solver (no variables, no clauses) configured
// with the given options.
func NewSolver(opts Options) *Solver {
	return &Solver{
		opts:       opts,
		store:      NewStore(),
		value:      []LBool{Unset},
		oval:       []LBool{False},
		lev:        []int32{-1},
		reason:     []ClauseID{NilClause},
		tloc:       []int32{-1},
		activity:   []float64{0},
		varInc:     1,
		clauseInc:  1,
		levelStart: []int32{0},
		stamp:      newStampSet(0),
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of variables added so far.
func (s *Solver) NumVariables() int { return s.nvars }

// NumAssigns returns the number of variables currently assigned.
func (s *Solver) NumAssigns() int { return len(s.trail) }

// NumLemmas returns the number of learned clauses currently installed.
func (s *Solver) NumLemmas() int { return s.nLemmas }

// AddVariable adds a fresh variable and returns its id.
func (s *Solver) AddVariable() Var {
	s.nvars++
	v := Var(s.nvars)

	s.value = append(s.value, Unset)
	s.oval = append(s.oval, False)
	s.lev = append(s.lev, -1)
	s.reason = append(s.reason, NilClause)
	s.tloc = append(s.tloc, -1)
	s.activity = append(s.activity, 0)

	s.stamp = newStampSet(s.nvars)

	return v
}

// ensureOrder lazily builds the Decision Heap over every variable added so
// far. Construction is deferred to first use (rather than happening
// incrementally inside AddVariable) because the heap's capacity must cover
// the final variable count: all variables are expected to be registered
// before the search touches the heap (decide, activity bumps, backjump).
func (s *Solver) ensureOrder() {
	if s.order == nil {
		s.order = order.New(s.nvars)
	}
}

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v Var) LBool {
	return s.value[v]
}

// LitValue returns the current value of literal l, accounting for its
// polarity.
func (s *Solver) LitValue(l Literal) LBool {
	v := s.value[l.Var()]
	if v == Unset {
		return Unset
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

func (s *Solver) isFalse(l Literal) bool { return s.LitValue(l) == False }
func (s *Solver) isTrue(l Literal) bool  { return s.LitValue(l) == True }

// decisionLevel returns the current decision level d.
func (s *Solver) decisionLevel() int {
	return len(s.levelStart) - 1
}

// bumpVarActivity increases v's activity (spec §4.4's "bump its
// activity"), rescaling all activities (and the heap priorities of the
// variables still in the Decision Heap) once v's activity exceeds 1e100,
// to avoid float overflow (same rescale-on-overflow idiom the teacher uses
// for both variable and clause activity).
func (s *Solver) bumpVarActivity(v Var) {
	s.ensureOrder()
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
			s.order.Bump(i, s.activity[i])
		}
		s.varInc *= 1e-100
	}
	s.order.Bump(int(v), s.activity[v])
}

func (s *Solver) decayVarActivity() {
	s.varInc /= s.opts.VariableDecay
}

func (s *Solver) decayClaActivity() {
	s.clauseInc /= s.opts.ClauseDecay
}

// AddClause adds an original (non-learned) clause at the root level. It
// returns an error only if called mid-search (clauses may only be added at
// decision level 0); a formula found unsatisfiable while adding clauses
// (empty clause, or unit clauses that immediately contradict) is recorded
// via s.unsat rather than returned as an error, matching spec §7's "clean
// exit" policy for parse-time UNSAT.
func (s *Solver) AddClause(literals []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, want 0", s.decisionLevel())
	}
	if s.unsat {
		return nil
	}

	lits, satisfied := dedupeAndSimplify(s, literals)
	if satisfied {
		return nil
	}

	switch len(lits) {
	case 0:
		s.unsat = true
	case 1:
		if !s.enqueue(lits[0], NilClause) {
			s.unsat = true
		}
	default:
		c := s.store.AppendClause(lits, 0)
		s.store.AttachWatches(c)
	}
	return nil
}

// dedupeAndSimplify removes duplicate/already-false literals from an
// original clause, the way the teacher's NewClause does for non-learnt
// clauses. The second return value reports whether the clause is
// trivially satisfied (a tautology x/-x, or a literal already true at
// level 0) and should simply be dropped rather than asserted as a
// constraint.
func dedupeAndSimplify(s *Solver, literals []Literal) (_ []Literal, satisfied bool) {
	seen := make(map[Literal]bool, len(literals))
	out := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if seen[l.Opposite()] {
			return nil, true // tautology: clause is always true.
		}
		if seen[l] {
			continue
		}
		if s.isTrue(l) {
			return nil, true
		}
		if s.isFalse(l) {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}
