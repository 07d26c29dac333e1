package sat

// ClauseID is an index into the Store's arena identifying the first
// literal of a clause. The zero value is the reserved sentinel NilClause
// (spec's clause_nil), meaning "no clause".
type ClauseID clauseWord

// NilClause is the reserved sentinel meaning "no clause".
const NilClause ClauseID = 0

// Store is the Clause Store (spec §4.1): a single contiguous arena holding
// every clause and learned lemma. For every clause stored at position c,
// the four cells immediately preceding it hold a header:
//
//	c-4  lbd     literal-block-distance score; 0 marks a permanent clause
//	             that is never purged.
//	c-3  wnext1  watch-list next-pointer for the clause's second watched
//	             literal (at c+1).
//	c-2  wnext0  watch-list next-pointer for the clause's first watched
//	             literal (at c).
//	c-1  size    number of live literals.
//	c..         the literals; c and c+1 are always the two watched
//	             literals.
//
// Clause ids are indices, never pointers: the arena may reallocate as it
// grows, so every reference into it must survive that reallocation.
//
// Watch lists are intrusive singly-linked lists threaded through the
// wnext0/wnext1 header slots (spec §4.2): heads are kept in a map from
// literal to the clause at the head of its list.
type Store struct {
	cells []int64
	heads map[Literal]ClauseID
}

const headerWidth = 4

// NewStore returns an empty Store. Index 0 of the arena is reserved so
// that ClauseID(0) can serve as NilClause.
func NewStore() *Store {
	return &Store{
		cells: make([]int64, 1, 4096),
		heads: make(map[Literal]ClauseID),
	}
}

// header field accessors. These are the named-accessor replacement for the
// raw negative-offset arithmetic of the original implementation: the
// layout is identical, but every access goes through one of the following
// functions instead of bare c-4/c-3/c-2/c-1 indexing at call sites.

func (s *Store) LBD(c ClauseID) int32 {
	return int32(s.cells[int(c)-4])
}

func (s *Store) SetLBD(c ClauseID, lbd int32) {
	s.cells[int(c)-4] = int64(lbd)
}

// wnext returns the watch-list next-pointer for watch slot `which` (0 for
// the clause's first watched literal, 1 for its second).
func (s *Store) wnext(c ClauseID, which int) ClauseID {
	if which == 0 {
		return ClauseID(s.cells[int(c)-2])
	}
	return ClauseID(s.cells[int(c)-3])
}

func (s *Store) setWnext(c ClauseID, which int, next ClauseID) {
	if which == 0 {
		s.cells[int(c)-2] = int64(next)
	} else {
		s.cells[int(c)-3] = int64(next)
	}
}

// swapWnext exchanges the watch-list next-pointers of a clause's two watch
// slots, used when the normalize step of propagation swaps which literal
// occupies position 0 vs 1.
func (s *Store) swapWnext(c ClauseID) {
	p0, p1 := int(c)-2, int(c)-3
	s.cells[p0], s.cells[p1] = s.cells[p1], s.cells[p0]
}

// Size returns the clause's current (live) literal count.
func (s *Store) Size(c ClauseID) int32 {
	return int32(s.cells[int(c)-1])
}

func (s *Store) setSize(c ClauseID, n int32) {
	s.cells[int(c)-1] = int64(n)
}

// Lit returns the literal at position i (0-based) of clause c.
func (s *Store) Lit(c ClauseID, i int32) Literal {
	return Literal(s.cells[int(c)+int(i)])
}

func (s *Store) setLit(c ClauseID, i int32, l Literal) {
	s.cells[int(c)+int(i)] = int64(l)
}

// SwapLits exchanges the literals at positions i and j of clause c.
func (s *Store) SwapLits(c ClauseID, i, j int32) {
	pi, pj := int(c)+int(i), int(c)+int(j)
	s.cells[pi], s.cells[pj] = s.cells[pj], s.cells[pi]
}

// Literals returns a freshly allocated copy of clause c's live literals.
func (s *Store) Literals(c ClauseID) []Literal {
	n := s.Size(c)
	out := make([]Literal, n)
	for i := int32(0); i < n; i++ {
		out[i] = s.Lit(c, i)
	}
	return out
}

// AppendClause appends a new clause with the given literals and LBD score
// (0 for an original, permanent clause; callers installing a learned
// clause must pass lbd >= 1, spec §9) and returns its id. The clause is
// not yet attached to any watch list; call AttachWatches once its two
// watched literals (positions 0 and 1) are in their final places.
func (s *Store) AppendClause(literals []Literal, lbd int32) ClauseID {
	s.cells = append(s.cells, int64(lbd), int64(NilClause), int64(NilClause), int64(len(literals)))
	c := ClauseID(len(s.cells))
	for _, l := range literals {
		s.cells = append(s.cells, int64(l))
	}
	return c
}

// ShrinkClause reduces c's recorded size to newSize. Used both by
// tombstone compaction (lazy level-0 removal) and on-the-fly subsumption.
// The caller is responsible for having moved any literal that must survive
// into positions [0, newSize).
func (s *Store) ShrinkClause(c ClauseID, newSize int32) {
	s.setSize(c, newSize)
}

// TruncateTo discards clause c and everything appended after it, reclaiming
// the arena space. Only valid when c is the most recently appended clause
// still reachable (used by immediate-predecessor subsumption, spec §4.4,
// to overwrite the previous lemma in place).
func (s *Store) TruncateTo(c ClauseID) {
	s.cells = s.cells[:int(c)-headerWidth]
}

// Head returns the clause at the head of literal l's watch list, or
// NilClause if the list is empty.
func (s *Store) Head(l Literal) ClauseID {
	return s.heads[l]
}

// SetHead sets the head of literal l's watch list.
func (s *Store) SetHead(l Literal, c ClauseID) {
	if c == NilClause {
		delete(s.heads, l)
		return
	}
	s.heads[l] = c
}

// AttachWatches puts clause c onto the watch lists of its two watched
// literals (the literals at positions 0 and 1), prepending it to each
// list. A unit clause (size 1) is only watched on its single literal.
func (s *Store) AttachWatches(c ClauseID) {
	l0 := s.Lit(c, 0)
	s.setWnext(c, 0, s.Head(l0))
	s.SetHead(l0, c)

	if s.Size(c) > 1 {
		l1 := s.Lit(c, 1)
		s.setWnext(c, 1, s.Head(l1))
		s.SetHead(l1, c)
	}
}

// watchSlotFor reports whether literal l is clause c's first (0) or second
// (1) watched literal.
func (s *Store) watchSlotFor(c ClauseID, l Literal) int {
	if s.Lit(c, 0) == l {
		return 0
	}
	return 1
}

// removeFromList walks the list headed at literal l looking for target,
// splicing it out. This is the general-purpose, O(list length) removal
// exposed by the Watch Index (spec §4.2); the hot propagation loop (see
// propagate.go) instead splices in O(1) as it walks, using its own
// tracked predecessor.
func (s *Store) removeFromList(l Literal, target ClauseID) {
	cur := s.Head(l)
	if cur == target {
		s.SetHead(l, s.wnext(target, s.watchSlotFor(target, l)))
		return
	}
	for cur != NilClause {
		curWhich := s.watchSlotFor(cur, l)
		next := s.wnext(cur, curWhich)
		if next == target {
			targetWhich := s.watchSlotFor(target, l)
			s.setWnext(cur, curWhich, s.wnext(target, targetWhich))
			return
		}
		cur = next
	}
}

// DetachWatches removes clause c from the watch lists of both of its
// watched literals. Used when a clause is deleted (purge) or subsumed
// (immediate-predecessor subsumption).
func (s *Store) DetachWatches(c ClauseID) {
	l0 := s.Lit(c, 0)
	s.removeFromList(l0, c)
	if s.Size(c) > 1 {
		l1 := s.Lit(c, 1)
		s.removeFromList(l1, c)
	}
}
