package sat

// stampSet implements the epoch-tagged stamping scheme conflict analysis
// relies on (spec §4.4): a monotonically increasing epoch, advanced by 3
// per conflict, so that the three values epoch, epoch+1, and epoch+2 each
// encode a distinct transient bit per variable without ever needing to
// clear the underlying array between conflicts.
//
// Analyze uses plain epoch-stamping to mark "this variable has been seen
// during this conflict's resolution". Minimization reuses the same array
// with epoch+1 ("possibly redundant, memoized true") and epoch+2
// ("certainly not redundant, memoized false").
type stampSet struct {
	stamp []uint32
	epoch uint32
}

func newStampSet(nVars int) *stampSet {
	return &stampSet{stamp: make([]uint32, nVars+1)}
}

// nextEpoch advances to a fresh epoch ahead of a new conflict analysis and
// returns it.
func (s *stampSet) nextEpoch() uint32 {
	s.epoch += 3
	return s.epoch
}

// epochValue returns the current epoch.
func (s *stampSet) epochValue() uint32 {
	return s.epoch
}

// mark tags variable v with the given stamp value.
func (s *stampSet) mark(v Var, tag uint32) {
	s.stamp[v] = tag
}

// tag returns the stamp value currently recorded for v (0 if never
// stamped in a way that survived to the current epoch).
func (s *stampSet) tag(v Var) uint32 {
	return s.stamp[v]
}

// isStamped reports whether v was stamped in the current epoch.
func (s *stampSet) isStamped(v Var) bool {
	return s.stamp[v] == s.epoch
}
