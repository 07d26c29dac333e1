package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_AppendClause_RoundTrip(t *testing.T) {
	s := NewStore()

	c := s.AppendClause([]Literal{1, -2, 3}, 0)

	if got, want := s.Size(c), int32(3); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got, want := s.Literals(c), ([]Literal{1, -2, 3}); !literalsEqual(got, want) {
		t.Errorf("Literals() = %v, want %v", got, want)
	}
	if got, want := s.LBD(c), int32(0); got != want {
		t.Errorf("LBD() = %d, want %d", got, want)
	}
}

func TestStore_AppendClause_MultipleClausesDoNotAlias(t *testing.T) {
	s := NewStore()

	c1 := s.AppendClause([]Literal{1, 2}, 0)
	c2 := s.AppendClause([]Literal{-1, -2}, 2)

	if literalsEqual(s.Literals(c1), s.Literals(c2)) {
		t.Fatalf("clauses alias: c1=%v c2=%v", s.Literals(c1), s.Literals(c2))
	}
	if got, want := s.Literals(c1), ([]Literal{1, 2}); !literalsEqual(got, want) {
		t.Errorf("c1 Literals() = %v, want %v", got, want)
	}
	if got, want := s.Literals(c2), ([]Literal{-1, -2}); !literalsEqual(got, want) {
		t.Errorf("c2 Literals() = %v, want %v", got, want)
	}
}

func TestStore_ShrinkClause(t *testing.T) {
	s := NewStore()
	c := s.AppendClause([]Literal{1, 2, 3, 4}, 1)

	s.setLit(c, 2, 99)
	s.ShrinkClause(c, 3)

	if got, want := s.Size(c), int32(3); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got, want := s.Literals(c), ([]Literal{1, 2, 99}); !literalsEqual(got, want) {
		t.Errorf("Literals() = %v, want %v", got, want)
	}
}

func TestStore_TruncateTo(t *testing.T) {
	s := NewStore()
	_ = s.AppendClause([]Literal{1, 2}, 0)
	c2 := s.AppendClause([]Literal{3, 4}, 1)

	before := len(s.cells)
	s.TruncateTo(c2)

	if got := len(s.cells); got >= before {
		t.Errorf("TruncateTo did not shrink arena: before=%d after=%d", before, got)
	}
}

func TestStore_AttachWatches_HeadsBothLiterals(t *testing.T) {
	s := NewStore()
	c := s.AppendClause([]Literal{1, -2, 3}, 0)
	s.AttachWatches(c)

	if got := s.Head(1); got != c {
		t.Errorf("Head(1) = %v, want %v", got, c)
	}
	if got := s.Head(-2); got != c {
		t.Errorf("Head(-2) = %v, want %v", got, c)
	}
	if got := s.Head(3); got != NilClause {
		t.Errorf("Head(3) = %v, want NilClause (3 is not watched)", got)
	}
}

func TestStore_AttachWatches_UnitClauseWatchesOnlyOneLiteral(t *testing.T) {
	s := NewStore()
	c := s.AppendClause([]Literal{5}, 0)
	s.AttachWatches(c)

	if got := s.Head(5); got != c {
		t.Errorf("Head(5) = %v, want %v", got, c)
	}
}

func TestStore_AttachWatches_SharedListThreading(t *testing.T) {
	s := NewStore()
	c1 := s.AppendClause([]Literal{1, 2}, 0)
	c2 := s.AppendClause([]Literal{1, 3}, 0)
	s.AttachWatches(c1)
	s.AttachWatches(c2)

	// Most recently attached clause is prepended, so it is now the head.
	if got := s.Head(1); got != c2 {
		t.Errorf("Head(1) = %v, want %v (c2, prepended last)", got, c2)
	}
	if got := s.wnext(c2, 0); got != c1 {
		t.Errorf("wnext(c2, 0) = %v, want %v (c1)", got, c1)
	}
	if got := s.wnext(c1, 0); got != NilClause {
		t.Errorf("wnext(c1, 0) = %v, want NilClause", got)
	}
}

func TestStore_DetachWatches_RemovesFromBothLists(t *testing.T) {
	s := NewStore()
	c1 := s.AppendClause([]Literal{1, 2}, 0)
	c2 := s.AppendClause([]Literal{1, 3}, 0)
	s.AttachWatches(c1)
	s.AttachWatches(c2)

	s.DetachWatches(c1)

	if got := s.Head(1); got != c2 {
		t.Errorf("Head(1) = %v, want %v (c2 only)", got, c2)
	}
	if got := s.wnext(c2, 0); got != NilClause {
		t.Errorf("wnext(c2, 0) = %v, want NilClause after c1 detached", got)
	}
	if got := s.Head(2); got != NilClause {
		t.Errorf("Head(2) = %v, want NilClause", got)
	}
}

func TestStore_SwapWnext(t *testing.T) {
	s := NewStore()
	c := s.AppendClause([]Literal{1, 2}, 0)
	s.setWnext(c, 0, 7)
	s.setWnext(c, 1, 11)

	s.swapWnext(c)

	if got := s.wnext(c, 0); got != 11 {
		t.Errorf("wnext(c, 0) = %v, want 11", got)
	}
	if got := s.wnext(c, 1); got != 7 {
		t.Errorf("wnext(c, 1) = %v, want 7", got)
	}
}

func TestStore_WatchSlotFor(t *testing.T) {
	s := NewStore()
	c := s.AppendClause([]Literal{1, 2}, 0)

	if got := s.watchSlotFor(c, 1); got != 0 {
		t.Errorf("watchSlotFor(c, 1) = %d, want 0", got)
	}
	if got := s.watchSlotFor(c, 2); got != 1 {
		t.Errorf("watchSlotFor(c, 2) = %d, want 1", got)
	}
}

// literalsEqual reports whether a and b hold the same literals in the
// same order, used throughout this package's tests to compare clause
// contents read back from the Store.
func literalsEqual(a, b []Literal) bool {
	return cmp.Equal(a, b)
}
