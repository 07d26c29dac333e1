// Package order implements the Decision Heap: the external collaborator
// spec.md §4 deliberately leaves "specified only by its interface". It is
// an activity-ordered max-heap over variables supporting bump, insert and
// delete-max. It keeps no activity array of its own: every call passes the
// caller's current activity for the variable, and rescaling of activities
// is done by the caller.
package order

import "github.com/rhartert/yagh"

// VarOrder is an activity-ordered max-heap over variables 1..nVars.
//
// yagh.IntMap is a min-heap, so every priority stored here is the negated
// activity: the variable with the highest activity naturally becomes the
// minimum key and is returned first by Pop, giving delete-max semantics
// over activity.
type VarOrder struct {
	heap *yagh.IntMap[float64]
}

// New returns a VarOrder with variables 1..nVars all initially present
// with zero activity. Variable ids are 1-based (unlike yagh's own 0-based
// usage in the teacher), so the heap is sized nVars+1 to keep every id in
// [1, nVars] inside yagh's [0, n) index domain.
func New(nVars int) *VarOrder {
	vo := &VarOrder{heap: yagh.New[float64](nVars + 1)}
	for v := 1; v <= nVars; v++ {
		vo.heap.Put(v, 0)
	}
	return vo
}

// Bump updates v's priority to reflect its new activity. It is a no-op if
// v is not currently in the heap (i.e. v is assigned): the activity array
// itself still holds the bumped value, and Insert will pick it up once v
// is unassigned again.
func (vo *VarOrder) Bump(v int, activity float64) {
	if vo.heap.Contains(v) {
		vo.heap.Put(v, -activity)
	}
}

// Insert (re-)inserts v into the heap at its current activity. Called when
// v becomes unassigned again, whether by backjump or initial setup.
func (vo *VarOrder) Insert(v int, activity float64) {
	vo.heap.Put(v, -activity)
}

// Contains reports whether v is currently present in the heap.
func (vo *VarOrder) Contains(v int) bool {
	return vo.heap.Contains(v)
}

// DeleteMax pops variables in decreasing-activity order, discarding any
// for which isCandidate returns false (already assigned, or otherwise
// ineligible for decision), until it finds one to return. ok is false once
// the heap is exhausted.
func (vo *VarOrder) DeleteMax(isCandidate func(v int) bool) (v int, ok bool) {
	for {
		next, has := vo.heap.Pop()
		if !has {
			return 0, false
		}
		if isCandidate(next.Elem) {
			return next.Elem, true
		}
	}
}
