package container

import (
	"github.com/npillmayer/iteratable"
)

// Slot is one storage position within a backend: an opaque handle
// referencing a single stored value. Slots carry next/prev links forming a
// doubly-linked iteration order and are compared by identity, never by
// value. Every backend owns a fixed end-sentinel slot which never holds a
// value; the sentinel closes the order list into a ring.
//
// Slots are created by Backend.Add and destroyed by Backend.Remove and
// Backend.Clear. A slot removed through one handle leaves every other
// handle to it stale.
type Slot[T any] struct {
	value      T
	next, prev *Slot[T]
	home       Backend[T] // the backend instance which produced this slot
}

// Backend is the storage contract a concrete engine must satisfy to be
// plugged into a Set. Implementations provide O(1) average Add, Find and
// Remove, and a stable iteration order over the currently-live slots
// (removal must not reorder survivors).
type Backend[T any] interface {
	// Setup initializes the backend to empty.
	Setup()

	// Add inserts v. If an equal-valued slot exists already, the configured
	// merge policy is applied and Add reports false without changing the
	// slot count.
	Add(v T) bool

	// Find returns the slot holding a value equal to v, or End() if absent.
	Find(v T) *Slot[T]

	// Remove unlinks pos from the index and the order list and returns the
	// slot which was next in iteration order (or End()).
	Remove(pos *Slot[T]) *Slot[T]

	// Begin returns the first live slot, or End() if the backend is empty.
	Begin() *Slot[T]

	// End returns the fixed end sentinel. It never holds a value.
	End() *Slot[T]

	// Clear releases all slots and resets the backend to empty.
	Clear()

	// Count returns the number of live slots.
	Count() int

	// Intersect retains only the slots whose value also appears in src and
	// removes the rest. src is consumed in a single pass; it need not
	// support repeated scans.
	Intersect(src iteratable.Iterator[T])

	// CopyTo deep-duplicates every live slot into dst, in iteration order.
	// No slot identity is shared between the two backends afterwards.
	CopyTo(dst Backend[T])

	// Fresh returns a new, empty backend of the same kind and
	// configuration. Set.Duplicate obtains the CopyTo destination this way.
	Fresh() Backend[T]

	// Belongs reports whether pos was produced by this backend instance.
	// It validates cursors and ranges before range-scoped operations.
	Belongs(pos *Slot[T]) bool
}

// --- Contract-level default operations --------------------------------------

// Intersect and CopyTo are definable purely in terms of the rest of the
// contract; both concrete engines delegate here.

// intersectBackend stages the membership of src into a temporary backend,
// then sweeps the order list of b, removing every slot whose value is not
// staged. Staging keeps the cost linear even when src cannot be rescanned.
func intersectBackend[T any](b Backend[T], src iteratable.Iterator[T]) {
	staged := b.Fresh()
	S := src.Seq()
	for v, ok := S.First(); ok; v, ok = S.Next() {
		staged.Add(v)
	}
	tracer().Debugf("intersect: staged %d values", staged.Count())
	pos := b.Begin()
	for pos != b.End() {
		if staged.Find(pos.value) == staged.End() {
			pos = b.Remove(pos)
		} else {
			pos = pos.next
		}
	}
}

// copyBackend adds every live value of src to dst, in iteration order.
func copyBackend[T any](src, dst Backend[T]) {
	for pos := src.Begin(); pos != src.End(); pos = pos.next {
		dst.Add(pos.value)
	}
}

// --- Order list plumbing -----------------------------------------------------

// selfLink turns sentinel into the sole member of a ring, i.e. an empty
// order list.
func selfLink[T any](sentinel *Slot[T]) {
	sentinel.next = sentinel
	sentinel.prev = sentinel
}

// linkBefore inserts s into the ring immediately before succ.
func linkBefore[T any](s, succ *Slot[T]) {
	s.prev = succ.prev
	s.next = succ
	succ.prev.next = s
	succ.prev = s
}

// unlink removes s from the ring and poisons its links. The successor in
// iteration order is returned.
func unlink[T any](s *Slot[T]) *Slot[T] {
	next := s.next
	s.prev.next = s.next
	s.next.prev = s.prev
	s.next, s.prev = nil, nil
	return next
}
