package container

import (
	"fmt"

	"github.com/npillmayer/iteratable"
)

// Range is a bidirectional lazy window [front, bound) of backend
// positions. Advancing the front or retreating the back shrinks the window
// from either end; a range is empty iff front and bound are the identical
// position. Like cursors, ranges hold non-owning references and go stale
// when a referenced position is removed through another handle.
//
// A Range is itself an Iterator over the values of its window, so it can
// be handed to the adapters of package fp. Its count is unknown: sizing
// the window would need a linear scan.
type Range[T any] struct {
	backend      Backend[T]
	front, bound *Slot[T]
}

// Empty reports whether the window contains no positions.
func (r Range[T]) Empty() bool {
	return r.front == r.bound
}

// Front returns, without consuming, the first element of the window. It
// fails with ErrEmptyAccess on an empty range.
func (r Range[T]) Front() (T, error) {
	var none T
	if r.Empty() {
		return none, fmt.Errorf("front of empty range: %w", iteratable.ErrEmptyAccess)
	}
	return r.front.value, nil
}

// Back returns, without consuming, the last element of the window. It
// fails with ErrEmptyAccess on an empty range.
func (r Range[T]) Back() (T, error) {
	var none T
	if r.Empty() {
		return none, fmt.Errorf("back of empty range: %w", iteratable.ErrEmptyAccess)
	}
	return r.bound.prev.value, nil
}

// AdvanceFront shrinks the window by its first element. It fails with
// ErrEmptyAccess on an empty range.
func (r *Range[T]) AdvanceFront() error {
	if r.Empty() {
		return fmt.Errorf("advance on empty range: %w", iteratable.ErrEmptyAccess)
	}
	r.front = r.front.next
	return nil
}

// RetreatBack shrinks the window by its last element. It fails with
// ErrEmptyAccess on an empty range.
func (r *Range[T]) RetreatBack() error {
	if r.Empty() {
		return fmt.Errorf("retreat on empty range: %w", iteratable.ErrEmptyAccess)
	}
	r.bound = r.bound.prev
	return nil
}

// FrontCursor returns a cursor at the first element of the window. On an
// empty range the cursor is positioned at the window bound and reads fail.
func (r Range[T]) FrontCursor() Cursor[T] {
	return Cursor[T]{backend: r.backend, slot: r.front}
}

// Seq produces the values of the window, front to back. The traversal
// walks the live structure: mutating the underlying collection while the
// sequence is in flight is undefined, except through Set.Purge.
func (r Range[T]) Seq() iteratable.Seq[T] {
	pos := r.front
	var G iteratable.Generator[T]
	G = func() iteratable.Seq[T] {
		pos = pos.next
		if pos == r.bound {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(pos.value, G)
	}
	if pos == r.bound {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(pos.value, G)
}

// Count reports CountUnknown; see the type comment.
func (r Range[T]) Count() int {
	return iteratable.CountUnknown
}
