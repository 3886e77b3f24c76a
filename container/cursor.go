package container

import (
	"fmt"

	"github.com/npillmayer/iteratable"
)

// Cursor is a one-shot handle to a single backend position. A cursor is
// either holding (it references a live slot and reading its value
// succeeds) or exhausted. Advancing a cursor once moves it from holding to
// exhausted; there is no way back.
//
// Cursors hold non-owning references. A cursor whose element has been
// removed through another handle is stale, and reading it is undefined.
type Cursor[T any] struct {
	backend   Backend[T]
	slot      *Slot[T]
	exhausted bool
}

// Value returns the element the cursor references. It fails with
// ErrEmptyAccess on an exhausted cursor, or on a cursor positioned at the
// end of its collection.
func (cu Cursor[T]) Value() (T, error) {
	var none T
	if cu.exhausted {
		return none, fmt.Errorf("cursor already advanced: %w", iteratable.ErrEmptyAccess)
	}
	if cu.backend == nil || cu.slot == nil || cu.slot == cu.backend.End() {
		return none, fmt.Errorf("cursor at end of collection: %w", iteratable.ErrEmptyAccess)
	}
	return cu.slot.value, nil
}

// Advance consumes the cursor: it transitions from holding to exhausted.
// Advancing an exhausted cursor has no effect.
func (cu *Cursor[T]) Advance() {
	cu.exhausted = true
}

// Exhausted reports whether the cursor has been advanced past its element.
func (cu Cursor[T]) Exhausted() bool {
	return cu.exhausted || cu.backend == nil || cu.slot == nil || cu.slot == cu.backend.End()
}

// Equal compares two cursors by the identity of the position they
// reference. The exhausted flag is deliberately excluded: a consumed
// cursor compares equal to an unconsumed one at the same element. Callers
// rely on position-only comparison after consumption; do not "fix" this.
func (cu Cursor[T]) Equal(other Cursor[T]) bool {
	return cu.slot == other.slot
}
