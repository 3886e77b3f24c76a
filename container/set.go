package container

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/iteratable"
)

// Set is a mutable set-like container. It owns exactly one storage backend
// exclusively and translates value-level operations into backend-position
// operations. The zero value is not usable; create sets with NewSet or
// SetOf.
//
// A Set implements iteratable.Iterator over its values, so it can be
// passed to the adapters of package fp, to AddAll/RemoveAll/IntersectAll
// of another Set, and to generic code expecting a sequence of values.
type Set[T any] struct {
	backend Backend[T]
}

// Option configures a Set at construction time.
type Option[T any] func(*Set[T])

// WithBackend plugs a storage engine into the new Set. The Set takes
// exclusive ownership; sharing one backend between two sets is undefined.
// By default a Set sits on a fresh HashBackend.
func WithBackend[T any](b Backend[T]) Option[T] {
	return func(s *Set[T]) {
		s.backend = b
	}
}

// NewSet creates an empty Set.
func NewSet[T any](opts ...Option[T]) *Set[T] {
	s := &Set[T]{}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = NewHashBackend[T]()
	}
	return s
}

// SetOf creates a Set holding the given values.
func SetOf[T any](values ...T) *Set[T] {
	s := NewSet[T]()
	s.Add(values...)
	return s
}

// --- Value-level operations --------------------------------------------------

// Add inserts values. Duplicates are resolved by the backend's merge
// policy and never counted twice.
func (s *Set[T]) Add(values ...T) *Set[T] {
	for _, v := range values {
		s.backend.Add(v)
	}
	return s
}

// AddAll inserts every value src produces. Passing the set itself is a
// well-defined no-op, not an error.
func (s *Set[T]) AddAll(src iteratable.Iterator[T]) *Set[T] {
	if s.isSelf(src) {
		return s
	}
	S := src.Seq()
	for v, ok := S.First(); ok; v, ok = S.Next() {
		s.backend.Add(v)
	}
	return s
}

// Remove removes values. Absent values are silently ignored.
func (s *Set[T]) Remove(values ...T) *Set[T] {
	for _, v := range values {
		if pos := s.backend.Find(v); pos != s.backend.End() {
			s.backend.Remove(pos)
		}
	}
	return s
}

// RemoveAll removes every value src produces. If src is a live view over
// this very set, a snapshot iterator (see Values) must be used instead;
// the one exception is passing the set itself, which clears it.
func (s *Set[T]) RemoveAll(src iteratable.Iterator[T]) *Set[T] {
	if s.isSelf(src) {
		s.Clear()
		return s
	}
	S := src.Seq()
	for v, ok := S.First(); ok; v, ok = S.Next() {
		s.Remove(v)
	}
	return s
}

// RemoveAt removes the element cu references and returns a cursor to the
// following element, or an exhausted cursor if none. It fails with
// ErrEmptyAccess if cu is already exhausted and with ErrForeignHandle if
// cu was not produced by this set.
func (s *Set[T]) RemoveAt(cu Cursor[T]) (Cursor[T], error) {
	if !s.backend.Belongs(cu.slot) {
		return Cursor[T]{}, fmt.Errorf("remove at cursor: %w", iteratable.ErrForeignHandle)
	}
	if cu.Exhausted() {
		return Cursor[T]{}, fmt.Errorf("remove at cursor: %w", iteratable.ErrEmptyAccess)
	}
	next := s.backend.Remove(cu.slot)
	return Cursor[T]{
		backend:   s.backend,
		slot:      next,
		exhausted: next == s.backend.End(),
	}, nil
}

// RemoveRange removes every element within r, front to back, in O(k) for k
// removed elements. It fails with ErrForeignHandle if r was not produced
// by this set.
func (s *Set[T]) RemoveRange(r Range[T]) error {
	if !s.backend.Belongs(r.front) || !s.backend.Belongs(r.bound) {
		return fmt.Errorf("remove range: %w", iteratable.ErrForeignHandle)
	}
	for r.front != r.bound {
		r.front = s.backend.Remove(r.front)
	}
	return nil
}

// Contains reports whether the set holds a value equal to v.
func (s *Set[T]) Contains(v T) bool {
	return s.backend.Find(v) != s.backend.End()
}

// Intersect retains only the given values; everything else is removed.
func (s *Set[T]) Intersect(values ...T) *Set[T] {
	s.backend.Intersect(&sliceIterator[T]{values: values})
	return s
}

// IntersectAll retains only the values src produces. Passing the set
// itself is a well-defined no-op.
func (s *Set[T]) IntersectAll(src iteratable.Iterator[T]) *Set[T] {
	if s.isSelf(src) {
		return s
	}
	s.backend.Intersect(src)
	return s
}

// Clear removes all elements.
func (s *Set[T]) Clear() *Set[T] {
	s.backend.Clear()
	return s
}

// Duplicate returns a structurally equal set on a distinct, fresh backend.
// No position identity is shared: cursors and ranges obtained from the
// original are foreign handles to the duplicate.
func (s *Set[T]) Duplicate() *Set[T] {
	fresh := s.backend.Fresh()
	s.backend.CopyTo(fresh)
	return &Set[T]{backend: fresh}
}

// Equals reports whether both sets contain exactly the same values,
// irrespective of iteration order or internal layout.
func (s *Set[T]) Equals(other *Set[T]) bool {
	if other == nil {
		return s.Length() == 0
	}
	if s.Length() != other.Length() {
		return false
	}
	for pos := s.backend.Begin(); pos != s.backend.End(); pos = pos.next {
		if !other.Contains(pos.value) {
			return false
		}
	}
	for pos := other.backend.Begin(); pos != other.backend.End(); pos = pos.next {
		if !s.Contains(pos.value) {
			return false
		}
	}
	return true
}

// Length returns the number of elements.
func (s *Set[T]) Length() int {
	return s.backend.Count()
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return s.backend.Count() == 0
}

// Get returns, without removing, the first element in iteration order: the
// most convenient element to remove next. O(1). It fails with
// ErrEmptyAccess on an empty set.
func (s *Set[T]) Get() (T, error) {
	pos := s.backend.Begin()
	if pos == s.backend.End() {
		var none T
		return none, fmt.Errorf("get from empty set: %w", iteratable.ErrEmptyAccess)
	}
	return pos.value, nil
}

// Take returns and removes the first element in iteration order,
// performing a single lookup. It fails with ErrEmptyAccess on an empty
// set.
func (s *Set[T]) Take() (T, error) {
	pos := s.backend.Begin()
	if pos == s.backend.End() {
		var none T
		return none, fmt.Errorf("take from empty set: %w", iteratable.ErrEmptyAccess)
	}
	v := pos.value
	s.backend.Remove(pos)
	return v, nil
}

// Purge makes a single pass over all elements and hands each value to
// decide. If decide flags drop, the element is removed in place and the
// pass continues safely behind it; if decide flags halt, the traversal
// stops immediately and no further elements are visited. This is the one
// sanctioned way to mutate a set in mid-iteration.
func (s *Set[T]) Purge(decide func(v T) (drop bool, halt bool)) *Set[T] {
	pos := s.backend.Begin()
	for pos != s.backend.End() {
		drop, halt := decide(pos.value)
		if drop {
			pos = s.backend.Remove(pos)
		} else {
			pos = pos.next
		}
		if halt {
			break
		}
	}
	return s
}

// Each calls f for every element, in iteration order.
func (s *Set[T]) Each(f func(v T)) {
	for pos := s.backend.Begin(); pos != s.backend.End(); pos = pos.next {
		f(pos.value)
	}
}

// Values returns a snapshot of all elements, in iteration order. The
// returned slice is decoupled from the set and safe to iterate while
// mutating it.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.backend.Count())
	for pos := s.backend.Begin(); pos != s.backend.End(); pos = pos.next {
		values = append(values, pos.value)
	}
	return values
}

// --- Cursors and ranges ------------------------------------------------------

// Begin returns a cursor at the first element in iteration order. On an
// empty set the cursor is positioned at the end and reads fail.
func (s *Set[T]) Begin() Cursor[T] {
	return Cursor[T]{backend: s.backend, slot: s.backend.Begin()}
}

// End returns a cursor at the end of the set, just behind the last
// element. Reading it fails.
func (s *Set[T]) End() Cursor[T] {
	return Cursor[T]{backend: s.backend, slot: s.backend.End()}
}

// Find returns a cursor at the element equal to v, or an end cursor if v
// is absent.
func (s *Set[T]) Find(v T) Cursor[T] {
	return Cursor[T]{backend: s.backend, slot: s.backend.Find(v)}
}

// All returns the range covering every element.
func (s *Set[T]) All() Range[T] {
	return Range[T]{backend: s.backend, front: s.backend.Begin(), bound: s.backend.End()}
}

// Slice constructs the range [from, to) between two cursors. This succeeds
// only if from is the set's absolute begin or to is its absolute end —
// the two cases verifiable without a linear scan. Any other combination
// fails with ErrInvalidRange, and cursors produced by another set fail
// with ErrForeignHandle.
func (s *Set[T]) Slice(from, to Cursor[T]) (Range[T], error) {
	if !s.backend.Belongs(from.slot) || !s.backend.Belongs(to.slot) {
		return Range[T]{}, fmt.Errorf("slice: %w", iteratable.ErrForeignHandle)
	}
	if from.slot != s.backend.Begin() && to.slot != s.backend.End() {
		return Range[T]{}, fmt.Errorf("slice between two interior cursors: %w",
			iteratable.ErrInvalidRange)
	}
	return Range[T]{backend: s.backend, front: from.slot, bound: to.slot}, nil
}

// --- Iterator capability -----------------------------------------------------

// Seq produces the values of the set in iteration order. Every call starts
// a fresh traversal of the live structure; mutating the set while a
// sequence is in flight is undefined, except through Purge.
func (s *Set[T]) Seq() iteratable.Seq[T] {
	pos := s.backend.Begin()
	end := s.backend.End()
	var G iteratable.Generator[T]
	G = func() iteratable.Seq[T] {
		pos = pos.next
		if pos == end {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(pos.value, G)
	}
	if pos == end {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(pos.value, G)
}

// Count returns the exact number of elements.
func (s *Set[T]) Count() int {
	return s.backend.Count()
}

// isSelf detects the self-aggregation hazard: src being this very set.
func (s *Set[T]) isSelf(src iteratable.Iterator[T]) bool {
	if other, ok := src.(*Set[T]); ok {
		return other == s
	}
	return false
}

// --- Debugging helpers -------------------------------------------------------

func (s *Set[T]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for pos := s.backend.Begin(); pos != s.backend.End(); pos = pos.next {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", pos.value)
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper, listing all elements to the tracer.
func (s *Set[T]) Dump() {
	tracer().Debugf("--- set of %d ----------------", s.Length())
	n := 1
	for pos := s.backend.Begin(); pos != s.backend.End(); pos = pos.next {
		tracer().Debugf("[%2d] %v", n, pos.value)
		n++
	}
	tracer().Debugf("------------------------------")
}

// --- Variadic arguments as a sequence ----------------------------------------

// sliceIterator adapts a values slice to the Iterator capability for
// backend-level Intersect. Restartable.
type sliceIterator[T any] struct {
	values []T
}

func (it *sliceIterator[T]) Seq() iteratable.Seq[T] {
	i := 0
	var G iteratable.Generator[T]
	G = func() iteratable.Seq[T] {
		i++
		if i >= len(it.values) {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(it.values[i], G)
	}
	if len(it.values) == 0 {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(it.values[0], G)
}

func (it *sliceIterator[T]) Count() int {
	return len(it.values)
}
