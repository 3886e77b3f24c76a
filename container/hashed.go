package container

import (
	"reflect"

	"github.com/cnf/structhash"
	"github.com/npillmayer/iteratable"
)

// MergePolicy decides what happens when Add encounters an already-present
// equal value: it receives the resident value and the incoming one and
// returns the value to keep.
type MergePolicy[T any] func(resident, incoming T) T

// KeepResident is the default merge policy: re-adding an equal value is
// ignored.
func KeepResident[T any](resident, _ T) T {
	return resident
}

// TakeIncoming is the update-on-add merge policy: re-adding an equal value
// replaces the resident one. Useful when equality is coarser than the
// values themselves, e.g. for record types compared by key.
func TakeIncoming[T any](_, incoming T) T {
	return incoming
}

// --- Hashed storage engine ---------------------------------------------------

// HashBackend is a storage engine backed by a hash index mapping value
// digests to slots, plus an insertion-ordered doubly-linked list for
// deterministic iteration. Digest collisions are resolved by scanning the
// bucket with the configured equality. Add, Find and Remove are O(1) on
// average.
type HashBackend[T any] struct {
	index  map[string][]*Slot[T]
	end    Slot[T] // fixed sentinel, never holds a value
	count  int
	digest func(T) string
	eq     func(a, b T) bool
	merge  MergePolicy[T]
}

// HashOption configures a HashBackend at construction time.
type HashOption[T any] func(*HashBackend[T])

// Digest sets the value-digest function of the hash index. The default
// digest serializes values with structhash, which handles arbitrary Go
// values via reflection.
func Digest[T any](d func(T) string) HashOption[T] {
	return func(b *HashBackend[T]) {
		b.digest = d
	}
}

// Equality sets the value equality used to resolve digest collisions and
// to detect re-added values. Defaults to reflect.DeepEqual.
func Equality[T any](eq func(a, b T) bool) HashOption[T] {
	return func(b *HashBackend[T]) {
		b.eq = eq
	}
}

// MergeWith sets the merge policy applied when Add encounters an equal
// value. Defaults to KeepResident.
func MergeWith[T any](m MergePolicy[T]) HashOption[T] {
	return func(b *HashBackend[T]) {
		b.merge = m
	}
}

// NewHashBackend creates an empty hashed storage engine.
func NewHashBackend[T any](opts ...HashOption[T]) *HashBackend[T] {
	b := &HashBackend[T]{
		digest: defaultDigest[T],
		eq: func(a, x T) bool {
			return reflect.DeepEqual(a, x)
		},
		merge: KeepResident[T],
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Setup()
	return b
}

func defaultDigest[T any](v T) string {
	return string(structhash.Dump(v, 1))
}

// Setup initializes the backend to empty.
func (b *HashBackend[T]) Setup() {
	b.index = make(map[string][]*Slot[T])
	b.end.home = b
	selfLink(&b.end)
	b.count = 0
}

// Add inserts v at the tail of the iteration order. If an equal value is
// present already, the merge policy is applied instead and Add reports
// false.
func (b *HashBackend[T]) Add(v T) bool {
	key := b.digest(v)
	for _, s := range b.index[key] {
		if b.eq(s.value, v) {
			s.value = b.merge(s.value, v)
			return false
		}
	}
	s := &Slot[T]{value: v, home: b}
	linkBefore(s, &b.end)
	b.index[key] = append(b.index[key], s)
	b.count++
	return true
}

// Find returns the slot holding a value equal to v, or End().
func (b *HashBackend[T]) Find(v T) *Slot[T] {
	for _, s := range b.index[b.digest(v)] {
		if b.eq(s.value, v) {
			return s
		}
	}
	return &b.end
}

// Remove unlinks pos from the hash index and the order list. It returns
// the slot which followed pos in iteration order.
func (b *HashBackend[T]) Remove(pos *Slot[T]) *Slot[T] {
	key := b.digest(pos.value)
	bucket := b.index[key]
	for i, s := range bucket {
		if s == pos {
			bucket[i] = bucket[len(bucket)-1]
			bucket[len(bucket)-1] = nil
			if len(bucket) == 1 {
				delete(b.index, key)
			} else {
				b.index[key] = bucket[:len(bucket)-1]
			}
			b.count--
			return unlink(pos)
		}
	}
	tracer().Errorf("remove of slot unknown to the hash index")
	return &b.end
}

// Begin returns the first live slot, or End() if the backend is empty.
func (b *HashBackend[T]) Begin() *Slot[T] {
	return b.end.next
}

// End returns the fixed end sentinel.
func (b *HashBackend[T]) End() *Slot[T] {
	return &b.end
}

// Clear releases all slots.
func (b *HashBackend[T]) Clear() {
	b.index = make(map[string][]*Slot[T])
	selfLink(&b.end)
	b.count = 0
}

// Count returns the number of live slots.
func (b *HashBackend[T]) Count() int {
	return b.count
}

// Intersect retains only the values which also appear in src.
func (b *HashBackend[T]) Intersect(src iteratable.Iterator[T]) {
	intersectBackend[T](b, src)
}

// CopyTo deep-duplicates every live slot into dst.
func (b *HashBackend[T]) CopyTo(dst Backend[T]) {
	copyBackend[T](b, dst)
}

// Fresh returns an empty hashed backend with the same digest, equality and
// merge configuration.
func (b *HashBackend[T]) Fresh() Backend[T] {
	fresh := &HashBackend[T]{digest: b.digest, eq: b.eq, merge: b.merge}
	fresh.Setup()
	return fresh
}

// Belongs reports whether pos was produced by this backend instance.
func (b *HashBackend[T]) Belongs(pos *Slot[T]) bool {
	return pos != nil && pos.home == Backend[T](b)
}
