package container

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/iteratable"
	"golang.org/x/exp/constraints"
)

// TreeBackend is a storage engine backed by a red-black tree. It satisfies
// the same contract as HashBackend, but iteration order is the sort order
// induced by the comparator, not insertion order. Lookup and removal are
// O(log n). It mainly exists as the proof that a Set never cares which
// engine it sits on.
type TreeBackend[T any] struct {
	tree  *redblacktree.Tree
	end   Slot[T]
	count int
	cmp   func(a, b T) int
	merge MergePolicy[T]
}

// TreeOption configures a TreeBackend at construction time.
type TreeOption[T any] func(*TreeBackend[T])

// TreeMergeWith sets the merge policy applied when Add encounters an equal
// value. Defaults to KeepResident.
func TreeMergeWith[T any](m MergePolicy[T]) TreeOption[T] {
	return func(b *TreeBackend[T]) {
		b.merge = m
	}
}

// NewTreeBackend creates an empty ordered storage engine over an explicit
// comparator. Two values are considered equal iff the comparator returns 0.
func NewTreeBackend[T any](cmp func(a, b T) int, opts ...TreeOption[T]) *TreeBackend[T] {
	b := &TreeBackend[T]{
		cmp:   cmp,
		merge: KeepResident[T],
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Setup()
	return b
}

// NewOrderedBackend creates an empty ordered storage engine over the
// natural ordering of T.
func NewOrderedBackend[T constraints.Ordered](opts ...TreeOption[T]) *TreeBackend[T] {
	return NewTreeBackend(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}, opts...)
}

func (b *TreeBackend[T]) comparator() utils.Comparator {
	return func(a, x interface{}) int {
		return b.cmp(a.(T), x.(T))
	}
}

// Setup initializes the backend to empty.
func (b *TreeBackend[T]) Setup() {
	b.tree = redblacktree.NewWith(b.comparator())
	b.end.home = b
	selfLink(&b.end)
	b.count = 0
}

// Add inserts v at its sorted position. If an equal value is present
// already, the merge policy is applied instead and Add reports false.
func (b *TreeBackend[T]) Add(v T) bool {
	if node, found := b.tree.Get(v); found {
		s := node.(*Slot[T])
		s.value = b.merge(s.value, v)
		return false
	}
	s := &Slot[T]{value: v, home: b}
	succ := &b.end
	if node, found := b.tree.Ceiling(v); found {
		succ = node.Value.(*Slot[T])
	}
	linkBefore(s, succ)
	b.tree.Put(v, s)
	b.count++
	return true
}

// Find returns the slot holding a value equal to v, or End().
func (b *TreeBackend[T]) Find(v T) *Slot[T] {
	if node, found := b.tree.Get(v); found {
		return node.(*Slot[T])
	}
	return &b.end
}

// Remove unlinks pos from the tree and the order list. It returns the slot
// which followed pos in iteration order.
func (b *TreeBackend[T]) Remove(pos *Slot[T]) *Slot[T] {
	b.tree.Remove(pos.value)
	b.count--
	return unlink(pos)
}

// Begin returns the slot holding the smallest value, or End() if the
// backend is empty.
func (b *TreeBackend[T]) Begin() *Slot[T] {
	return b.end.next
}

// End returns the fixed end sentinel.
func (b *TreeBackend[T]) End() *Slot[T] {
	return &b.end
}

// Clear releases all slots.
func (b *TreeBackend[T]) Clear() {
	b.tree.Clear()
	selfLink(&b.end)
	b.count = 0
}

// Count returns the number of live slots.
func (b *TreeBackend[T]) Count() int {
	return b.count
}

// Intersect retains only the values which also appear in src.
func (b *TreeBackend[T]) Intersect(src iteratable.Iterator[T]) {
	intersectBackend[T](b, src)
}

// CopyTo deep-duplicates every live slot into dst.
func (b *TreeBackend[T]) CopyTo(dst Backend[T]) {
	copyBackend[T](b, dst)
}

// Fresh returns an empty ordered backend with the same comparator and
// merge configuration.
func (b *TreeBackend[T]) Fresh() Backend[T] {
	fresh := &TreeBackend[T]{cmp: b.cmp, merge: b.merge}
	fresh.Setup()
	return fresh
}

// Belongs reports whether pos was produced by this backend instance.
func (b *TreeBackend[T]) Belongs(pos *Slot[T]) bool {
	return pos != nil && pos.home == Backend[T](b)
}
