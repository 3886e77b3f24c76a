package iteratable

import "errors"

// --- A general purpose interface for value sequences -----------------------

// CountUnknown is reported by iterators which cannot tell how many values
// they will produce without fully evaluating themselves.
const CountUnknown = -1

// Iterator is the capability of producing a sequence of values. Containers
// implement it, as do the lazy adapters of package fp. Every call to Seq()
// re-invokes the source's own traversal: an iterator over a restartable
// source is itself restartable, one over a non-restartable source is not.
type Iterator[T any] interface {
	Seq() Seq[T] // produce a (fresh) sequence of values
	Count() int  // exact number of values, or CountUnknown
}

// KeyedIterator is the capability of producing a sequence of key/value
// pairs. The key travels alongside each value through every adapter,
// unchanged unless an adapter explicitly transforms keys, too.
type KeyedIterator[K, T any] interface {
	KeySeq() KeySeq[K, T]
	Count() int
}

// --- Errors -----------------------------------------------------------------

// Contract violations are fail-fast and non-retryable. None of them is
// caught or retried anywhere inside this module.
var (
	// ErrEmptyAccess flags reading the value of an exhausted cursor or an
	// empty range.
	ErrEmptyAccess = errors.New("no element at this position")

	// ErrInvalidRange flags slicing between two cursors where neither
	// endpoint is the collection's absolute begin or absolute end.
	// Verifying that one arbitrary hashed position precedes another would
	// need a linear scan.
	ErrInvalidRange = errors.New("range endpoints not verifiable in constant time")

	// ErrForeignHandle flags using a cursor or range against a collection
	// which did not produce it.
	ErrForeignHandle = errors.New("handle does not belong to this collection")
)
