package fp

import (
	"github.com/npillmayer/iteratable"
)

// A KeyedMapper represents an operation on a single key/value pair,
// resulting in a new value for the same key.
type KeyedMapper[K, S, T any] func(K, S) T

// MapKeyed creates a lazy view applying a mapper to every value of src,
// carrying each key through unchanged. The view reports the same count as
// src.
func MapKeyed[K, S, T any](src iteratable.KeyedIterator[K, S], mapper KeyedMapper[K, S, T]) iteratable.KeyedIterator[K, T] {
	return &keyedMapped[K, S, T]{src: src, mapper: mapper}
}

type keyedMapped[K, S, T any] struct {
	src    iteratable.KeyedIterator[K, S]
	mapper KeyedMapper[K, S, T]
}

func (m *keyedMapped[K, S, T]) KeySeq() iteratable.KeySeq[K, T] {
	inner := m.src.KeySeq()
	var F iteratable.KeyGenerator[K, T]
	F = func() iteratable.KeySeq[K, T] {
		k, v, ok := inner.Next()
		if !ok {
			return iteratable.EmptyKeySeq[K, T]()
		}
		return iteratable.NewKeySeq(k, m.mapper(k, v), F)
	}
	k, v, ok := inner.First()
	if !ok {
		return iteratable.EmptyKeySeq[K, T]()
	}
	return iteratable.NewKeySeq(k, m.mapper(k, v), F)
}

func (m *keyedMapped[K, S, T]) Count() int {
	return m.src.Count()
}

// MapKeys creates a lazy view transforming the key of every pair of src,
// carrying each value through unchanged.
func MapKeys[K, L, T any](src iteratable.KeyedIterator[K, T], mapper func(K) L) iteratable.KeyedIterator[L, T] {
	return &rekeyed[K, L, T]{src: src, mapper: mapper}
}

type rekeyed[K, L, T any] struct {
	src    iteratable.KeyedIterator[K, T]
	mapper func(K) L
}

func (m *rekeyed[K, L, T]) KeySeq() iteratable.KeySeq[L, T] {
	inner := m.src.KeySeq()
	var F iteratable.KeyGenerator[L, T]
	F = func() iteratable.KeySeq[L, T] {
		k, v, ok := inner.Next()
		if !ok {
			return iteratable.EmptyKeySeq[L, T]()
		}
		return iteratable.NewKeySeq(m.mapper(k), v, F)
	}
	k, v, ok := inner.First()
	if !ok {
		return iteratable.EmptyKeySeq[L, T]()
	}
	return iteratable.NewKeySeq(m.mapper(k), v, F)
}

func (m *rekeyed[K, L, T]) Count() int {
	return m.src.Count()
}

// A KeyedPredicate decides whether a key/value pair is kept by WhereKeyed.
type KeyedPredicate[K, T any] func(K, T) bool

// WhereKeyed creates a lazy view retaining only the pairs of src for which
// the predicate holds. The view always reports an unknown count.
func WhereKeyed[K, T any](src iteratable.KeyedIterator[K, T], pred KeyedPredicate[K, T]) iteratable.KeyedIterator[K, T] {
	return &keyedFiltered[K, T]{src: src, pred: pred}
}

type keyedFiltered[K, T any] struct {
	src  iteratable.KeyedIterator[K, T]
	pred KeyedPredicate[K, T]
}

func (f *keyedFiltered[K, T]) KeySeq() iteratable.KeySeq[K, T] {
	inner := f.src.KeySeq()
	var F iteratable.KeyGenerator[K, T]
	skip := func(k K, v T, ok bool) iteratable.KeySeq[K, T] {
		for ok && !f.pred(k, v) {
			k, v, ok = inner.Next()
		}
		if !ok {
			return iteratable.EmptyKeySeq[K, T]()
		}
		return iteratable.NewKeySeq(k, v, F)
	}
	F = func() iteratable.KeySeq[K, T] {
		k, v, ok := inner.Next()
		return skip(k, v, ok)
	}
	k, v, ok := inner.First()
	return skip(k, v, ok)
}

func (f *keyedFiltered[K, T]) Count() int {
	return iteratable.CountUnknown
}

// ChainKeyed creates a lazy view concatenating the given keyed sources in
// order. Count semantics match Chain.
func ChainKeyed[K, T any](sources ...iteratable.KeyedIterator[K, T]) iteratable.KeyedIterator[K, T] {
	return &keyedChained[K, T]{sources: sources}
}

type keyedChained[K, T any] struct {
	sources []iteratable.KeyedIterator[K, T]
}

func (c *keyedChained[K, T]) KeySeq() iteratable.KeySeq[K, T] {
	if len(c.sources) == 0 {
		return iteratable.EmptyKeySeq[K, T]()
	}
	idx := 0
	inner := c.sources[0].KeySeq()
	var F iteratable.KeyGenerator[K, T]
	hop := func(k K, v T, ok bool) iteratable.KeySeq[K, T] {
		for !ok {
			idx++
			if idx >= len(c.sources) {
				return iteratable.EmptyKeySeq[K, T]()
			}
			inner = c.sources[idx].KeySeq()
			k, v, ok = inner.First()
		}
		return iteratable.NewKeySeq(k, v, F)
	}
	F = func() iteratable.KeySeq[K, T] {
		k, v, ok := inner.Next()
		return hop(k, v, ok)
	}
	k, v, ok := inner.First()
	return hop(k, v, ok)
}

func (c *keyedChained[K, T]) Count() int {
	total := 0
	for _, src := range c.sources {
		n := src.Count()
		if n == iteratable.CountUnknown {
			return iteratable.CountUnknown
		}
		total += n
	}
	return total
}

// Indexed wraps a plain iterator as a keyed one, keyed by the running
// position (0, 1, 2, …) of each value within the traversal.
func Indexed[T any](src iteratable.Iterator[T]) iteratable.KeyedIterator[int, T] {
	return &indexed[T]{src: src}
}

type indexed[T any] struct {
	src iteratable.Iterator[T]
}

func (ix *indexed[T]) KeySeq() iteratable.KeySeq[int, T] {
	inner := ix.src.Seq()
	n := 0
	var F iteratable.KeyGenerator[int, T]
	F = func() iteratable.KeySeq[int, T] {
		v, ok := inner.Next()
		if !ok {
			return iteratable.EmptyKeySeq[int, T]()
		}
		n++
		return iteratable.NewKeySeq(n, v, F)
	}
	v, ok := inner.First()
	if !ok {
		return iteratable.EmptyKeySeq[int, T]()
	}
	return iteratable.NewKeySeq(0, v, F)
}

func (ix *indexed[T]) Count() int {
	return ix.src.Count()
}

// DropKeys wraps a keyed iterator as a plain one, discarding the keys.
func DropKeys[K, T any](src iteratable.KeyedIterator[K, T]) iteratable.Iterator[T] {
	return &unkeyed[K, T]{src: src}
}

type unkeyed[K, T any] struct {
	src iteratable.KeyedIterator[K, T]
}

func (u *unkeyed[K, T]) Seq() iteratable.Seq[T] {
	inner := u.src.KeySeq()
	var F iteratable.Generator[T]
	F = func() iteratable.Seq[T] {
		_, v, ok := inner.Next()
		if !ok {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(v, F)
	}
	_, v, ok := inner.First()
	if !ok {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(v, F)
}

func (u *unkeyed[K, T]) Count() int {
	return u.src.Count()
}
