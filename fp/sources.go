package fp

import (
	"github.com/npillmayer/iteratable"
)

// FromSlice wraps values into a restartable iterator with an exact count.
func FromSlice[T any](values ...T) iteratable.Iterator[T] {
	return &sliceSource[T]{values: values}
}

type sliceSource[T any] struct {
	values []T
}

func (s *sliceSource[T]) Seq() iteratable.Seq[T] {
	i := 0
	var F iteratable.Generator[T]
	F = func() iteratable.Seq[T] {
		i++
		if i >= len(s.values) {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(s.values[i], F)
	}
	if len(s.values) == 0 {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(s.values[0], F)
}

func (s *sliceSource[T]) Count() int {
	return len(s.values)
}

// Naturals is an infinite, restartable iterator over the whole numbers
// 0, 1, 2, … Most useful together with Take and Where.
func Naturals() iteratable.Iterator[int64] {
	return naturals{}
}

type naturals struct{}

func (naturals) Seq() iteratable.Seq[int64] {
	var n int64
	var F iteratable.Generator[int64]
	F = func() iteratable.Seq[int64] {
		n++
		return iteratable.NewSeq(n, F)
	}
	return iteratable.NewSeq(n, F)
}

func (naturals) Count() int {
	return iteratable.CountUnknown
}

// Values evaluates src and returns all its values as an instantiated
// slice. This is the point where a stack of lazy adapters actually runs.
func Values[T any](src iteratable.Iterator[T]) []T {
	var values []T
	if n := src.Count(); n != iteratable.CountUnknown {
		values = make([]T, 0, n)
	}
	S := src.Seq()
	for v, ok := S.First(); ok; v, ok = S.Next() {
		values = append(values, v)
	}
	tracer().Debugf("materialized sequence of %d values", len(values))
	return values
}

// Keys evaluates src and returns all its keys as an instantiated slice.
func Keys[K, T any](src iteratable.KeyedIterator[K, T]) []K {
	var keys []K
	if n := src.Count(); n != iteratable.CountUnknown {
		keys = make([]K, 0, n)
	}
	S := src.KeySeq()
	for k, _, ok := S.First(); ok; k, _, ok = S.Next() {
		keys = append(keys, k)
	}
	return keys
}

// Each evaluates src, calling f for every value in traversal order.
func Each[T any](src iteratable.Iterator[T], f func(T)) {
	S := src.Seq()
	for v, ok := S.First(); ok; v, ok = S.Next() {
		f(v)
	}
}
