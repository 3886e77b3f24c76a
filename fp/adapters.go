package fp

import (
	"github.com/npillmayer/iteratable"
)

// A Mapper represents an operation on a single value, resulting in a new
// value.
type Mapper[S, T any] func(S) T

// Map creates a lazy view applying a mapper to every value of src. The
// view reports the same count as src.
func Map[S, T any](src iteratable.Iterator[S], mapper Mapper[S, T]) iteratable.Iterator[T] {
	return &mapped[S, T]{src: src, mapper: mapper}
}

type mapped[S, T any] struct {
	src    iteratable.Iterator[S]
	mapper Mapper[S, T]
}

func (m *mapped[S, T]) Seq() iteratable.Seq[T] {
	inner := m.src.Seq()
	var F iteratable.Generator[T]
	F = func() iteratable.Seq[T] {
		v, ok := inner.Next()
		if !ok {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(m.mapper(v), F)
	}
	v, ok := inner.First()
	if !ok {
		return iteratable.EmptySeq[T]()
	}
	return iteratable.NewSeq(m.mapper(v), F)
}

func (m *mapped[S, T]) Count() int {
	return m.src.Count()
}

// A Predicate decides whether a value is kept by Where.
type Predicate[T any] func(T) bool

// Where creates a lazy view retaining only the values of src for which the
// predicate holds. The view always reports an unknown count: the true
// count cannot be known without full evaluation.
func Where[T any](src iteratable.Iterator[T], pred Predicate[T]) iteratable.Iterator[T] {
	return &filtered[T]{src: src, pred: pred}
}

type filtered[T any] struct {
	src  iteratable.Iterator[T]
	pred Predicate[T]
}

func (f *filtered[T]) Seq() iteratable.Seq[T] {
	inner := f.src.Seq()
	var F iteratable.Generator[T]
	skip := func(v T, ok bool) iteratable.Seq[T] {
		for ok && !f.pred(v) {
			v, ok = inner.Next()
		}
		if !ok {
			return iteratable.EmptySeq[T]()
		}
		return iteratable.NewSeq(v, F)
	}
	F = func() iteratable.Seq[T] {
		v, ok := inner.Next()
		return skip(v, ok)
	}
	v, ok := inner.First()
	return skip(v, ok)
}

func (f *filtered[T]) Count() int {
	return iteratable.CountUnknown
}

// Chain creates a lazy view concatenating the given sources in order. The
// view reports the sum of the source counts if every source reports an
// exact count, otherwise unknown.
func Chain[T any](sources ...iteratable.Iterator[T]) iteratable.Iterator[T] {
	return &chained[T]{sources: sources}
}

type chained[T any] struct {
	sources []iteratable.Iterator[T]
}

func (c *chained[T]) Seq() iteratable.Seq[T] {
	if len(c.sources) == 0 {
		return iteratable.EmptySeq[T]()
	}
	idx := 0
	inner := c.sources[0].Seq()
	var F iteratable.Generator[T]
	hop := func(v T, ok bool) iteratable.Seq[T] {
		for !ok {
			idx++
			if idx >= len(c.sources) {
				return iteratable.EmptySeq[T]()
			}
			inner = c.sources[idx].Seq()
			v, ok = inner.First()
		}
		return iteratable.NewSeq(v, F)
	}
	F = func() iteratable.Seq[T] {
		v, ok := inner.Next()
		return hop(v, ok)
	}
	v, ok := inner.First()
	return hop(v, ok)
}

func (c *chained[T]) Count() int {
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

// Take creates a lazy view over the first n values of src. It reports the
// smaller of n and the source count, or unknown if the source count is
// unknown (the source may hold fewer than n values).
func Take[T any](src iteratable.Iterator[T], n int) iteratable.Iterator[T] {
	return &taken[T]{src: src, n: n}
}

type taken[T any] struct {
	src iteratable.Iterator[T]
	n   int
}

func (t *taken[T]) Seq() iteratable.Seq[T] {
	inner := t.src.Seq()
	remaining := t.n
	var F iteratable.Generator[T]
	F = func() iteratable.Seq[T] {
		if remaining <= 0 {
			return iteratable.EmptySeq[T]()
		}
		v, ok := inner.Next()
		if !ok {
			return iteratable.EmptySeq[T]()
		}
		remaining--
		return iteratable.NewSeq(v, F)
	}
	if remaining <= 0 {
		return iteratable.EmptySeq[T]()
	}
	v, ok := inner.First()
	if !ok {
		return iteratable.EmptySeq[T]()
	}
	remaining--
	return iteratable.NewSeq(v, F)
}

func (t *taken[T]) Count() int {
	n := t.src.Count()
	if n == iteratable.CountUnknown {
		return iteratable.CountUnknown
	}
	if n < t.n {
		return n
	}
	return t.n
}
