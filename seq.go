package iteratable

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Generator is a function type to generate the successive states of a
// sequence. The current implementation always pre-fetches the first value.
type Generator[T any] func() Seq[T]

// Seq is a lazily evaluated sequence of values. It moves over the elements
// of concrete or virtual collections.
//
// The canonical iteration idiom is
//
//    for v, ok := S.First(); ok; v, ok = S.Next() {
//        …
//    }
//
type Seq[T any] struct {
	value T
	ok    bool
	gen   Generator[T]
}

// NewSeq creates a sequence state from a pre-fetched value and a generator
// for the remaining values. Sources call this, clients usually won't.
func NewSeq[T any](value T, gen Generator[T]) Seq[T] {
	return Seq[T]{value: value, ok: true, gen: gen}
}

// EmptySeq creates an exhausted sequence.
func EmptySeq[T any]() Seq[T] {
	return Seq[T]{}
}

// First returns the pre-fetched first value of a sequence, if any.
func (seq Seq[T]) First() (T, bool) {
	return seq.value, seq.ok
}

// Next returns the next value of a sequence, if any.
func (seq *Seq[T]) Next() (T, bool) {
	if seq.gen == nil {
		var none T
		seq.value, seq.ok = none, false
		return none, false
	}
	next := seq.gen()
	seq.value, seq.ok, seq.gen = next.value, next.ok, next.gen
	if !seq.ok {
		seq.gen = nil
	}
	return seq.value, seq.ok
}

// Break signals a sequence to stop iterating.
func (seq *Seq[T]) Break() {
	var none T
	seq.value, seq.ok, seq.gen = none, false, nil
}

// Done returns true if a sequence stopped iterating.
func (seq *Seq[T]) Done() bool {
	return !seq.ok
}

// --- Keyed sequences --------------------------------------------------------

// KeyGenerator is a function type to generate the successive states of a
// keyed sequence.
type KeyGenerator[K, T any] func() KeySeq[K, T]

// KeySeq is a lazily evaluated sequence of key/value pairs.
type KeySeq[K, T any] struct {
	key   K
	value T
	ok    bool
	gen   KeyGenerator[K, T]
}

// NewKeySeq creates a keyed sequence state from a pre-fetched pair and a
// generator for the remaining pairs.
func NewKeySeq[K, T any](key K, value T, gen KeyGenerator[K, T]) KeySeq[K, T] {
	return KeySeq[K, T]{key: key, value: value, ok: true, gen: gen}
}

// EmptyKeySeq creates an exhausted keyed sequence.
func EmptyKeySeq[K, T any]() KeySeq[K, T] {
	return KeySeq[K, T]{}
}

// First returns the pre-fetched first pair of a keyed sequence, if any.
func (seq KeySeq[K, T]) First() (K, T, bool) {
	return seq.key, seq.value, seq.ok
}

// Next returns the next pair of a keyed sequence, if any.
func (seq *KeySeq[K, T]) Next() (K, T, bool) {
	if seq.gen == nil {
		var nokey K
		var none T
		seq.key, seq.value, seq.ok = nokey, none, false
		return nokey, none, false
	}
	next := seq.gen()
	seq.key, seq.value, seq.ok, seq.gen = next.key, next.value, next.ok, next.gen
	if !seq.ok {
		seq.gen = nil
	}
	return seq.key, seq.value, seq.ok
}

// Break signals a keyed sequence to stop iterating.
func (seq *KeySeq[K, T]) Break() {
	var nokey K
	var none T
	seq.key, seq.value, seq.ok, seq.gen = nokey, none, false, nil
}

// Done returns true if a keyed sequence stopped iterating.
func (seq *KeySeq[K, T]) Done() bool {
	return !seq.ok
}
