/*
Package fp implements a composable lazy-iteration algebra.

Map, Where and Chain build derived views over anything providing the
Iterator capability of the base package, without materializing intermediate
collections. An adapter holds nothing but its source: every traversal
re-invokes the source's own traversal, so an adapter over a restartable
source (a container.Set, a slice source) is itself restartable, and one
over a non-restartable source is not.

Example:

    evens := fp.Where[int](S, func(n int) bool { return n%2 == 0 })
    doubled := fp.Map(evens, func(n int) int { return 2 * n })
    result := fp.Values(doubled)   // nothing is evaluated before this line

Keyed variants carry an associated key alongside each value through every
adapter unchanged, unless the adapter explicitly transforms keys, too.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iteratable.fp'.
func tracer() tracing.Trace {
	return tracing.Select("iteratable.fp")
}
