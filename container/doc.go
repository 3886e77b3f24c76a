/*
Package container implements mutable set-like containers over pluggable
storage backends.

A Set owns exactly one storage backend and translates value-level requests
(add, remove, contains, intersect) into backend-position operations. The
backend contract (interface Backend) is the sole extensibility seam: any
storage engine implementing it can be plugged into a Set without change to
the set-level logic. Two engines ship with this package, a hashed backend
(hash index plus insertion-ordered doubly-linked list) and an ordered
backend on top of a red-black tree.

All set operations are destructive! Clients which need to preserve a set
use Duplicate() beforehand.

Cursors and ranges are short-lived views into a backend, handed out by a
Set for further mutation or for being passed to the adapters of package fp.
They hold non-owning references: removing a cursor's element through any
other path leaves the cursor stale, and dereferencing a stale cursor is
undefined. The one sanctioned pattern for mutating a set in mid-iteration
is Set.Purge.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package container

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'iteratable.container'.
func tracer() tracing.Trace {
	return tracing.Select("iteratable.container")
}
