/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations, and they frequently have to
modify a set while they are in the middle of iterating over it.
Unusually, all set operations are destructive!

Package structure is as follows:

■ container: Package container implements the storage contract for hashed
associative containers, a concrete hashed backend and an ordered tree backend,
together with cursors and ranges for safely inspecting and mutating a
container while iterating it.

■ fp: Package fp implements lazy adapters (Map, Where, Chain) over anything
that can produce a sequence of values.

The base package contains the capability types which are used throughout all
the other packages: the Iterator and KeyedIterator contracts and the
generator-based sequence types they produce.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
