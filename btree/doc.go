/*
Package btree provides an in-memory ordered index from int64 keys to opaque
values, stored in a classic B-tree of configurable minimum degree t.

The package is intentionally not a generic container. Keys are fixed-width
signed integers, values are carried as a type parameter and never inspected.
Every operation walks from the root to a leaf exactly once:

  - insertion splits full nodes before descending through them, so the node
    receiving the new entry always has room,
  - deletion rotates or merges minimal nodes before descending through them, so
    the node losing an entry never underflows,
  - the height only changes at the root: it grows when a full root is split and
    shrinks when an internal root loses its last separator.

Nodes come in two distinct representations, `leafNode` and `innerNode`. Both
allocate their key/value storage once with capacity 2t-1 (inner nodes: 2t
children) and expose live entries as slice views over it. Node storage is
never reallocated.

A Tree is not safe for concurrent use. Callers needing shared access have to
serialize at whole-tree granularity.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'btindex'
func tracer() tracing.Trace {
	return tracing.Select("btindex")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
