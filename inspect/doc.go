/*
Package inspect renders the node structure of a btree.Tree for debugging:
colored level dumps for the console and Graphviz DOT graphs.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btindex'
func tracer() tracing.Trace {
	return tracing.Select("btindex")
}

// ErrNilTree is returned when asked to render a nil tree.
var ErrNilTree = errors.New("inspect: tree is nil")
