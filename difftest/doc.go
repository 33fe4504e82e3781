/*
Package difftest replays a stream of index operations against several
btindex.Storage backends at once and compares what they report.

Every backend runs on a goroutine of its own, subscribed to a broadcaster
which publishes the operations in order. A backend is therefore still used
from a single goroutine only. Outcomes of every operation and full traversals
at checkpoint operations are recorded per backend; Compare reports the first
divergence between backends.

Backends trace structural events while Replay runs, from several goroutines
at once. The tracer selected for key 'btindex' must therefore be safe for
concurrent use during a replay; gotestingadapter's tracers are not.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package difftest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btindex'
func tracer() tracing.Trace {
	return tracing.Select("btindex")
}
