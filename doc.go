/*
Package btindex offers an in-memory ordered index from int64 keys to opaque
values.

# Storage

All index backends implement the Storage contract: bulk loading, point lookup,
insertion, removal, a full ascending traversal and cardinality. The contract is
logical only; for the same sequence of operations every backend has to produce
the same lookups and the same traversal, value for value. This makes backends
interchangeable and allows them to be tested against each other (see package
difftest).

The primary backend is BTreeStorage, which wraps the B-tree of package btree.
Package mapindex provides a reference backend on a general purpose ordered
map.

# Usage

	index, err := btindex.NewBTreeStorage[string](3)
	if err != nil {
		...
	}
	index.Insert(42, "answer")
	if v, ok := index.Find(42); ok {
		fmt.Println(v)
	}

Backends are not safe for concurrent use.
*/
package btindex

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btindex'
func tracer() tracing.Trace {
	return tracing.Select("btindex")
}

// IndexError is an error type for the btindex module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("illegal arguments")
