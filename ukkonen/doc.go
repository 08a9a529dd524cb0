/*
Package ukkonen implements a generalized suffix tree, constructed online.

A generalized suffix tree represents all suffixes of all keys inserted. It answers
substring queries in time proportional to the length of the query: the node
reached by walking the query from the root carries, in its subtree, every
occurrence of the query.

Construction follows E. Ukkonen's on-line algorithm, extended to multiple keys
(cf. the generalized suffix tree of A. Bahgat). Keys are processed one character
at a time. The active point is kept in canonical form, i.e. as the deepest
explicit node plus a remaining partition, and suffix links connect the node for
c·α to the node for α. This yields construction time linear in the total length
of the keys inserted.

Nodes are held in an arena and referenced by index; edges and suffix links are
node indices as well. Edge labels are partitions of the keys inserted, so keys
are not copied character by character into the tree.

A tree is append-only. Keys cannot be removed. Trees are not safe for
concurrent mutation.

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package ukkonen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
