/*
Package trie implements tries for prefix lookup of string keys.

Three variants are available:

	Trie        one character per edge; the only variant supporting Remove and Update
	Patricia    compressed trie, chains of single children collapse into one edge
	Concurrent  lock-free trie, safe for multiple concurrent writers

All variants share the same retrieval walk: a query is matched against the edges
from the root downwards, and the result is the set of values of the node reached
and of its complete subtree. Thus a query returns the values of every key having
the query as a prefix, which covers exact matches as well as autocompletion.

Trie and Patricia are not safe for concurrent mutation. Concurrent unsynchronized
Add on them is a caller error with undefined results.

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package trie

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trienet"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// reader is the read capability of a trie node, used by the retrieval walk.
type reader[V comparable] interface {
	keyLength() int                            // number of characters on the edge leading to this node
	values() iter.Seq[V]                       // values stored at this node
	children() iter.Seq[reader[V]]             // all child nodes
	childOrNil(query []rune, pos int) reader[V] // child matching query at pos, or nil
}

// writer is the write capability of single-character trie nodes, used by add.
type writer[V comparable] interface {
	addValue(v V)
	getOrCreateChild(r rune) writer[V]
}

// add descends from n along key, creating nodes as needed, and appends value
// to the node at the end of the key.
func add[V comparable](n writer[V], key []rune, value V) {
	for _, r := range key {
		n = n.getOrCreateChild(r)
	}
	n.addValue(value)
}

// retrieve locates the node for query and collects the values of its subtree.
// Positions may overshoot the end of the query for nodes with multi-character
// edges; this signals a match ending inside an edge.
func retrieve[V comparable](n reader[V], query []rune) []V {
	pos := 0
	for pos < len(query) {
		child := n.childOrNil(query, pos)
		if child == nil {
			return []V{}
		}
		pos += child.keyLength()
		n = child
	}
	return collect(n)
}

// collect returns the distinct values of n and of all nodes below n.
// The subtree is traversed with an explicit stack.
func collect[V comparable](n reader[V]) []V {
	result := []V{}
	seen := make(map[V]struct{})
	stack := []reader[V]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range top.values() {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				result = append(result, v)
			}
		}
		for child := range top.children() {
			stack = append(stack, child)
		}
	}
	return result
}

// runesOf checks key for valid UTF-8 and converts it to a slice of characters.
func runesOf(key string) ([]rune, error) {
	if !utf8.ValidString(key) {
		T().Errorf("trie: key is not valid UTF-8: %q", key)
		return nil, fmt.Errorf("%w: key %q is not valid UTF-8", trienet.ErrIllegalArguments, key)
	}
	return []rune(key), nil
}

// countNodes counts the nodes of the subtree starting at n.
func countNodes[V comparable](n reader[V]) int {
	cnt := 0
	stack := []reader[V]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cnt++
		for child := range top.children() {
			stack = append(stack, child)
		}
	}
	return cnt
}
