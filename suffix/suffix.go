/*
Package suffix approximates substring search on top of any exact-key index.

An Indexer inserts every suffix of a key (down to a minimum length) into an inner
index, tagged with the character offset of the suffix. A prefix query on the inner
index then finds every key containing the query. This costs O(n²) inserted
characters for a key of length n; for large corpora package ukkonen offers a
generalized suffix tree.

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package suffix

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/trie"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config configures a suffix indexer.
type Config struct {
	// MinSuffixLength is the length of the shortest suffix inserted. Queries
	// shorter than this will not find anything. 0 means all suffixes.
	MinSuffixLength int
}

func (cfg Config) validate() error {
	if cfg.MinSuffixLength < 0 {
		return fmt.Errorf("%w: negative minimum suffix length %d",
			trienet.ErrIllegalArguments, cfg.MinSuffixLength)
	}
	return nil
}

// Indexer wraps an inner exact-key index, storing all suffixes of a key.
// Indexer is as safe for concurrent use as its inner index.
type Indexer[V comparable] struct {
	inner trienet.Index[trienet.WordPosition[V]]
	cfg   Config
}

// New creates a suffix indexer on top of inner.
func New[V comparable](cfg Config, inner trienet.Index[trienet.WordPosition[V]]) (*Indexer[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, fmt.Errorf("%w: suffix indexer needs an inner index", trienet.ErrIllegalArguments)
	}
	return &Indexer[V]{inner: inner, cfg: cfg}, nil
}

// NewPatricia creates a suffix indexer on top of a PATRICIA trie.
func NewPatricia[V comparable](cfg Config) (*Indexer[V], error) {
	return New[V](cfg, trie.NewPatricia[trienet.WordPosition[V]]())
}

// NewConcurrent creates a suffix indexer on top of a concurrent trie. The
// resulting indexer is safe for concurrent writers.
func NewConcurrent[V comparable](cfg Config) (*Indexer[V], error) {
	return New[V](cfg, trie.NewConcurrent[trienet.WordPosition[V]]())
}

// Add inserts all suffixes of key with length of at least the configured
// minimum, from the shortest to the longest.
func (ix *Indexer[V]) Add(key string, value V) error {
	if !utf8.ValidString(key) {
		T().Errorf("suffix: key is not valid UTF-8: %q", key)
		return fmt.Errorf("%w: key %q is not valid UTF-8", trienet.ErrIllegalArguments, key)
	}
	offsets := make([]int, 0, len(key)) // byte offsets of characters
	for i := range key {
		offsets = append(offsets, i)
	}
	for pos := len(offsets) - ix.cfg.MinSuffixLength; pos >= 0; pos-- {
		var suffix string
		if pos < len(offsets) {
			suffix = key[offsets[pos]:]
		}
		wp := trienet.WordPosition[V]{CharPosition: pos, Value: value}
		if err := ix.inner.Add(suffix, wp); err != nil {
			return err
		}
	}
	return nil
}

// Retrieve returns the distinct values of all keys containing query.
func (ix *Indexer[V]) Retrieve(query string) []V {
	result := []V{}
	seen := make(map[V]struct{})
	for _, wp := range ix.RetrieveSubstrings(query) {
		if _, ok := seen[wp.Value]; !ok {
			seen[wp.Value] = struct{}{}
			result = append(result, wp.Value)
		}
	}
	return result
}

// RetrieveSubstrings returns distinct (position, value) pairs for all occurrences
// of query within the inserted keys.
func (ix *Indexer[V]) RetrieveSubstrings(query string) []trienet.WordPosition[V] {
	if utf8.RuneCountInString(query) < ix.cfg.MinSuffixLength {
		return []trienet.WordPosition[V]{}
	}
	return ix.inner.Retrieve(query)
}
