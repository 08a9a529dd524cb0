package ukkonen

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/partition"
)

// Config configures a suffix tree.
type Config struct {
	// MinSuffixLength is the minimum length of queries. Shorter queries will
	// not find anything. 0 means no restriction.
	MinSuffixLength int
}

func (cfg Config) validate() error {
	if cfg.MinSuffixLength < 0 {
		return fmt.Errorf("%w: negative minimum suffix length %d",
			trienet.ErrIllegalArguments, cfg.MinSuffixLength)
	}
	return nil
}

// Tree is a generalized suffix tree over keys of element type K, mapping every
// substring of a key to the occurrences of the substring.
// Create trees with New.
type Tree[K cmp.Ordered, V comparable] struct {
	nodes      []*node[K, V] // arena; nodes[root] is the root
	activeLeaf nodeID        // most recently created leaf of the current insertion
	cfg        Config
}

// nodeID is a handle for a node of the arena.
type nodeID int

const (
	noNode nodeID = -1
	root   nodeID = 0
)

type node[K cmp.Ordered, V comparable] struct {
	edges  map[K]*edge[K]
	suffix nodeID // suffix link, or noNode
	depth  int    // number of characters on the path from the root
	data   []trienet.WordPosition[V]
	index  map[trienet.WordPosition[V]]struct{} // lookup for large data sets
}

// edge owns a label; its target is owned by the edge as well. Suffix links
// refer to nodes without owning them.
type edge[K cmp.Ordered] struct {
	label  partition.Partition[K]
	target nodeID
}

// indexThreshold is the number of occurrences above which a node maintains a
// lookup map for duplicate detection.
const indexThreshold = 16

// New creates an empty suffix tree.
func New[K cmp.Ordered, V comparable](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg}
	t.newNode(0)
	t.activeLeaf = root
	return t, nil
}

func (t *Tree[K, V]) newNode(depth int) nodeID {
	t.nodes = append(t.nodes, &node[K, V]{
		edges:  make(map[K]*edge[K]),
		suffix: noNode,
		depth:  depth,
	})
	return nodeID(len(t.nodes) - 1)
}

func (t *Tree[K, V]) at(n nodeID) *node[K, V] {
	return t.nodes[n]
}

func (nd *node[K, V]) contains(wp trienet.WordPosition[V]) bool {
	if nd.index != nil {
		_, ok := nd.index[wp]
		return ok
	}
	return slices.Contains(nd.data, wp)
}

func (nd *node[K, V]) appendData(wp trienet.WordPosition[V]) {
	nd.data = append(nd.data, wp)
	if nd.index != nil {
		nd.index[wp] = struct{}{}
	} else if len(nd.data) > indexThreshold {
		nd.index = make(map[trienet.WordPosition[V]]struct{}, 2*len(nd.data))
		for _, d := range nd.data {
			nd.index[d] = struct{}{}
		}
	}
}

// Size returns the number of nodes of t, including the root.
func (t *Tree[K, V]) Size() int {
	return len(t.nodes)
}

// Remove is not supported: suffix trees are append-only.
func (t *Tree[K, V]) Remove(key []K) error {
	return fmt.Errorf("%w: remove from suffix tree", trienet.ErrUnsupported)
}

// --- Queries ---------------------------------------------------------------

// Retrieve returns the distinct values of all keys containing query.
func (t *Tree[K, V]) Retrieve(query []K) []V {
	return t.RetrieveN(query, -1)
}

// RetrieveN returns at most limit distinct values of keys containing query.
// A negative limit means no limit.
func (t *Tree[K, V]) RetrieveN(query []K, limit int) []V {
	result := []V{}
	if limit == 0 || len(query) < t.cfg.MinSuffixLength {
		return result
	}
	n := t.search(query)
	if n == noNode {
		return result
	}
	seen := make(map[V]struct{})
	for wp := range t.occurrences(n) {
		if _, ok := seen[wp.Value]; ok {
			continue
		}
		seen[wp.Value] = struct{}{}
		result = append(result, wp.Value)
		if len(result) == limit {
			break
		}
	}
	return result
}

// RetrieveSubstrings returns every occurrence of query as a distinct pair of
// (character position within key, value).
func (t *Tree[K, V]) RetrieveSubstrings(query []K) []trienet.WordPosition[V] {
	if len(query) < t.cfg.MinSuffixLength {
		return []trienet.WordPosition[V]{}
	}
	n := t.search(query)
	if n == noNode {
		return []trienet.WordPosition[V]{}
	}
	return distinct[V](t.occurrences(n))
}

// RetrieveSubstringsRange is a fuzzy substring query. It returns the occurrences
// of all strings s of length len(lo) with lo[i] ≤ s[i] ≤ hi[i] for every i.
// lo and hi must have the same length.
func (t *Tree[K, V]) RetrieveSubstringsRange(lo, hi []K) ([]trienet.WordPosition[V], error) {
	if len(lo) != len(hi) {
		T().Errorf("suffix tree: range bounds of different length %d/%d", len(lo), len(hi))
		return nil, fmt.Errorf("%w: range bounds have lengths %d and %d",
			trienet.ErrIllegalArguments, len(lo), len(hi))
	}
	if len(lo) < t.cfg.MinSuffixLength {
		return []trienet.WordPosition[V]{}, nil
	}
	type probe struct {
		n  nodeID
		at int // position in lo/hi
	}
	var found []nodeID
	stack := []probe{{root, 0}}
	if len(lo) == 0 {
		found, stack = append(found, root), nil
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range t.at(p.n).edges {
			l := min(len(lo)-p.at, e.label.Len())
			if !inRange(e.label.Head(l), lo[p.at:p.at+l], hi[p.at:p.at+l]) {
				continue
			}
			if p.at+l == len(lo) {
				found = append(found, e.target)
			} else {
				stack = append(stack, probe{e.target, p.at + l})
			}
		}
	}
	return distinct[V](func(yield func(trienet.WordPosition[V]) bool) {
		for _, n := range found {
			for wp := range t.occurrences(n) {
				if !yield(wp) {
					return
				}
			}
		}
	}), nil
}

func inRange[K cmp.Ordered](label partition.Partition[K], lo, hi []K) bool {
	for i := range label.Len() {
		if c := label.At(i); c < lo[i] || c > hi[i] {
			return false
		}
	}
	return true
}

// search returns the node at the end of the edge on which query ends, or noNode.
// The empty query results in the root.
func (t *Tree[K, V]) search(query []K) nodeID {
	n := root
	for i := 0; i < len(query); {
		e, ok := t.at(n).edges[query[i]]
		if !ok {
			return noNode
		}
		l := min(len(query)-i, e.label.Len())
		if !e.label.StartsWith(partition.Of(query[i : i+l])) {
			return noNode
		}
		n, i = e.target, i+l
	}
	return n
}

// occurrences iterates over the occurrences stored in the subtree of n.
// Occurrences may be yielded more than once.
func (t *Tree[K, V]) occurrences(n nodeID) iter.Seq[trienet.WordPosition[V]] {
	return func(yield func(trienet.WordPosition[V]) bool) {
		stack := []nodeID{n}
		for len(stack) > 0 {
			nd := t.at(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
			for _, wp := range nd.data {
				if !yield(wp) {
					return
				}
			}
			for _, e := range nd.edges {
				stack = append(stack, e.target)
			}
		}
	}
}

func distinct[V comparable](seq iter.Seq[trienet.WordPosition[V]]) []trienet.WordPosition[V] {
	result := []trienet.WordPosition[V]{}
	seen := make(map[trienet.WordPosition[V]]struct{})
	for wp := range seq {
		if _, ok := seen[wp]; !ok {
			seen[wp] = struct{}{}
			result = append(result, wp)
		}
	}
	return result
}
