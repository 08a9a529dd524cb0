package trie

import (
	"iter"
	"maps"
	"slices"
)

// Trie is a plain trie with one character per edge.
//
// Trie is the only trie variant which supports removing and updating the values
// of a key. The zero value is not usable, create a Trie with New.
type Trie[V comparable] struct {
	root *node[V]
}

// New creates an empty trie.
func New[V comparable]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// Add stores value under key. Keys have to be valid UTF-8.
func (t *Trie[V]) Add(key string, value V) error {
	runes, err := runesOf(key)
	if err != nil {
		return err
	}
	add[V](t.root, runes, value)
	return nil
}

// Retrieve returns the distinct values of all keys starting with query.
func (t *Trie[V]) Retrieve(query string) []V {
	return retrieve[V](t.root, []rune(query))
}

// Remove removes the values stored under key. Nodes which are neither part of
// a longer key nor hold values of a shorter key are pruned.
// Removing a key which is not present is not an error.
func (t *Trie[V]) Remove(key string) error {
	runes, err := runesOf(key)
	if err != nil {
		return err
	}
	path := make([]*node[V], 0, len(runes)+1)
	n := t.root
	path = append(path, n)
	for _, r := range runes {
		if n = n.edges[r]; n == nil {
			return nil
		}
		path = append(path, n)
	}
	n.vals = nil
	for i := len(runes); i > 0; i-- { // prune bottom-up
		if len(path[i].vals) > 0 || len(path[i].edges) > 0 {
			break
		}
		delete(path[i-1].edges, runes[i-1])
	}
	return nil
}

// Update replaces the values stored under key. If key is not present, it will
// be inserted with values.
func (t *Trie[V]) Update(key string, values ...V) error {
	runes, err := runesOf(key)
	if err != nil {
		return err
	}
	var w writer[V] = t.root
	for _, r := range runes {
		w = w.getOrCreateChild(r)
	}
	w.(*node[V]).vals = slices.Clone(values)
	return nil
}

// Size returns the number of nodes of t, including the root.
func (t *Trie[V]) Size() int {
	return countNodes[V](t.root)
}

// --- Nodes -----------------------------------------------------------------

type node[V comparable] struct {
	edges map[rune]*node[V]
	vals  []V
}

func newNode[V comparable]() *node[V] {
	return &node[V]{edges: make(map[rune]*node[V])}
}

func (n *node[V]) keyLength() int {
	return 1
}

func (n *node[V]) values() iter.Seq[V] {
	return slices.Values(n.vals)
}

func (n *node[V]) children() iter.Seq[reader[V]] {
	return func(yield func(reader[V]) bool) {
		for child := range maps.Values(n.edges) {
			if !yield(child) {
				return
			}
		}
	}
}

func (n *node[V]) childOrNil(query []rune, pos int) reader[V] {
	if child, ok := n.edges[query[pos]]; ok {
		return child
	}
	return nil
}

func (n *node[V]) addValue(v V) {
	n.vals = append(n.vals, v)
}

func (n *node[V]) getOrCreateChild(r rune) writer[V] {
	child, ok := n.edges[r]
	if !ok {
		child = newNode[V]()
		n.edges[r] = child
	}
	return child
}
