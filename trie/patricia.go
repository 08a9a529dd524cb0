package trie

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/partition"
)

// Patricia is a compressed trie. Chains of nodes with a single child are
// collapsed into one node with a multi-character key.
//
// Invariants:
//
//   - no two children of a node share their first character
//   - only the root has an empty key
//   - a node other than the root either holds values or has at least two children
//
// Adding a key performs at most two node allocations, no rebalancing takes place.
type Patricia[V comparable] struct {
	root *pnode[V]
}

// NewPatricia creates an empty PATRICIA trie.
func NewPatricia[V comparable]() *Patricia[V] {
	return &Patricia[V]{root: newPNode[V](partition.Partition[rune]{})}
}

// Add stores value under key. Keys have to be valid UTF-8.
func (t *Patricia[V]) Add(key string, value V) error {
	runes, err := runesOf(key)
	if err != nil {
		return err
	}
	n, rest := t.root, partition.Of(runes)
	for {
		z := n.key.ZipWith(rest)
		switch z.Kind() {
		case partition.ExactMatch:
			n.vals = append(n.vals, value)
			return nil
		case partition.IsContained:
			rest = z.OtherRest
			child, ok := n.edges[rest.At(0)]
			if !ok {
				leaf := newPNode[V](rest)
				leaf.vals = append(leaf.vals, value)
				n.edges[rest.At(0)] = leaf
				return nil
			}
			n = child
		case partition.Contains:
			n.splitOne(z, value)
			return nil
		case partition.Partial:
			n.splitTwo(z, value)
			return nil
		}
	}
}

// Retrieve returns the distinct values of all keys starting with query.
func (t *Patricia[V]) Retrieve(query string) []V {
	return retrieve[V](t.root, []rune(query))
}

// Remove is not supported by PATRICIA tries.
func (t *Patricia[V]) Remove(key string) error {
	return fmt.Errorf("%w: remove from PATRICIA trie", trienet.ErrUnsupported)
}

// Update is not supported by PATRICIA tries.
func (t *Patricia[V]) Update(key string, values ...V) error {
	return fmt.Errorf("%w: update of PATRICIA trie", trienet.ErrUnsupported)
}

// Size returns the number of nodes of t, including the root.
func (t *Patricia[V]) Size() int {
	return countNodes[V](t.root)
}

// Traversal returns an indented listing of the nodes of t, in depth-first order
// with children sorted by their first character (for debugging purposes).
func (t *Patricia[V]) Traversal() string {
	var sb strings.Builder
	type entry struct {
		n     *pnode[V]
		depth int
	}
	stack := []entry{{t.root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&sb, "%s'%s' %v\n", strings.Repeat("  ", e.depth), e.n.key, e.n.vals)
		firsts := slices.Sorted(maps.Keys(e.n.edges))
		for i := len(firsts) - 1; i >= 0; i-- {
			stack = append(stack, entry{e.n.edges[firsts[i]], e.depth + 1})
		}
	}
	return sb.String()
}

// Check validates the structural invariants of t.
func (t *Patricia[V]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil PATRICIA trie", trienet.ErrInvalidState)
	}
	if !t.root.key.IsEmpty() {
		return fmt.Errorf("%w: root has non-empty key '%s'", trienet.ErrInvalidState, t.root.key)
	}
	stack := []*pnode[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for r, child := range n.edges {
			if child.key.IsEmpty() {
				return fmt.Errorf("%w: empty key below '%s'", trienet.ErrInvalidState, n.key)
			}
			if child.key.At(0) != r {
				return fmt.Errorf("%w: child '%s' filed under %q", trienet.ErrInvalidState, child.key, r)
			}
			if len(child.vals) == 0 && len(child.edges) < 2 {
				return fmt.Errorf("%w: node '%s' has neither values nor branches",
					trienet.ErrInvalidState, child.key)
			}
			stack = append(stack, child)
		}
	}
	return nil
}

// --- Nodes -----------------------------------------------------------------

type pnode[V comparable] struct {
	key   partition.Partition[rune]
	vals  []V
	edges map[rune]*pnode[V]
}

func newPNode[V comparable](key partition.Partition[rune]) *pnode[V] {
	return &pnode[V]{key: key, edges: make(map[rune]*pnode[V])}
}

// splitOne handles a key which is a proper prefix of n's key: n shrinks to the
// common head and its tail moves to a new child.
func (n *pnode[V]) splitOne(z partition.Zip[rune], value V) {
	tail := n.detachTail(z.ThisRest)
	n.key = z.CommonHead
	n.vals = []V{value}
	n.edges = map[rune]*pnode[V]{tail.key.At(0): tail}
	T().Debugf("patricia: split '%s' | '%s'", n.key, tail.key)
}

// splitTwo handles keys diverging inside n's key: n shrinks to the common head
// with two new children, one for its old tail, one for the new key.
func (n *pnode[V]) splitTwo(z partition.Zip[rune], value V) {
	tail := n.detachTail(z.ThisRest)
	leaf := newPNode[V](z.OtherRest)
	leaf.vals = []V{value}
	n.key = z.CommonHead
	n.vals = nil
	n.edges = map[rune]*pnode[V]{
		tail.key.At(0): tail,
		leaf.key.At(0): leaf,
	}
	T().Debugf("patricia: split '%s' | '%s' + '%s'", n.key, tail.key, leaf.key)
}

// detachTail creates a node for key, taking over n's values and children.
func (n *pnode[V]) detachTail(key partition.Partition[rune]) *pnode[V] {
	return &pnode[V]{key: key, vals: n.vals, edges: n.edges}
}

func (n *pnode[V]) keyLength() int {
	return n.key.Len()
}

func (n *pnode[V]) values() iter.Seq[V] {
	return slices.Values(n.vals)
}

func (n *pnode[V]) children() iter.Seq[reader[V]] {
	return func(yield func(reader[V]) bool) {
		for child := range maps.Values(n.edges) {
			if !yield(child) {
				return
			}
		}
	}
}

// childOrNil descends only if the child's key starts with the query segment of
// the same length. A query may end inside the child's key.
func (n *pnode[V]) childOrNil(query []rune, pos int) reader[V] {
	child, ok := n.edges[query[pos]]
	if !ok {
		return nil
	}
	end := min(len(query), pos+child.key.Len())
	if !child.key.StartsWith(partition.Of(query[pos:end])) {
		return nil
	}
	return child
}
