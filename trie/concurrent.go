package trie

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/npillmayer/trienet"
	"github.com/puzpuzpuz/xsync/v4"
)

// Concurrent is a trie which is safe for use by multiple concurrent writers
// without external synchronization.
//
// Child nodes are created with an atomic insert-if-absent operation, so racing
// writers converge on a single child. Values are kept in an append-only list,
// linked by compare-and-swap, which never loses a concurrent insert.
// There is no ordering guarantee between values added concurrently, and a
// Retrieve running concurrently with an Add may or may not observe its effects.
type Concurrent[V comparable] struct {
	root *cnode[V]
}

// NewConcurrent creates an empty concurrent trie.
func NewConcurrent[V comparable]() *Concurrent[V] {
	return &Concurrent[V]{root: newCNode[V]()}
}

// Add stores value under key. Keys have to be valid UTF-8.
// Add may be called from multiple goroutines.
func (t *Concurrent[V]) Add(key string, value V) error {
	runes, err := runesOf(key)
	if err != nil {
		return err
	}
	add[V](t.root, runes, value)
	return nil
}

// Retrieve returns the distinct values of all keys starting with query.
func (t *Concurrent[V]) Retrieve(query string) []V {
	return retrieve[V](t.root, []rune(query))
}

// Remove is not supported by concurrent tries.
func (t *Concurrent[V]) Remove(key string) error {
	return fmt.Errorf("%w: remove from concurrent trie", trienet.ErrUnsupported)
}

// Update is not supported by concurrent tries.
func (t *Concurrent[V]) Update(key string, values ...V) error {
	return fmt.Errorf("%w: update of concurrent trie", trienet.ErrUnsupported)
}

// Size returns the number of nodes of t, including the root.
// With concurrent writers active, the result is a lower bound.
func (t *Concurrent[V]) Size() int {
	return countNodes[V](t.root)
}

// --- Nodes -----------------------------------------------------------------

type cnode[V comparable] struct {
	edges *xsync.Map[rune, *cnode[V]] // lock-free map which allows concurrent access
	head  atomic.Pointer[cell[V]]     // most recently added value
}

// cell is an element of the append-only value list. Cells are immutable once
// they are published.
type cell[V comparable] struct {
	value V
	next  *cell[V]
}

func newCNode[V comparable]() *cnode[V] {
	return &cnode[V]{edges: xsync.NewMap[rune, *cnode[V]]()}
}

func (n *cnode[V]) keyLength() int {
	return 1
}

func (n *cnode[V]) values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for c := n.head.Load(); c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}

func (n *cnode[V]) children() iter.Seq[reader[V]] {
	return func(yield func(reader[V]) bool) {
		n.edges.Range(func(_ rune, child *cnode[V]) bool {
			return yield(child)
		})
	}
}

func (n *cnode[V]) childOrNil(query []rune, pos int) reader[V] {
	if child, ok := n.edges.Load(query[pos]); ok {
		return child
	}
	return nil
}

func (n *cnode[V]) addValue(v V) {
	c := &cell[V]{value: v}
	for {
		c.next = n.head.Load()
		if n.head.CompareAndSwap(c.next, c) {
			return
		}
	}
}

func (n *cnode[V]) getOrCreateChild(r rune) writer[V] {
	child, _ := n.edges.LoadOrCompute(r, func() (*cnode[V], bool) {
		return newCNode[V](), false
	})
	return child
}
