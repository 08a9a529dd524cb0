package ukkonen

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/trienet"
)

// CharTree is a generalized suffix tree for string keys. It implements
// trienet.SubstringIndex. Character positions count runes, not bytes.
type CharTree[V comparable] struct {
	tree *Tree[rune, V]
}

var _ trienet.SubstringIndex[int] = (*CharTree[int])(nil)

// NewCharTree creates an empty suffix tree for string keys.
func NewCharTree[V comparable](cfg Config) (*CharTree[V], error) {
	tree, err := New[rune, V](cfg)
	if err != nil {
		return nil, err
	}
	return &CharTree[V]{tree: tree}, nil
}

// Add inserts key with value. Keys have to be valid UTF-8.
func (ct *CharTree[V]) Add(key string, value V) error {
	if !utf8.ValidString(key) {
		T().Errorf("suffix tree: key is not valid UTF-8: %q", key)
		return fmt.Errorf("%w: key %q is not valid UTF-8", trienet.ErrIllegalArguments, key)
	}
	ct.tree.add([]rune(key), value)
	return nil
}

// Retrieve returns the distinct values of all keys containing query.
func (ct *CharTree[V]) Retrieve(query string) []V {
	return ct.tree.Retrieve([]rune(query))
}

// RetrieveN returns at most limit distinct values of keys containing query.
// A negative limit means no limit.
func (ct *CharTree[V]) RetrieveN(query string, limit int) []V {
	return ct.tree.RetrieveN([]rune(query), limit)
}

// RetrieveSubstrings returns every occurrence of query as a distinct pair of
// (character position within key, value).
func (ct *CharTree[V]) RetrieveSubstrings(query string) []trienet.WordPosition[V] {
	return ct.tree.RetrieveSubstrings([]rune(query))
}

// RetrieveSubstringsRange returns the occurrences of all strings between lo and
// hi, compared character by character. lo and hi must have the same number of
// characters.
func (ct *CharTree[V]) RetrieveSubstringsRange(lo, hi string) ([]trienet.WordPosition[V], error) {
	return ct.tree.RetrieveSubstringsRange([]rune(lo), []rune(hi))
}

// Size returns the number of nodes of the tree.
func (ct *CharTree[V]) Size() int {
	return ct.tree.Size()
}

// Remove is not supported: suffix trees are append-only.
func (ct *CharTree[V]) Remove(key string) error {
	return ct.tree.Remove([]rune(key))
}

// Check validates structural tree invariants.
func (ct *CharTree[V]) Check() error {
	return ct.tree.Check()
}

// WriteDot outputs the tree in Graphviz DOT format.
func (ct *CharTree[V]) WriteDot(w io.Writer) error {
	return ct.tree.WriteDot(w)
}
