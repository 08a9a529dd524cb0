package ukkonen

import (
	"fmt"

	"github.com/npillmayer/trienet"
)

// IndexTree is a generalized suffix tree for string keys associated with
// integer indices, e.g. the positions of keys within a list of words.
// Indices have to be inserted in non-decreasing order.
type IndexTree struct {
	tree *CharTree[int]
	last int
}

// ResultInfo holds a possibly truncated search result together with the total
// number of results available.
type ResultInfo struct {
	Results []int
	Total   int
}

// NewIndexTree creates an empty index tree.
func NewIndexTree() *IndexTree {
	tree, err := NewCharTree[int](Config{})
	assert(err == nil, "default configuration of suffix tree invalid")
	return &IndexTree{tree: tree}
}

// Put inserts key with index. If index is smaller than an index inserted
// before, Put fails with ErrInvalidState.
func (it *IndexTree) Put(key string, index int) error {
	if index < it.last {
		T().Errorf("index tree: index %d inserted after %d", index, it.last)
		return fmt.Errorf("%w: index %d is less than previously inserted index %d",
			trienet.ErrInvalidState, index, it.last)
	}
	if err := it.tree.Add(key, index); err != nil {
		return err
	}
	it.last = index
	return nil
}

// Search returns the indices of all keys containing word.
func (it *IndexTree) Search(word string) []int {
	return it.tree.Retrieve(word)
}

// SearchN returns at most limit indices of keys containing word.
// A negative limit means no limit.
func (it *IndexTree) SearchN(word string, limit int) []int {
	return it.tree.RetrieveN(word, limit)
}

// SearchWithCount returns at most limit indices of keys containing word,
// together with the total number of such keys.
func (it *IndexTree) SearchWithCount(word string, limit int) ResultInfo {
	all := it.tree.Retrieve(word)
	if limit >= 0 && limit < len(all) {
		return ResultInfo{Results: all[:limit], Total: len(all)}
	}
	return ResultInfo{Results: all, Total: len(all)}
}

// Size returns the number of nodes of the tree.
func (it *IndexTree) Size() int {
	return it.tree.Size()
}
