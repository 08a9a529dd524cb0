package ukkonen

import (
	"fmt"
	"slices"

	"github.com/npillmayer/trienet"
)

// Check validates structural tree invariants:
//
//   - every node is reachable from the root by exactly one path of edges
//   - edge labels are non-empty and filed under their first character
//   - the depth of a node equals the length of its path
//   - the path of a suffix link target is the node's path minus its first
//     character
//
// This checker is intended to be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: empty suffix tree", trienet.ErrInvalidState)
	}
	if t.at(root).depth != 0 {
		return fmt.Errorf("%w: root has depth %d", trienet.ErrInvalidState, t.at(root).depth)
	}
	paths := make([][]K, len(t.nodes))
	paths[root] = []K{}
	visited := 1
	stack := []nodeID{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for first, e := range t.at(n).edges {
			if e.label.IsEmpty() {
				return fmt.Errorf("%w: empty edge label at node %d", trienet.ErrInvalidState, n)
			}
			if e.label.At(0) != first {
				return fmt.Errorf("%w: edge '%s' filed under %v", trienet.ErrInvalidState, e.label, first)
			}
			if e.target <= root || int(e.target) >= len(t.nodes) {
				return fmt.Errorf("%w: edge '%s' has invalid target %d", trienet.ErrInvalidState, e.label, e.target)
			}
			if paths[e.target] != nil {
				return fmt.Errorf("%w: node %d reachable twice", trienet.ErrInvalidState, e.target)
			}
			p := append(slices.Clip(paths[n]), e.label.Elements()...)
			if t.at(e.target).depth != len(p) {
				return fmt.Errorf("%w: node %d has depth %d, path length is %d",
					trienet.ErrInvalidState, e.target, t.at(e.target).depth, len(p))
			}
			paths[e.target] = p
			visited++
			stack = append(stack, e.target)
		}
	}
	if visited != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable", trienet.ErrInvalidState,
			len(t.nodes)-visited, len(t.nodes))
	}
	for n, nd := range t.nodes {
		if nd.suffix == noNode {
			continue
		}
		if nd.suffix < root || int(nd.suffix) >= len(t.nodes) {
			return fmt.Errorf("%w: node %d has invalid suffix link %d", trienet.ErrInvalidState, n, nd.suffix)
		}
		p, link := paths[n], paths[nd.suffix]
		if len(p) == 0 || !slices.Equal(link, p[1:]) {
			return fmt.Errorf("%w: suffix link of node %d does not point to a suffix",
				trienet.ErrInvalidState, n)
		}
	}
	return nil
}
