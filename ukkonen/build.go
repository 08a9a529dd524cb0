package ukkonen

import (
	"fmt"
	"slices"

	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/partition"
)

// Add inserts key into the tree, recording value for every suffix of key.
// key must not be nil. The tree keeps a private copy of key.
//
// Add is not safe for concurrent use.
func (t *Tree[K, V]) Add(key []K, value V) error {
	if key == nil {
		T().Errorf("suffix tree: nil key")
		return fmt.Errorf("%w: key must not be nil", trienet.ErrIllegalArguments)
	}
	t.add(slices.Clone(key), value)
	return nil
}

// add inserts key, which will become the origin of edge labels and thus must
// not be modified afterwards.
//
// The active point (s, text) is an explicit node s plus a partition of key,
// representing a suffix key[j:i] of the prefix processed so far. Between steps
// the active point is canonical, i.e. s is the deepest node on the path.
// Every suffix key[j:] with j left of the active point ends at a leaf; the
// remaining suffixes are made explicit by finish.
func (t *Tree[K, V]) add(key []K, value V) {
	t.activeLeaf = root
	s, text := root, partition.Of(key).Head(0)
	whole := partition.Of(key)
	for i := range key {
		text = text.Grow(1)
		s, text = t.update(s, text, whole.Tail(i), value)
		s, text = t.canonize(s, text)
	}
	t.finish(s, text, value)
}

// update extends the tree by the last character of part, which is appended to
// every suffix on the boundary path starting at the active point (s, part minus
// its last character). rest is the remainder of the key, starting with the new
// character; it becomes the label of new leaves.
//
// update returns the new active point.
func (t *Tree[K, V]) update(s nodeID, part, rest partition.Partition[K], value V) (nodeID, partition.Partition[K]) {
	newChar := part.Last()
	oldroot := root
	endpoint, r := t.testAndSplit(s, part.DropLast(), newChar)
	for !endpoint {
		depth := t.at(r).depth
		leaf := t.newNode(depth + rest.Len())
		t.at(r).edges[newChar] = &edge[K]{label: rest, target: leaf}
		t.addRef(leaf, rest.Origin(), depth+rest.Len(), value)
		if t.activeLeaf != root {
			t.at(t.activeLeaf).suffix = leaf
		}
		t.activeLeaf = leaf
		if oldroot != root {
			t.at(oldroot).suffix = r
		}
		oldroot = r
		s, part = t.nextSuffix(s, part)
		endpoint, r = t.testAndSplit(s, part.DropLast(), newChar)
	}
	if oldroot != root {
		t.at(oldroot).suffix = r
	}
	return s, part
}

// finish records the suffixes of the key which are still implicit after the
// last character has been processed: the suffix at the active point (s, text)
// and every shorter one. Each of them gets an explicit node, splitting edges
// where necessary, and these nodes are chained by suffix links.
func (t *Tree[K, V]) finish(s nodeID, text partition.Partition[K], value V) {
	key := text.Origin()
	prev := t.activeLeaf
	for {
		s, text = t.canonize(s, text)
		if s == root && text.IsEmpty() {
			break
		}
		n := s
		if !text.IsEmpty() {
			n = t.split(s, text)
		}
		t.link(prev, n)
		t.addRef(n, key, t.at(n).depth, value)
		prev = n
		s, text = t.nextSuffix(s, text)
	}
	t.link(prev, root)
}

// link sets the suffix link of n to target, unless n already has one or target
// is not exactly one character shallower.
func (t *Tree[K, V]) link(n, target nodeID) {
	if n == root {
		return
	}
	if nd := t.at(n); nd.suffix == noNode && t.at(target).depth == nd.depth-1 {
		nd.suffix = target
	}
}

// nextSuffix moves the active point (s, part) to the next shorter suffix.
// If s has a suffix link to a node of matching depth, the link is followed.
// Otherwise the suffix is located by descending from the root.
func (t *Tree[K, V]) nextSuffix(s nodeID, part partition.Partition[K]) (nodeID, partition.Partition[K]) {
	sn := t.at(s)
	if s != root && sn.suffix != noNode && t.at(sn.suffix).depth == sn.depth-1 {
		n, p := t.canonize(sn.suffix, part.DropLast())
		return n, p.Grow(1)
	}
	if s != root {
		T().Debugf("suffix tree: no usable suffix link at depth %d, descending from root", sn.depth)
	}
	str, err := partition.New(part.Origin(), part.Start()-sn.depth, sn.depth+part.Len())
	assert(err == nil, "active point out of range of key")
	str = str.Tail(1)
	if str.IsEmpty() {
		return root, str
	}
	n, p := t.canonize(root, str.DropLast())
	return n, p.Grow(1)
}

// testAndSplit checks whether the path (s, part) can be continued by character c.
// If so, the extension is implicit and endpoint is true. Otherwise, if the path
// ends inside an edge, the edge is split and the new inner node is returned.
func (t *Tree[K, V]) testAndSplit(s nodeID, part partition.Partition[K], c K) (endpoint bool, r nodeID) {
	s, str := t.canonize(s, part)
	if str.IsEmpty() {
		_, ok := t.at(s).edges[c]
		return ok, s
	}
	g := t.at(s).edges[str.At(0)]
	assert(g != nil && g.label.Len() > str.Len(), "canonical active point not inside an edge")
	if g.label.At(str.Len()) == c {
		return true, s
	}
	return false, t.split(s, str)
}

// split breaks the edge out of s starting with str after len(str) characters
// and returns the new inner node: s --str--> r --tail--> target.
func (t *Tree[K, V]) split(s nodeID, str partition.Partition[K]) nodeID {
	sn := t.at(s)
	g := sn.edges[str.At(0)]
	r := t.newNode(sn.depth + str.Len())
	g.label = g.label.Tail(str.Len())
	t.at(r).edges[g.label.At(0)] = g
	sn.edges[str.At(0)] = &edge[K]{label: str, target: r}
	return r
}

// canonize descends from s as long as complete edge labels fit into part.
// It returns the deepest node reached and the remainder of part.
//
// part must spell a path of the tree starting at s, so only the label lengths
// are compared.
func (t *Tree[K, V]) canonize(s nodeID, part partition.Partition[K]) (nodeID, partition.Partition[K]) {
	for !part.IsEmpty() {
		e, ok := t.at(s).edges[part.At(0)]
		if !ok || e.label.Len() > part.Len() {
			break
		}
		part = part.Tail(e.label.Len())
		s = e.target
	}
	return s, part
}

// addRef records an occurrence of value for the string of length length ending
// at the end of key, at node n. The occurrence is propagated along suffix links:
// each hop drops the first character, so the position shifts by one.
// Propagation stops at the root or at a node already holding the occurrence.
func (t *Tree[K, V]) addRef(n nodeID, key []K, length int, value V) {
	wp := trienet.WordPosition[V]{CharPosition: len(key) - length, Value: value}
	for n != noNode && n != root {
		nd := t.at(n)
		if nd.contains(wp) {
			return
		}
		nd.appendData(wp)
		n = nd.suffix
		wp.CharPosition++
	}
}
