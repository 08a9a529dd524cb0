/*
Package partition implements zero-copy views onto sequences of characters.

A Partition is a (origin, start, length) triple. Partitions share their origin
and never modify it, so slicing, splitting and comparing partitions does not copy
any characters. Compressed tries and suffix trees use partitions as edge labels.

The common-prefix decomposition of two partitions is available as ZipWith,
yielding the common head and two remainders:

	"abcd" zip "abxy"  =>  head "ab", rests "cd" and "xy"   (Partial)
	"abcd" zip "ab"    =>  head "ab", rests "cd" and ""     (Contains)
	"ab"   zip "abcd"  =>  head "ab", rests "" and "cd"     (IsContained)
	"ab"   zip "ab"    =>  head "ab", rests "" and ""       (ExactMatch)

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package partition

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trienet"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Partition is a view onto a section of an origin sequence of characters.
// The zero value is a valid empty partition.
type Partition[K comparable] struct {
	origin []K
	start  int
	length int
}

// New creates a partition of origin, starting at start and spanning length characters.
// length is clamped to the characters available after start. A start beyond the end
// of origin results in an empty partition located at the end of origin.
// Negative arguments result in ErrIllegalArguments.
func New[K comparable](origin []K, start, length int) (Partition[K], error) {
	if start < 0 || length < 0 {
		T().Errorf("partition: negative start (%d) or length (%d)", start, length)
		return Partition[K]{}, fmt.Errorf("%w: partition with start=%d, length=%d",
			trienet.ErrIllegalArguments, start, length)
	}
	return clamped(origin, start, length), nil
}

// Of creates a partition spanning the complete origin.
func Of[K comparable](origin []K) Partition[K] {
	return Partition[K]{origin: origin, length: len(origin)}
}

// FromString creates a partition of the characters of s.
func FromString(s string) Partition[rune] {
	return Of([]rune(s))
}

func clamped[K comparable](origin []K, start, length int) Partition[K] {
	if start > len(origin) {
		start = len(origin)
	}
	if start+length > len(origin) {
		length = len(origin) - start
	}
	return Partition[K]{origin: origin, start: start, length: length}
}

// Len returns the number of characters of p.
func (p Partition[K]) Len() int {
	return p.length
}

// IsEmpty is true for partitions of length 0.
func (p Partition[K]) IsEmpty() bool {
	return p.length == 0
}

// At returns the character at position i of p. It panics if i is out of range.
func (p Partition[K]) At(i int) K {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("partition index %d out of range [0,%d)", i, p.length))
	}
	return p.origin[p.start+i]
}

// Last returns the last character of p. It panics for empty partitions.
func (p Partition[K]) Last() K {
	return p.At(p.length - 1)
}

// Origin returns the shared origin of p. Clients must not modify it.
func (p Partition[K]) Origin() []K {
	return p.origin
}

// Start returns the offset of p within its origin.
func (p Partition[K]) Start() int {
	return p.start
}

// Elements returns the characters of p. The result aliases the origin and must
// not be modified.
func (p Partition[K]) Elements() []K {
	return p.origin[p.start : p.start+p.length : p.start+p.length]
}

// Split splits p at position at. The head contains the characters [0,at), the rest
// contains [at,len). at is clamped to [0,len].
func (p Partition[K]) Split(at int) (head, rest Partition[K]) {
	at = max(0, min(at, p.length))
	head = Partition[K]{origin: p.origin, start: p.start, length: at}
	rest = Partition[K]{origin: p.origin, start: p.start + at, length: p.length - at}
	return
}

// Head returns the first n characters of p.
func (p Partition[K]) Head(n int) Partition[K] {
	h, _ := p.Split(n)
	return h
}

// Tail returns p without its first n characters.
func (p Partition[K]) Tail(n int) Partition[K] {
	_, r := p.Split(n)
	return r
}

// DropLast returns p without its last character. For an empty partition it returns p.
func (p Partition[K]) DropLast() Partition[K] {
	if p.length == 0 {
		return p
	}
	return Partition[K]{origin: p.origin, start: p.start, length: p.length - 1}
}

// Grow extends p to the right by n characters of its origin, as far as available.
func (p Partition[K]) Grow(n int) Partition[K] {
	return clamped(p.origin, p.start, p.length+max(0, n))
}

// StartsWith is true if other is a prefix of p.
func (p Partition[K]) StartsWith(other Partition[K]) bool {
	if other.length > p.length {
		return false
	}
	if p.start == other.start && sameOrigin(p.origin, other.origin) {
		return true
	}
	for i := 0; i < other.length; i++ {
		if p.origin[p.start+i] != other.origin[other.start+i] {
			return false
		}
	}
	return true
}

// sameOrigin is true if a and b share their backing array.
func sameOrigin[K comparable](a, b []K) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

// Equal compares two partitions by content, regardless of their origins.
func (p Partition[K]) Equal(other Partition[K]) bool {
	return p.length == other.length && p.StartsWith(other)
}

// ZipWith advances through p and other in lock-step as long as the characters
// match. The result holds the common head (as a partition of p) and the
// remainders of both partitions.
func (p Partition[K]) ZipWith(other Partition[K]) Zip[K] {
	n := min(p.length, other.length)
	i := 0
	for i < n && p.origin[p.start+i] == other.origin[other.start+i] {
		i++
	}
	head, thisRest := p.Split(i)
	return Zip[K]{
		CommonHead: head,
		ThisRest:   thisRest,
		OtherRest:  other.Tail(i),
	}
}

func (p Partition[K]) String() string {
	if runes, ok := any(p.origin).([]rune); ok {
		return string(runes[p.start : p.start+p.length])
	}
	var sb strings.Builder
	for i, k := range p.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
	}
	return sb.String()
}

// --- Zipping ---------------------------------------------------------------

// MatchKind classifies the result of zipping two partitions.
type MatchKind int8

// Kinds of matches of two partitions this and other.
const (
	ExactMatch  MatchKind = iota // this == other
	Contains                     // other is a proper prefix of this
	IsContained                  // this is a proper prefix of other
	Partial                      // neither is a prefix of the other
)

func (mk MatchKind) String() string {
	switch mk {
	case ExactMatch:
		return "ExactMatch"
	case Contains:
		return "Contains"
	case IsContained:
		return "IsContained"
	case Partial:
		return "Partial"
	}
	return "<unknown match kind>"
}

// Zip is the common-prefix decomposition of two partitions.
type Zip[K comparable] struct {
	CommonHead Partition[K]
	ThisRest   Partition[K]
	OtherRest  Partition[K]
}

// Kind classifies z depending on which of the remainders are empty.
func (z Zip[K]) Kind() MatchKind {
	switch {
	case z.ThisRest.IsEmpty() && z.OtherRest.IsEmpty():
		return ExactMatch
	case z.OtherRest.IsEmpty():
		return Contains
	case z.ThisRest.IsEmpty():
		return IsContained
	}
	return Partial
}
