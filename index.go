package trienet

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Index is the contract shared by all trienet index structures.
//
// Add stores value under key. Retrieve returns the distinct values of all keys
// matching query; for exact-key indices this means all keys with prefix query,
// for substring indices all keys containing query. The order of results is
// unspecified.
type Index[V any] interface {
	Add(key string, value V) error
	Retrieve(query string) []V
}

// SubstringIndex is implemented by indices which are able to report the
// position of a match within the originally inserted key.
type SubstringIndex[V any] interface {
	Index[V]
	RetrieveSubstrings(query string) []WordPosition[V]
}

// WordPosition is an occurrence record: a value together with the character
// offset within its key where a match starts.
type WordPosition[V any] struct {
	CharPosition int
	Value        V
}

func (wp WordPosition[V]) String() string {
	return fmt.Sprintf("%d:%v", wp.CharPosition, wp.Value)
}
