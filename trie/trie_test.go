package trie

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trienet"
)

var words40 = []string{
	"daubreelite", "daubingly", "daubingly", "phycochromaceous", "phycochromaceae",
	"phycite", "athymic", "athwarthawse", "athrotaxis", "unaccorded",
	"unaccordant", "unaccord", "kokoona", "koko", "koklas",
	"s", "flexibilty", "flexanimous", "collochemistry", "collochemistry",
	"collocationable", "capomo", "capoc", "capoc", "ungivingness",
	"ungiveable", "ungive", "prestandard", "prestandard", "prestabilism",
	"megalocornea", "megalocephalia", "megalocephalia", "afaced", "aettekees",
	"aetites", "comolecule", "comodato", "comodato", "cognoscibility",
}

// prefixMatches computes the expected result of a prefix query by brute force.
func prefixMatches(words []string, query string) []int {
	r := []int{}
	for i, w := range words {
		if strings.HasPrefix(w, query) {
			r = append(r, i)
		}
	}
	return r
}

func sameSet(a, b []int) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// checkPrefixQueries runs a query for every prefix of every word (and some
// misses) against idx.
func checkPrefixQueries(t *testing.T, idx trienet.Index[int]) {
	t.Helper()
	queries := []string{"", "x", "daubx", "phycochromaceousx", "aa", "comol", "koko"}
	for _, w := range words40 {
		for i := 1; i <= len(w); i++ {
			queries = append(queries, w[:i])
		}
	}
	for _, q := range queries {
		expected := prefixMatches(words40, q)
		result := idx.Retrieve(q)
		if !sameSet(result, expected) {
			t.Errorf("query '%s': expected %v, got %v", q, expected, result)
		}
	}
}

func fill(t *testing.T, idx trienet.Index[int]) {
	t.Helper()
	for i, w := range words40 {
		if err := idx.Add(w, i); err != nil {
			t.Fatalf("cannot add '%s': %v", w, err)
		}
	}
}

func TestTriePrefixQueries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	trie := New[int]()
	fill(t, trie)
	checkPrefixQueries(t, trie)
	if r := trie.Retrieve("daubingly"); !sameSet(r, []int{1, 2}) {
		t.Errorf("expected duplicate key to carry both values, got %v", r)
	}
}

func TestTrieRetrieveIsIdempotent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	trie := New[int]()
	fill(t, trie)
	first := trie.Retrieve("co")
	for range 3 {
		if r := trie.Retrieve("co"); !sameSet(r, first) {
			t.Fatalf("repeated query returned %v, first returned %v", r, first)
		}
	}
}

func TestTrieRemove(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	trie := New[int]()
	trie.Add("koko", 1)
	trie.Add("kokoona", 2)
	trie.Add("koklas", 3)
	size := trie.Size()
	if err := trie.Remove("koko"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := trie.Retrieve("koko"); !sameSet(r, []int{2}) {
		t.Errorf("expected 'koko' to retrieve [2] after removal, got %v", r)
	}
	if trie.Size() != size {
		t.Errorf("removing a key part of a longer key must not prune nodes")
	}
	if err := trie.Remove("kokoona"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := trie.Retrieve("koko"); len(r) != 0 {
		t.Errorf("expected no values for 'koko', got %v", r)
	}
	if r := trie.Retrieve("kok"); !sameSet(r, []int{3}) {
		t.Errorf("expected 'kok' to retrieve [3], got %v", r)
	}
	// root + k-o-k + l-a-s
	if trie.Size() != 7 {
		t.Errorf("expected pruned trie of 7 nodes, has %d", trie.Size())
	}
	if err := trie.Remove("nothere"); err != nil {
		t.Errorf("removing a missing key should not fail, got %v", err)
	}
}

func TestTrieUpdate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	trie := New[int]()
	trie.Add("capoc", 1)
	trie.Add("capoc", 2)
	if err := trie.Update("capoc", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := trie.Retrieve("capoc"); !sameSet(r, []int{7}) {
		t.Errorf("expected values to be replaced by [7], got %v", r)
	}
	if err := trie.Update("capomo", 8, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := trie.Retrieve("capo"); !sameSet(r, []int{7, 8, 9}) {
		t.Errorf("expected update to insert missing key, got %v", r)
	}
}

func TestInvalidUTF8Key(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, idx := range []trienet.Index[int]{New[int](), NewPatricia[int](), NewConcurrent[int]()} {
		if err := idx.Add("a\xffb", 1); !errors.Is(err, trienet.ErrIllegalArguments) {
			t.Errorf("%T: expected ErrIllegalArguments, got %v", idx, err)
		}
	}
}

func TestUnsupportedOperations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	p := NewPatricia[int]()
	if err := p.Remove("x"); !errors.Is(err, trienet.ErrUnsupported) {
		t.Errorf("expected PATRICIA remove to be unsupported, got %v", err)
	}
	if err := p.Update("x", 1); !errors.Is(err, trienet.ErrUnsupported) {
		t.Errorf("expected PATRICIA update to be unsupported, got %v", err)
	}
	c := NewConcurrent[int]()
	if err := c.Remove("x"); !errors.Is(err, trienet.ErrUnsupported) {
		t.Errorf("expected concurrent remove to be unsupported, got %v", err)
	}
	if err := c.Update("x", 1); !errors.Is(err, trienet.ErrUnsupported) {
		t.Errorf("expected concurrent update to be unsupported, got %v", err)
	}
}
