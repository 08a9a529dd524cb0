package suffix

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trienet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var words = []string{"daubreelite", "daubingly", "phycite", "athymic", "koko", "s", "capoc", "aabacdefac"}

// containing computes the values of words containing query by brute force.
func containing(query string) []int {
	r := []int{}
	for i, w := range words {
		if strings.Contains(w, query) {
			r = append(r, i)
		}
	}
	return r
}

func TestSubstringLaw(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewPatricia[int](Config{})
	require.NoError(t, err)
	for i, w := range words {
		require.NoError(t, ix.Add(w, i))
	}
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			for j := i + 1; j <= len(w); j++ {
				q := w[i:j]
				r := ix.Retrieve(q)
				slices.Sort(r)
				if !slices.Equal(r, containing(q)) {
					t.Errorf("query '%s': expected %v, got %v", q, containing(q), r)
				}
			}
		}
	}
}

func TestSubstringPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewPatricia[int](Config{})
	require.NoError(t, err)
	require.NoError(t, ix.Add("aabacdefac", 0))
	positions := func(q string) []int {
		r := []int{}
		for _, wp := range ix.RetrieveSubstrings(q) {
			r = append(r, wp.CharPosition)
		}
		slices.Sort(r)
		return r
	}
	assert.Equal(t, []int{0, 1, 3, 8}, positions("a"))
	assert.Equal(t, []int{3, 8}, positions("ac"))
	assert.Equal(t, []int{2}, positions("bac"))
}

func TestCharacterPositionsOfUnicodeKeys(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewPatricia[string](Config{})
	require.NoError(t, err)
	require.NoError(t, ix.Add("Grüße", "x"))
	r := ix.RetrieveSubstrings("ße")
	require.Len(t, r, 1)
	assert.Equal(t, trienet.WordPosition[string]{CharPosition: 3, Value: "x"}, r[0])
}

func TestMinSuffixLength(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewPatricia[int](Config{MinSuffixLength: 3})
	require.NoError(t, err)
	require.NoError(t, ix.Add("athymic", 1))
	assert.Empty(t, ix.Retrieve("ic"), "queries below minimum length find nothing")
	assert.Equal(t, []int{1}, ix.Retrieve("mic"))
	assert.Equal(t, []int{1}, ix.Retrieve("thy"))
	_, err = NewPatricia[int](Config{MinSuffixLength: -1})
	assert.True(t, errors.Is(err, trienet.ErrIllegalArguments))
}

func TestConcurrentSuffixIndexer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewConcurrent[int](Config{MinSuffixLength: 1})
	require.NoError(t, err)
	var g errgroup.Group
	for w := range 4 {
		g.Go(func() error {
			for i := range 50 {
				if err := ix.Add(fmt.Sprintf("key%03dx", w*50+i), w*50+i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, ix.Retrieve("x"), 200)
	assert.ElementsMatch(t, []int{12, 112, 120, 121, 122, 123, 124, 125, 126, 127, 128, 129}, ix.Retrieve("12"))
}

func TestDuplicateValuesAreMerged(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ix, err := NewPatricia[int](Config{})
	require.NoError(t, err)
	require.NoError(t, ix.Add("banana", 7))
	assert.Equal(t, []int{7}, ix.Retrieve("ana"))
	assert.Len(t, ix.RetrieveSubstrings("ana"), 2)
}
