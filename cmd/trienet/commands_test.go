package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trienet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const words = `banana
ananas

bandana
cabana
nab
`

func writeWords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	return path
}

// execute runs the command line with flags reset to their defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	indexKind, wordFile, maxQuery, dotFile = "ukkonen", "", "", ""
	minSuffix, limit, workers = 0, -1, 2
	dump, verbose = false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSubstringQuery(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	path := writeWords(t)
	for _, kind := range []string{"ukkonen", "suffix"} {
		out, err := execute(t, "query", "--index", kind, "--file", path, "ana")
		require.NoError(t, err)
		t.Logf("\n%s", out)
		// banana 2x, ananas 2x, bandana 1x, cabana 1x
		assert.Contains(t, out, `"ana": 6 occurrences`)
		assert.Contains(t, out, "     4  bandana")
		assert.NotContains(t, out, "nab\n")
	}
}

func TestPrefixQuery(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	path := writeWords(t)
	for _, kind := range []string{"trie", "patricia", "concurrent"} {
		out, err := execute(t, "query", "-i", kind, "-f", path, "ban", "x")
		require.NoError(t, err)
		assert.Contains(t, out, `"ban": 2 keys starting with query`)
		assert.Contains(t, out, "     1  banana")
		assert.Contains(t, out, "     4  bandana")
		assert.Contains(t, out, `"x": 0 keys starting with query`)
	}
}

func TestRangeQueryAndLimit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	path := writeWords(t)
	out, err := execute(t, "query", "-f", path, "--max", "nb", "na")
	require.NoError(t, err)
	// "na" occurs 7 times, "nb" never
	assert.Contains(t, out, `"na": 7 occurrences`)
	out, err = execute(t, "query", "-f", path, "--limit", "2", "a")
	require.NoError(t, err)
	assert.Contains(t, out, `"a": 2 occurrences`)
	_, err = execute(t, "query", "-f", path, "--max", "abc", "a")
	assert.ErrorIs(t, err, trienet.ErrIllegalArguments)
	_, err = execute(t, "query", "-i", "trie", "-f", path, "--max", "b", "a")
	assert.ErrorIs(t, err, trienet.ErrUnsupported)
}

func TestOutputs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	path := writeWords(t)
	dot := filepath.Join(t.TempDir(), "tree.dot")
	_, err := execute(t, "query", "-f", path, "--dot", dot, "nab")
	require.NoError(t, err)
	content, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "strict digraph"))
	//
	out, err := execute(t, "query", "-i", "patricia", "-f", path, "--dump", "nab")
	require.NoError(t, err)
	assert.Contains(t, out, "'nab' [5]")
}

func TestInvalidInvocations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	path := writeWords(t)
	_, err := execute(t, "query", "-i", "btree", "-f", path, "a")
	assert.ErrorIs(t, err, trienet.ErrIllegalArguments)
	_, err = execute(t, "query", "-f", filepath.Join(t.TempDir(), "missing.txt"), "a")
	assert.Error(t, err)
	_, err = execute(t, "query", "-f", path, "--min-suffix", "-1", "a")
	assert.ErrorIs(t, err, trienet.ErrIllegalArguments)
}
