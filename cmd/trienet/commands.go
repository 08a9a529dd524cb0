package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/corpus"
	"github.com/npillmayer/trienet/suffix"
	"github.com/npillmayer/trienet/trie"
	"github.com/npillmayer/trienet/ukkonen"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	indexKind string // trie, patricia, concurrent, suffix or ukkonen
	wordFile  string
	minSuffix int
	maxQuery  string // upper bound for range queries
	dotFile   string
	dump      bool
	limit     int
	workers   int
	verbose   bool

	rootCmd = &cobra.Command{
		Use:   "trienet",
		Short: "Prefix and substring search over word lists",
		Long: `trienet loads a word list, one key per line, into an in-memory index
and prints the keys matching a query.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			}
		},
	}

	queryCmd = &cobra.Command{
		Use:   "query QUERY...",
		Short: "Load a word list and print the keys matching every query",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQuery,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace loading progress")

	queryCmd.Flags().StringVarP(&indexKind, "index", "i", "ukkonen",
		"Index type: 'trie', 'patricia', 'concurrent', 'suffix' or 'ukkonen'")
	queryCmd.Flags().StringVarP(&wordFile, "file", "f", "", "Word list, one key per line")
	queryCmd.Flags().IntVar(&minSuffix, "min-suffix", 0, "Minimum query length of substring indices")
	queryCmd.Flags().StringVar(&maxQuery, "max", "",
		"Upper bound of a range query, same length as the query (ukkonen only)")
	queryCmd.Flags().StringVar(&dotFile, "dot", "", "Write the suffix tree in Graphviz DOT format to this file (ukkonen only)")
	queryCmd.Flags().BoolVar(&dump, "dump", false, "Print the structure of the compressed trie (patricia only)")
	queryCmd.Flags().IntVarP(&limit, "limit", "n", -1, "Maximum number of matches printed per query, -1 for all")
	queryCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of loader goroutines (concurrent only)")
	_ = queryCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	idx, err := newIndex(indexKind)
	if err != nil {
		return err
	}
	f, err := os.Open(wordFile)
	if err != nil {
		return err
	}
	defer f.Close()
	keys, err := load(cmd.Context(), f, idx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := newPrinter(out)
	for _, q := range args {
		if err := runSingleQuery(p, idx, keys, q); err != nil {
			return err
		}
	}
	if dump {
		pat, ok := idx.(*trie.Patricia[int])
		if !ok {
			return fmt.Errorf("%w: --dump needs index type patricia", trienet.ErrUnsupported)
		}
		fmt.Fprint(out, pat.Traversal())
	}
	if dotFile != "" {
		return writeDot(idx, dotFile)
	}
	return nil
}

func newIndex(kind string) (trienet.Index[int], error) {
	switch kind {
	case "trie":
		return trie.New[int](), nil
	case "patricia":
		return trie.NewPatricia[int](), nil
	case "concurrent":
		return trie.NewConcurrent[int](), nil
	case "suffix":
		ix, err := suffix.NewPatricia[int](suffix.Config{MinSuffixLength: minSuffix})
		if err != nil {
			return nil, err
		}
		return ix, nil
	case "ukkonen":
		tree, err := ukkonen.NewCharTree[int](ukkonen.Config{MinSuffixLength: minSuffix})
		if err != nil {
			return nil, err
		}
		return tree, nil
	}
	return nil, fmt.Errorf("%w: unknown index type %q", trienet.ErrIllegalArguments, kind)
}

func load(ctx context.Context, r io.Reader, idx trienet.Index[int]) ([]string, error) {
	loader := corpus.NewLoader(ctx, 0)
	defer loader.Close()
	if verbose {
		progress, err := loader.Subscribe(ctx)
		if err != nil {
			return nil, err
		}
		go func() {
			for p := range progress {
				T().Infof("loaded %d keys from %d lines", p.Keys, p.Lines)
			}
		}()
	}
	if _, ok := idx.(*trie.Concurrent[int]); ok {
		return loader.LoadParallel(ctx, r, idx, workers)
	}
	return loader.Load(r, idx)
}

func writeDot(idx trienet.Index[int], path string) error {
	tree, ok := idx.(*ukkonen.CharTree[int])
	if !ok {
		return fmt.Errorf("%w: --dot needs index type ukkonen", trienet.ErrUnsupported)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = tree.WriteDot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
