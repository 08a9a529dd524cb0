package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/trienet"
	"github.com/npillmayer/trienet/ukkonen"
	"golang.org/x/term"
)

// printer outputs matches, highlighting the matched part of a key if
// output goes to a terminal.
type printer struct {
	w  io.Writer
	hl *color.Color
}

func newPrinter(w io.Writer) *printer {
	hl := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		hl.EnableColor()
	} else {
		hl.DisableColor()
	}
	return &printer{w: w, hl: hl}
}

// match prints a key, highlighting length characters starting at character
// position pos.
func (p *printer) match(line int, key string, pos, length int) {
	rs := []rune(key)
	pos = min(pos, len(rs))
	end := min(pos+length, len(rs))
	fmt.Fprintf(p.w, "%6d  %s%s%s\n", line+1, string(rs[:pos]), p.hl.Sprint(string(rs[pos:end])),
		string(rs[end:]))
}

func runSingleQuery(p *printer, idx trienet.Index[int], keys []string, q string) error {
	qlen := utf8.RuneCountInString(q)
	sx, ok := idx.(trienet.SubstringIndex[int])
	if !ok {
		if maxQuery != "" {
			return fmt.Errorf("%w: range queries need index type ukkonen", trienet.ErrUnsupported)
		}
		values := idx.Retrieve(q)
		slices.Sort(values)
		values = truncate(values)
		fmt.Fprintf(p.w, "%q: %d keys starting with query\n", q, len(values))
		for _, v := range values {
			p.match(v, keys[v], 0, qlen)
		}
		return nil
	}
	var wps []trienet.WordPosition[int]
	if maxQuery != "" {
		tree, ok := idx.(*ukkonen.CharTree[int])
		if !ok {
			return fmt.Errorf("%w: range queries need index type ukkonen", trienet.ErrUnsupported)
		}
		var err error
		if wps, err = tree.RetrieveSubstringsRange(q, maxQuery); err != nil {
			return err
		}
	} else {
		wps = sx.RetrieveSubstrings(q)
	}
	slices.SortFunc(wps, func(a, b trienet.WordPosition[int]) int {
		if a.Value != b.Value {
			return a.Value - b.Value
		}
		return a.CharPosition - b.CharPosition
	})
	wps = truncate(wps)
	fmt.Fprintf(p.w, "%q: %d occurrences\n", q, len(wps))
	for _, wp := range wps {
		p.match(wp.Value, keys[wp.Value], wp.CharPosition, qlen)
	}
	return nil
}

func truncate[S ~[]E, E any](s S) S {
	if limit >= 0 && limit < len(s) {
		return s[:limit]
	}
	return s
}
