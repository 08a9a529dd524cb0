/*
Command trienet loads a word list into one of the trienet indices and runs
queries against it.

	trienet query --index ukkonen --file words.txt ana
	trienet query --index ukkonen --file words.txt --max bz aa
	trienet query --index patricia --file words.txt --limit 10 pre

Prefix indices (trie, patricia, concurrent) report every key starting with a
query, substring indices (suffix, ukkonen) every key containing it. Matches
are highlighted if stdout is a terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
