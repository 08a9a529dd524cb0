/*
Package corpus loads word lists into trienet indices.

A word list is a UTF-8 text with one key per line. Every non-empty line is
added to an index with its zero-based line number as value, so clients may
map query results back to the lines of the list. Loading progress is broadcast
to subscribers of a Loader.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package corpus

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
