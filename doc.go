/*
Package trienet offers in-memory string indices for prefix, exact and substring lookup.

Trienet

A trienet index maps string keys to values. Queries come in two flavours:
prefix queries ("autocomplete") return the values of every key starting with the
query, substring queries return the values of every key containing the query,
together with the character position of the match.

The module contains several index structures, all of them sharing the
Add/Retrieve contract defined in this package:

	trie.Trie          plain trie, one character per edge; supports Remove/Update
	trie.Patricia      compressed trie with multi-character edges
	trie.Concurrent    lock-free trie, safe for concurrent writers
	suffix.Indexer     substring search by inserting every suffix into a trie
	ukkonen.Tree       generalized suffix tree, built online (Ukkonen's method)

Keys are sequences of characters, i.e. Unicode code points. Positions reported by
substring queries are character offsets, not byte offsets.
Trienet does not normalize or tokenize text: clients are expected to hand in
segmented keys.

_________________________________________________________________________

From E. Ukkonen, On-line construction of suffix trees, Algorithmica 14 (1995):

An on-line algorithm is presented for constructing the suffix tree for a given
string in time linear in the length of the string. The new algorithm has the
desirable property of processing the string symbol by symbol from left to right.
It has always the suffix tree for the scanned part of the string ready. […]

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package trienet

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TrieError is an error type for the trienet module
type TrieError string

func (e TrieError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g., a nil key or a negative partition length.
const ErrIllegalArguments = TrieError("illegal arguments")

// ErrInvalidState is flagged if an operation would violate an ordering
// requirement of an index, e.g. decreasing insertion indices.
const ErrInvalidState = TrieError("invalid state")

// ErrUnsupported is flagged by operations an index does not implement, e.g.
// removal of keys from an append-only index.
const ErrUnsupported = TrieError("operation not supported")
