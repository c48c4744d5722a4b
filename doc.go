/*
Package dafsa implements read-only lookup over a statically compiled,
compressed string set (a deterministic acyclic finite state automaton).

An automaton is a flat byte buffer produced by an offline generator (see
subpackage gen for a reference implementation). The buffer is a sequence of
nodes, each node a chain of sibling edges tried in stream order. An edge is
one header byte (bit 7 selects character vs return, bit 6 flags a following
sibling, bits 0..5 carry a payload), optionally followed by a variable-width
byte distance to the next sibling, and then by the edge's inline child
subtree. Character edges consume one key symbol; return edges assert end of
key and carry the result tag.

The decoder never materializes nodes: a lookup is an iterative walk over
(byte offset, key index), bounded by key length and a per-node scan cap.
Buffers are wrapped once in a Table and queried many times; a Table is
immutable and safe for concurrent use. Malformed buffers are reported as a
distinct corruption error, never as a crash or an out-of-bounds read.

Keys are byte strings over a fixed 64-symbol alphabet (lowercase letters,
digits, and punctuation common in hostnames and identifiers). The alphabet
table is part of this package's contract: an independent encoder that uses
the same table needs no further metadata to interoperate.
*/
package dafsa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dafsa'
func tracer() tracing.Trace {
	return tracing.Select("dafsa")
}
