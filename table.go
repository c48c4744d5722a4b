package dafsa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot reports a construction-time root offset outside the blob.
	ErrInvalidRoot = errors.New("dafsa: root offset out of bounds")

	// ErrCorrupt reports an encoded automaton that violates the format
	// contract: a decode step would read out of bounds, hit the reserved
	// offset width prefix, or exceed the per-node scan cap.
	ErrCorrupt = errors.New("dafsa: corrupt automaton data")

	// ErrInvariant reports a structurally decodable automaton that breaks a
	// generator invariant (duplicate symbols or multiple return edges within
	// one node). Only Validate detects this; Lookup assumes the invariants.
	ErrInvariant = errors.New("dafsa: automaton violates generator invariants")

	// ErrCompressed reports undecodable compressed table input.
	ErrCompressed = errors.New("dafsa: compressed table unreadable")
)

// Table is a read-only view over one encoded automaton.
//
// A Table never copies or mutates the blob; the caller must not modify it
// for the table's lifetime. All methods are safe for concurrent use.
type Table struct {
	blob []byte
	root int
}

// New wraps an encoded automaton blob. root is the byte offset of the first
// edge of the root node and is supplied out-of-band by whoever generated the
// blob. Beyond the root bound no validation happens here; structural errors
// surface lazily during lookups (or eagerly via Validate).
func New(blob []byte, root int) (*Table, error) {
	if root < 0 || root >= len(blob) {
		return nil, fmt.Errorf("%w: root=%d, blob=%d bytes", ErrInvalidRoot, root, len(blob))
	}
	return &Table{blob: blob, root: root}, nil
}

// Result is the outcome of one lookup. Found and Err are mutually
// exclusive; Tag is meaningful only when Found is true. A nil Err with
// Found false is the normal "key absent" outcome.
type Result struct {
	Tag   uint8
	Found bool
	Err   error
}

// lookupScratch is the stack buffer for key symbol encoding; keys longer
// than this spill to the heap.
const lookupScratch = 32

// Lookup reports whether key is present and, if so, the tag stored with it.
// Keys containing bytes outside the table alphabet can never be present and
// are rejected without reading the encoded data.
func (t *Table) Lookup(key []byte) Result {
	var scratch [lookupScratch]uint8
	syms, ok := appendSymbols(scratch[:0], key)
	if !ok {
		return Result{}
	}
	return t.scan(syms)
}

// LookupString is Lookup for string keys.
func (t *Table) LookupString(key string) Result {
	var scratch [lookupScratch]uint8
	syms, ok := appendSymbols(scratch[:0], key)
	if !ok {
		return Result{}
	}
	return t.scan(syms)
}

// Len returns the size of the encoded automaton in bytes.
func (t *Table) Len() int {
	return len(t.blob)
}
