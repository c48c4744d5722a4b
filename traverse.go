package dafsa

import "fmt"

// maxNodeScan caps sibling-chain steps within a single node. A well-formed
// node has at most one edge per alphabet symbol plus one return edge;
// a longer chain can only come from malformed input, so the cap turns a
// would-be endless scan into a corruption report.
const maxNodeScan = 256

// scan walks the automaton from the root over the encoded key symbols.
//
// The walk is a flat loop over (pos, keyIndex): a matching character edge
// descends into its inline child subtree and consumes one symbol, a
// matching return edge terminates with its tag, and a mismatch follows the
// sibling offset or terminates as absent. Every header read and sibling
// jump is bounds-checked first.
func (t *Table) scan(syms []uint8) Result {
	blob := t.blob
	pos := t.root
	nodeStart := pos // first edge of the node currently being scanned
	keyIndex := 0
	steps := 0
	for {
		if pos >= len(blob) {
			return corrupt("edge header at %d past end of %d-byte blob", pos, len(blob))
		}
		e := decodeHeader(blob[pos])
		childPos := pos + 1
		siblingPos := -1
		if e.hasSibling {
			dist, afterField, err := decodeOffset(blob, pos+1)
			if err != nil {
				return Result{Err: err}
			}
			childPos = afterField
			siblingPos = afterField + int(dist)
		}
		var match bool
		if e.kind == edgeReturn {
			match = keyIndex == len(syms)
		} else {
			match = keyIndex < len(syms) && e.payload == syms[keyIndex]
		}
		if match {
			if e.kind == edgeReturn {
				return Result{Tag: e.payload, Found: true}
			}
			pos = childPos
			nodeStart = childPos
			keyIndex++
			steps = 0
			continue
		}
		if siblingPos < 0 {
			return Result{}
		}
		if siblingPos >= len(blob) {
			return corrupt("sibling jump to %d past end of %d-byte blob", siblingPos, len(blob))
		}
		if siblingPos == nodeStart {
			return corrupt("sibling jump back to node start %d", nodeStart)
		}
		steps++
		if steps >= maxNodeScan {
			return corrupt("more than %d sibling edges in node at %d", maxNodeScan, nodeStart)
		}
		pos = siblingPos
	}
}

func corrupt(format string, args ...any) Result {
	return Result{Err: fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))}
}
