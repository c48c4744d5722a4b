package dafsa

import "fmt"

// Validate walks every node reachable from the root and checks what Lookup
// assumes but never verifies: all offsets and child subtrees stay in
// bounds, no node carries two character edges with the same symbol, and no
// node carries more than one return edge. Structural decode failures are
// reported as ErrCorrupt, broken generator invariants as ErrInvariant.
//
// Validation is an optional, separate pass for tests and for debugging
// generator output; it is never part of a lookup.
func Validate(t *Table) error {
	blob := t.blob
	worklist := []int{t.root}
	visited := map[int]bool{t.root: true}
	nodes, edges := 0, 0
	for len(worklist) > 0 {
		nodeStart := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		nodes++

		var seenSyms uint64
		seenReturn := false
		pos := nodeStart
		for count := 0; ; count++ {
			if count >= maxNodeScan {
				return fmt.Errorf("%w: more than %d sibling edges in node at %d", ErrCorrupt, maxNodeScan, nodeStart)
			}
			if pos >= len(blob) {
				return fmt.Errorf("%w: edge header at %d past end of %d-byte blob", ErrCorrupt, pos, len(blob))
			}
			e := decodeHeader(blob[pos])
			edges++
			childPos := pos + 1
			siblingPos := -1
			if e.hasSibling {
				dist, afterField, err := decodeOffset(blob, pos+1)
				if err != nil {
					return err
				}
				childPos = afterField
				siblingPos = afterField + int(dist)
				if siblingPos >= len(blob) {
					return fmt.Errorf("%w: sibling jump to %d past end of %d-byte blob", ErrCorrupt, siblingPos, len(blob))
				}
				if siblingPos == nodeStart {
					return fmt.Errorf("%w: sibling jump back to node start %d", ErrCorrupt, nodeStart)
				}
			}
			switch e.kind {
			case edgeReturn:
				if seenReturn {
					return fmt.Errorf("%w: second return edge at %d in node at %d", ErrInvariant, pos, nodeStart)
				}
				seenReturn = true
			case edgeCharacter:
				bit := uint64(1) << e.payload
				if seenSyms&bit != 0 {
					return fmt.Errorf("%w: duplicate symbol %q at %d in node at %d",
						ErrInvariant, SymbolByte(e.payload), pos, nodeStart)
				}
				seenSyms |= bit
				if childPos >= len(blob) {
					return fmt.Errorf("%w: child subtree at %d past end of %d-byte blob", ErrCorrupt, childPos, len(blob))
				}
				if !visited[childPos] {
					visited[childPos] = true
					worklist = append(worklist, childPos)
				}
			}
			if siblingPos < 0 {
				break
			}
			pos = siblingPos
		}
	}
	tracer().Infof("validated automaton: %d bytes, %d nodes, %d edges", len(blob), nodes, edges)
	return nil
}
