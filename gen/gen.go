/*
Package gen generates encoded automaton blobs for package dafsa.

The generator side is deliberately separate from the decoder: production
embedders consume pre-built tables and never link this package. It exists
for build tooling and for tests that need real tables.

A Builder collects tagged words and emits a byte buffer in the decoder's
wire format. The emitted structure is a plain trie: the format inlines each
edge's child subtree, so shared prefixes collapse but distinct subtrees are
emitted verbatim. That is fine for the table sizes this is used at.
*/
package gen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/dafsa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dafsa.gen'
func tracer() tracing.Trace {
	return tracing.Select("dafsa.gen")
}

var (
	// ErrKeyAlphabet reports a word containing bytes outside the table alphabet.
	ErrKeyAlphabet = errors.New("gen: word contains bytes outside the table alphabet")

	// ErrTagRange reports a tag that does not fit the 6-bit payload.
	ErrTagRange = errors.New("gen: tag exceeds 6 bits")

	// ErrEmptyWord reports an attempt to add the empty word.
	ErrEmptyWord = errors.New("gen: empty word")

	// ErrEmptySet reports a Build call with no words added.
	ErrEmptySet = errors.New("gen: no words added")
)

// Builder collects tagged words and emits an encoded automaton.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	words *trie.Trie
	count int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{words: trie.New()}
}

// Add registers word with the result tag that a lookup should report for
// it. Adding a word twice overwrites its tag. Words must be non-empty and
// stay within the table alphabet; tags must fit 6 bits.
func (b *Builder) Add(word string, tag uint8) error {
	if word == "" {
		return ErrEmptyWord
	}
	if tag > 63 {
		return fmt.Errorf("%w: %q -> %d", ErrTagRange, word, tag)
	}
	for i := 0; i < len(word); i++ {
		if _, ok := dafsa.SymbolIndex(word[i]); !ok {
			return fmt.Errorf("%w: %q", ErrKeyAlphabet, word)
		}
	}
	if _, exists := b.words.Find(word); !exists {
		b.count++
	}
	b.words.Add(word, tag)
	return nil
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return b.count
}

// Build emits the encoded automaton and the root offset to pass to
// dafsa.New. The builder remains usable afterwards.
func (b *Builder) Build() ([]byte, int, error) {
	keys := b.words.Keys()
	if len(keys) == 0 {
		return nil, 0, ErrEmptySet
	}
	sort.Strings(keys)
	root := &buildNode{}
	for _, word := range keys {
		n, ok := b.words.Find(word)
		if !ok {
			return nil, 0, fmt.Errorf("gen: word %q lost from intermediate store", word)
		}
		tag, ok := n.Meta().(uint8)
		if !ok {
			return nil, 0, fmt.Errorf("gen: word %q has no tag", word)
		}
		root.insert(word, tag)
	}
	blob, err := root.emit(nil)
	if err != nil {
		return nil, 0, err
	}
	tracer().Infof("emitted automaton: %d words, %d bytes", b.count, len(blob))
	return blob, 0, nil
}

// buildNode is one node of the intermediate edge tree. Symbols stay sorted
// because Build inserts words in lexicographic order.
type buildNode struct {
	terminal bool
	tag      uint8
	syms     []uint8
	children []*buildNode
}

func (n *buildNode) insert(word string, tag uint8) {
	if word == "" {
		n.terminal = true
		n.tag = tag
		return
	}
	sym, _ := dafsa.SymbolIndex(word[0])
	for i, s := range n.syms {
		if s == sym {
			n.children[i].insert(word[1:], tag)
			return
		}
	}
	child := &buildNode{}
	n.syms = append(n.syms, sym)
	n.children = append(n.children, child)
	child.insert(word[1:], tag)
}

// emit appends the node's edge list to dst. A return edge comes first, then
// character edges in symbol order. Each non-last edge carries a sibling
// offset equal to the size of its inline child subtree, which places the
// next edge immediately after that subtree.
func (n *buildNode) emit(dst []byte) ([]byte, error) {
	type pending struct {
		isReturn bool
		payload  uint8
		subtree  []byte
	}
	edges := make([]pending, 0, len(n.syms)+1)
	if n.terminal {
		edges = append(edges, pending{isReturn: true, payload: n.tag})
	}
	for i, sym := range n.syms {
		subtree, err := n.children[i].emit(nil)
		if err != nil {
			return nil, err
		}
		edges = append(edges, pending{payload: sym, subtree: subtree})
	}
	for i, e := range edges {
		hasSibling := i < len(edges)-1
		if e.isReturn {
			dst = append(dst, dafsa.ReturnHeader(e.payload, hasSibling))
		} else {
			dst = append(dst, dafsa.CharacterHeader(e.payload, hasSibling))
		}
		if hasSibling {
			var err error
			dst, err = dafsa.AppendOffset(dst, uint32(len(e.subtree)))
			if err != nil {
				return nil, err
			}
		}
		dst = append(dst, e.subtree...)
	}
	return dst, nil
}
