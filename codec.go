package dafsa

import "fmt"

// Edge header layout: bit 7 selects the edge kind (0 = character, 1 =
// return), bit 6 flags a following sibling, bits 0..5 carry the payload.
// The payload is an alphabet index for character edges and the result tag
// for return edges.
const (
	headerKindBit    = 0x80
	headerSiblingBit = 0x40
	payloadMask      = 0x3F
)

type edgeKind uint8

const (
	edgeCharacter edgeKind = iota
	edgeReturn
)

// edge is one decoded header byte.
type edge struct {
	kind       edgeKind
	hasSibling bool
	payload    uint8
}

// decodeHeader interprets a single header byte. It is total: every one of
// the 256 byte values decodes to a valid edge. Invalidity can only arise
// from where the decoded fields point.
func decodeHeader(b byte) edge {
	kind := edgeCharacter
	if b&headerKindBit != 0 {
		kind = edgeReturn
	}
	return edge{
		kind:       kind,
		hasSibling: b&headerSiblingBit != 0,
		payload:    b & payloadMask,
	}
}

// Offset fields are 1, 2 or 3 bytes. The first byte's top two bits select
// the width: 00 = 1 byte, 01 = 2 bytes, 11 = 3 bytes; 10 is reserved. The
// first byte's low 6 bits are the most significant bits of the magnitude,
// each following byte contributes 8 bits, least significant byte last.
const (
	offsetWidthMask     = 0xC0
	offsetWidth1        = 0x00
	offsetWidth2        = 0x40
	offsetWidthReserved = 0x80
	offsetWidth3        = 0xC0
)

// MaxOffset is the largest encodable sibling byte distance (22 bits).
const MaxOffset = 1<<22 - 1

// decodeOffset reads the offset field starting at pos and returns its value
// together with the position immediately after the field. The value is a
// strictly forward byte distance from that position.
func decodeOffset(blob []byte, pos int) (uint32, int, error) {
	if pos < 0 || pos >= len(blob) {
		return 0, 0, fmt.Errorf("%w: offset field at %d past end of %d-byte blob", ErrCorrupt, pos, len(blob))
	}
	first := blob[pos]
	var width int
	switch first & offsetWidthMask {
	case offsetWidth1:
		width = 1
	case offsetWidth2:
		width = 2
	case offsetWidth3:
		width = 3
	default:
		return 0, 0, fmt.Errorf("%w: reserved offset width prefix at %d", ErrCorrupt, pos)
	}
	if pos+width > len(blob) {
		return 0, 0, fmt.Errorf("%w: %d-byte offset field at %d truncated", ErrCorrupt, width, pos)
	}
	v := uint32(first & payloadMask)
	for i := 1; i < width; i++ {
		v = v<<8 | uint32(blob[pos+i])
	}
	return v, pos + width, nil
}

// CharacterHeader returns the header byte of a character edge matching the
// alphabet symbol sym (a payload value in 0..63). Encoders use this and its
// companions so that encoder and decoder agree on the bit layout without
// extra metadata.
func CharacterHeader(sym uint8, hasSibling bool) byte {
	h := sym & payloadMask
	if hasSibling {
		h |= headerSiblingBit
	}
	return h
}

// ReturnHeader returns the header byte of a return edge carrying tag (0..63).
func ReturnHeader(tag uint8, hasSibling bool) byte {
	return CharacterHeader(tag, hasSibling) | headerKindBit
}

// AppendOffset appends the minimal-width encoding of the sibling byte
// distance v to dst. Distances above MaxOffset cannot be encoded.
func AppendOffset(dst []byte, v uint32) ([]byte, error) {
	switch {
	case v <= payloadMask:
		return append(dst, byte(v)), nil
	case v <= 1<<14-1:
		return append(dst, offsetWidth2|byte(v>>8), byte(v)), nil
	case v <= MaxOffset:
		return append(dst, offsetWidth3|byte(v>>16), byte(v>>8), byte(v)), nil
	}
	return dst, fmt.Errorf("sibling offset %d exceeds %d", v, MaxOffset)
}
