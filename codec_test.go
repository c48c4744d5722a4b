package dafsa

import (
	"errors"
	"testing"
)

func TestDecodeHeaderIsTotal(t *testing.T) {
	for b := 0; b < 256; b++ {
		e := decodeHeader(byte(b))
		if e.payload > 63 {
			t.Fatalf("header %#02x decodes payload %d out of range", b, e.payload)
		}
	}
	cases := []struct {
		b    byte
		want edge
	}{
		{0x00, edge{edgeCharacter, false, 0}},
		{0x3F, edge{edgeCharacter, false, 63}},
		{0x45, edge{edgeCharacter, true, 5}},
		{0x85, edge{edgeReturn, false, 5}},
		{0xC0, edge{edgeReturn, true, 0}},
		{0xFF, edge{edgeReturn, true, 63}},
	}
	for _, c := range cases {
		if got := decodeHeader(c.b); got != c.want {
			t.Fatalf("header %#02x: got %+v, want %+v", c.b, got, c.want)
		}
	}
}

func TestDecodeOffsetWidths(t *testing.T) {
	cases := []struct {
		blob []byte
		val  uint32
		next int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x3F}, 63, 1},
		{[]byte{0x40, 0x40}, 64, 2},
		{[]byte{0x41, 0x00}, 256, 2},
		{[]byte{0x7F, 0xFF}, 16383, 2},
		{[]byte{0xC0, 0x40, 0x00}, 16384, 3},
		{[]byte{0xC1, 0x00, 0x00}, 1 << 16, 3},
		{[]byte{0xFF, 0xFF, 0xFF}, MaxOffset, 3},
	}
	for _, c := range cases {
		val, next, err := decodeOffset(c.blob, 0)
		if err != nil {
			t.Fatalf("offset % x: unexpected error %v", c.blob, err)
		}
		if val != c.val || next != c.next {
			t.Fatalf("offset % x: got (%d,%d), want (%d,%d)", c.blob, val, next, c.val, c.next)
		}
	}
}

func TestDecodeOffsetReservedPrefix(t *testing.T) {
	_, _, err := decodeOffset([]byte{0x80}, 0)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("reserved prefix should be ErrCorrupt, got %v", err)
	}
	_, _, err = decodeOffset([]byte{0xBF, 0x00, 0x00}, 0)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("reserved prefix should be ErrCorrupt, got %v", err)
	}
}

func TestDecodeOffsetTruncated(t *testing.T) {
	for _, blob := range [][]byte{nil, {0x41}, {0xC1}, {0xC1, 0x00}} {
		if _, _, err := decodeOffset(blob, 0); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("truncated field % x should be ErrCorrupt, got %v", blob, err)
		}
	}
	if _, _, err := decodeOffset([]byte{0x00}, 1); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("field past end should be ErrCorrupt")
	}
}

func TestAppendOffsetRoundTrip(t *testing.T) {
	widths := []struct {
		val   uint32
		bytes int
	}{
		{0, 1}, {63, 1},
		{64, 2}, {16383, 2},
		{16384, 3}, {MaxOffset, 3},
	}
	for _, c := range widths {
		enc, err := AppendOffset(nil, c.val)
		if err != nil {
			t.Fatalf("encode %d: %v", c.val, err)
		}
		if len(enc) != c.bytes {
			t.Fatalf("encode %d: got %d bytes, want %d", c.val, len(enc), c.bytes)
		}
		val, next, err := decodeOffset(enc, 0)
		if err != nil {
			t.Fatalf("decode %d: %v", c.val, err)
		}
		if val != c.val || next != len(enc) {
			t.Fatalf("round trip %d: got %d (next %d)", c.val, val, next)
		}
	}
	if _, err := AppendOffset(nil, MaxOffset+1); err == nil {
		t.Fatalf("offset above MaxOffset must not encode")
	}
}
