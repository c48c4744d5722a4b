package dafsa

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// NewFromZstd decompresses a zstd-compressed automaton blob and wraps the
// result in a Table. Generated tables are typically shipped compressed
// inside deployment artifacts; root addresses the decompressed buffer.
//
// Undecodable input is reported as ErrCompressed, distinct from ErrCorrupt:
// it means the container is broken, not the automaton encoding.
func NewFromZstd(data []byte, root int) (*Table, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressed, err)
	}
	defer dec.Close()
	blob, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressed, err)
	}
	tracer().Debugf("decompressed automaton: %d -> %d bytes", len(data), len(blob))
	return New(blob, root)
}
