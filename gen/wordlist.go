package gen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader streams tagged words from a word list.
//
// Each non-empty line is one word immediately followed by a single decimal
// digit, the word's tag (for example "example.com0"). Lines starting with
// '%' or '#' are comments. Word lists can only express tags 0..9; use
// Builder.Add directly for larger tags.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps a word list source.
func NewReader(src io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(src)}
}

// Next returns the next (word, tag) entry.
// It returns io.EOF when the list is exhausted.
func (r *Reader) Next() (string, uint8, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) < 2 {
			return "", 0, fmt.Errorf("gen: word list line %d too short: %q", r.line, line)
		}
		tag := line[len(line)-1]
		if tag < '0' || tag > '9' {
			return "", 0, fmt.Errorf("gen: word list line %d has no tag digit: %q", r.line, line)
		}
		return line[:len(line)-1], tag - '0', nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	return "", 0, io.EOF
}

// FromWordList reads a complete word list and emits the encoded automaton
// together with its root offset.
func FromWordList(src io.Reader) ([]byte, int, error) {
	b := NewBuilder()
	r := NewReader(src)
	for {
		word, tag, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if err := b.Add(word, tag); err != nil {
			return nil, 0, err
		}
	}
	return b.Build()
}
