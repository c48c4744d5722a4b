package dafsa

// alphabet is the canonical 64-entry payload-to-byte table. Payloads 0..25
// map to 'a'..'z', 26..35 to '0'..'9', 36..63 to punctuation common in
// hostnames, identifiers and URLs. Decoder and generator share this table;
// an external generator emitting for this decoder must use it bit-exactly.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789-._~:/?#[]@!$&'()*+,;=%^{}|\""

// noSymbol marks bytes outside the alphabet in the reverse table.
const noSymbol = 0xFF

// symbolIndex is the reverse mapping raw byte -> payload value.
var symbolIndex = func() (t [256]uint8) {
	for i := range t {
		t[i] = noSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = uint8(i)
	}
	return t
}()

// SymbolIndex returns the payload value encoding the raw key byte b.
// ok is false if b is not part of the key alphabet; such bytes cannot occur
// in any stored key.
func SymbolIndex(b byte) (sym uint8, ok bool) {
	s := symbolIndex[b]
	return s, s != noSymbol
}

// SymbolByte returns the raw byte a character edge with payload sym matches.
func SymbolByte(sym uint8) byte {
	return alphabet[sym&payloadMask]
}

// appendSymbols translates key bytes into payload symbols, appending to dst.
// It reports false as soon as it hits a byte outside the alphabet.
func appendSymbols[K ~string | ~[]byte](dst []uint8, key K) ([]uint8, bool) {
	for i := 0; i < len(key); i++ {
		s := symbolIndex[key[i]]
		if s == noSymbol {
			return dst, false
		}
		dst = append(dst, s)
	}
	return dst, true
}
