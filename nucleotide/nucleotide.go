// Package nucleotide implements the quaternary wire alphabet of the codec:
// a fixed bijection between 2-bit values and the symbols A, C, G and T.
//
// The mapping is a pure substitution with no sequence-design constraints:
//
//	00 -> A    01 -> C    10 -> G    11 -> T
package nucleotide

import (
	"fmt"

	"github.com/arloliu/helix/errs"
)

// Alphabet lists the four wire symbols in ascending 2-bit value order.
const Alphabet = "ACGT"

const (
	SymbolA byte = 'A'
	SymbolC byte = 'C'
	SymbolG byte = 'G'
	SymbolT byte = 'T'
)

const invalid = 0xFF

// symbols maps a 2-bit value to its wire symbol.
var symbols = [4]byte{SymbolA, SymbolC, SymbolG, SymbolT}

// values maps a wire symbol back to its 2-bit value; every other byte is
// marked invalid.
var values = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for v, s := range []byte(Alphabet) {
		t[s] = byte(v)
	}

	return t
}()

// Map returns the symbol for a 2-bit value formed from two bits
// (hi is the first bit consumed, lo the second).
func Map(hi, lo byte) byte {
	return symbols[hi<<1|lo]
}

// Demap returns the 2-bit value of a wire symbol. Fails with
// errs.ErrUnknownSymbol for any byte outside the alphabet.
func Demap(symbol byte) (byte, error) {
	v := values[symbol]
	if v == invalid {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, symbol)
	}

	return v, nil
}

// AppendBits maps a bit stream of even length to wire symbols, consuming
// bits two at a time in order, and appends the symbols to dst.
//
// The caller guarantees the even length; frames and addresses are always an
// even number of bits since widths are counted in symbols.
func AppendBits(dst []byte, bits []byte) []byte {
	for i := 0; i < len(bits); i += 2 {
		dst = append(dst, Map(bits[i], bits[i+1]))
	}

	return dst
}

// AppendSymbols expands each symbol of seq to its 2-bit pair and appends the
// bits to dst. Fails with errs.ErrUnknownSymbol on the first character
// outside the alphabet, leaving dst unusable.
func AppendSymbols(dst []byte, seq string) ([]byte, error) {
	for i := 0; i < len(seq); i++ {
		v, err := Demap(seq[i])
		if err != nil {
			return nil, err
		}
		dst = append(dst, v>>1, v&1)
	}

	return dst, nil
}
