// Package helix encodes arbitrary binary data into fixed-length DNA-style
// sequences over the A/C/G/T alphabet and decodes an unordered, reshuffled
// set of such sequences back into the original bytes.
//
// Each sequence embeds its own big-endian frame address, so the decoder
// recovers the original layout regardless of the order sequences arrive in,
// tolerating lost, duplicated and spurious reads. The mapping is a pure
// 2-bit-per-symbol substitution: no biological sequence-design constraints,
// no error-correction coding, no compression of the payload.
//
// # Basic Usage
//
// Encoding a byte buffer:
//
//	sequences, state, err := helix.Encode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned codec.State is the contract with the matching decode: persist
// or transmit it alongside the sequences. The list order of sequences is
// irrelevant after this point; only the embedded addresses matter.
//
// Decoding, from any permutation of the set:
//
//	restored, err := helix.Decode(sequences, state)
//
// # Package Structure
//
// This package provides convenient top-level wrappers with default widths
// (12 address symbols, 128 payload symbols). For custom widths, parallel
// decoding and recovery statistics, use the codec package directly. The
// seqio package persists sequence sets to files, and the sim package
// emulates a noisy sequencing channel for end-to-end evaluation.
package helix

import (
	"github.com/arloliu/helix/codec"
	"github.com/arloliu/helix/internal/hash"
)

// Encode converts data into one sequence per payload frame using the default
// widths, returning the sequences in canonical index order plus the codec
// state the matching Decode call requires.
func Encode(data []byte) ([]string, codec.State, error) {
	encoder, err := codec.NewEncoder()
	if err != nil {
		return nil, codec.State{}, err
	}

	return encoder.Encode(data)
}

// Decode reconstructs the original bytes from sequences in arbitrary order.
//
// Sequences with out-of-range addresses are silently ignored and unrecovered
// frames decode as all-zero bits; use codec.Decoder.DecodeWithStats to
// observe losses.
func Decode(sequences []string, state codec.State) ([]byte, error) {
	decoder, err := codec.NewDecoder()
	if err != nil {
		return nil, err
	}

	return decoder.Decode(sequences, state)
}

// Digest computes the xxHash64 content digest helix uses for integrity
// checks. It matches codec.State.Checksum for the encoded input, so callers
// can verify a recovery without keeping the original bytes around.
func Digest(data []byte) uint64 {
	return hash.Sum(data)
}
