// Package errs defines the sentinel errors shared across helix packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to attach context while
// keeping errors.Is comparisons stable for callers.
package errs

import "errors"

var (
	// ErrAddressOverflow indicates the configured address width cannot
	// represent every frame index of the input. This is a configuration
	// error raised before any sequence is produced.
	ErrAddressOverflow = errors.New("address length is too short to represent all addresses")

	// ErrUnknownSymbol indicates a decode input contains a character outside
	// the A/C/G/T alphabet.
	ErrUnknownSymbol = errors.New("unknown nucleotide symbol")

	// ErrBitStreamNotByteAligned indicates the reconstructed bit stream is
	// not a multiple of 8 bits after supplement removal. It signals an
	// inconsistent codec state, not a recoverable input condition.
	ErrBitStreamNotByteAligned = errors.New("bit stream is not byte aligned")

	// ErrInvalidSequenceLength indicates a decode input sequence does not
	// match the address+payload symbol count of the codec state.
	ErrInvalidSequenceLength = errors.New("invalid sequence length")

	// ErrInvalidState indicates a codec state with out-of-range fields,
	// e.g. a supplement bit count not below the frame bit size.
	ErrInvalidState = errors.New("invalid codec state")

	// ErrInvalidHeader indicates a sequence file header that cannot be
	// parsed or advertises an unsupported version.
	ErrInvalidHeader = errors.New("invalid sequence file header")

	// ErrChecksumMismatch indicates a sequence file body whose xxHash64
	// digest does not match the digest recorded in its header.
	ErrChecksumMismatch = errors.New("sequence file checksum mismatch")
)
