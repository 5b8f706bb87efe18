package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/helix/endian"
	"github.com/arloliu/helix/errs"
	"github.com/arloliu/helix/internal/bitstream"
	"github.com/arloliu/helix/internal/hash"
	"github.com/arloliu/helix/internal/options"
	"github.com/arloliu/helix/internal/pool"
	"github.com/arloliu/helix/nucleotide"
)

// Encoder converts byte buffers into sequence sets.
//
// An Encoder is stateless across calls and safe for concurrent use; every
// Encode call returns its own State.
type Encoder struct {
	cfg    *EncoderConfig
	engine endian.EndianEngine
}

// NewEncoder creates an encoder with the given options. Without options it
// uses the default widths (12 address symbols, 128 payload symbols).
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:    cfg,
		engine: endian.GetBigEndianEngine(),
	}, nil
}

// minAddressBits returns the minimum bit width that represents every frame
// index 0..frameCount-1: the byte-aligned big-endian form of the largest
// index with the always-zero leading bit positions trimmed.
func minAddressBits(frameCount int) int {
	if frameCount <= 1 {
		return 0
	}

	return bits.Len(uint(frameCount - 1))
}

// Encode converts data into one sequence per payload frame, in canonical
// index order, plus the State the matching Decode call requires.
//
// The returned list's positional order is not guaranteed to survive
// transport; only the address embedded in each sequence is authoritative at
// decode time.
//
// Fails with errs.ErrAddressOverflow when the configured address width
// cannot number every frame. This is a configuration error: no sequences are
// produced and retrying without a wider address (or larger payload) cannot
// succeed.
func (e *Encoder) Encode(data []byte) ([]string, State, error) {
	state := State{
		AddressWidth: e.cfg.addressWidth,
		PayloadWidth: e.cfg.payloadWidth,
		Checksum:     hash.Sum(data),
	}

	framer := bitstream.NewFramer(state.PayloadBits())
	frames, supplement := framer.Split(bitstream.FromBytes(data))
	state.SupplementBits = supplement
	state.FrameCount = len(frames)

	if needed := minAddressBits(state.FrameCount); needed > state.AddressBits() {
		return nil, State{}, fmt.Errorf("%w: %d frames need %d address bits, width %d carries %d",
			errs.ErrAddressOverflow, state.FrameCount, needed, state.AddressWidth, state.AddressBits())
	}

	addressBits := state.AddressBits()
	buf := pool.GetSequenceBuffer()
	defer pool.PutSequenceBuffer(buf)

	var scratch [8]byte
	sequences := make([]string, state.FrameCount)
	for i, frame := range frames {
		// Big-endian byte image of the index, unpacked to bits and left-trimmed
		// to the configured address width. The trim can only remove zero bits:
		// the overflow check above guarantees the index fits.
		e.engine.PutUint64(scratch[:], uint64(i))
		indexBits := bitstream.FromBytes(scratch[:])

		buf.B = nucleotide.AppendBits(buf.B[:0], indexBits[64-addressBits:])
		buf.B = nucleotide.AppendBits(buf.B, frame)
		sequences[i] = string(buf.B)
	}

	return sequences, state, nil
}
