// Package bitstream converts between byte buffers and bit streams, and
// handles the padding and chunking of bit streams into fixed-size payload
// frames.
//
// A bit stream is represented as a []byte holding one bit per element
// (values 0 or 1). Bit order within a source byte is most-significant-first:
// byte 0x80 unpacks to bit pattern 1,0,0,0,0,0,0,0.
package bitstream

import (
	"fmt"

	"github.com/arloliu/helix/errs"
)

// FromBytes unpacks a byte buffer into a bit stream, most significant bit
// first. The returned stream has length len(data)*8.
func FromBytes(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		bits = append(bits,
			(b>>7)&1, (b>>6)&1, (b>>5)&1, (b>>4)&1,
			(b>>3)&1, (b>>2)&1, (b>>1)&1, b&1,
		)
	}

	return bits
}

// ToBytes packs a bit stream back into a byte buffer, most significant bit
// first. It fails with errs.ErrBitStreamNotByteAligned when the stream length
// is not a multiple of 8.
func ToBytes(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", errs.ErrBitStreamNotByteAligned, len(bits))
	}

	data := make([]byte, len(bits)/8)
	for i := range data {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = b<<1 | bit
		}
		data[i] = b
	}

	return data, nil
}

// Framer splits a bit stream into fixed-size payload frames on encode and
// reassembles frames into the original bit stream on decode.
type Framer struct {
	frameBits int
}

// NewFramer creates a framer producing frames of frameBits bits each.
// frameBits must be positive.
func NewFramer(frameBits int) Framer {
	if frameBits <= 0 {
		panic(fmt.Sprintf("bitstream: invalid frame size %d", frameBits))
	}

	return Framer{frameBits: frameBits}
}

// FrameBits returns the frame size in bits.
func (f Framer) FrameBits() int {
	return f.frameBits
}

// Split pads bits with zero supplement bits until the length is a multiple of
// the frame size, then chunks the padded stream into contiguous frames in
// order. It returns the frames and the number of supplement bits appended.
//
// The supplement count is always in [0, frameBits); it is zero iff the input
// length is already a multiple of the frame size. The returned frames alias
// the (possibly reallocated) padded stream.
func (f Framer) Split(bits []byte) ([][]byte, int) {
	supplement := 0
	if rem := len(bits) % f.frameBits; rem != 0 {
		supplement = f.frameBits - rem
		bits = append(bits, make([]byte, supplement)...)
	}

	frames := make([][]byte, len(bits)/f.frameBits)
	for i := range frames {
		frames[i] = bits[i*f.frameBits : (i+1)*f.frameBits]
	}

	return frames, supplement
}

// Join concatenates frames in slice order, drops the trailing supplement
// bits, and packs the result into bytes. A nil frame stands for a frame whose
// bits were never recovered and contributes all-zero bits.
//
// Fails with errs.ErrBitStreamNotByteAligned when the remaining bit count is
// not a multiple of 8; under a consistent supplement count this cannot
// happen.
func (f Framer) Join(frames [][]byte, supplement int) ([]byte, error) {
	if supplement < 0 || supplement >= f.frameBits {
		return nil, fmt.Errorf("supplement bit count %d out of range [0, %d)", supplement, f.frameBits)
	}
	if len(frames) == 0 && supplement > 0 {
		return nil, fmt.Errorf("supplement bit count %d with no frames", supplement)
	}

	bits := make([]byte, len(frames)*f.frameBits)
	for i, frame := range frames {
		if frame == nil {
			continue // lost frame, stays all-zero
		}
		copy(bits[i*f.frameBits:], frame)
	}

	return ToBytes(bits[:len(bits)-supplement])
}
