package codec

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/helix/errs"
	"github.com/arloliu/helix/internal/bitstream"
	"github.com/arloliu/helix/internal/options"
	"github.com/arloliu/helix/nucleotide"
)

// Decoder converts an unordered sequence set back into the byte buffer the
// matching Encode call consumed.
//
// A Decoder is stateless across calls and safe for concurrent use.
type Decoder struct {
	cfg *DecoderConfig
}

// DecodeStats reports what happened to the input sequences of one decode.
// The codec never raises errors for lost, spurious or duplicate sequences;
// these counters let the caller decide whether a degraded decode is
// acceptable.
type DecodeStats struct {
	// Placed is the number of frame slots recovered from at least one input
	// sequence. The remaining FrameCount-Placed slots were lost and decode
	// as all-zero bits.
	Placed int

	// Dropped is the number of input sequences discarded because their
	// address decoded outside the frame table (spurious reads).
	Dropped int

	// Collisions is the number of placements that overwrote an earlier
	// placement at the same address (the later input position won).
	Collisions int
}

// NewDecoder creates a decoder with the given options. Without options it
// decodes sequentially.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg}, nil
}

// Decode reconstructs the original bytes from sequences in arbitrary order.
// See DecodeWithStats for the recovery bookkeeping.
func (d *Decoder) Decode(sequences []string, state State) ([]byte, error) {
	data, _, err := d.DecodeWithStats(sequences, state)
	return data, err
}

// DecodeWithStats reconstructs the original bytes and reports recovery
// statistics.
//
// Each input sequence is demapped and split independently: the first
// AddressWidth symbols decode to a big-endian frame index, the rest to the
// frame's payload bits. Out-of-range indices are dropped silently, duplicate
// indices resolve last-write-wins by input position, and unwritten slots
// decode as all-zero frames.
//
// Fails with errs.ErrUnknownSymbol on any character outside the alphabet,
// errs.ErrInvalidSequenceLength on sequences shorter than the state's
// sequence length, and errs.ErrInvalidState or
// errs.ErrBitStreamNotByteAligned on an inconsistent state. All failures
// abort the call with no partial output.
func (d *Decoder) DecodeWithStats(sequences []string, state State) ([]byte, DecodeStats, error) {
	if err := state.Validate(); err != nil {
		return nil, DecodeStats{}, err
	}

	table := make([][]byte, state.FrameCount)
	var stats DecodeStats

	var placements, dropped int
	var err error
	if d.cfg.parallelism > 1 && len(sequences) > 1 {
		placements, dropped, err = d.scatterParallel(sequences, state, table)
	} else {
		placements, dropped, err = d.scatter(sequences, state, table, 0)
	}
	if err != nil {
		return nil, DecodeStats{}, err
	}

	for _, frame := range table {
		if frame != nil {
			stats.Placed++
		}
	}
	stats.Dropped = dropped
	stats.Collisions = placements - stats.Placed

	framer := bitstream.NewFramer(state.PayloadBits())
	data, err := framer.Join(table, state.SupplementBits)
	if err != nil {
		return nil, DecodeStats{}, err
	}

	return data, stats, nil
}

// scatter demaps sequences[0:] and places their payloads into table,
// overwriting earlier placements at the same slot. It returns the number of
// in-range placements and the number of dropped sequences. base is the
// global input position of sequences[0], used only in error context.
func (d *Decoder) scatter(sequences []string, state State, table [][]byte, base int) (int, int, error) {
	seqLen := state.SequenceLength()
	addressBits := state.AddressBits()

	var placements, dropped int
	for i, seq := range sequences {
		if len(seq) < seqLen {
			return 0, 0, fmt.Errorf("%w: sequence %d has %d symbols, want %d",
				errs.ErrInvalidSequenceLength, base+i, len(seq), seqLen)
		}

		// Symbols past the sequence length are ignored; sequencing may append
		// adapter noise to reads.
		bits, err := nucleotide.AppendSymbols(nil, seq[:seqLen])
		if err != nil {
			return 0, 0, fmt.Errorf("sequence %d: %w", base+i, err)
		}

		var order uint64
		for _, bit := range bits[:addressBits] {
			order = order<<1 | uint64(bit)
		}
		if order >= uint64(state.FrameCount) {
			dropped++
			continue
		}

		table[order] = bits[addressBits:]
		placements++
	}

	return placements, dropped, nil
}

// scatterParallel partitions the input into contiguous ranges, scatters each
// range into a private table, and merges the tables in range order.
//
// Within a range the scatter is last-write-wins, and the merge overwrites in
// ascending range order, so the surviving payload for every slot is the one
// with the highest global input position: byte-identical to the sequential
// result.
func (d *Decoder) scatterParallel(sequences []string, state State, table [][]byte) (int, int, error) {
	workers := d.cfg.parallelism
	if workers > len(sequences) {
		workers = len(sequences)
	}

	type partition struct {
		table      [][]byte
		placements int
		dropped    int
	}

	parts := make([]partition, workers)
	chunk := (len(sequences) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := min(w*chunk, len(sequences))
		end := min(start+chunk, len(sequences))
		if start == end {
			continue
		}
		part := &parts[w]
		g.Go(func() error {
			part.table = make([][]byte, state.FrameCount)
			var err error
			part.placements, part.dropped, err = d.scatter(sequences[start:end], state, part.table, start)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var placements, dropped int
	for _, part := range parts {
		for order, frame := range part.table {
			if frame != nil {
				table[order] = frame
			}
		}
		placements += part.placements
		dropped += part.dropped
	}

	return placements, dropped, nil
}
