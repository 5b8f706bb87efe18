// Package sim emulates the synthesis/storage/sequencing channel around the
// codec and scores full encode -> channel -> decode runs.
//
// The channel reorders the sequence set unconditionally on transmit; a real
// sequencing run never preserves synthesis order, so even the error-free
// configuration exercises the decoder's reordering recovery. Noise is
// optional and seeded: the same configuration and seed always produce the
// same perturbation, making degraded runs reproducible.
package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/arloliu/helix/codec"
	"github.com/arloliu/helix/internal/hash"
	"github.com/arloliu/helix/nucleotide"
)

// ChannelConfig describes the perturbation a Channel applies to a sequence
// set. All rates are probabilities in [0, 1].
type ChannelConfig struct {
	// Seed initializes the channel's random source. Runs with equal seeds
	// and configs are identical.
	Seed int64

	// DropRate is the per-sequence probability of the sequence being lost.
	DropRate float64

	// DuplicateRate is the per-sequence probability of an extra copy being
	// read.
	DuplicateRate float64

	// SubstitutionRate is the per-symbol probability of the symbol being
	// replaced by a different alphabet symbol. Substitutions stay inside the
	// alphabet, so a corrupted sequence still decodes, just to wrong bits or
	// a wrong (possibly out-of-range, possibly colliding) address.
	SubstitutionRate float64
}

// ErrorFree returns a channel configuration that only reorders.
func ErrorFree(seed int64) ChannelConfig {
	return ChannelConfig{Seed: seed}
}

// Channel applies a seeded perturbation to sequence sets.
//
// A Channel is stateful (it owns its random source) and not safe for
// concurrent use.
type Channel struct {
	cfg ChannelConfig
	rng *rand.Rand
}

// NewChannel creates a channel with the given configuration.
func NewChannel(cfg ChannelConfig) *Channel {
	return &Channel{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Transmit passes sequences through the channel: per-sequence drop and
// duplication, per-symbol substitution, then a full shuffle. The input slice
// is not modified.
func (c *Channel) Transmit(sequences []string) []string {
	out := make([]string, 0, len(sequences))
	for _, seq := range sequences {
		if c.rng.Float64() < c.cfg.DropRate {
			continue
		}

		reads := 1
		if c.rng.Float64() < c.cfg.DuplicateRate {
			reads = 2
		}
		for ; reads > 0; reads-- {
			out = append(out, c.corrupt(seq))
		}
	}

	c.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

func (c *Channel) corrupt(seq string) string {
	if c.cfg.SubstitutionRate <= 0 {
		return seq
	}

	var sb []byte
	for i := 0; i < len(seq); i++ {
		if c.rng.Float64() >= c.cfg.SubstitutionRate {
			continue
		}
		if sb == nil {
			sb = []byte(seq)
		}
		// Pick one of the three other symbols.
		offset := 1 + c.rng.Intn(len(nucleotide.Alphabet)-1)
		cur := strings.IndexByte(nucleotide.Alphabet, sb[i])
		sb[i] = nucleotide.Alphabet[(cur+offset)%len(nucleotide.Alphabet)]
	}
	if sb == nil {
		return seq
	}

	return string(sb)
}

// Report scores one encode -> channel -> decode run.
type Report struct {
	InputBytes       int
	SequenceCount    int // sequences produced by encode
	TransmittedCount int // sequences that arrived at the decoder
	Stats            codec.DecodeStats
	ByteErrors       int  // bytes differing between input and recovery
	Lossless         bool // recovery digest matches the input digest
	EncodeDuration   time.Duration
	DecodeDuration   time.Duration
}

// String formats the report for log output.
func (r Report) String() string {
	status := "lossless"
	if !r.Lossless {
		status = fmt.Sprintf("%d byte errors", r.ByteErrors)
	}

	return fmt.Sprintf(
		"%d bytes -> %d sequences, %d transmitted, placed=%d dropped=%d collisions=%d, %s (encode %v, decode %v)",
		r.InputBytes, r.SequenceCount, r.TransmittedCount,
		r.Stats.Placed, r.Stats.Dropped, r.Stats.Collisions,
		status, r.EncodeDuration.Round(time.Microsecond), r.DecodeDuration.Round(time.Microsecond))
}

// RunConfig configures a full run.
type RunConfig struct {
	Channel        ChannelConfig
	EncoderOptions []codec.EncoderOption
	DecoderOptions []codec.DecoderOption
}

// Run drives encode -> channel -> decode over data and scores the recovery.
//
// Codec failures (configuration errors, unknown symbols) abort the run; a
// merely degraded recovery does not, it is reported via ByteErrors and
// Lossless.
func Run(data []byte, cfg RunConfig) (Report, error) {
	report := Report{InputBytes: len(data)}

	encoder, err := codec.NewEncoder(cfg.EncoderOptions...)
	if err != nil {
		return Report{}, err
	}
	decoder, err := codec.NewDecoder(cfg.DecoderOptions...)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	sequences, state, err := encoder.Encode(data)
	if err != nil {
		return Report{}, err
	}
	report.EncodeDuration = time.Since(start)
	report.SequenceCount = len(sequences)

	received := NewChannel(cfg.Channel).Transmit(sequences)
	report.TransmittedCount = len(received)

	start = time.Now()
	recovered, stats, err := decoder.DecodeWithStats(received, state)
	if err != nil {
		return Report{}, err
	}
	report.DecodeDuration = time.Since(start)
	report.Stats = stats

	report.ByteErrors = countByteErrors(data, recovered)
	report.Lossless = hash.Sum(recovered) == state.Checksum

	return report, nil
}

func countByteErrors(want, got []byte) int {
	errors := 0
	for i := range want {
		if i >= len(got) || want[i] != got[i] {
			errors++
		}
	}
	if len(got) > len(want) {
		errors += len(got) - len(want)
	}

	return errors
}
