package codec

import (
	"fmt"
	"runtime"

	"github.com/arloliu/helix/internal/options"
)

// EncoderConfig holds the configurable widths of an Encoder.
type EncoderConfig struct {
	addressWidth int
	payloadWidth int
}

// NewEncoderConfig creates an encoder configuration with the default widths.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		addressWidth: DefaultAddressWidth,
		payloadWidth: DefaultPayloadWidth,
	}
}

func (c *EncoderConfig) setAddressWidth(symbols int) error {
	if symbols <= 0 || symbols > 32 {
		return fmt.Errorf("invalid address width: %d symbols (want 1..32)", symbols)
	}
	c.addressWidth = symbols

	return nil
}

func (c *EncoderConfig) setPayloadWidth(symbols int) error {
	if symbols <= 0 {
		return fmt.Errorf("invalid payload width: %d symbols", symbols)
	}
	c.payloadWidth = symbols

	return nil
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithAddressWidth sets the address width in symbols (2 bits each).
//
// The width is fixed, not derived from the input: it must be large enough
// for the frame count the input produces, or Encode fails with
// errs.ErrAddressOverflow. Capped at 32 symbols (64 address bits).
func WithAddressWidth(symbols int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setAddressWidth(symbols)
	})
}

// WithPayloadWidth sets the payload width in symbols (2 bits each).
func WithPayloadWidth(symbols int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setPayloadWidth(symbols)
	})
}

// DecoderConfig holds the configurable behavior of a Decoder.
type DecoderConfig struct {
	parallelism int
}

// NewDecoderConfig creates a decoder configuration with sequential decoding.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{parallelism: 1}
}

func (c *DecoderConfig) setParallelism(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid parallelism: %d", n)
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	c.parallelism = n

	return nil
}

// DecoderOption represents a functional option for configuring the DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithParallelism sets the number of goroutines used to demap and scatter
// input sequences. 0 means GOMAXPROCS, 1 (the default) decodes sequentially.
//
// The result is identical for any parallelism: collisions between duplicate
// addresses are always resolved by input-list position, last write wins.
func WithParallelism(n int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		return c.setParallelism(n)
	})
}
