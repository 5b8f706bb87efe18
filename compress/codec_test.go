package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arloliu/helix/format"
	"github.com/stretchr/testify/require"
)

// sequenceBody builds a body resembling a persisted sequence file: many
// fixed-length lines over the 4-letter alphabet.
func sequenceBody(lines, width int) []byte {
	var sb strings.Builder
	alphabet := []byte{'A', 'C', 'G', 'T'}
	for i := 0; i < lines; i++ {
		for j := 0; j < width; j++ {
			sb.WriteByte(alphabet[(i*7+j*13)%4])
		}
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

func TestGetCodec_AllTypes(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	body := sequenceBody(200, 140)

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(body)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(body, restored))
		})
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionS2, "sequence body")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0), "sequence body")
	require.Error(t, err)
	require.Contains(t, err.Error(), "sequence body")
}

func TestCompress_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	body := sequenceBody(2, 8)

	compressed, err := codec.Compress(body)
	require.NoError(t, err)
	require.Equal(t, body, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, body, restored)
}

func TestCompress_SequenceTextRatio(t *testing.T) {
	// Sequence text carries at most 2 bits per byte, so any real codec
	// should shrink a non-trivial body.
	body := sequenceBody(1000, 140)

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(body)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(body))
	}
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	zstdCodec := NewZstdCompressor()
	_, err := zstdCodec.Decompress(garbage)
	require.Error(t, err)

	s2Codec := NewS2Compressor()
	_, err = s2Codec.Decompress(garbage)
	require.Error(t, err)
}
