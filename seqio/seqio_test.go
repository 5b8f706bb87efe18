package seqio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/helix/codec"
	"github.com/arloliu/helix/errs"
	"github.com/arloliu/helix/format"
	"github.com/stretchr/testify/require"
)

func encodeFixture(t *testing.T, data []byte) ([]string, codec.State) {
	t.Helper()
	enc, err := codec.NewEncoder()
	require.NoError(t, err)

	sequences, state, err := enc.Encode(data)
	require.NoError(t, err)

	return sequences, state
}

func TestWriteRead_AllCompressions(t *testing.T) {
	sequences, state := encodeFixture(t, []byte("the quick brown fox jumps over the lazy dog"))

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, comp := range types {
		t.Run(comp.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sequences, state, comp))

			loaded, loadedState, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, sequences, loaded)
			require.Equal(t, state, loadedState)
		})
	}
}

func TestWriteRead_EmptySet(t *testing.T) {
	sequences, state := encodeFixture(t, nil)
	require.Empty(t, sequences)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sequences, state, format.CompressionNone))

	loaded, loadedState, err := Read(&buf)
	require.NoError(t, err)
	require.Empty(t, loaded)
	require.Equal(t, state, loadedState)
}

func TestRead_FullRoundTripThroughCodec(t *testing.T) {
	data := []byte("persisted and recovered through a sequence file")
	sequences, state := encodeFixture(t, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sequences, state, format.CompressionZstd))

	loaded, loadedState, err := Read(&buf)
	require.NoError(t, err)

	dec, err := codec.NewDecoder()
	require.NoError(t, err)
	restored, err := dec.Decode(loaded, loadedState)
	require.NoError(t, err)
	require.Equal(t, data, restored)
}

func TestRead_InvalidHeader(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"nothelix 1 none 12 128 0 1 0 0\n",
		"helix 2 none 12 128 0 1 0 0\n",
		"helix 1 brotli 12 128 0 1 0 0\n",
		"helix 1 none twelve 128 0 1 0 0\n",
		"helix 1 none 12 128 0 1 xx 0\n",
		"helix 1 none 12 128 0 1\n",
	}
	for _, header := range cases {
		_, _, err := Read(strings.NewReader(header))
		require.Error(t, err, "header %q", header)
		require.True(t, errors.Is(err, errs.ErrInvalidHeader), "header %q", header)
	}
}

func TestRead_ChecksumMismatch(t *testing.T) {
	sequences, state := encodeFixture(t, []byte("body to corrupt"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sequences, state, format.CompressionNone))

	corrupted := buf.Bytes()
	corrupted[len(corrupted)-2] ^= 0xFF

	_, _, err := Read(bytes.NewReader(corrupted))
	require.True(t, errors.Is(err, errs.ErrChecksumMismatch))
}

func TestWriteFile_ReadFile(t *testing.T) {
	sequences, state := encodeFixture(t, []byte{1, 2, 3, 4, 5})
	path := filepath.Join(t.TempDir(), "sequences.helix")

	require.NoError(t, WriteFile(path, sequences, state, format.CompressionS2))

	loaded, loadedState, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sequences, loaded)
	require.Equal(t, state, loadedState)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.helix"))
	require.Error(t, err)
}
