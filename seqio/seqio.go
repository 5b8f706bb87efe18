// Package seqio persists sequence sets to line-oriented files and loads them
// back, together with the codec state a later decode requires.
//
// # File format
//
// A single ASCII header line followed by the body:
//
//	helix 1 <compression> <addr> <payload> <supplement> <frames> <checksum> <digest>\n
//	<body>
//
// The header carries the full codec state (widths in symbols, supplement bit
// count, frame count and the xxHash64 checksum of the original input), the
// body compression name, and the xxHash64 digest of the body bytes as
// written. The body is one sequence per line, optionally compressed with one
// of the compress package codecs.
//
// The digest covers the stored (possibly compressed) body, so corruption is
// detected before decompression.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/helix/codec"
	"github.com/arloliu/helix/compress"
	"github.com/arloliu/helix/errs"
	"github.com/arloliu/helix/format"
	"github.com/arloliu/helix/internal/hash"
	"github.com/arloliu/helix/internal/pool"
)

const (
	fileMagic     = "helix"
	formatVersion = 1
	headerFields  = 9
)

// Write persists sequences and their codec state to w, compressing the body
// with the given compression type.
func Write(w io.Writer, sequences []string, state codec.State, comp format.CompressionType) error {
	cc, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	size := 0
	for _, seq := range sequences {
		size += len(seq) + 1
	}
	buf.Grow(size)
	for _, seq := range sequences {
		buf.MustWrite([]byte(seq))
		_ = buf.WriteByte('\n')
	}

	body, err := cc.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to compress sequence body: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s %d %s %d %d %d %d %016x %016x\n",
		fileMagic, formatVersion, comp.Name(),
		state.AddressWidth, state.PayloadWidth, state.SupplementBits, state.FrameCount,
		state.Checksum, hash.Sum(body))
	if err != nil {
		return err
	}

	_, err = w.Write(body)

	return err
}

// Read loads a sequence set written by Write. It verifies the body digest
// before decompressing and returns the sequences in stored order along with
// the codec state from the header.
func Read(r io.Reader) ([]string, codec.State, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil {
		return nil, codec.State{}, fmt.Errorf("%w: %v", errs.ErrInvalidHeader, err)
	}

	comp, state, digest, err := parseHeader(strings.TrimSuffix(line, "\n"))
	if err != nil {
		return nil, codec.State{}, err
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, codec.State{}, err
	}
	if hash.Sum(body) != digest {
		return nil, codec.State{}, fmt.Errorf("%w: body digest %016x, header %016x",
			errs.ErrChecksumMismatch, hash.Sum(body), digest)
	}

	cc, err := compress.GetCodec(comp)
	if err != nil {
		return nil, codec.State{}, fmt.Errorf("%w: %v", errs.ErrInvalidHeader, err)
	}
	text, err := cc.Decompress(body)
	if err != nil {
		return nil, codec.State{}, fmt.Errorf("failed to decompress sequence body: %w", err)
	}

	var sequences []string
	if len(text) > 0 {
		sequences = strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
	}

	return sequences, state, nil
}

func parseHeader(line string) (format.CompressionType, codec.State, uint64, error) {
	fields := strings.Fields(line)
	if len(fields) != headerFields || fields[0] != fileMagic {
		return 0, codec.State{}, 0, fmt.Errorf("%w: %q", errs.ErrInvalidHeader, line)
	}

	version, err := strconv.Atoi(fields[1])
	if err != nil || version != formatVersion {
		return 0, codec.State{}, 0, fmt.Errorf("%w: unsupported version %q", errs.ErrInvalidHeader, fields[1])
	}

	comp, err := format.ParseCompressionType(fields[2])
	if err != nil {
		return 0, codec.State{}, 0, fmt.Errorf("%w: %v", errs.ErrInvalidHeader, err)
	}

	var ints [4]int
	for i, field := range fields[3:7] {
		ints[i], err = strconv.Atoi(field)
		if err != nil {
			return 0, codec.State{}, 0, fmt.Errorf("%w: field %q", errs.ErrInvalidHeader, field)
		}
	}

	checksum, err := strconv.ParseUint(fields[7], 16, 64)
	if err != nil {
		return 0, codec.State{}, 0, fmt.Errorf("%w: checksum %q", errs.ErrInvalidHeader, fields[7])
	}
	digest, err := strconv.ParseUint(fields[8], 16, 64)
	if err != nil {
		return 0, codec.State{}, 0, fmt.Errorf("%w: digest %q", errs.ErrInvalidHeader, fields[8])
	}

	state := codec.State{
		AddressWidth:   ints[0],
		PayloadWidth:   ints[1],
		SupplementBits: ints[2],
		FrameCount:     ints[3],
		Checksum:       checksum,
	}

	return comp, state, digest, nil
}

// WriteFile persists sequences to a file path, creating or truncating it.
func WriteFile(path string, sequences []string, state codec.State, comp format.CompressionType) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, sequences, state, comp); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadFile loads a sequence set from a file path.
func ReadFile(path string) ([]string, codec.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codec.State{}, err
	}
	defer f.Close()

	return Read(f)
}
