// Package compress provides compression and decompression codecs for persisted
// helix sequence files.
//
// Sequence files are line-oriented ASCII over a 4-letter alphabet, which is
// highly redundant (2 bits of information per stored byte before any content
// redundancy), so general-purpose compression recovers most of the storage
// overhead of the text representation. Compression applies only to the
// persisted body: once loaded, sequences are always plain A/C/G/T strings and
// the codec itself never sees compressed data.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, for debugging and for
//     interoperating with tools that expect plain sequence text.
//   - Zstd (format.CompressionZstd): best ratio, the default for archival.
//     Uses the cgo gozstd binding when cgo is available, the pure-Go
//     klauspost implementation otherwise.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// Select a codec by type with GetCodec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	body, err := codec.Compress(sequenceText)
//
// All codecs are stateless values, safe for concurrent use, and treat an
// empty input as an empty output.
package compress
