package compress

// ZstdCompressor provides Zstandard compression for sequence-file bodies.
//
// Zstd is the archival default: the 4-letter text representation of a
// sequence set compresses 4:1 or better even for incompressible source data,
// since every stored byte carries at most 2 bits of information.
//
// The implementation is selected at build time: the cgo gozstd binding when
// cgo is available, the pure-Go klauspost implementation otherwise. Both
// produce interoperable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
