// Package codec encodes a byte buffer into a set of fixed-length sequences
// over the A/C/G/T alphabet, each carrying an embedded big-endian frame
// index, and decodes an unordered set of such sequences back into the
// original bytes.
//
// Encode and decode are pure transformations: the only state they share is
// the explicit State value returned by Encode and required by Decode. The
// positional order of the encoded sequence list does not survive transport;
// only the embedded address is authoritative at decode time.
//
// Decode is deliberately lossy at the edges: sequences whose address decodes
// outside the frame table are dropped as sequencing noise, duplicate
// addresses resolve last-write-wins in input order, and frames never written
// decode as all-zero bits. None of these raise errors; DecodeWithStats
// reports their counts for callers that want to judge a degraded decode.
package codec
