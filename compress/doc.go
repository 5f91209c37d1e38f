// Package compress provides compression and decompression codecs for the
// serialized byte payload of a blob.TextBlobSet.
//
// The BOCU-1 byte stream itself is never compressed by this package — that
// would change its wire format and violate the codec's own lexicographic
// ordering and byte-exactness guarantees. What this package compresses is
// the container that bundles many independently-encoded BOCU-1 strings
// together (see package blob), the same way the teacher module layers
// general-purpose compression beneath its own domain-specific encodings.
//
// # Architecture
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
// # Supported algorithms
//
//   - None (format.CompressionNone): passes data through unchanged.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Choosing an algorithm
//
// Text blob sets holding natural-language strings compress well under any
// of the three real algorithms; prefer Zstd for archival/cold-storage blob
// sets and LZ4/S2 when a blob set is decoded on a hot read path.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
