package compress

// ZstdCompressor provides Zstandard compression for a blob.TextBlobSet data
// section, favoring compression ratio over raw speed. Compress/Decompress are
// implemented in zstd_pure.go (pure Go, default) or zstd_cgo.go (cgo,
// opt-in via the nobuild tag).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
