package blob

import (
	"github.com/bocu1-go/bocu1/endian"
	"github.com/bocu1-go/bocu1/format"
	"github.com/bocu1-go/bocu1/internal/options"
)

// Option configures a TextBlobSet at construction time.
type Option = options.Option[*TextBlobSet]

// WithCompression selects the codec used to compress the set's serialized
// data section. The default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.NoError[*TextBlobSet](func(s *TextBlobSet) {
		s.compression = c
	})
}

// WithEndian selects the byte order used for the header and index. The
// default is little-endian.
func WithEndian(eng endian.EndianEngine) Option {
	return options.NoError[*TextBlobSet](func(s *TextBlobSet) {
		s.eng = eng
	})
}
