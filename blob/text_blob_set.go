package blob

import (
	"errors"
	"iter"
	"time"

	"github.com/bocu1-go/bocu1/compress"
	"github.com/bocu1-go/bocu1/endian"
	"github.com/bocu1-go/bocu1/errs"
	"github.com/bocu1-go/bocu1/format"
	"github.com/bocu1-go/bocu1/internal/collision"
	"github.com/bocu1-go/bocu1/internal/hash"
	"github.com/bocu1-go/bocu1/internal/options"
	"github.com/bocu1-go/bocu1/internal/pool"
	"github.com/bocu1-go/bocu1/stream"
)

// TextBlobSet collects distinct strings, BOCU-1 encodes each one exactly
// once, and serializes the result as a single self-describing byte blob.
//
// A TextBlobSet is not safe for concurrent use.
type TextBlobSet struct {
	eng         endian.EndianEngine
	compression format.CompressionType
	tracker     *collision.Tracker
	encoded     [][]byte // encoded[i] is the BOCU-1 encoding of tracker.Contents()[i]
}

// NewTextBlobSet creates an empty TextBlobSet. By default it uses
// little-endian header/index encoding and no data-section compression.
func NewTextBlobSet(opts ...Option) (*TextBlobSet, error) {
	s := &TextBlobSet{
		eng:         endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		tracker:     collision.NewTracker(),
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add encodes content and adds it to the set, deduplicating against any
// identical content already added. It returns the content's index within
// the set (stable for the life of this TextBlobSet) and whether this call
// actually added new content (false if content was already present).
//
// Add returns errs.ErrEmptyContent for an empty string.
func (s *TextBlobSet) Add(content string) (int, bool, error) {
	digest := hash.Sum64(content)

	if err := s.tracker.Track(content, digest); err != nil {
		if errors.Is(err, errs.ErrContentAlreadyAdded) {
			return s.indexOf(content), false, nil
		}
		return 0, false, err
	}

	s.encoded = append(s.encoded, stream.EncodeString(content))

	return len(s.encoded) - 1, true, nil
}

func (s *TextBlobSet) indexOf(content string) int {
	for i, c := range s.tracker.Contents() {
		if c == content {
			return i
		}
	}
	return -1
}

// Len returns the number of distinct strings in the set.
func (s *TextBlobSet) Len() int {
	return s.tracker.Count()
}

// HasCollision reports whether two distinct strings added to the set hashed
// to the same 64-bit digest. TextBlobSet tolerates this (it never uses the
// hash for anything beyond initial dedup lookups), but a caller building an
// external hash-keyed index on top of it should know.
func (s *TextBlobSet) HasCollision() bool {
	return s.tracker.HasCollision()
}

// Get returns the content at index i and whether i is in range.
func (s *TextBlobSet) Get(i int) (string, bool) {
	contents := s.tracker.Contents()
	if i < 0 || i >= len(contents) {
		return "", false
	}
	return contents[i], true
}

// All returns an iterator over every string in the set, in the order they
// were first added.
func (s *TextBlobSet) All() iter.Seq[string] {
	contents := s.tracker.Contents()
	return func(yield func(string) bool) {
		for _, c := range contents {
			if !yield(c) {
				return
			}
		}
	}
}

// Serialize assembles the set into a single byte blob: a fixed header, an
// index of (offset, length) pairs, and a data section holding every
// string's BOCU-1 encoding back to back, optionally compressed as a whole.
func (s *TextBlobSet) Serialize() ([]byte, error) {
	out, _, err := s.serialize()
	return out, err
}

// SerializeWithStats is Serialize plus a compress.CompressionStats describing
// how the data section's compression performed, so a caller can decide
// whether a given compression option is earning its keep for this set's
// content.
func (s *TextBlobSet) SerializeWithStats() ([]byte, compress.CompressionStats, error) {
	return s.serialize()
}

func (s *TextBlobSet) serialize() ([]byte, compress.CompressionStats, error) {
	dataBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(dataBuf)

	index := make([]indexEntry, len(s.encoded))

	offset := 0
	for i, enc := range s.encoded {
		index[i] = indexEntry{offset: uint32(offset), length: uint32(len(enc))}
		dataBuf.MustWrite(enc)
		offset += len(enc)
	}

	codec, err := compress.CreateCodec(s.compression, "blob data section")
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(dataBuf.Bytes())
	compressionTime := time.Since(start)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	stats := compress.CompressionStats{
		Algorithm:         s.compression,
		OriginalSize:      int64(dataBuf.Len()),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: compressionTime.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	h := header{
		compression: s.compression,
		count:       uint32(len(s.encoded)),
		dataSize:    uint32(dataBuf.Len()),
	}

	out := make([]byte, 0, headerSize+len(index)*indexEntrySize+len(compressed))
	out = h.encode(s.eng, out)
	for _, e := range index {
		out = e.encode(s.eng, out)
	}
	out = append(out, compressed...)

	return out, stats, nil
}

// Parse reconstructs a TextBlobSet from bytes produced by Serialize. Any
// WithEndian option must match what the data was serialized with; WithEndian
// determines how the header itself is decoded, so it is applied before the
// header is read. WithCompression is accepted for symmetry with
// NewTextBlobSet but is ignored: the data section's compression is
// determined by what Serialize actually wrote, not by the caller's request.
func Parse(data []byte, opts ...Option) (*TextBlobSet, error) {
	s := &TextBlobSet{
		eng:     endian.GetLittleEndianEngine(),
		tracker: collision.NewTracker(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	h, err := decodeHeader(s.eng, data)
	if err != nil {
		return nil, err
	}
	s.compression = h.compression

	indexBytes := data[headerSize:]
	indexLen := int(h.count) * indexEntrySize
	if len(indexBytes) < indexLen {
		return nil, errs.ErrInvalidHeaderSize
	}

	index := make([]indexEntry, h.count)
	for i := range index {
		index[i] = decodeIndexEntry(s.eng, indexBytes[i*indexEntrySize:])
	}

	compressedData := indexBytes[indexLen:]
	codec, err := compress.CreateCodec(h.compression, "blob data section")
	if err != nil {
		return nil, err
	}

	plain, err := codec.Decompress(compressedData)
	if err != nil {
		return nil, err
	}

	for _, e := range index {
		if uint64(e.offset)+uint64(e.length) > uint64(len(plain)) {
			return nil, errs.ErrInvalidIndexEntry
		}
		enc := plain[e.offset : e.offset+e.length]

		content, err := stream.DecodeString(enc)
		if err != nil {
			return nil, err
		}

		if err := s.tracker.Track(content, hash.Sum64(content)); err != nil {
			if errors.Is(err, errs.ErrContentAlreadyAdded) {
				continue
			}
			return nil, err
		}
		s.encoded = append(s.encoded, enc)
	}

	return s, nil
}
