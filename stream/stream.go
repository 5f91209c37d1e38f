// Package stream adapts the byte-level bocu1.Coder to the sequence-level
// shapes Go code usually wants: encoding a string to bytes in one call, and
// iterating a decoded byte slice as a range-over-func sequence of runes.
package stream

import (
	"io"
	"iter"
	"strings"

	"github.com/bocu1-go/bocu1"
)

// EncodeString encodes s in its entirety, starting from a fresh Coder.
func EncodeString(s string) []byte {
	return EncodeRunes([]rune(s))
}

// EncodeRunes encodes rs in its entirety, starting from a fresh Coder.
func EncodeRunes(rs []rune) []byte {
	var buf []byte
	c := bocu1.New()
	for _, r := range rs {
		buf = append(buf, c.EncodeRune(r).Bytes()...)
	}
	return buf
}

// EncodeTo encodes s to w, starting from a fresh Coder. It stops at the
// first write error.
func EncodeTo(w io.Writer, s string) (int, error) {
	c := bocu1.New()
	written := 0
	for _, r := range s {
		n, err := w.Write(c.EncodeRune(r).Bytes())
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// DecodeString decodes b in its entirety, starting from a fresh Coder, and
// returns the first decode error encountered (if any) along with whatever
// was decoded before it.
func DecodeString(b []byte) (string, error) {
	var sb strings.Builder
	c := bocu1.New()
	rest := b
	for len(rest) > 0 {
		r, ok, next, err := c.Decode(rest)
		if err != nil {
			return sb.String(), err
		}
		if ok {
			sb.WriteRune(r)
		}
		rest = next
	}
	return sb.String(), nil
}

// DecodeStringTruncating decodes b, discarding anything after the first
// decode error. Use this when a caller has no use for partial-decode errors
// and just wants the longest clean prefix.
func DecodeStringTruncating(b []byte) string {
	s, _ := DecodeString(b)
	return s
}

// Runes returns an iterator over the runes decoded from b, stopping silently
// at the first decode error (truncating variant). Use RuneResults to observe
// the error instead.
func Runes(b []byte) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		c := bocu1.New()
		rest := b
		for len(rest) > 0 {
			r, ok, next, err := c.Decode(rest)
			if err != nil {
				return
			}
			rest = next
			if ok && !yield(r) {
				return
			}
		}
	}
}

// RuneResults returns an iterator over (rune, error) pairs decoded from b.
// Unlike Runes, it surfaces decode errors to the caller instead of
// truncating silently. After yielding any decode error, the iterator skips
// exactly one byte (the first byte of the chunk that failed to decode) and
// resumes decoding from the next byte with the same Coder state — this does
// not recover the corrupted rune, it only prevents the iterator from looping
// forever on the same offset; the bytes after the skipped one may decode to
// unrelated runes or further errors until a reset byte or a self-encoded
// ASCII control resynchronizes the stream.
func RuneResults(b []byte) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		c := bocu1.New()
		rest := b
		for len(rest) > 0 {
			r, ok, next, err := c.Decode(rest)
			if err != nil {
				if !yield(0, err) {
					return
				}
				if len(rest) > 0 {
					rest = rest[1:]
				}
				continue
			}
			rest = next
			if ok && !yield(r, nil) {
				return
			}
		}
	}
}

// DecodeReader decodes every byte r produces, starting from a fresh Coder,
// and returns the first decode or read error encountered.
func DecodeReader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return DecodeString(b)
}
