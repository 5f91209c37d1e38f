package bocu1

import (
	"github.com/bocu1-go/bocu1/errs"
	"github.com/bocu1-go/bocu1/internal/vlc"
)

// ResetByte is the non-coding marker that resets a Coder's prev state
// without producing a code point. The encoder never emits it itself; it
// exists for producers that splice independently-encoded streams together
// and need a resynchronization point for whatever decodes them.
const ResetByte = vlc.LeadByteReset

// initialPrev is the value prev is initialized to, and reset to on every
// control byte or ResetByte.
const initialPrev rune = 0x40

// Chunk is a 1-4 byte encoded representation of a single encode step: a
// self-encoded ASCII control/space byte, a non-coding reset byte, or a
// variable-length delta code from internal/vlc.
type Chunk struct {
	bytes [4]byte
	n     int
}

// Bytes returns the chunk's encoded bytes.
func (c Chunk) Bytes() []byte { return c.bytes[:c.n] }

// Len returns the chunk's length in bytes (1-4).
func (c Chunk) Len() int { return c.n }

func chunkByte(b byte) Chunk {
	return Chunk{bytes: [4]byte{b, 0, 0, 0}, n: 1}
}

func chunkFromVLC(v vlc.Chunk) Chunk {
	var c Chunk
	copy(c.bytes[:], v.Bytes())
	c.n = v.Len()
	return c
}

// Coder is a stateful BOCU-1 encoder and decoder. It tracks the single
// previous-code-point value ("prev") the format's delta codec needs, and is
// not safe for concurrent use.
type Coder struct {
	prev rune
}

// New returns a Coder with prev initialized to U+0040, as required at the
// start of every independent BOCU-1 stream.
func New() *Coder {
	return &Coder{prev: initialPrev}
}

// Reset restores prev to its initial value and returns the chunk for
// ResetByte. Use this to splice an explicit resynchronization point into an
// encoded stream; the encoder never inserts one on its own.
func (c *Coder) Reset() Chunk {
	c.prev = initialPrev
	return chunkByte(ResetByte)
}

// EncodeRune encodes a single code point and advances the coder's state.
func (c *Coder) EncodeRune(r rune) Chunk {
	switch {
	case r < 0x20:
		c.prev = initialPrev
		return chunkByte(byte(r))
	case r == 0x20:
		return chunkByte(0x20)
	default:
		delta := int32(r) - int32(c.prev)
		vc := vlc.EncodeDelta(delta)
		c.prev = normalize(r)
		return chunkFromVLC(vc)
	}
}

// Decode consumes one chunk from the head of b and advances the coder's
// state. It returns the decoded rune and hasRune=true, or hasRune=false if
// the chunk was a non-coding reset byte that produced no code point. rest is
// the remainder of b after the consumed chunk. On error nothing is consumed
// and rest is b itself, so a caller can choose how to resynchronize.
func (c *Coder) Decode(b []byte) (r rune, hasRune bool, rest []byte, err error) {
	if len(b) == 0 {
		return 0, false, b, errs.ErrTruncatedInput
	}

	lead := b[0]
	switch {
	case lead == ResetByte:
		c.prev = initialPrev
		return 0, false, b[1:], nil

	case lead <= 0x20 && lead != 0x20:
		c.prev = initialPrev
		return rune(lead), true, b[1:], nil

	case lead == 0x20:
		return rune(0x20), true, b[1:], nil

	default:
		delta, n, err := vlc.DecodeDelta(b)
		if err != nil {
			return 0, false, b, err
		}

		candidate := int32(c.prev) + delta
		if !isValidScalar(candidate) {
			return 0, false, b, &errs.CharDeltaOutOfRangeError{Prev: c.prev, Delta: delta}
		}

		r = rune(candidate)
		c.prev = normalize(r)
		return r, true, b[n:], nil
	}
}

// isValidScalar reports whether v is a valid Unicode scalar value: in
// [0,0x10FFFF] and outside the surrogate range [0xD800,0xDFFF].
func isValidScalar(v int32) bool {
	if v < 0 || v > 0x10FFFF {
		return false
	}
	return v < 0xD800 || v > 0xDFFF
}

// normalize snaps a code point to a script-specific attractor so that
// successive code points from the same script yield small deltas. Three
// large scripts with a natural mid-block value override the generic
// mid-128-block rule.
func normalize(r rune) rune {
	switch {
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return 0x3070
	case r >= 0x4E00 && r <= 0x9FA5: // CJK Unihan 1.0.1
		return 0x7711
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return 0xC1D1
	default:
		return (r/128)*128 + 64
	}
}
