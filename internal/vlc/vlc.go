// Package vlc implements stage 2 of the BOCU-1 pipeline: the variable-length
// code that maps a signed delta to a 1-4 byte encoded chunk.
//
// Of the 256 possible lead-byte values, 0xFF is reserved as a non-coding
// reset marker and every value <= 0x20 is reserved for self-encoded ASCII
// (both handled one level up, by the delta codec). The remaining 222 lead
// bytes in [0x21,0xFE] are partitioned outwards from a center of 0x90 into
// seven spans, allocating more lead bytes to shorter codes so that small
// deltas (the common case within a single script) cost one byte.
package vlc

import (
	"github.com/bocu1-go/bocu1/errs"
	"github.com/bocu1-go/bocu1/internal/trail"
)

// LeadByteReset is the non-coding delta-state-reset marker. It is never
// emitted by the encoder but must be accepted by the decoder.
const LeadByteReset = 0xFF

// LeadByteASCIISP is the largest lead byte value handled by self-encoded
// ASCII; any lead byte above it belongs to this package's range table.
const LeadByteASCIISP = 0x20

// span describes one of the seven lead-byte allocations in the range table.
type span struct {
	loDelta  int32
	hiDelta  int32
	loLead   byte
	hiLead   byte
	base     byte // lead byte for a leading quotient of 0; one above hiLead on the negative spans
	len      int  // total chunk length, including the lead byte
	offset   int32
}

// spans is ordered by delta range, ascending. Widths come directly from
// spec.md §4.2: 1 center span of 128 single-byte codes, flanked by 43
// two-byte, 3 three-byte, and 1 four-byte lead byte on each side.
var spans = [7]span{
	{loDelta: -0x0010FF9F, hiDelta: -0x0002DD0D, loLead: 0x21, hiLead: 0x21, base: 0x22, len: 4, offset: -0x0002DD0C},
	{loDelta: -0x0002DD0C, hiDelta: -0x00002912, loLead: 0x22, hiLead: 0x24, base: 0x25, len: 3, offset: -0x00002911},
	{loDelta: -0x00002911, hiDelta: -0x00000041, loLead: 0x25, hiLead: 0x4F, base: 0x50, len: 2, offset: -0x00000040},
	{loDelta: -0x00000040, hiDelta: 0x0000003F, loLead: 0x50, hiLead: 0xCF, base: 0x90, len: 1, offset: 0},
	{loDelta: 0x00000040, hiDelta: 0x00002910, loLead: 0xD0, hiLead: 0xFA, base: 0xD0, len: 2, offset: 0x00000040},
	{loDelta: 0x00002911, hiDelta: 0x0002DD0B, loLead: 0xFB, hiLead: 0xFD, base: 0xFB, len: 3, offset: 0x00002911},
	{loDelta: 0x0002DD0C, hiDelta: 0x0010FFBF, loLead: 0xFE, hiLead: 0xFE, base: 0xFE, len: 4, offset: 0x0002DD0C},
}

// spanForDelta returns the span covering delta. delta is assumed to already
// be in [-0x10FF9F, +0x10FFBF], which the caller (the delta codec) derives
// from the fact that both endpoints are valid Unicode scalars.
func spanForDelta(delta int32) span {
	for _, s := range spans {
		if delta >= s.loDelta && delta <= s.hiDelta {
			return s
		}
	}
	// Unreachable for any delta between two valid Unicode scalars; the
	// seven spans above tile [-0x10FF9F, +0x10FFBF] exactly.
	panic("vlc: delta out of representable range")
}

// spanForLead returns the span whose lead-byte range contains lead.
// lead must be in [0x21,0xFE]; the caller is expected to have already
// handled 0xFF and the self-encoded ASCII range.
func spanForLead(lead byte) span {
	for _, s := range spans {
		if lead >= s.loLead && lead <= s.hiLead {
			return s
		}
	}
	panic("vlc: lead byte out of representable range")
}

// Chunk is a 1-4 byte encoded representation of a single delta.
type Chunk struct {
	bytes [4]byte
	n     int
}

// Bytes returns the chunk's encoded bytes.
func (c Chunk) Bytes() []byte { return c.bytes[:c.n] }

// Len returns the chunk's length in bytes (1-4).
func (c Chunk) Len() int { return c.n }

// divModEuc returns the Euclidean (floored) quotient and remainder of a/b,
// i.e. the unique q, r such that a == b*q+r and 0 <= r < |b|. The lead-byte
// spans on the negative side of the table have base values chosen such that
// d = delta - offset is itself negative, so plain truncating division (which
// rounds toward zero and can produce a negative remainder) is not enough.
func divModEuc(a, b int32) (int32, int32) {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// EncodeDelta maps delta to its 1-4 byte variable-length code.
func EncodeDelta(delta int32) Chunk {
	s := spanForDelta(delta)

	var buf [4]byte
	d := delta - s.offset

	for i := s.len - 1; i >= 1; i-- {
		var m int32
		d, m = divModEuc(d, trail.NumValues)
		buf[i] = trail.ToByte(byte(m))
	}
	buf[0] = byte(int32(s.base) + d)

	return Chunk{bytes: buf, n: s.len}
}

// DecodeDelta decodes the chunk beginning at b[0], returning the delta and
// the number of bytes consumed. b[0] must already be known to be a lead
// byte in [0x21,0xFE] (i.e. not 0xFF and not <= 0x20).
func DecodeDelta(b []byte) (int32, int, error) {
	s := spanForLead(b[0])
	if len(b) < s.len {
		return 0, 0, errs.ErrTruncatedInput
	}

	delta := int32(b[0]) - int32(s.base)
	for i := 1; i < s.len; i++ {
		t, err := trail.FromByte(b[i])
		if err != nil {
			return 0, 0, err
		}
		delta = delta*trail.NumValues + int32(t)
	}
	delta += s.offset

	return delta, s.len, nil
}
