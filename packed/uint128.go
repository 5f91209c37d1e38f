package packed

import (
	"iter"

	"github.com/bocu1-go/bocu1"
	"github.com/bocu1-go/bocu1/errs"
)

// Uint128 is a 128-bit unsigned integer, stored as two big-endian halves.
// Go has no native 128-bit integer type wide enough for Pack/Unpack's Width
// constraint, so 16-byte packed values get this dedicated pair.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Cmp compares a and b as unsigned 128-bit integers, returning -1, 0, or 1.
// Because packed values preserve BOCU-1's lexicographic ordering property,
// this is also a valid comparison of the two packed code point sequences.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (u Uint128) shiftLeft8() Uint128 {
	return Uint128{
		Hi: (u.Hi << 8) | (u.Lo >> 56),
		Lo: u.Lo << 8,
	}
}

// byteAt returns byte i of u's big-endian representation, i in [0,16) with
// 0 the most significant byte.
func (u Uint128) byteAt(i int) byte {
	if i < 8 {
		return byte(u.Hi >> uint(8*(7-i)))
	}
	return byte(u.Lo >> uint(8*(15-i)))
}

// Pack128 is Pack specialized to the 16-byte Uint128 width.
func Pack128(s string) (Uint128, error) {
	var acc Uint128

	c := bocu1.New()
	n := 0
	for _, r := range s {
		if r == 0 {
			return Uint128{}, errs.ErrNULNotPackable
		}

		bs := c.EncodeRune(r).Bytes()
		if n+len(bs) > 16 {
			return Uint128{}, errs.ErrDoesNotFit
		}
		for _, b := range bs {
			acc = acc.shiftLeft8()
			acc.Lo |= uint64(b)
		}
		n += len(bs)
	}
	for ; n < 16; n++ {
		acc = acc.shiftLeft8()
	}

	return acc, nil
}

// Unpack128 is Unpack specialized to the 16-byte Uint128 width.
func Unpack128(u Uint128) (string, error) {
	buf := unpack128Bytes(u)
	return decodeAll(buf)
}

// Seq128 is Seq specialized to the 16-byte Uint128 width.
func Seq128(u Uint128) iter.Seq2[rune, error] {
	buf := unpack128Bytes(u)
	return decodeSeq(buf)
}

func unpack128Bytes(u Uint128) []byte {
	buf := make([]byte, 0, 16)
	for i := 0; i < 16; i++ {
		b := u.byteAt(i)
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return buf
}
