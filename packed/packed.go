// Package packed implements the BOCU-1 packed scalar codec: a mapping
// between a short code point sequence and a fixed-width unsigned integer,
// with the encoded string's first byte occupying the integer's most
// significant byte and any unused low bytes left zero.
//
// Because BOCU-1 byte strings are lexicographically ordered with respect to
// their source code point sequences, and packing left-aligns the encoded
// bytes with zero padding below them, ordinary unsigned integer comparison
// on packed values reproduces that same lexicographic order.
//
// Packed values disallow U+0000: its self-encoded byte is 0x00, which is
// indistinguishable from the zero padding used to fill unused width. Pack
// rejects any input containing it.
package packed

import (
	"iter"
	"strings"
	"unsafe"

	"github.com/bocu1-go/bocu1"
	"github.com/bocu1-go/bocu1/errs"
)

// Width is the set of unsigned integer types Pack/Unpack support directly.
// 128-bit packing has no native Go integer type, so it is handled
// separately by Pack128/Unpack128.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pack encodes s and left-aligns its BOCU-1 bytes into the high-order bytes
// of a T, zero-padding the remainder. It returns errs.ErrNULNotPackable if s
// contains U+0000, or errs.ErrDoesNotFit if the encoded form is longer than
// sizeof(T).
func Pack[T Width](s string) (T, error) {
	var acc T
	size := int(unsafe.Sizeof(acc))

	c := bocu1.New()
	n := 0
	for _, r := range s {
		if r == 0 {
			return 0, errs.ErrNULNotPackable
		}

		bs := c.EncodeRune(r).Bytes()
		if n+len(bs) > size {
			return 0, errs.ErrDoesNotFit
		}
		for _, b := range bs {
			acc <<= 8
			acc |= T(b)
		}
		n += len(bs)
	}
	for ; n < size; n++ {
		acc <<= 8
	}

	return acc, nil
}

// Unpack reverses Pack: it strips the trailing zero bytes of n's big-endian
// representation and decodes what remains as a BOCU-1 byte string.
func Unpack[T Width](n T) (string, error) {
	size := int(unsafe.Sizeof(n))

	buf := make([]byte, 0, size)
	for i := size - 1; i >= 0; i-- {
		b := byte(n >> uint(8*i))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}

	return decodeAll(buf)
}

// Seq decodes n one rune at a time without first materializing the whole
// string, stopping at the first trailing zero byte (the packing padding) or
// decode error. It yields at most one error, as its final value.
func Seq[T Width](n T) iter.Seq2[rune, error] {
	size := int(unsafe.Sizeof(n))

	buf := make([]byte, 0, size)
	for i := size - 1; i >= 0; i-- {
		b := byte(n >> uint(8*i))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}

	return decodeSeq(buf)
}

func decodeSeq(buf []byte) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		c := bocu1.New()
		rest := buf
		for len(rest) > 0 {
			r, ok, next, err := c.Decode(rest)
			if err != nil {
				yield(0, err)
				return
			}
			if ok && !yield(r, nil) {
				return
			}
			rest = next
		}
	}
}

func decodeAll(buf []byte) (string, error) {
	var sb strings.Builder
	c := bocu1.New()
	rest := buf
	for len(rest) > 0 {
		r, ok, next, err := c.Decode(rest)
		if err != nil {
			return "", err
		}
		if ok {
			sb.WriteRune(r)
		}
		rest = next
	}

	return sb.String(), nil
}
