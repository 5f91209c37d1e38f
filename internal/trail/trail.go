// Package trail implements stage 1 of the BOCU-1 pipeline: a fixed
// bijection between the linear range [0,243) and a 243-element subset of
// [0,256) that excludes 13 sensitive ASCII byte values.
//
// The mapping partitions the output byte range into four contiguous spans
// separated by the excluded bytes, and assigns the input range to those
// spans in order. Because each span assignment is strictly monotonic and
// the spans themselves are in ascending order, the overall mapping is
// strictly monotonic — this is what lets the variable-length code in
// internal/vlc preserve lexicographic order across trail bytes.
package trail

import "github.com/bocu1-go/bocu1/errs"

// NumValues is the number of distinct trail values, i.e. the size of the
// "digit" alphabet used by the variable-length code.
const NumValues = 243

// excluded lists the 13 byte values a trail byte must never take:
// NUL, the C0 controls CR/LF/HT/etc, DOS EOF (SUB), ESC, and SP.
var excluded = [13]byte{
	0x00,
	0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x1A,
	0x1B,
	0x20,
}

// ToByte maps a trail value v (0 <= v < NumValues) to its encoded byte,
// dodging the 13 excluded values by shifting the ranges above each one up.
func ToByte(v byte) byte {
	switch {
	case v <= 0x05:
		return v + 1
	case v <= 0x0F:
		return v + 10
	case v <= 0x13:
		return v + 12
	default:
		return v + 13
	}
}

// FromByte is the partial inverse of ToByte. It returns
// errs.TrailByteOutOfRangeError for any of the 13 excluded bytes.
func FromByte(b byte) (byte, error) {
	switch {
	case b >= 0x01 && b <= 0x06:
		return b - 1, nil
	case b >= 0x10 && b <= 0x19:
		return b - 10, nil
	case b >= 0x1C && b <= 0x1F:
		return b - 12, nil
	case b >= 0x21:
		return b - 13, nil
	default:
		return 0, &errs.TrailByteOutOfRangeError{Byte: b}
	}
}

// IsExcluded reports whether b is one of the 13 bytes trail position must
// never take. Exposed for tests that want to assert the forbidden-bytes
// property directly against the table instead of re-deriving it.
func IsExcluded(b byte) bool {
	for _, e := range excluded {
		if b == e {
			return true
		}
	}

	return false
}
