// Package errs defines the sentinel and typed errors returned across the
// bocu1 module. Callers should compare against these with errors.Is and
// errors.As rather than matching on error strings.
package errs

import (
	"errors"
	"fmt"
)

// ErrTruncatedInput is returned when a lead byte indicates a multi-byte
// encoded chunk but the input ends before all of its bytes are available.
var ErrTruncatedInput = errors.New("bocu1: truncated input")

// TrailByteOutOfRangeError is returned when a byte in trail position falls
// in the excluded set {0x00, 0x07..0x0F, 0x1A, 0x1B, 0x20}.
type TrailByteOutOfRangeError struct {
	Byte byte
}

func (e *TrailByteOutOfRangeError) Error() string {
	return fmt.Sprintf("bocu1: trail byte 0x%02x is out of range", e.Byte)
}

// CharDeltaOutOfRangeError is returned when a successfully decoded delta,
// applied to the previous code point, produces a value outside the valid
// Unicode scalar range ([0,0xD800) ∪ [0xE000,0x110000]).
type CharDeltaOutOfRangeError struct {
	Prev  rune
	Delta int32
}

func (e *CharDeltaOutOfRangeError) Error() string {
	return fmt.Sprintf("bocu1: delta %d from prev U+%04X decodes to an invalid code point", e.Delta, e.Prev)
}

// ErrDoesNotFit is returned by the packed package when an encoded string is
// too long to fit in the requested scalar width.
var ErrDoesNotFit = errors.New("bocu1: encoded string does not fit in requested scalar width")

// ErrNULNotPackable is returned when a caller attempts to pack a code point
// sequence containing U+0000; the packed representation cannot distinguish
// a self-encoded NUL byte from zero padding.
var ErrNULNotPackable = errors.New("bocu1: U+0000 cannot be packed, filter it before calling Pack")

// ErrHashCollision names the case where two distinct strings added to a
// blob.TextBlobSet hash to the same 64-bit digest. TextBlobSet has no option
// to reject collisions: it tolerates them and reports them through
// HasCollision, and no function in this module returns this error.
var ErrHashCollision = errors.New("bocu1: hash collision between distinct strings")

// ErrEmptyBlobSet is returned when an operation requires at least one
// string to have been added to a blob.TextBlobSet.
var ErrEmptyBlobSet = errors.New("bocu1: blob set is empty")

// ErrInvalidHeaderSize is returned when a serialized blob.TextBlobSet is
// shorter than the fixed header size, or too short to hold the index the
// header declares.
var ErrInvalidHeaderSize = errors.New("bocu1: invalid blob header size")

// ErrInvalidMagic is returned when a blob.TextBlobSet header's magic number
// does not match the expected value.
var ErrInvalidMagic = errors.New("bocu1: invalid blob header magic number")

// ErrStringTooLong names the case where a string exceeds the maximum length
// a blob.TextBlobSet index entry can represent. TextBlobSet.Add does not
// check string length, and no function in this module returns this error.
var ErrStringTooLong = errors.New("bocu1: string exceeds maximum blob entry length")

// ErrEmptyContent is returned when a caller attempts to add an empty string
// to a blob.TextBlobSet's dedup tracker.
var ErrEmptyContent = errors.New("bocu1: content is empty")

// ErrContentAlreadyAdded is returned when a caller attempts to add the exact
// same string to a blob.TextBlobSet twice.
var ErrContentAlreadyAdded = errors.New("bocu1: content already added")

// ErrInvalidIndexEntry is returned when a blob.TextBlobSet index entry's
// offset and length would read past the end of the decompressed data
// section, as can happen when parsing corrupted or adversarial input.
var ErrInvalidIndexEntry = errors.New("bocu1: index entry out of bounds")
