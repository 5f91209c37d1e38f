// Package bocu1 implements BOCU-1 (Binary Ordered Compression for Unicode):
// a MIME-compatible, byte-order-preserving encoding that maps a sequence of
// Unicode code points to a compact byte string such that the lexicographic
// order of the byte strings matches the lexicographic order of the original
// code point sequences.
//
// The codec is a small state machine (see Coder) layered on top of two
// stateless stages: internal/trail picks the 243 encodable byte values out
// of the 256 available, and internal/vlc maps a signed delta between
// consecutive code points onto a 1-4 byte chunk built from those values.
// Consecutive code points from the same script normally differ by a small
// amount once snapped to their script's attractor (see normalize), so the
// common case is a single output byte per input rune.
//
// A Coder is not safe for concurrent use; each goroutine encoding or
// decoding a stream of runes should hold its own Coder.
package bocu1
