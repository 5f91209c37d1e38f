// Package blob implements TextBlobSet, a container that bundles many
// independently BOCU-1 encoded strings into a single serialized byte blob.
//
// The core codec (package bocu1) deliberately has no opinion on how a host
// application collects encoded strings together; that is a host-ecosystem
// decision. TextBlobSet is this module's answer: it deduplicates identical
// strings by content hash before encoding them, tracks the rare case where
// two distinct strings hash to the same digest, and optionally compresses
// the assembled data section with one of package compress's codecs.
//
// Compressing a TextBlobSet's serialized bytes is unrelated to, and must
// never be confused with, compressing the BOCU-1 stream itself: each string
// inside the set's data section remains exactly what bocu1.Coder produced,
// byte for byte, so per-string lexicographic ordering is preserved even
// when the container as a whole is compressed.
package blob
