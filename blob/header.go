package blob

import (
	"github.com/bocu1-go/bocu1/endian"
	"github.com/bocu1-go/bocu1/errs"
	"github.com/bocu1-go/bocu1/format"
)

// magic identifies a serialized TextBlobSet. Stored little-endian, its first
// three bytes spell "BC1"; the top byte is a format generation marker so a
// future incompatible layout can be rejected instead of silently misparsed.
const magic uint32 = 0x01314342

const headerSize = 16 // magic(4) + version(1) + compression(1) + reserved(2) + count(4) + dataSize(4)

const formatVersion = 1

// header is the fixed-size preamble of a serialized TextBlobSet, followed
// by a count-entry index of (offset, length) pairs into the data section,
// followed by the data section itself.
type header struct {
	compression format.CompressionType
	count       uint32
	dataSize    uint32 // size of the data section before compression
}

func (h header) encode(eng endian.EndianEngine, buf []byte) []byte {
	buf = eng.AppendUint32(buf, magic)
	buf = append(buf, formatVersion, byte(h.compression), 0, 0)
	buf = eng.AppendUint32(buf, h.count)
	buf = eng.AppendUint32(buf, h.dataSize)
	return buf
}

func decodeHeader(eng endian.EndianEngine, buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, errs.ErrInvalidHeaderSize
	}
	if eng.Uint32(buf[0:4]) != magic {
		return header{}, errs.ErrInvalidMagic
	}

	return header{
		compression: format.CompressionType(buf[5]),
		count:       eng.Uint32(buf[8:12]),
		dataSize:    eng.Uint32(buf[12:16]),
	}, nil
}

// indexEntry locates one encoded string within the (decompressed) data
// section.
type indexEntry struct {
	offset uint32
	length uint32
}

const indexEntrySize = 8

func (e indexEntry) encode(eng endian.EndianEngine, buf []byte) []byte {
	buf = eng.AppendUint32(buf, e.offset)
	buf = eng.AppendUint32(buf, e.length)
	return buf
}

func decodeIndexEntry(eng endian.EndianEngine, buf []byte) indexEntry {
	return indexEntry{
		offset: eng.Uint32(buf[0:4]),
		length: eng.Uint32(buf[4:8]),
	}
}
