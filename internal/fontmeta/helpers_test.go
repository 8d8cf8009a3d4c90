package fontmeta

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

type testRecord struct {
	platform, encoding, language, nameID uint16
	value                                string
}

// buildNameTable encodes a format 0 name table. Unicode records are stored as
// UTF-16BE, Macintosh records as raw bytes and legacy Windows records as one
// 16-bit unit per byte.
func buildNameTable(records []testRecord) []byte {
	var storage []byte
	header := make([]byte, nameHeaderSize+nameRecordSize*len(records))
	binary.BigEndian.PutUint16(header[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(header[4:], uint16(len(header)))

	for i, rec := range records {
		var raw []byte
		switch kind := (Record{PlatformID: rec.platform, EncodingID: rec.encoding}); {
		case rec.platform == PlatformMacintosh:
			raw = []byte(rec.value)
		case !kind.IsUnicode():
			for _, b := range []byte(rec.value) {
				raw = binary.BigEndian.AppendUint16(raw, uint16(b))
			}
		default:
			for _, u := range utf16.Encode([]rune(rec.value)) {
				raw = binary.BigEndian.AppendUint16(raw, u)
			}
		}
		p := header[nameHeaderSize+nameRecordSize*i:]
		binary.BigEndian.PutUint16(p[0:], rec.platform)
		binary.BigEndian.PutUint16(p[2:], rec.encoding)
		binary.BigEndian.PutUint16(p[4:], rec.language)
		binary.BigEndian.PutUint16(p[6:], rec.nameID)
		binary.BigEndian.PutUint16(p[8:], uint16(len(raw)))
		binary.BigEndian.PutUint16(p[10:], uint16(len(storage)))
		storage = append(storage, raw...)
	}
	return append(header, storage...)
}

// buildSFNT wraps tables into a minimal TrueType table directory.
// Checksums are left zero.
func buildSFNT(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out := make([]byte, offsetTableSize+tableRecordSize*len(tags))
	binary.BigEndian.PutUint32(out[0:], 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(len(tags)))

	for i, tag := range tags {
		data := tables[tag]
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		p := out[offsetTableSize+tableRecordSize*i:]
		copy(p[0:4], tag)
		binary.BigEndian.PutUint32(p[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(p[12:], uint32(len(data)))
		out = append(out, data...)
	}
	return out
}

// withNameOutOfBounds points the name table of a single font past the end
// of any file it could be packed into
func withNameOutOfBounds(font []byte) []byte {
	out := append([]byte(nil), font...)
	numTables := int(binary.BigEndian.Uint16(out[4:]))
	for i := 0; i < numTables; i++ {
		p := out[offsetTableSize+tableRecordSize*i:]
		if string(p[0:4]) == tagName {
			binary.BigEndian.PutUint32(p[8:], 0x7ffffff0)
		}
	}
	return out
}

// buildCollection packs complete single fonts into a TTC, shifting each
// font's table offsets to its new position.
func buildCollection(fonts ...[]byte) []byte {
	headerSize := collectionHdrSize + 4*len(fonts)
	out := make([]byte, headerSize)
	copy(out[0:4], tagCollection)
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, src := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := uint32(len(out))
		binary.BigEndian.PutUint32(out[collectionHdrSize+4*i:], base)

		font := append([]byte(nil), src...)
		numTables := int(binary.BigEndian.Uint16(font[4:]))
		for j := 0; j < numTables; j++ {
			p := font[offsetTableSize+tableRecordSize*j+8:]
			binary.BigEndian.PutUint32(p, binary.BigEndian.Uint32(p)+base)
		}
		out = append(out, font...)
	}
	return out
}
