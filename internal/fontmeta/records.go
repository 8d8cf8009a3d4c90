package fontmeta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Platform IDs used by name records
const (
	PlatformUnicode   uint16 = 0
	PlatformMacintosh uint16 = 1
	PlatformWindows   uint16 = 3
)

// Name IDs used by the app
const (
	NameIDFamily       uint16 = 1
	NameIDStyle        uint16 = 2
	NameIDFull         uint16 = 4
	NameIDVersion      uint16 = 5
	NameIDManufacturer uint16 = 8
	NameIDDesigner     uint16 = 9
)

// SFNT layout constants
const (
	tagCollection     = "ttcf"
	tagName           = "name"
	offsetTableSize   = 12
	tableRecordSize   = 16
	collectionHdrSize = 12
	nameHeaderSize    = 6
	nameRecordSize    = 12
)

var (
	// ErrInvalidFont is returned for data that is not a usable SFNT font
	ErrInvalidFont = errors.New("invalid font data")

	// ErrNoNameTable is returned when a font has no name table
	ErrNoNameTable = errors.New("font has no name table")

	errUnsupportedEncoding = errors.New("unsupported name encoding")
)

var utf16BE = xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)

// Legacy Windows encodings keyed by encoding ID. Their records hold one
// 16-bit unit per character, so single-byte characters carry a zero high byte.
var windowsLegacy = map[uint16]encoding.Encoding{
	2: japanese.ShiftJIS,
	3: simplifiedchinese.GBK,
	4: traditionalchinese.Big5,
	5: korean.EUCKR,
}

// Record is one decoded entry of a name table
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// IsUnicode reports whether the record is stored in a Unicode encoding
func (r Record) IsUnicode() bool {
	switch r.PlatformID {
	case PlatformUnicode:
		return true
	case PlatformWindows:
		return r.EncodingID == 0 || r.EncodingID == 1 || r.EncodingID == 10
	default:
		return false
	}
}

// IsCollection reports whether data starts with a font collection header
func IsCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == tagCollection
}

// fontOffsets returns the offset of every table directory in data.
// A single font has one directory at offset 0.
func fontOffsets(data []byte) ([]uint32, error) {
	if len(data) < offsetTableSize {
		return nil, ErrInvalidFont
	}
	if !IsCollection(data) {
		return []uint32{0}, nil
	}

	r := parse.NewBinaryReader(data)
	_ = r.ReadString(4)
	_ = r.ReadUint32() // majorVersion and minorVersion
	numFonts := uint64(r.ReadUint32())
	if numFonts == 0 || uint64(len(data)) < collectionHdrSize+4*numFonts {
		return nil, fmt.Errorf("%w: bad collection header", ErrInvalidFont)
	}

	offsets := make([]uint32, numFonts)
	for i := range offsets {
		offsets[i] = r.ReadUint32()
	}
	return offsets, nil
}

// nameTable locates the name table of the font whose directory starts at dirOffset
func nameTable(data []byte, dirOffset uint32) ([]byte, error) {
	size := uint64(len(data))
	if uint64(dirOffset)+offsetTableSize > size {
		return nil, fmt.Errorf("%w: table directory out of bounds", ErrInvalidFont)
	}

	r := parse.NewBinaryReader(data[dirOffset:])
	_ = r.ReadUint32() // sfntVersion
	numTables := uint64(r.ReadUint16())
	_ = r.ReadBytes(6) // searchRange, entrySelector, rangeShift
	if uint64(dirOffset)+offsetTableSize+tableRecordSize*numTables > size {
		return nil, fmt.Errorf("%w: truncated table directory", ErrInvalidFont)
	}

	for i := uint64(0); i < numTables; i++ {
		tag := r.ReadString(4)
		_ = r.ReadUint32() // checksum
		offset := uint64(r.ReadUint32())
		length := uint64(r.ReadUint32())
		if tag != tagName {
			continue
		}
		if offset+length > size {
			return nil, fmt.Errorf("%w: name table out of bounds", ErrInvalidFont)
		}
		return data[offset : offset+length], nil
	}
	return nil, ErrNoNameTable
}

// parseRecords decodes every name record of a name table. Records with an
// unsupported encoding or out-of-range storage are dropped.
func parseRecords(table []byte) ([]Record, error) {
	if len(table) < nameHeaderSize {
		return nil, fmt.Errorf("%w: short name table", ErrInvalidFont)
	}

	r := parse.NewBinaryReader(table)
	_ = r.ReadUint16() // version
	count := int(r.ReadUint16())
	storage := int(r.ReadUint16())
	if nameHeaderSize+nameRecordSize*count > len(table) {
		return nil, fmt.Errorf("%w: truncated name records", ErrInvalidFont)
	}

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		var rec Record
		rec.PlatformID = r.ReadUint16()
		rec.EncodingID = r.ReadUint16()
		rec.LanguageID = r.ReadUint16()
		rec.NameID = r.ReadUint16()
		length := int(r.ReadUint16())
		offset := int(r.ReadUint16())

		start := storage + offset
		if start+length > len(table) {
			continue
		}
		value, err := decodeValue(rec, table[start:start+length])
		if err != nil {
			continue
		}
		rec.Value = value
		records = append(records, rec)
	}
	return records, nil
}

func decodeValue(rec Record, raw []byte) (string, error) {
	var (
		out []byte
		err error
	)
	switch rec.PlatformID {
	case PlatformUnicode:
		out, err = utf16BE.NewDecoder().Bytes(raw)
	case PlatformWindows:
		switch rec.EncodingID {
		case 0, 1, 10:
			out, err = utf16BE.NewDecoder().Bytes(raw)
		default:
			enc, ok := windowsLegacy[rec.EncodingID]
			if !ok {
				return "", errUnsupportedEncoding
			}
			out, err = enc.NewDecoder().Bytes(dropZeroBytes(raw))
		}
	case PlatformMacintosh:
		if rec.EncodingID != 0 {
			return "", errUnsupportedEncoding
		}
		out, err = charmap.Macintosh.NewDecoder().Bytes(raw)
	default:
		return "", errUnsupportedEncoding
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimRight(string(out), "\x00")), nil
}

func dropZeroBytes(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b != 0 {
			out = append(out, b)
		}
	}
	return out
}

// readRecords returns the decoded name records of the font at dirOffset
func readRecords(data []byte, dirOffset uint32) ([]Record, error) {
	table, err := nameTable(data, dirOffset)
	if err != nil {
		return nil, err
	}
	return parseRecords(table)
}
