package fontmeta

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/ytget/font-renamer/internal/model"
)

// CJK Unified Ideographs block
const (
	cjkFirst = '\u4e00'
	cjkLast  = '\u9fff'
)

// Names is the result of reading a font file's display names
type Names struct {
	Candidates   []string
	CJK          bool // candidates are CJK-script names
	IsCollection bool
	FontCount    int
	// Details of the font that carries each candidate, keyed by candidate.
	// The file stem fallback has no entry.
	Details map[string]model.NameDetails
}

// IsCJK reports whether s contains at least one CJK ideograph
func IsCJK(s string) bool {
	for _, r := range s {
		if r >= cjkFirst && r <= cjkLast {
			return true
		}
	}
	return false
}

// SelectCandidates picks display names from name records: CJK names first,
// then all other names, then the file stem. Only Unicode records are used
// unless the font has none, in which case Macintosh Roman records stand in.
func SelectCandidates(records []Record, path string) ([]string, bool) {
	usable := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.IsUnicode() {
			usable = append(usable, rec)
		}
	}
	if len(usable) == 0 {
		for _, rec := range records {
			if rec.PlatformID == PlatformMacintosh {
				usable = append(usable, rec)
			}
		}
	}

	var cjk, other []string
	for _, rec := range usable {
		if rec.Value == "" {
			continue
		}
		if IsCJK(rec.Value) {
			cjk = appendUnique(cjk, rec.Value)
		} else {
			other = appendUnique(other, rec.Value)
		}
	}

	switch {
	case len(cjk) > 0:
		return cjk, true
	case len(other) > 0:
		return other, false
	default:
		return []string{stem(path)}, false
	}
}

// ReadNames reads path and returns its candidate display names.
// For collections, a sub-font that cannot be read is reported in the returned
// error while names of the remaining sub-fonts are still returned.
func ReadNames(path string) (Names, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Names{}, fmt.Errorf("read font file: %w", err)
	}
	return ParseNames(data, path)
}

// ParseNames is ReadNames over in-memory font data. Only the name table is
// required; fonts that sfnt cannot fully parse are still named.
func ParseNames(data []byte, path string) (Names, error) {
	if IsCollection(data) {
		return parseCollectionNames(data, path)
	}

	if _, err := sfnt.Parse(data); err != nil {
		log.Printf("Font %s not fully supported: %v", filepath.Base(path), err)
	}
	records, err := readRecords(data, 0)
	if err != nil {
		return Names{}, fmt.Errorf("read names of %s: %w", filepath.Base(path), err)
	}

	candidates, cjk := SelectCandidates(records, path)
	names := Names{Candidates: candidates, CJK: cjk, FontCount: 1, Details: make(map[string]model.NameDetails)}
	for _, c := range candidates {
		if hasValue(records, c) {
			names.Details[c] = detailsOf(records, c)
		}
	}
	return names, nil
}

func parseCollectionNames(data []byte, path string) (Names, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return Names{}, fmt.Errorf("parse font collection %s: %w", filepath.Base(path), err)
	}
	offsets, err := fontOffsets(data)
	if err != nil {
		return Names{}, fmt.Errorf("parse font collection %s: %w", filepath.Base(path), err)
	}

	names := Names{
		IsCollection: true,
		FontCount:    collection.NumFonts(),
		Details:      make(map[string]model.NameDetails),
	}
	var errs []error
	for i := 0; i < collection.NumFonts() && i < len(offsets); i++ {
		if _, err := collection.Font(i); err != nil {
			log.Printf("Font %d in %s not fully supported: %v", i, filepath.Base(path), err)
		}
		records, err := readRecords(data, offsets[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("font %d in %s: %w", i, filepath.Base(path), err))
			continue
		}

		name, cjk := subFontName(records)
		if name == "" {
			continue
		}
		names.Candidates = appendUnique(names.Candidates, name)
		names.CJK = names.CJK || cjk
		if _, seen := names.Details[name]; !seen {
			names.Details[name] = detailsOf(records, name)
		}
	}

	if len(names.Candidates) == 0 {
		names.Candidates = []string{stem(path)}
	}
	return names, errors.Join(errs...)
}

// subFontName returns the full name of a collection member, falling back to
// the family name. A CJK variant of either wins over other languages.
func subFontName(records []Record) (string, bool) {
	for _, id := range []uint16{NameIDFull, NameIDFamily} {
		var first string
		for _, rec := range records {
			if rec.NameID != id || rec.Value == "" {
				continue
			}
			if IsCJK(rec.Value) {
				return rec.Value, true
			}
			if first == "" {
				first = rec.Value
			}
		}
		if first != "" {
			return first, false
		}
	}
	return "", false
}

// ReadDetails returns descriptive fields of the font (or collection member)
// that carries the selected name. Found is false when no record matches.
func ReadDetails(path, selected string) (model.NameDetails, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.NameDetails{}, fmt.Errorf("read font file: %w", err)
	}
	return ParseDetails(data, selected)
}

// ParseDetails is ReadDetails over in-memory font data
func ParseDetails(data []byte, selected string) (model.NameDetails, error) {
	offsets, err := fontOffsets(data)
	if err != nil {
		return model.NameDetails{}, err
	}

	for _, off := range offsets {
		records, err := readRecords(data, off)
		if err != nil || !hasValue(records, selected) {
			continue
		}
		return detailsOf(records, selected), nil
	}
	return model.NameDetails{}, nil
}

// detailsOf builds the descriptive fields of a font, preferring records in
// the platform and language of the record that carries selected
func detailsOf(records []Record, selected string) model.NameDetails {
	var match Record
	for _, rec := range records {
		if rec.Value == selected {
			match = rec
			if rec.IsUnicode() {
				break
			}
		}
	}

	field := func(id uint16) string {
		var unicode, other string
		for _, rec := range records {
			if rec.NameID != id || rec.Value == "" {
				continue
			}
			if rec.PlatformID == match.PlatformID && rec.LanguageID == match.LanguageID {
				return rec.Value
			}
			if unicode == "" && rec.IsUnicode() {
				unicode = rec.Value
			}
			if other == "" {
				other = rec.Value
			}
		}
		if unicode != "" {
			return unicode
		}
		return other
	}

	return model.NameDetails{
		Family:       field(NameIDFamily),
		Style:        field(NameIDStyle),
		Version:      field(NameIDVersion),
		Manufacturer: field(NameIDManufacturer),
		Designer:     field(NameIDDesigner),
		Found:        true,
	}
}

func hasValue(records []Record, value string) bool {
	if value == "" {
		return false
	}
	for _, rec := range records {
		if rec.Value == value {
			return true
		}
	}
	return false
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
