package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// FontFile represents a single loaded font file and its rename choice
type FontFile struct {
	ID           string
	Path         string
	Size         int64                  // file size in bytes
	IsCollection bool                   // TTC/OTC container
	Candidates   []string               // display names read from the name table
	CJK          bool                   // candidates came from CJK-script records
	Details      map[string]NameDetails // details per candidate, read with the candidates
	Selected     string                 // chosen new name, without extension
	Checked      bool
	Status       FileStatus
	LastError    string // last error message if any
}

// NewFontFile creates a loaded file with the first candidate preselected
func NewFontFile(path string, size int64, candidates []string) *FontFile {
	f := &FontFile{
		ID:         uuid.NewString(),
		Path:       path,
		Size:       size,
		Candidates: candidates,
		Status:     FileStatusLoaded,
	}
	if len(candidates) > 0 {
		f.Selected = candidates[0]
	}
	return f
}

// BaseName returns the current file name including extension
func (f *FontFile) BaseName() string {
	return filepath.Base(f.Path)
}

// Ext returns the file extension, including the dot
func (f *FontFile) Ext() string {
	return filepath.Ext(f.Path)
}

// Stem returns the file name without directory and extension
func (f *FontFile) Stem() string {
	base := f.BaseName()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DisplayName returns the selected name, first candidate, or stem in order of preference
func (f *FontFile) DisplayName() string {
	if s := strings.TrimSpace(f.Selected); s != "" {
		return s
	}
	if len(f.Candidates) > 0 && strings.TrimSpace(f.Candidates[0]) != "" {
		return f.Candidates[0]
	}
	return f.Stem()
}

// HumanSize returns the file size formatted for display
func (f *FontFile) HumanSize() string {
	if f.Size <= 0 {
		return "—"
	}
	return humanize.IBytes(uint64(f.Size))
}

// NameDetails holds descriptive name-table fields used for display only
type NameDetails struct {
	Family       string
	Style        string
	Version      string
	Manufacturer string
	Designer     string
	Found        bool // false when no record matched the selected name
}

// Summary returns a single-line description of the details
func (d NameDetails) Summary() string {
	if !d.Found {
		return ""
	}
	parts := []string{
		fmt.Sprintf("Family: %s", orNone(d.Family)),
		fmt.Sprintf("Style: %s", orNone(d.Style)),
		fmt.Sprintf("Version: %s", orNone(d.Version)),
	}
	if d.Manufacturer != "" {
		parts = append(parts, fmt.Sprintf("Manufacturer: %s", d.Manufacturer))
	}
	if d.Designer != "" {
		parts = append(parts, fmt.Sprintf("Designer: %s", d.Designer))
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// RenameResult is the outcome of renaming one file
type RenameResult struct {
	FileID  string
	OldPath string
	NewPath string
	Status  FileStatus
	Reason  string
}

// OldName returns the base name before the rename
func (r RenameResult) OldName() string {
	return filepath.Base(r.OldPath)
}

// NewName returns the base name after the rename
func (r RenameResult) NewName() string {
	return filepath.Base(r.NewPath)
}
