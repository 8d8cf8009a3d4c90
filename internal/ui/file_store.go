package ui

import (
	"log"
	"path/filepath"
	"slices"
	"sync"

	"github.com/ytget/font-renamer/internal/fontmeta"
	"github.com/ytget/font-renamer/internal/model"
)

// DetailsFunc reads descriptive name fields for the selected name of a font
type DetailsFunc func(path, selected string) (model.NameDetails, error)

type detailsEntry struct {
	path     string
	selected string
	details  model.NameDetails
}

// FileStore holds the loaded rows shared by the list and table views.
// A path is stored at most once.
type FileStore struct {
	mu      sync.RWMutex
	files   []*model.FontFile
	byPath  map[string]*model.FontFile
	details map[string]detailsEntry
	read    DetailsFunc
}

// NewFileStore creates an empty store
func NewFileStore() *FileStore {
	return &FileStore{
		byPath:  make(map[string]*model.FontFile),
		details: make(map[string]detailsEntry),
		read:    fontmeta.ReadDetails,
	}
}

// SetDetailsReader replaces the function used to read name details
func (s *FileStore) SetDetailsReader(read DetailsFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.read = read
	s.details = make(map[string]detailsEntry)
}

// Add appends f unless its path is already loaded
func (s *FileStore) Add(f *model.FontFile) bool {
	if f == nil {
		return false
	}
	key := pathKey(f.Path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byPath[key]; exists {
		return false
	}
	s.files = append(s.files, f)
	s.byPath[key] = f
	return true
}

// Len returns the number of loaded files
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// At returns the file at index i, or nil when out of range
func (s *FileStore) At(i int) *model.FontFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.files) {
		return nil
	}
	return s.files[i]
}

// Get returns the file with the given ID
func (s *FileStore) Get(id string) (*model.FontFile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.files {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// All returns a snapshot of the loaded files
func (s *FileStore) All() []*model.FontFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.FontFile(nil), s.files...)
}

// Checked returns checked files that can take part in a rename
func (s *FileStore) Checked() []*model.FontFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.FontFile
	for _, f := range s.files {
		if f.Checked && f.Status.IsRenamable() {
			out = append(out, f)
		}
	}
	return out
}

// AnyChecked reports whether at least one renamable row is checked
func (s *FileStore) AnyChecked() bool {
	return len(s.Checked()) > 0
}

// AllChecked reports whether every renamable row is checked
func (s *FileStore) AllChecked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := false
	for _, f := range s.files {
		if !f.Status.IsRenamable() {
			continue
		}
		if !f.Checked {
			return false
		}
		found = true
	}
	return found
}

// SetChecked checks or unchecks a single row
func (s *FileStore) SetChecked(id string, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.ID == id {
			f.Checked = checked && f.Status.IsRenamable()
			return
		}
	}
}

// SetAllChecked checks or unchecks every renamable row
func (s *FileStore) SetAllChecked(checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		f.Checked = checked && f.Status.IsRenamable()
	}
}

// SetSelected stores the new name typed or picked for a row
func (s *FileStore) SetSelected(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.ID == id {
			f.Selected = name
			return
		}
	}
}

// SetStatus updates the status of the rows with the given IDs
func (s *FileStore) SetStatus(ids []string, status model.FileStatus) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if set[f.ID] {
			f.Status = status
		}
	}
}

// Remove drops the row with the given ID and returns its path
func (s *FileStore) Remove(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			delete(s.byPath, pathKey(f.Path))
			delete(s.details, f.ID)
			return f.Path, true
		}
	}
	return "", false
}

// Clear drops every row and returns the paths that were loaded
func (s *FileStore) Clear() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.files))
	for _, f := range s.files {
		paths = append(paths, f.Path)
	}
	s.files = nil
	s.byPath = make(map[string]*model.FontFile)
	s.details = make(map[string]detailsEntry)
	return paths
}

// ApplyResult moves a row to the outcome of a rename; it returns false when
// the row is no longer loaded
func (s *FileStore) ApplyResult(r model.RenameResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.byPath[pathKey(r.OldPath)]
	if f == nil || (r.FileID != "" && f.ID != r.FileID) {
		return false
	}

	f.Status = r.Status
	f.LastError = ""
	if r.Status == model.FileStatusError || r.Status == model.FileStatusSkipped {
		f.LastError = r.Reason
	}
	if r.Status == model.FileStatusRenamed && r.NewPath != r.OldPath {
		delete(s.byPath, pathKey(r.OldPath))
		f.Path = r.NewPath
		s.byPath[pathKey(r.NewPath)] = f
		f.Checked = false
	}
	return true
}

// MarkMissing flags the rows whose paths vanished and returns their IDs
func (s *FileStore) MarkMissing(paths []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, p := range paths {
		f := s.byPath[pathKey(p)]
		if f == nil {
			continue
		}
		f.Status = model.FileStatusMissing
		f.Checked = false
		ids = append(ids, f.ID)
	}
	return ids
}

// Details returns the name details for the row's current selection.
// Details read with the candidates are used as is. Otherwise the file is read
// only when the selection is one of the candidates and the path or selection
// changed since the last read.
func (s *FileStore) Details(f *model.FontFile) model.NameDetails {
	s.mu.RLock()
	entry, ok := s.details[f.ID]
	read := s.read
	path, selected := f.Path, f.DisplayName()
	known, isCandidate := f.Details, slices.Contains(f.Candidates, selected)
	s.mu.RUnlock()

	if known != nil {
		return known[selected]
	}
	if !isCandidate {
		return model.NameDetails{}
	}
	if ok && entry.path == path && entry.selected == selected {
		return entry.details
	}

	details, err := read(path, selected)
	if err != nil {
		log.Printf("Failed to read details of %s: %v", path, err)
		details = model.NameDetails{}
	}

	s.mu.Lock()
	s.details[f.ID] = detailsEntry{path: path, selected: selected, details: details}
	s.mu.Unlock()
	return details
}

func pathKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
