package scan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/font-renamer/internal/fontmeta"
	"github.com/ytget/font-renamer/internal/model"
)

// PollInterval is how often the UI drains the event queue
const PollInterval = 100 * time.Millisecond

// ErrScanInProgress is returned when Start is called while a scan runs
var ErrScanInProgress = errors.New("a scan is already in progress")

// EventKind tells what an Event carries
type EventKind int

const (
	// EventFile carries a loaded file (Err may hold partial collection errors)
	EventFile EventKind = iota
	// EventError carries a file that could not be read
	EventError
	// EventDone marks the end of a job (Err holds the cancellation cause, if any)
	EventDone
)

// Event is one queued scan result
type Event struct {
	JobID string
	Kind  EventKind
	Path  string
	File  *model.FontFile
	Err   error
	Done  int // files processed so far
	Total int // files in this job
}

// ReadFunc reads the display names of a font file
type ReadFunc func(path string) (fontmeta.Names, error)

// Service handles background scans
type Service struct {
	mu     sync.Mutex
	queue  []Event
	known  map[string]struct{}
	busy   bool
	cancel context.CancelFunc
	exts   []string
	read   ReadFunc
}

// NewService creates a new scan service
func NewService(exts []string) *Service {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &Service{
		known: make(map[string]struct{}),
		exts:  exts,
		read:  fontmeta.ReadNames,
	}
}

// SetReader replaces the function used to read font names
func (s *Service) SetReader(read ReadFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.read = read
}

// SetExtensions replaces the extensions used when expanding directories
func (s *Service) SetExtensions(exts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	s.exts = exts
}

// Start scans paths in the background and returns the job ID
func (s *Service) Start(ctx context.Context, paths []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return "", ErrScanInProgress
	}

	jobID := generateJobID()
	ctx, cancel := context.WithCancel(ctx)
	s.busy = true
	s.cancel = cancel

	go s.run(ctx, jobID, paths, s.exts, s.read)

	return jobID, nil
}

// Drain removes and returns all queued events
func (s *Service) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.queue
	s.queue = nil
	return events
}

// Busy reports whether a scan is running
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Cancel stops the running scan, if any
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Forget makes a previously loaded path eligible for loading again
func (s *Service) Forget(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.known, normalize(path))
}

// Remember marks path as loaded so later scans skip it
func (s *Service) Remember(path string) {
	s.claim(path)
}

// Reset forgets every loaded path
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known = make(map[string]struct{})
}

// run expands paths and reads every font file, queueing one event per file
func (s *Service) run(ctx context.Context, jobID string, paths []string, exts []string, read ReadFunc) {
	defer func() {
		s.mu.Lock()
		s.busy = false
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.mu.Unlock()
	}()

	files := expand(paths, exts)
	total := len(files)
	log.Printf("Scan %s started: %d candidate files", jobID, total)

	done := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			log.Printf("Scan %s cancelled after %d/%d files", jobID, done, total)
			s.push(Event{JobID: jobID, Kind: EventDone, Err: err, Done: done, Total: total})
			return
		}

		done++
		if !s.claim(path) {
			continue
		}

		event := Event{JobID: jobID, Path: path, Done: done, Total: total}
		names, err := read(path)
		if err != nil && len(names.Candidates) == 0 {
			log.Printf("Failed to read font %s: %v", path, err)
			s.release(path)
			event.Kind = EventError
			event.Err = err
			s.push(event)
			continue
		}

		var size int64
		if info, statErr := os.Stat(path); statErr == nil {
			size = info.Size()
		}
		file := model.NewFontFile(path, size, names.Candidates)
		file.CJK = names.CJK
		file.IsCollection = names.IsCollection
		file.Details = names.Details
		if err != nil {
			file.LastError = err.Error()
		}

		event.Kind = EventFile
		event.File = file
		event.Err = err
		s.push(event)
	}

	log.Printf("Scan %s finished: %d files", jobID, total)
	s.push(Event{JobID: jobID, Kind: EventDone, Done: done, Total: total})
}

func (s *Service) push(event Event) {
	s.mu.Lock()
	s.queue = append(s.queue, event)
	s.mu.Unlock()
}

// claim marks path as loaded; it returns false if it already was
func (s *Service) claim(path string) bool {
	key := normalize(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.known[key]; ok {
		return false
	}
	s.known[key] = struct{}{}
	return true
}

func (s *Service) release(path string) {
	s.Forget(path)
}

// expand turns files and directories into a list of font files, preserving order
func expand(paths []string, exts []string) []string {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		key := normalize(path)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		if !info.IsDir() {
			if HasFontExtension(path, exts) {
				add(path)
			}
			continue
		}
		found, err := Walk(path, exts)
		if err != nil {
			log.Printf("Failed to walk %s: %v", path, err)
			continue
		}
		for _, f := range found {
			add(f)
		}
	}
	return files
}

func normalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Poll drains src every interval and hands non-empty batches to apply until ctx is done
func Poll(ctx context.Context, src Scanner, interval time.Duration, apply func([]Event)) {
	if interval <= 0 {
		interval = PollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if events := src.Drain(); len(events) > 0 {
				apply(events)
			}
		}
	}
}

// generateJobID generates a unique scan job ID
func generateJobID() string {
	return fmt.Sprintf("scan-%s", uuid.New().String())
}
