package watch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before missing files are reported
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports tracked files that were removed or renamed externally.
// Multiple rapid changes are collected into a single onMissing call.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]int // tracked files per watched directory

	timerMu sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}

	onMissing func([]string)
	done      chan struct{}
	closeOnce sync.Once
}

// New starts a watcher. onMissing is called from a background goroutine with
// the sorted paths of files that no longer exist.
func New(debounce time.Duration, onMissing func([]string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsw:       fsw,
		debounce:  debounce,
		files:     make(map[string]struct{}),
		dirs:      make(map[string]int),
		pending:   make(map[string]struct{}),
		onMissing: onMissing,
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Track starts watching path for removal
func (w *Watcher) Track(path string) error {
	path = clean(path)
	dir := filepath.Dir(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[path]; ok {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.files[path] = struct{}{}
	w.dirs[dir]++
	return nil
}

// Untrack stops watching path; directories without tracked files are released
func (w *Watcher) Untrack(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.untrackLocked(clean(path))
}

func (w *Watcher) untrackLocked(path string) {
	if _, ok := w.files[path]; !ok {
		return
	}
	delete(w.files, path)

	dir := filepath.Dir(path)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fsw.Remove(dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			log.Printf("Failed to stop watching %s: %v", dir, err)
		}
	}
}

// Reset untracks every file
func (w *Watcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path := range w.files {
		w.untrackLocked(path)
	}
}

// Tracked reports whether path is being watched
func (w *Watcher) Tracked(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[clean(path)]
	return ok
}

// Close shuts down the watcher
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()

		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.changed(clean(event.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) changed(path string) {
	if !w.Tracked(path) {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.processPending)
}

// processPending reports pending paths that are still tracked and really gone
func (w *Watcher) processPending() {
	w.timerMu.Lock()
	pending := w.pending
	w.pending = make(map[string]struct{})
	w.timer = nil
	w.timerMu.Unlock()

	var missing []string
	w.mu.Lock()
	for path := range pending {
		if _, ok := w.files[path]; !ok {
			continue
		}
		if _, err := os.Lstat(path); err == nil {
			continue
		}
		w.untrackLocked(path)
		missing = append(missing, path)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if len(missing) > 0 && w.onMissing != nil {
		sort.Strings(missing)
		log.Printf("Detected %d missing files", len(missing))
		w.onMissing(missing)
	}
}

func clean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
