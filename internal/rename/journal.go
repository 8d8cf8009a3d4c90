package rename

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/font-renamer/internal/model"
)

var journalHeader = []string{"old_path", "new_path", "status", "reason"}

// WriteJournal writes results as CSV so a batch can be reverted by hand
func WriteJournal(w io.Writer, results []model.RenameResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(journalHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.OldPath, r.NewPath, string(r.Status), r.Reason}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JournalName returns the file name used for a journal written at t
func JournalName(t time.Time) string {
	return fmt.Sprintf("rename_journal_%s.csv", t.Format("20060102_150405"))
}

// maxJournalsPerSecond bounds the suffixes tried for one timestamp
const maxJournalsPerSecond = 100

// SaveJournal writes results to a new journal file in dir and returns its path.
// An existing journal is never overwritten: a journal saved in the same second
// gets a numeric suffix.
func SaveJournal(dir string, results []model.RenameResult, now time.Time) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create journal directory: %w", err)
	}

	f, err := createJournal(dir, now)
	if err != nil {
		return "", fmt.Errorf("failed to create journal: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			path, err = "", fmt.Errorf("failed to close journal: %w", closeErr)
		}
	}()

	if err := WriteJournal(f, results); err != nil {
		return "", fmt.Errorf("failed to write journal: %w", err)
	}
	return f.Name(), nil
}

func createJournal(dir string, now time.Time) (*os.File, error) {
	name := JournalName(now)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for i := 1; i <= maxJournalsPerSecond; i++ {
		if i > 1 {
			name = fmt.Sprintf("%s_%d.csv", base, i)
		}
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("too many journals for %s", base)
}
