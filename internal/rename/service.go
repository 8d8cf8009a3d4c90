package rename

import (
	"log"
	"os"

	"github.com/ytget/font-renamer/internal/model"
)

// Request asks for one file to be renamed to NewName plus its current extension
type Request struct {
	FileID  string
	Path    string
	NewName string
}

// ProgressFunc is called after each request with the running count
type ProgressFunc func(done, total int, result model.RenameResult)

// Service renames files one by one, collecting per-file outcomes
type Service struct {
	exists func(string) bool
}

// NewService creates a new rename service
func NewService() *Service {
	return &Service{exists: pathExists}
}

// Apply renames every request in order. A failing file never stops the batch;
// its outcome is reported in the returned results.
func (s *Service) Apply(reqs []Request, progress ProgressFunc) []model.RenameResult {
	results := make([]model.RenameResult, 0, len(reqs))

	for i, req := range reqs {
		result := s.applyOne(req)
		results = append(results, result)
		if progress != nil {
			progress(i+1, len(reqs), result)
		}
	}

	return results
}

func (s *Service) applyOne(req Request) model.RenameResult {
	result := model.RenameResult{FileID: req.FileID, OldPath: req.Path, NewPath: req.Path}

	name, err := ValidateName(req.NewName)
	if err != nil {
		result.Status = model.FileStatusSkipped
		result.Reason = err.Error()
		return result
	}

	target := TargetPath(req.Path, name, s.exists)
	if target == req.Path {
		result.Status = model.FileStatusSkipped
		result.Reason = "unchanged"
		return result
	}

	if err := Rename(req.Path, target); err != nil {
		log.Printf("Failed to rename %s: %v", req.Path, err)
		result.Status = model.FileStatusError
		result.Reason = err.Error()
		return result
	}

	log.Printf("Renamed %s -> %s", result.OldName(), target)
	result.NewPath = target
	result.Status = model.FileStatusRenamed
	return result
}

// Undo moves every renamed file back, newest first. The returned results
// describe the reverse moves.
func (s *Service) Undo(results []model.RenameResult) []model.RenameResult {
	var out []model.RenameResult

	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		if r.Status != model.FileStatusRenamed {
			continue
		}

		back := model.RenameResult{FileID: r.FileID, OldPath: r.NewPath, NewPath: r.OldPath}
		if _, err := os.Lstat(r.OldPath); err == nil {
			back.Status = model.FileStatusSkipped
			back.Reason = "original name is taken"
			out = append(out, back)
			continue
		}

		if err := Rename(r.NewPath, r.OldPath); err != nil {
			log.Printf("Failed to undo rename of %s: %v", r.NewPath, err)
			back.Status = model.FileStatusError
			back.Reason = err.Error()
			out = append(out, back)
			continue
		}

		back.Status = model.FileStatusRenamed
		out = append(out, back)
	}

	return out
}

// Renamed returns the results that actually moved a file
func Renamed(results []model.RenameResult) []model.RenameResult {
	var out []model.RenameResult
	for _, r := range results {
		if r.Status == model.FileStatusRenamed {
			out = append(out, r)
		}
	}
	return out
}
