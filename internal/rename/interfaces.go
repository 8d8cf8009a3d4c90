package rename

import (
	"github.com/ytget/font-renamer/internal/model"
)

// Renamer defines the interface for the rename service.
type Renamer interface {
	Apply(reqs []Request, progress ProgressFunc) []model.RenameResult
	Undo(results []model.RenameResult) []model.RenameResult
}
