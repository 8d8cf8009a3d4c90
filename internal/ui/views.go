package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/font-renamer/internal/config"
	"github.com/ytget/font-renamer/internal/model"
)

// FileView presents the loaded files. The list and table views differ in
// presentation only and share the same FileStore.
type FileView interface {
	Container() fyne.CanvasObject
	Refresh()
	RefreshTexts()
}

// rowActions are the row-level callbacks shared by both views
type rowActions struct {
	onCheck    func(fileID string, checked bool)
	onCheckAll func(checked bool)
	onName     func(fileID, name string)
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onRemove   func(fileID string)
	details    func(f *model.FontFile) string
}

// newFileView builds the view for mode
func newFileView(mode config.ViewMode, store *FileStore, localization *Localization, actions rowActions) FileView {
	if mode == config.ViewTable {
		return NewTableView(store, localization, actions)
	}
	return NewListView(store, localization, actions)
}
