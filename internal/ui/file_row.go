package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-renamer/internal/model"
)

// FileRow represents one loaded font in the list view
type FileRow struct {
	widget.BaseWidget

	file         *model.FontFile
	localization *Localization
	updating     bool // set while widgets are filled from file

	// UI components
	check        *widget.Check
	nameLabel    *widget.Label
	nameSelect   *widget.SelectEntry
	detailsLabel *widget.Label
	statusLabel  *widget.Label

	// Action buttons
	revealBtn *widget.Button
	openBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onCheck  func(fileID string, checked bool)
	onName   func(fileID, name string)
	onReveal func(filePath string)
	onOpen   func(filePath string)
	onRemove func(fileID string)
}

// NewFileRow creates a new file row widget
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{localization: localization}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// SetCallbacks sets the action callbacks
func (fr *FileRow) SetCallbacks(
	onCheck func(fileID string, checked bool),
	onName func(fileID, name string),
	onReveal func(filePath string),
	onOpen func(filePath string),
	onRemove func(fileID string),
) {
	fr.onCheck = onCheck
	fr.onName = onName
	fr.onReveal = onReveal
	fr.onOpen = onOpen
	fr.onRemove = onRemove
}

// UpdateFile fills the row from f; details is the text shown in the details column
func (fr *FileRow) UpdateFile(f *model.FontFile, details string) {
	if f == nil {
		return
	}
	fr.file = f

	fr.updating = true
	defer func() { fr.updating = false }()

	fr.check.SetChecked(f.Checked)
	fr.nameLabel.SetText(f.BaseName())
	fr.nameSelect.SetOptions(f.Candidates)
	if fr.nameSelect.Text != f.Selected {
		fr.nameSelect.SetText(f.Selected)
	}
	fr.detailsLabel.SetText(details)
	fr.updateStatus()
	fr.updateButtons()
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.check = widget.NewCheck("", func(checked bool) {
		if fr.updating || fr.file == nil || fr.onCheck == nil {
			return
		}
		fr.onCheck(fr.file.ID, checked)
	})

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.nameSelect = widget.NewSelectEntry(nil)
	fr.nameSelect.OnChanged = func(text string) {
		if fr.updating || fr.file == nil || fr.onName == nil {
			return
		}
		fr.onName(fr.file.ID, text)
	}

	fr.detailsLabel = widget.NewLabel("")
	fr.detailsLabel.Truncation = fyne.TextTruncateEllipsis
	fr.detailsLabel.TextStyle = fyne.TextStyle{Italic: true}

	fr.statusLabel = widget.NewLabel("")
	fr.statusLabel.Alignment = fyne.TextAlignTrailing

	fr.revealBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		if fr.file != nil && fr.onReveal != nil {
			fr.onReveal(fr.file.Path)
		}
	})
	fr.revealBtn.Importance = widget.LowImportance

	fr.openBtn = widget.NewButtonWithIcon("", theme.VisibilityIcon(), func() {
		if fr.file != nil && fr.onOpen != nil {
			fr.onOpen(fr.file.Path)
		}
	})
	fr.openBtn.Importance = widget.LowImportance

	fr.removeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if fr.file != nil && fr.onRemove != nil {
			fr.onRemove(fr.file.ID)
		}
	})
	fr.removeBtn.Importance = widget.LowImportance
}

// updateStatus shows the row status; plain loaded rows show nothing
func (fr *FileRow) updateStatus() {
	f := fr.file
	switch f.Status {
	case model.FileStatusError:
		fr.statusLabel.Importance = widget.DangerImportance
		fr.statusLabel.SetText(IconError + " " + f.Status.String())
	case model.FileStatusMissing:
		fr.statusLabel.Importance = widget.WarningImportance
		fr.statusLabel.SetText(IconMissing + " " + f.Status.String())
	case model.FileStatusRenamed:
		fr.statusLabel.Importance = widget.SuccessImportance
		fr.statusLabel.SetText(IconDone + " " + f.Status.String())
	case model.FileStatusLoaded:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText("")
	default:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(f.Status.String())
	}
}

// updateButtons enables actions that make sense for the row status
func (fr *FileRow) updateButtons() {
	if fr.file.Status.IsRenamable() {
		fr.check.Enable()
		fr.nameSelect.Enable()
	} else {
		fr.check.Disable()
		fr.nameSelect.Disable()
	}

	if fr.file.Status == model.FileStatusMissing || fr.file.Status.IsActive() {
		fr.revealBtn.Disable()
		fr.openBtn.Disable()
	} else {
		fr.revealBtn.Enable()
		fr.openBtn.Enable()
	}

	if fr.file.Status.IsActive() {
		fr.removeBtn.Disable()
	} else {
		fr.removeBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	return &fileRowRenderer{row: fr}
}

// fileRowRenderer renders the file row widget
type fileRowRenderer struct {
	row    *FileRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *fileRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *fileRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (r *fileRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *fileRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *fileRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *fileRowRenderer) createLayout() {
	fr := r.row

	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	left := container.NewHBox(fr.check, fixedWidth(NameColumnWidth, fr.nameLabel))
	right := container.NewHBox(
		fixedWidth(StatusLabelWidth, fr.statusLabel),
		fr.revealBtn,
		fr.openBtn,
		fr.removeBtn,
	)
	center := container.NewGridWithColumns(2, fr.nameSelect, fr.detailsLabel)

	r.layout = container.NewBorder(nil, nil, left, right, center)
}
