package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-renamer/internal/model"
)

// Table columns
const (
	ColumnCheck = iota
	ColumnName
	ColumnNewName
	ColumnSize
	ColumnStatus
	ColumnDetails
	ColumnActions
	columnCount
)

// TableView shows the loaded files as a spreadsheet-like table
type TableView struct {
	store        *FileStore
	localization *Localization
	actions      rowActions

	table     *widget.Table
	emptyHint *widget.Label
	content   *fyne.Container
}

// NewTableView creates the table view
func NewTableView(store *FileStore, localization *Localization, actions rowActions) *TableView {
	tv := &TableView{
		store:        store,
		localization: localization,
		actions:      actions,
	}
	tv.createUI()
	tv.Refresh()
	return tv
}

// Container returns the view's root object
func (tv *TableView) Container() fyne.CanvasObject {
	return tv.content
}

// newTableCell returns a stack holding every widget a cell may show
func newTableCell() fyne.CanvasObject {
	check := widget.NewCheck("", nil)
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	entry := widget.NewSelectEntry(nil)
	actions := container.NewHBox(
		widget.NewButtonWithIcon("", theme.FolderOpenIcon(), nil),
		widget.NewButtonWithIcon("", theme.VisibilityIcon(), nil),
		widget.NewButtonWithIcon("", theme.CancelIcon(), nil),
	)
	for _, obj := range actions.Objects {
		obj.(*widget.Button).Importance = widget.LowImportance
	}
	return container.NewStack(check, label, entry, actions)
}

func cellParts(obj fyne.CanvasObject) (*widget.Check, *widget.Label, *widget.SelectEntry, *fyne.Container) {
	stack := obj.(*fyne.Container)
	return stack.Objects[0].(*widget.Check),
		stack.Objects[1].(*widget.Label),
		stack.Objects[2].(*widget.SelectEntry),
		stack.Objects[3].(*fyne.Container)
}

func (tv *TableView) createUI() {
	tv.table = widget.NewTable(
		func() (int, int) {
			return tv.store.Len(), columnCount
		},
		newTableCell,
		tv.updateCell,
	)
	tv.table.ShowHeaderRow = true
	tv.table.CreateHeader = newTableCell
	tv.table.UpdateHeader = tv.updateHeader
	tv.table.OnSelected = func(id widget.TableCellID) {
		tv.table.Unselect(id)
	}

	widths := map[int]float32{
		ColumnCheck:   TableCheckWidth,
		ColumnName:    TableNameWidth,
		ColumnNewName: TableNewNameWidth,
		ColumnSize:    TableSizeWidth,
		ColumnStatus:  TableStatusWidth,
		ColumnDetails: TableDetailsWidth,
		ColumnActions: TableActionsWidth,
	}
	for col, w := range widths {
		tv.table.SetColumnWidth(col, w)
	}

	tv.emptyHint = widget.NewLabel(tv.localization.GetText(KeyDropHint))
	tv.emptyHint.Alignment = fyne.TextAlignCenter

	tv.content = container.NewStack(tv.table, tv.emptyHint)
}

func (tv *TableView) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	check, label, entry, buttons := cellParts(obj)
	entry.Hide()
	buttons.Hide()

	if id.Col == ColumnCheck {
		label.Hide()
		check.OnChanged = nil
		check.SetChecked(tv.store.AllChecked())
		check.OnChanged = func(checked bool) {
			if tv.actions.onCheckAll != nil {
				tv.actions.onCheckAll(checked)
			}
		}
		check.Show()
		return
	}

	check.Hide()
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.SetText(tv.columnTitle(id.Col))
	label.Show()
}

func (tv *TableView) columnTitle(col int) string {
	switch col {
	case ColumnName:
		return tv.localization.GetText(KeyCurrentName)
	case ColumnNewName:
		return tv.localization.GetText(KeyNewName)
	case ColumnSize:
		return tv.localization.GetText(KeySize)
	case ColumnStatus:
		return tv.localization.GetText(KeyStatus)
	case ColumnDetails:
		return tv.localization.GetText(KeyDetails)
	}
	return ""
}

func (tv *TableView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	check, label, entry, buttons := cellParts(obj)
	check.Hide()
	label.Hide()
	entry.Hide()
	buttons.Hide()

	f := tv.store.At(id.Row)
	if f == nil {
		return
	}
	label.Importance = widget.MediumImportance

	switch id.Col {
	case ColumnCheck:
		check.OnChanged = nil
		check.SetChecked(f.Checked)
		fileID := f.ID
		check.OnChanged = func(checked bool) {
			if tv.actions.onCheck != nil {
				tv.actions.onCheck(fileID, checked)
			}
		}
		if f.Status.IsRenamable() {
			check.Enable()
		} else {
			check.Disable()
		}
		check.Show()
	case ColumnName:
		label.SetText(f.BaseName())
		label.Show()
	case ColumnNewName:
		entry.OnChanged = nil
		entry.SetOptions(f.Candidates)
		if entry.Text != f.Selected {
			entry.SetText(f.Selected)
		}
		fileID := f.ID
		entry.OnChanged = func(text string) {
			if tv.actions.onName != nil {
				tv.actions.onName(fileID, text)
			}
		}
		if f.Status.IsRenamable() {
			entry.Enable()
		} else {
			entry.Disable()
		}
		entry.Show()
	case ColumnSize:
		label.SetText(f.HumanSize())
		label.Show()
	case ColumnStatus:
		label.Importance = statusImportance(f.Status)
		label.SetText(f.Status.String())
		label.Show()
	case ColumnDetails:
		text := ""
		if tv.actions.details != nil {
			text = tv.actions.details(f)
		}
		label.SetText(text)
		label.Show()
	case ColumnActions:
		tv.updateActions(f, buttons)
		buttons.Show()
	}
}

func (tv *TableView) updateActions(f *model.FontFile, buttons *fyne.Container) {
	reveal := buttons.Objects[0].(*widget.Button)
	open := buttons.Objects[1].(*widget.Button)
	remove := buttons.Objects[2].(*widget.Button)

	path, fileID := f.Path, f.ID
	reveal.OnTapped = func() {
		if tv.actions.onReveal != nil {
			tv.actions.onReveal(path)
		}
	}
	open.OnTapped = func() {
		if tv.actions.onOpen != nil {
			tv.actions.onOpen(path)
		}
	}
	remove.OnTapped = func() {
		if tv.actions.onRemove != nil {
			tv.actions.onRemove(fileID)
		}
	}

	if f.Status == model.FileStatusMissing || f.Status.IsActive() {
		reveal.Disable()
		open.Disable()
	} else {
		reveal.Enable()
		open.Enable()
	}
	if f.Status.IsActive() {
		remove.Disable()
	} else {
		remove.Enable()
	}
}

func statusImportance(status model.FileStatus) widget.Importance {
	switch status {
	case model.FileStatusRenamed:
		return widget.SuccessImportance
	case model.FileStatusError:
		return widget.DangerImportance
	case model.FileStatusMissing:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

// Refresh redraws the table
func (tv *TableView) Refresh() {
	if tv.store.Len() == 0 {
		tv.emptyHint.Show()
	} else {
		tv.emptyHint.Hide()
	}
	tv.table.Refresh()
}

// RefreshTexts re-applies localized labels
func (tv *TableView) RefreshTexts() {
	tv.emptyHint.SetText(tv.localization.GetText(KeyDropHint))
	tv.Refresh()
}
