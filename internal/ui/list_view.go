package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ListView shows one FileRow per loaded file under a header with a select-all box
type ListView struct {
	store        *FileStore
	localization *Localization
	actions      rowActions
	updating     bool

	selectAll     *widget.Check
	headerName    *widget.Label
	headerNew     *widget.Label
	headerDetails *widget.Label
	emptyHint     *widget.Label
	list          *widget.List
	content       *fyne.Container
}

// NewListView creates the simple checkbox list view
func NewListView(store *FileStore, localization *Localization, actions rowActions) *ListView {
	lv := &ListView{
		store:        store,
		localization: localization,
		actions:      actions,
	}
	lv.createUI()
	lv.Refresh()
	return lv
}

// Container returns the view's root object
func (lv *ListView) Container() fyne.CanvasObject {
	return lv.content
}

func (lv *ListView) createUI() {
	lv.selectAll = widget.NewCheck(lv.localization.GetText(KeySelectAll), func(checked bool) {
		if lv.updating || lv.actions.onCheckAll == nil {
			return
		}
		lv.actions.onCheckAll(checked)
	})

	lv.headerName = widget.NewLabelWithStyle(lv.localization.GetText(KeyCurrentName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lv.headerNew = widget.NewLabelWithStyle(lv.localization.GetText(KeyNewName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lv.headerDetails = widget.NewLabelWithStyle(lv.localization.GetText(KeyDetails), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	lv.emptyHint = widget.NewLabel(lv.localization.GetText(KeyDropHint))
	lv.emptyHint.Alignment = fyne.TextAlignCenter

	lv.list = widget.NewList(
		func() int {
			return lv.store.Len()
		},
		func() fyne.CanvasObject {
			row := NewFileRow(lv.localization)
			row.SetCallbacks(lv.actions.onCheck, lv.actions.onName, lv.actions.onReveal, lv.actions.onOpen, lv.actions.onRemove)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			f := lv.store.At(id)
			row, ok := obj.(*FileRow)
			if f == nil || !ok {
				return
			}
			details := ""
			if lv.actions.details != nil {
				details = lv.actions.details(f)
			}
			row.UpdateFile(f, details)
		},
	)
	lv.list.OnSelected = func(id widget.ListItemID) {
		lv.list.Unselect(id)
	}

	// Header columns line up with FileRow: checkbox + name, then new name and details
	checkSpacer := canvas.NewRectangle(color.Transparent)
	checkSpacer.SetMinSize(fyne.NewSize(widget.NewCheck("", nil).MinSize().Width, 1))
	nameSpacer := canvas.NewRectangle(color.Transparent)
	nameSpacer.SetMinSize(fyne.NewSize(NameColumnWidth, 1))
	header := container.NewBorder(nil, nil,
		container.NewHBox(checkSpacer, container.NewStack(nameSpacer, lv.headerName)),
		nil,
		container.NewGridWithColumns(2, lv.headerNew, lv.headerDetails),
	)

	top := container.NewVBox(lv.selectAll, header, widget.NewSeparator())
	lv.content = container.NewBorder(top, nil, nil, nil, container.NewStack(lv.list, lv.emptyHint))
}

// Refresh redraws rows and syncs the select-all box
func (lv *ListView) Refresh() {
	lv.updating = true
	lv.selectAll.SetChecked(lv.store.AllChecked())
	lv.updating = false

	if lv.store.Len() == 0 {
		lv.emptyHint.Show()
	} else {
		lv.emptyHint.Hide()
	}
	lv.list.Refresh()
}

// RefreshTexts re-applies localized labels
func (lv *ListView) RefreshTexts() {
	lv.selectAll.SetText(lv.localization.GetText(KeySelectAll))
	lv.headerName.SetText(lv.localization.GetText(KeyCurrentName))
	lv.headerNew.SetText(lv.localization.GetText(KeyNewName))
	lv.headerDetails.SetText(lv.localization.GetText(KeyDetails))
	lv.emptyHint.SetText(lv.localization.GetText(KeyDropHint))
	lv.Refresh()
}
