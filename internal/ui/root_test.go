package ui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/font-renamer/internal/config"
	"github.com/ytget/font-renamer/internal/model"
	"github.com/ytget/font-renamer/internal/rename"
	"github.com/ytget/font-renamer/internal/scan"
)

type fakeScanner struct {
	mu         sync.Mutex
	started    [][]string
	startErr   error
	forgotten  []string
	remembered []string
	resets     int
}

func (f *fakeScanner) Start(_ context.Context, paths []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return "", f.startErr
	}
	f.started = append(f.started, paths)
	return "scan-test", nil
}

func (f *fakeScanner) Drain() []scan.Event { return nil }

func (f *fakeScanner) Busy() bool { return false }

func (f *fakeScanner) Cancel() {}

func (f *fakeScanner) SetExtensions([]string) {}

func (f *fakeScanner) Forget(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forgotten = append(f.forgotten, path)
}

func (f *fakeScanner) Remember(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remembered = append(f.remembered, path)
}

func (f *fakeScanner) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

type fakeRenamer struct{}

func (fakeRenamer) Apply(reqs []rename.Request, _ rename.ProgressFunc) []model.RenameResult {
	return nil
}

func (fakeRenamer) Undo(results []model.RenameResult) []model.RenameResult {
	return nil
}

var (
	_ scan.Scanner   = (*fakeScanner)(nil)
	_ rename.Renamer = fakeRenamer{}
)

func newTestRoot(t *testing.T) (*RootUI, *fakeScanner, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetWatchForChanges(false)
	settings.SetWriteJournal(false)
	settings.SetLanguage("en")

	scanner := &fakeScanner{}
	ui := NewRootUI(test.NewWindow(nil), app, settings, scanner, fakeRenamer{})
	ui.store.SetDetailsReader(func(path, selected string) (model.NameDetails, error) {
		return model.NameDetails{Family: selected, Found: true}, nil
	})
	t.Cleanup(ui.Close)
	return ui, scanner, settings
}

func TestRootUI_StartScan(t *testing.T) {
	ui, scanner, _ := newTestRoot(t)

	ui.startScan(nil)
	assert.Empty(t, scanner.started)

	ui.startScan([]string{"/fonts"})
	assert.Equal(t, [][]string{{"/fonts"}}, scanner.started)
	assert.True(t, ui.scanning)
	assert.True(t, ui.stopBtn.Visible())
	assert.True(t, ui.clearBtn.Disabled())
}

func TestRootUI_StartScanBusy(t *testing.T) {
	ui, scanner, _ := newTestRoot(t)
	scanner.startErr = scan.ErrScanInProgress

	ui.startScan([]string{"/fonts"})
	assert.False(t, ui.scanning)
}

func TestRootUI_ApplyScanEvents(t *testing.T) {
	ui, _, settings := newTestRoot(t)
	settings.SetCheckNewFiles(true)
	dir := t.TempDir()

	ui.startScan([]string{dir})
	file := newTestFile(filepath.Join(dir, "a.ttf"), "Alpha")
	ui.applyScanEvents([]scan.Event{
		{Kind: scan.EventFile, Path: file.Path, File: file, Done: 1, Total: 2},
		{Kind: scan.EventError, Path: filepath.Join(dir, "b.otf"), Err: errors.New("bad font"), Done: 2, Total: 2},
		{Kind: scan.EventDone, Done: 2, Total: 2},
	})

	assert.False(t, ui.scanning)
	assert.Equal(t, 1, ui.store.Len())
	assert.True(t, ui.store.At(0).Checked)
	assert.False(t, ui.renameBtn.Disabled())
	assert.Equal(t, "Loaded 1 fonts", ui.statusLabel.Text)
	assert.Empty(t, ui.scanFailures)
}

func TestRootUI_ScanCancelled(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	ui.startScan([]string{"/fonts"})
	ui.applyScanEvents([]scan.Event{{Kind: scan.EventDone, Err: context.Canceled, Done: 3, Total: 9}})

	assert.False(t, ui.scanning)
	assert.Equal(t, "Scan stopped after 3/9 files", ui.statusLabel.Text)
}

func TestRootUI_FinishRenameKeepsList(t *testing.T) {
	ui, scanner, settings := newTestRoot(t)
	settings.SetKeepListAfterRename(true)
	dir := t.TempDir()

	file := newTestFile(filepath.Join(dir, "a.ttf"), "Alpha")
	ui.store.Add(file)
	newPath := filepath.Join(dir, "Alpha.ttf")

	ui.finishRename([]model.RenameResult{
		{FileID: file.ID, OldPath: file.Path, NewPath: newPath, Status: model.FileStatusRenamed},
	})

	require.Equal(t, 1, ui.store.Len())
	assert.Equal(t, newPath, ui.store.At(0).Path)
	assert.Equal(t, model.FileStatusRenamed, ui.store.At(0).Status)
	assert.Equal(t, []string{filepath.Join(dir, "a.ttf")}, scanner.forgotten)
	assert.Equal(t, []string{newPath}, scanner.remembered)
	assert.False(t, ui.undoBtn.Disabled())
	assert.False(t, ui.renaming)
}

func TestRootUI_FinishRenameClearsList(t *testing.T) {
	ui, scanner, _ := newTestRoot(t)
	dir := t.TempDir()

	file := newTestFile(filepath.Join(dir, "a.ttf"), "Alpha")
	ui.store.Add(file)

	ui.finishRename([]model.RenameResult{
		{FileID: file.ID, OldPath: file.Path, NewPath: filepath.Join(dir, "Alpha.ttf"), Status: model.FileStatusRenamed},
	})

	assert.Equal(t, 0, ui.store.Len())
	assert.Equal(t, 1, scanner.resets)
	assert.Len(t, ui.lastResults, 1)
}

func TestRootUI_FinishUndoRescansUnlistedFiles(t *testing.T) {
	ui, scanner, _ := newTestRoot(t)
	dir := t.TempDir()
	original := filepath.Join(dir, "a.ttf")

	ui.finishUndo([]model.RenameResult{
		{FileID: "gone", OldPath: filepath.Join(dir, "Alpha.ttf"), NewPath: original, Status: model.FileStatusRenamed},
	})

	assert.Equal(t, [][]string{{original}}, scanner.started)
	assert.Nil(t, ui.lastResults)
}

func TestRootUI_FilesMissing(t *testing.T) {
	ui, scanner, _ := newTestRoot(t)
	file := newTestFile(filepath.Join(t.TempDir(), "a.ttf"), "Alpha")
	ui.store.Add(file)

	ui.onFilesMissing([]string{file.Path})

	assert.Equal(t, model.FileStatusMissing, file.Status)
	assert.Equal(t, []string{file.Path}, scanner.forgotten)
	assert.Equal(t, DashPlaceholder, ui.detailsText(file))
}

func TestRootUI_DetailsText(t *testing.T) {
	ui, _, _ := newTestRoot(t)
	file := newTestFile(filepath.Join(t.TempDir(), "a.ttf"), "Alpha")

	assert.Contains(t, ui.detailsText(file), "Family: Alpha")

	file.Status = model.FileStatusError
	file.LastError = "permission denied"
	assert.Equal(t, IconError+" permission denied", ui.detailsText(file))

	file.Status = model.FileStatusLoaded
	ui.store.SetDetailsReader(func(path, selected string) (model.NameDetails, error) {
		return model.NameDetails{}, nil
	})
	assert.Equal(t, "No details", ui.detailsText(file))
}

func TestBuildRequests(t *testing.T) {
	a := newTestFile("/fonts/a.ttf", "Alpha")
	b := newTestFile("/fonts/b.ttf", "Beta")
	b.Selected = "   "

	reqs, ids, empty := buildRequests([]*model.FontFile{a, b})

	assert.Equal(t, []rename.Request{{FileID: a.ID, Path: a.Path, NewName: "Alpha"}}, reqs)
	assert.Equal(t, []string{a.ID}, ids)
	assert.Equal(t, []string{"b.ttf"}, empty)
}

func TestRootUI_SwitchView(t *testing.T) {
	ui, _, settings := newTestRoot(t)

	ui.onViewSwitch(viewModeLabel(ui.localization, config.ViewTable))
	assert.Equal(t, config.ViewTable, settings.GetViewMode())
	_, isTable := ui.view.(*TableView)
	assert.True(t, isTable)

	ui.onViewSwitch(viewModeLabel(ui.localization, config.ViewList))
	_, isList := ui.view.(*ListView)
	assert.True(t, isList)
}
