package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-renamer/internal/config"
	"github.com/ytget/font-renamer/internal/model"
	"github.com/ytget/font-renamer/internal/platform"
	"github.com/ytget/font-renamer/internal/rename"
	"github.com/ytget/font-renamer/internal/scan"
	"github.com/ytget/font-renamer/internal/watch"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	scanner scan.Scanner
	renamer rename.Renamer
	watcher *watch.Watcher
	store   *FileStore

	// Toolbar
	addFilesBtn  *widget.Button
	addFolderBtn *widget.Button
	addFontsBtn  *widget.Button
	renameBtn    *widget.Button
	undoBtn      *widget.Button
	clearBtn     *widget.Button
	stopBtn      *widget.Button
	settingsBtn  *widget.Button
	viewSwitch   *widget.RadioGroup

	view        FileView
	viewHolder  *fyne.Container
	progress    *widget.ProgressBar
	statusLabel *widget.Label

	// Scan and rename state, only touched on the UI goroutine
	scanning     bool
	renaming     bool
	loadedInJob  int
	scanFailures []string
	lastResults  []model.RenameResult
	pollCancel   context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, scanner scan.Scanner, renamer rename.Renamer) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		scanner:      scanner,
		renamer:      renamer,
		store:        NewFileStore(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.startPolling()
	ui.configureWatcher()

	window.SetOnDropped(ui.onDropped)
	window.SetOnClosed(ui.Close)

	log.Printf("RootUI initialized, view mode %s", settings.GetViewMode())
	return ui
}

// Close stops background polling and the file watcher
func (ui *RootUI) Close() {
	if ui.pollCancel != nil {
		ui.pollCancel()
		ui.pollCancel = nil
	}
	ui.scanner.Cancel()
	ui.stopWatcher()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization
	ui.addFilesBtn = widget.NewButtonWithIcon(l.GetText(KeyAddFiles), theme.FileIcon(), ui.onAddFiles)
	ui.addFolderBtn = widget.NewButtonWithIcon(l.GetText(KeyAddFolder), theme.FolderOpenIcon(), ui.onAddFolder)
	ui.addFontsBtn = widget.NewButtonWithIcon(l.GetText(KeyAddUserFonts), theme.HomeIcon(), ui.onAddUserFonts)
	ui.renameBtn = widget.NewButtonWithIcon(l.GetText(KeyRename), theme.DocumentSaveIcon(), ui.onRenameClick)
	ui.renameBtn.Importance = widget.HighImportance
	ui.undoBtn = widget.NewButtonWithIcon(l.GetText(KeyUndo), theme.ContentUndoIcon(), ui.onUndoClick)
	ui.clearBtn = widget.NewButtonWithIcon(l.GetText(KeyClear), theme.DeleteIcon(), ui.onClearClick)
	ui.stopBtn = widget.NewButtonWithIcon(l.GetText(KeyStopScan), theme.MediaStopIcon(), ui.onStopScan)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.viewSwitch = widget.NewRadioGroup(ui.viewLabels(), ui.onViewSwitch)
	ui.viewSwitch.Horizontal = true
	ui.viewSwitch.Required = true

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(ui.addFilesBtn, ui.addFolderBtn, ui.addFontsBtn, widget.NewSeparator(), ui.renameBtn, ui.undoBtn, ui.clearBtn),
		container.NewHBox(ui.viewSwitch, ui.settingsBtn),
		nil,
	)

	ui.progress = widget.NewProgressBar()
	ui.progress.Hide()
	ui.statusLabel = widget.NewLabel(l.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.stopBtn.Hide()
	statusBar := container.NewBorder(nil, nil, nil, ui.stopBtn, container.NewVBox(ui.progress, ui.statusLabel))

	ui.viewHolder = container.NewStack()
	ui.buildView(ui.settings.GetViewMode())

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()), // top
		statusBar,     // bottom
		nil,           // left
		nil,           // right
		ui.viewHolder, // center
	)
	ui.window.SetContent(content)

	ui.selectViewSwitch(ui.settings.GetViewMode())
	ui.updateControls()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	addFilesItem := fyne.NewMenuItem(l.GetText(KeyAddFiles), ui.onAddFiles)
	addFolderItem := fyne.NewMenuItem(l.GetText(KeyAddFolder), ui.onAddFolder)
	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	languages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), addFilesItem, addFolderItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.addFilesBtn.SetText(l.GetText(KeyAddFiles))
	ui.addFolderBtn.SetText(l.GetText(KeyAddFolder))
	ui.addFontsBtn.SetText(l.GetText(KeyAddUserFonts))
	ui.renameBtn.SetText(l.GetText(KeyRename))
	ui.undoBtn.SetText(l.GetText(KeyUndo))
	ui.clearBtn.SetText(l.GetText(KeyClear))
	ui.stopBtn.SetText(l.GetText(KeyStopScan))

	mode := ui.settings.GetViewMode()
	ui.viewSwitch.Options = ui.viewLabels()
	ui.selectViewSwitch(mode)

	if !ui.scanning && !ui.renaming {
		ui.setStatus(l.GetText(KeyReady))
	}
	ui.view.RefreshTexts()
}

func (ui *RootUI) viewLabels() []string {
	var labels []string
	for _, mode := range ui.settings.GetViewModeOptions() {
		labels = append(labels, viewModeLabel(ui.localization, mode))
	}
	return labels
}

func (ui *RootUI) selectViewSwitch(mode config.ViewMode) {
	handler := ui.viewSwitch.OnChanged
	ui.viewSwitch.OnChanged = nil
	ui.viewSwitch.SetSelected(viewModeLabel(ui.localization, mode))
	ui.viewSwitch.OnChanged = handler
}

// onViewSwitch swaps between the list and table views over the same rows
func (ui *RootUI) onViewSwitch(label string) {
	for _, mode := range ui.settings.GetViewModeOptions() {
		if viewModeLabel(ui.localization, mode) != label || mode == ui.settings.GetViewMode() {
			continue
		}
		ui.settings.SetViewMode(mode)
		ui.buildView(mode)
		log.Printf("View switched to %s", mode)
		return
	}
}

func (ui *RootUI) buildView(mode config.ViewMode) {
	ui.view = newFileView(mode, ui.store, ui.localization, rowActions{
		onCheck:    ui.onCheck,
		onCheckAll: ui.onCheckAll,
		onName:     ui.onNameChanged,
		onReveal:   ui.onRevealFile,
		onOpen:     ui.onOpenFile,
		onRemove:   ui.onRemoveFile,
		details:    ui.detailsText,
	})
	ui.viewHolder.Objects = []fyne.CanvasObject{ui.view.Container()}
	ui.viewHolder.Refresh()
}

// refreshView redraws rows and toolbar state
func (ui *RootUI) refreshView() {
	ui.view.Refresh()
	ui.updateControls()
}

// updateControls enables toolbar buttons for the current state
func (ui *RootUI) updateControls() {
	idle := !ui.scanning && !ui.renaming

	setEnabled(ui.renameBtn, idle && ui.store.AnyChecked())
	setEnabled(ui.undoBtn, idle && len(rename.Renamed(ui.lastResults)) > 0)
	setEnabled(ui.clearBtn, idle && ui.store.Len() > 0)
	setEnabled(ui.addFilesBtn, !ui.renaming)
	setEnabled(ui.addFolderBtn, !ui.renaming)
	setEnabled(ui.addFontsBtn, !ui.renaming)

	if ui.scanning {
		ui.stopBtn.Show()
	} else {
		ui.stopBtn.Hide()
	}
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}

// detailsText is the details column text of a row
func (ui *RootUI) detailsText(f *model.FontFile) string {
	switch {
	case f.Status == model.FileStatusMissing:
		return DashPlaceholder
	case f.LastError != "" && (f.Status == model.FileStatusError || f.Status == model.FileStatusSkipped):
		return IconError + " " + f.LastError
	}

	details := ui.store.Details(f)
	if !details.Found {
		return ui.localization.GetText(KeyNoDetails)
	}
	return details.Summary()
}

// Row callbacks

func (ui *RootUI) onCheck(fileID string, checked bool) {
	ui.store.SetChecked(fileID, checked)
	ui.refreshView()
}

func (ui *RootUI) onCheckAll(checked bool) {
	ui.store.SetAllChecked(checked)
	ui.refreshView()
}

func (ui *RootUI) onNameChanged(fileID, name string) {
	ui.store.SetSelected(fileID, name)
	ui.view.Refresh()
}

// onRevealFile handles revealing a file in the file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Failed to reveal %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile handles opening a font with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Failed to open %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onRemoveFile drops one row from the list
func (ui *RootUI) onRemoveFile(fileID string) {
	path, ok := ui.store.Remove(fileID)
	if !ok {
		return
	}
	ui.scanner.Forget(path)
	if ui.watcher != nil {
		ui.watcher.Untrack(path)
	}
	log.Printf("Removed %s from the list", path)
	ui.refreshView()
}

// showPopUp shows a short message that hides itself
func (ui *RootUI) showPopUp(text string) {
	popUp := widget.NewPopUp(widget.NewLabel(text), ui.window.Canvas())
	popUp.Show()
	time.AfterFunc(PopUpAutoHide, func() {
		fyne.Do(popUp.Hide)
	})
}

// Adding files

// onAddFiles picks a single font file
func (ui *RootUI) onAddFiles() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetLastFolder(filepath.Dir(path))
		ui.startScan([]string{path})
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ui.settings.GetExtensions()))
	ui.setDialogLocation(fd)
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// onAddFolder scans a folder recursively
func (ui *RootUI) onAddFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.settings.SetLastFolder(uri.Path())
		ui.startScan([]string{uri.Path()})
	}, ui.window)
	ui.setDialogLocation(fd)
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog) {
	last := ui.settings.GetLastFolder()
	if last == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(last))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

// onAddUserFonts scans the per-user font folders of this OS
func (ui *RootUI) onAddUserFonts() {
	dirs := platform.UserFontDirs()
	if len(dirs) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeyNoUserFontDirs), ui.window)
		return
	}
	ui.startScan(dirs)
}

// onDropped scans files and folders dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	var paths []string
	for _, uri := range uris {
		if uri.Scheme() != "file" {
			continue
		}
		paths = append(paths, uri.Path())
	}
	ui.startScan(paths)
}

// Scanning

// startScan queues paths for the background scanner
func (ui *RootUI) startScan(paths []string) {
	if len(paths) == 0 || ui.renaming {
		return
	}

	jobID, err := ui.scanner.Start(context.Background(), paths)
	if err != nil {
		if errors.Is(err, scan.ErrScanInProgress) {
			ui.showPopUp(ui.localization.GetText(KeyScanBusy))
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}
	log.Printf("Scan %s queued for %d paths", jobID, len(paths))

	ui.scanning = true
	ui.loadedInJob = 0
	ui.scanFailures = nil
	ui.progress.SetValue(0)
	ui.progress.Show()
	ui.setStatus(ui.localization.Format(KeyScanning, 0, 0))
	ui.updateControls()
}

func (ui *RootUI) onStopScan() {
	ui.scanner.Cancel()
}

// startPolling drains scan events on a timer and applies them on the UI goroutine
func (ui *RootUI) startPolling() {
	if ui.pollCancel != nil {
		ui.pollCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.pollCancel = cancel

	interval := time.Duration(ui.settings.GetPollIntervalMs()) * time.Millisecond
	go scan.Poll(ctx, ui.scanner, interval, func(events []scan.Event) {
		fyne.Do(func() {
			ui.applyScanEvents(events)
		})
	})
}

// applyScanEvents adds loaded files to the store and reports progress
func (ui *RootUI) applyScanEvents(events []scan.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case scan.EventFile:
			if ev.File == nil {
				continue
			}
			ev.File.Checked = ui.settings.GetCheckNewFiles()
			if ui.store.Add(ev.File) {
				ui.loadedInJob++
				ui.track(ev.File.Path)
			}
			if ev.Err != nil {
				ui.scanFailures = append(ui.scanFailures, fmt.Sprintf("%s: %v", filepath.Base(ev.Path), ev.Err))
			}
		case scan.EventError:
			ui.scanFailures = append(ui.scanFailures, fmt.Sprintf("%s: %v", filepath.Base(ev.Path), ev.Err))
		case scan.EventDone:
			ui.finishScan(ev)
			continue
		}

		if ev.Total > 0 {
			ui.progress.SetValue(float64(ev.Done) / float64(ev.Total))
			ui.setStatus(ui.localization.Format(KeyScanning, ev.Done, ev.Total))
		}
	}
	ui.refreshView()
}

func (ui *RootUI) finishScan(ev scan.Event) {
	ui.scanning = false
	ui.progress.Hide()

	if ev.Err != nil {
		ui.setStatus(ui.localization.Format(KeyScanCancelled, ev.Done, ev.Total))
	} else {
		ui.setStatus(ui.localization.Format(KeyScanDone, ui.loadedInJob))
	}

	if len(ui.scanFailures) > 0 {
		message := ui.localization.GetText(KeyScanFailures) + "\n" + ui.limitedList(ui.scanFailures, MaxListedFailures)
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), message, ui.window)
		ui.scanFailures = nil
	}
}

// limitedList joins at most limit lines and notes how many were left out
func (ui *RootUI) limitedList(lines []string, limit int) string {
	if len(lines) <= limit {
		return strings.Join(lines, "\n")
	}
	shown := strings.Join(lines[:limit], "\n")
	return shown + "\n" + ui.localization.Format(KeyAndMore, len(lines)-limit)
}

// Watching

// configureWatcher starts or stops the watcher to match the settings
func (ui *RootUI) configureWatcher() {
	if !ui.settings.GetWatchForChanges() {
		ui.stopWatcher()
		return
	}
	if ui.watcher != nil {
		return
	}

	w, err := watch.New(watch.DefaultDebounce, func(paths []string) {
		fyne.Do(func() {
			ui.onFilesMissing(paths)
		})
	})
	if err != nil {
		log.Printf("File watcher unavailable: %v", err)
		return
	}
	ui.watcher = w
	for _, f := range ui.store.All() {
		ui.track(f.Path)
	}
}

func (ui *RootUI) stopWatcher() {
	if ui.watcher == nil {
		return
	}
	if err := ui.watcher.Close(); err != nil {
		log.Printf("Failed to close file watcher: %v", err)
	}
	ui.watcher = nil
}

func (ui *RootUI) track(path string) {
	if ui.watcher == nil {
		return
	}
	if err := ui.watcher.Track(path); err != nil {
		log.Printf("Failed to watch %s: %v", path, err)
	}
}

func (ui *RootUI) untrack(path string) {
	if ui.watcher != nil {
		ui.watcher.Untrack(path)
	}
}

// onFilesMissing marks rows whose files vanished outside the application
func (ui *RootUI) onFilesMissing(paths []string) {
	ids := ui.store.MarkMissing(paths)
	if len(ids) == 0 {
		return
	}
	for _, path := range paths {
		ui.scanner.Forget(path)
	}
	ui.setStatus(ui.localization.Format(KeyFilesMissing, len(ids)))
	ui.refreshView()
}

// Settings

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies settings that take effect without a restart
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.scanner.SetExtensions(ui.settings.GetExtensions())
	ui.startPolling()
	ui.configureWatcher()

	ui.buildView(ui.settings.GetViewMode())
	ui.refreshUITexts()
	ui.createMenu()
	ui.updateControls()
}
