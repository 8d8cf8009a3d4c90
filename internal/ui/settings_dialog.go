package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-renamer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect    *widget.Select
	viewSelect        *widget.Select
	fontEntry         *widget.Entry
	extensionsEntry   *widget.Entry
	pollEntry         *widget.Entry
	checkNewFiles     *widget.Check
	watchChanges      *widget.Check
	keepList          *widget.Check
	writeJournal      *widget.Check
	journalEntry      *widget.Entry
	languageCodes     []string
	languageLabels    []string
	viewModes         []config.ViewMode
	viewLabels        []string
	previousFontValue string
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a successful save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	options := sd.settings.GetLanguageOptions()
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	for _, code := range sd.languageCodes {
		sd.languageLabels = append(sd.languageLabels, options[code])
	}
	sd.languageSelect = widget.NewSelect(sd.languageLabels, nil)

	sd.viewModes = sd.settings.GetViewModeOptions()
	for _, mode := range sd.viewModes {
		sd.viewLabels = append(sd.viewLabels, viewModeLabel(l, mode))
	}
	sd.viewSelect = widget.NewSelect(sd.viewLabels, nil)

	sd.fontEntry = widget.NewEntry()
	sd.fontEntry.SetPlaceHolder(l.GetText(KeyUIFontHint))
	browseFontBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseFont)
	fontRow := container.NewBorder(nil, nil, nil, browseFontBtn, sd.fontEntry)

	sd.extensionsEntry = widget.NewEntry()
	sd.extensionsEntry.SetPlaceHolder(".ttf, .otf, .ttc, .otc")

	sd.pollEntry = widget.NewEntry()
	sd.pollEntry.SetPlaceHolder(strconv.Itoa(config.MinPollIntervalMs) + "-" + strconv.Itoa(config.MaxPollIntervalMs))

	sd.checkNewFiles = widget.NewCheck(l.GetText(KeyCheckNewFiles), nil)
	sd.watchChanges = widget.NewCheck(l.GetText(KeyWatchChanges), nil)
	sd.keepList = widget.NewCheck(l.GetText(KeyKeepList), nil)
	sd.writeJournal = widget.NewCheck(l.GetText(KeyWriteJournal), nil)

	sd.journalEntry = widget.NewEntry()
	browseJournalBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseJournalDir)
	journalRow := container.NewBorder(nil, nil, nil, browseJournalBtn, sd.journalEntry)

	form := container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyInterfaceSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewLabel(l.GetText(KeyViewMode)+":"),
		sd.viewSelect,
		widget.NewLabel(l.GetText(KeyUIFont)+":"),
		fontRow,

		widget.NewLabelWithStyle(l.GetText(KeyScanSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyExtensions)+":"),
		sd.extensionsEntry,
		widget.NewLabel(l.GetText(KeyPollInterval)+":"),
		sd.pollEntry,
		sd.checkNewFiles,
		sd.watchChanges,

		widget.NewLabelWithStyle(l.GetText(KeyRenameSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		sd.keepList,
		sd.writeJournal,
		widget.NewLabel(l.GetText(KeyJournalDir)+":"),
		journalRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func viewModeLabel(l *Localization, mode config.ViewMode) string {
	if mode == config.ViewTable {
		return l.GetText(KeyViewTable)
	}
	return l.GetText(KeyViewList)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}
	mode := sd.settings.GetViewMode()
	for i, m := range sd.viewModes {
		if m == mode {
			sd.viewSelect.SetSelectedIndex(i)
		}
	}

	sd.previousFontValue = sd.settings.GetUIFontPath()
	sd.fontEntry.SetText(sd.previousFontValue)
	sd.extensionsEntry.SetText(strings.Join(sd.settings.GetExtensions(), ", "))
	sd.pollEntry.SetText(strconv.Itoa(sd.settings.GetPollIntervalMs()))
	sd.checkNewFiles.SetChecked(sd.settings.GetCheckNewFiles())
	sd.watchChanges.SetChecked(sd.settings.GetWatchForChanges())
	sd.keepList.SetChecked(sd.settings.GetKeepListAfterRename())
	sd.writeJournal.SetChecked(sd.settings.GetWriteJournal())
	sd.journalEntry.SetText(sd.settings.GetJournalDirectory())
}

// onBrowseFont picks the interface font file
func (sd *SettingsDialog) onBrowseFont() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.fontEntry.SetText(reader.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter(sd.settings.GetExtensions()))
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// onBrowseJournalDir handles directory browsing
func (sd *SettingsDialog) onBrowseJournalDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.journalEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if i := sd.languageSelect.SelectedIndex(); i >= 0 && i < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}
	if i := sd.viewSelect.SelectedIndex(); i >= 0 && i < len(sd.viewModes) {
		sd.settings.SetViewMode(sd.viewModes[i])
	}

	sd.settings.SetUIFontPath(sd.fontEntry.Text)
	sd.settings.SetExtensions(config.ParseExtensions(sd.extensionsEntry.Text))

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.pollEntry.Text)); err == nil {
		sd.settings.SetPollIntervalMs(ms)
	}

	sd.settings.SetCheckNewFiles(sd.checkNewFiles.Checked)
	sd.settings.SetWatchForChanges(sd.watchChanges.Checked)
	sd.settings.SetKeepListAfterRename(sd.keepList.Checked)
	sd.settings.SetWriteJournal(sd.writeJournal.Checked)
	sd.settings.SetJournalDirectory(sd.journalEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if strings.TrimSpace(sd.fontEntry.Text) != sd.previousFontValue {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// ShowSettingsDialog opens the settings dialog over window
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}
