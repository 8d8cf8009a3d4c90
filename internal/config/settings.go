package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/font-renamer/internal/platform"
	"github.com/ytget/font-renamer/internal/scan"
)

// ViewMode selects how loaded files are presented
type ViewMode string

const (
	ViewList  ViewMode = "list"
	ViewTable ViewMode = "table"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyViewMode        = "view_mode"
	KeyLastFolder      = "last_folder"
	KeyExtensions      = "font_extensions"
	KeyKeepList        = "keep_list_after_rename"
	KeyWriteJournal    = "write_rename_journal"
	KeyJournalDir      = "journal_directory"
	KeyUIFontPath      = "ui_font_path"
	KeyPollIntervalMs  = "scan_poll_interval_ms"
	KeyCheckNewFiles   = "check_new_files"
	KeyWatchForChanges = "watch_for_changes"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultViewMode        = ViewList
	DefaultKeepList        = false
	DefaultWriteJournal    = true
	DefaultPollIntervalMs  = 100
	DefaultCheckNewFiles   = false
	DefaultWatchForChanges = true
)

// Poll interval bounds in milliseconds
const (
	MinPollIntervalMs = 20
	MaxPollIntervalMs = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
	}
}

// GetViewMode returns the configured view mode
func (s *Settings) GetViewMode() ViewMode {
	switch mode := ViewMode(s.app.Preferences().String(KeyViewMode)); mode {
	case ViewList, ViewTable:
		return mode
	default:
		return DefaultViewMode
	}
}

// SetViewMode sets the view mode; unknown modes fall back to the list view
func (s *Settings) SetViewMode(mode ViewMode) {
	if mode != ViewList && mode != ViewTable {
		mode = DefaultViewMode
	}
	s.app.Preferences().SetString(KeyViewMode, string(mode))
}

// GetViewModeOptions returns available view modes
func (s *Settings) GetViewModeOptions() []ViewMode {
	return []ViewMode{ViewList, ViewTable}
}

// GetLastFolder returns the folder last used in a file dialog
func (s *Settings) GetLastFolder() string {
	return s.app.Preferences().String(KeyLastFolder)
}

// SetLastFolder remembers the folder last used in a file dialog
func (s *Settings) SetLastFolder(dir string) {
	s.app.Preferences().SetString(KeyLastFolder, dir)
}

// GetExtensions returns the font file extensions picked up from folders
func (s *Settings) GetExtensions() []string {
	exts := ParseExtensions(s.app.Preferences().String(KeyExtensions))
	if len(exts) == 0 {
		return append([]string(nil), scan.DefaultExtensions...)
	}
	return exts
}

// SetExtensions stores extensions as a comma separated list
func (s *Settings) SetExtensions(exts []string) {
	s.app.Preferences().SetString(KeyExtensions, strings.Join(normalizeExtensions(exts), ","))
}

// ParseExtensions splits a comma or space separated list into ".ext" entries
func ParseExtensions(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	return normalizeExtensions(fields)
}

func normalizeExtensions(exts []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

// GetKeepListAfterRename returns whether renamed rows stay in the list
func (s *Settings) GetKeepListAfterRename() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepList, DefaultKeepList)
}

// SetKeepListAfterRename sets whether renamed rows stay in the list
func (s *Settings) SetKeepListAfterRename(keep bool) {
	s.app.Preferences().SetBool(KeyKeepList, keep)
}

// GetWriteJournal returns whether each rename batch is recorded in a CSV journal
func (s *Settings) GetWriteJournal() bool {
	return s.app.Preferences().BoolWithFallback(KeyWriteJournal, DefaultWriteJournal)
}

// SetWriteJournal sets whether rename batches are journaled
func (s *Settings) SetWriteJournal(write bool) {
	s.app.Preferences().SetBool(KeyWriteJournal, write)
}

// GetJournalDirectory returns the directory for rename journals
func (s *Settings) GetJournalDirectory() string {
	dir := s.app.Preferences().String(KeyJournalDir)
	if dir == "" {
		defaultDir, err := platform.DefaultJournalDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetJournalDirectory sets the directory for rename journals
func (s *Settings) SetJournalDirectory(dir string) {
	s.app.Preferences().SetString(KeyJournalDir, strings.TrimSpace(dir))
}

// GetUIFontPath returns the font file used to render the interface, if any
func (s *Settings) GetUIFontPath() string {
	return s.app.Preferences().String(KeyUIFontPath)
}

// SetUIFontPath sets the font file used to render the interface
func (s *Settings) SetUIFontPath(path string) {
	s.app.Preferences().SetString(KeyUIFontPath, strings.TrimSpace(path))
}

// GetPollIntervalMs returns how often scan results are applied to the view
func (s *Settings) GetPollIntervalMs() int {
	value := s.app.Preferences().Int(KeyPollIntervalMs)
	if value <= 0 {
		s.SetPollIntervalMs(DefaultPollIntervalMs)
		return DefaultPollIntervalMs
	}
	return value
}

// SetPollIntervalMs sets the scan poll interval
func (s *Settings) SetPollIntervalMs(ms int) {
	if ms < MinPollIntervalMs {
		ms = MinPollIntervalMs
	}
	if ms > MaxPollIntervalMs {
		ms = MaxPollIntervalMs
	}
	s.app.Preferences().SetInt(KeyPollIntervalMs, ms)
}

// GetCheckNewFiles returns whether newly loaded rows start checked
func (s *Settings) GetCheckNewFiles() bool {
	return s.app.Preferences().BoolWithFallback(KeyCheckNewFiles, DefaultCheckNewFiles)
}

// SetCheckNewFiles sets whether newly loaded rows start checked
func (s *Settings) SetCheckNewFiles(check bool) {
	s.app.Preferences().SetBool(KeyCheckNewFiles, check)
}

// GetWatchForChanges returns whether loaded files are watched for external removal
func (s *Settings) GetWatchForChanges() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchForChanges, DefaultWatchForChanges)
}

// SetWatchForChanges sets whether loaded files are watched for external removal
func (s *Settings) SetWatchForChanges(watch bool) {
	s.app.Preferences().SetBool(KeyWatchForChanges, watch)
}
