package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddFiles         = "add_files"
	KeyAddFolder        = "add_folder"
	KeyAddUserFonts     = "add_user_fonts"
	KeyRename           = "rename"
	KeyUndo             = "undo"
	KeyClear            = "clear"
	KeyStopScan         = "stop_scan"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyViewList         = "view_list"
	KeyViewTable        = "view_table"
	KeySelectAll        = "select_all"
	KeyCurrentName      = "current_name"
	KeyNewName          = "new_name"
	KeyDetails          = "details"
	KeySize             = "size"
	KeyStatus           = "status"
	KeyNoDetails        = "no_details"
	KeyReady            = "ready"
	KeyDropHint         = "drop_hint"
	KeyScanning         = "scanning"
	KeyScanDone         = "scan_done"
	KeyScanCancelled    = "scan_cancelled"
	KeyScanBusy         = "scan_busy"
	KeyScanFailures     = "scan_failures"
	KeyNoUserFontDirs   = "no_user_font_dirs"
	KeyWarning          = "warning"
	KeyInfo             = "info"
	KeyEmptyNewName     = "empty_new_name"
	KeyNothingSelected  = "nothing_selected"
	KeyRenameFailed     = "rename_failed"
	KeyRenameSuccess    = "rename_success"
	KeyRenamedFiles     = "renamed_files"
	KeyNothingRenamed   = "nothing_renamed"
	KeyRenaming         = "renaming"
	KeyUndoDone         = "undo_done"
	KeyNothingToUndo    = "nothing_to_undo"
	KeyJournalSaved     = "journal_saved"
	KeyJournalFailed    = "journal_failed"
	KeyFilesMissing     = "files_missing"
	KeyErrorOpeningFile = "error_opening_file"
	KeyAndMore          = "and_more"

	// Settings dialog
	KeyInterfaceSection = "interface_section"
	KeyScanSection      = "scan_section"
	KeyRenameSection    = "rename_section"
	KeyViewMode         = "view_mode"
	KeyUIFont           = "ui_font"
	KeyUIFontHint       = "ui_font_hint"
	KeyExtensions       = "extensions"
	KeyPollInterval     = "poll_interval"
	KeyCheckNewFiles    = "check_new_files"
	KeyWatchChanges     = "watch_changes"
	KeyKeepList         = "keep_list"
	KeyWriteJournal     = "write_journal"
	KeyJournalDir       = "journal_dir"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(language string) {
	if language == "system" {
		language = systemLanguage(string(lang.SystemLocale()))
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
	}
}

// systemLanguage maps a locale such as "zh-Hans-CN" to a supported language
func systemLanguage(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "zh") {
		return "zh"
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns localized text for key with fmt verbs filled in
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Font Renamer",
		KeyAddFiles:         "Add files",
		KeyAddFolder:        "Add folder",
		KeyAddUserFonts:     "Add my fonts",
		KeyRename:           "Rename selected",
		KeyUndo:             "Undo last rename",
		KeyClear:            "Clear list",
		KeyStopScan:         "Stop",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyViewList:         "List",
		KeyViewTable:        "Table",
		KeySelectAll:        "Select all",
		KeyCurrentName:      "Current name",
		KeyNewName:          "New name",
		KeyDetails:          "Details",
		KeySize:             "Size",
		KeyStatus:           "Status",
		KeyNoDetails:        "No details",
		KeyReady:            "Ready",
		KeyDropHint:         "Drop font files or folders here",
		KeyScanning:         "Reading fonts... %d/%d",
		KeyScanDone:         "Loaded %d fonts",
		KeyScanCancelled:    "Scan stopped after %d/%d files",
		KeyScanBusy:         "A scan is already running",
		KeyScanFailures:     "Some files could not be read:",
		KeyNoUserFontDirs:   "No user font folder was found on this system.",
		KeyWarning:          "Warning",
		KeyInfo:             "Info",
		KeyEmptyNewName:     "New file name cannot be empty:",
		KeyNothingSelected:  "Please select the font files to rename.",
		KeyRenameFailed:     "Could not rename %s",
		KeyRenameSuccess:    "Rename complete",
		KeyRenamedFiles:     "The following files were renamed:",
		KeyNothingRenamed:   "No file was renamed.",
		KeyRenaming:         "Renaming... %d/%d",
		KeyUndoDone:         "Restored %d files",
		KeyNothingToUndo:    "There is no rename to undo.",
		KeyJournalSaved:     "Journal saved to %s",
		KeyJournalFailed:    "Could not write rename journal",
		KeyFilesMissing:     "%d files were removed or moved outside the application",
		KeyErrorOpeningFile: "Error opening file",
		KeyAndMore:          "... and %d more",

		KeyInterfaceSection: "Interface",
		KeyScanSection:      "Scanning",
		KeyRenameSection:    "Renaming",
		KeyViewMode:         "View",
		KeyUIFont:           "Interface font",
		KeyUIFontHint:       "Font file with CJK glyphs (optional)",
		KeyExtensions:       "Font extensions",
		KeyPollInterval:     "Update interval (ms)",
		KeyCheckNewFiles:    "Check newly added files",
		KeyWatchChanges:     "Detect files removed outside the application",
		KeyKeepList:         "Keep list after rename",
		KeyWriteJournal:     "Write a CSV journal for each rename",
		KeyJournalDir:       "Journal folder",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "The interface font is applied after restart.",
	}

	l.texts["zh"] = map[string]string{
		KeyAppTitle:         "字体重命名工具",
		KeyAddFiles:         "添加文件",
		KeyAddFolder:        "添加文件夹",
		KeyAddUserFonts:     "添加我的字体",
		KeyRename:           "重命名选中的文件",
		KeyUndo:             "撤销上次重命名",
		KeyClear:            "清空列表",
		KeyStopScan:         "停止",
		KeySettings:         "设置",
		KeyFile:             "文件",
		KeyLanguage:         "语言",
		KeyViewList:         "列表",
		KeyViewTable:        "表格",
		KeySelectAll:        "全选",
		KeyCurrentName:      "当前文件名",
		KeyNewName:          "重命名的名字",
		KeyDetails:          "详细信息",
		KeySize:             "大小",
		KeyStatus:           "状态",
		KeyNoDetails:        "无详细信息",
		KeyReady:            "就绪",
		KeyDropHint:         "将字体文件或文件夹拖放到此处",
		KeyScanning:         "正在读取字体... %d/%d",
		KeyScanDone:         "已加载 %d 个字体",
		KeyScanCancelled:    "扫描已停止（%d/%d）",
		KeyScanBusy:         "扫描正在进行中",
		KeyScanFailures:     "以下文件无法读取：",
		KeyNoUserFontDirs:   "未找到用户字体文件夹。",
		KeyWarning:          "警告",
		KeyInfo:             "提示",
		KeyEmptyNewName:     "新文件名不能为空！",
		KeyNothingSelected:  "请选择要重命名的字体文件！",
		KeyRenameFailed:     "无法重命名文件 %s",
		KeyRenameSuccess:    "重命名成功",
		KeyRenamedFiles:     "以下文件已成功重命名：",
		KeyNothingRenamed:   "没有文件被重命名。",
		KeyRenaming:         "正在重命名... %d/%d",
		KeyUndoDone:         "已恢复 %d 个文件",
		KeyNothingToUndo:    "没有可撤销的重命名。",
		KeyJournalSaved:     "日志已保存到 %s",
		KeyJournalFailed:    "无法写入重命名日志",
		KeyFilesMissing:     "%d 个文件已在外部被删除或移动",
		KeyErrorOpeningFile: "打开文件出错",
		KeyAndMore:          "... 还有 %d 个",

		KeyInterfaceSection: "界面",
		KeyScanSection:      "扫描",
		KeyRenameSection:    "重命名",
		KeyViewMode:         "视图",
		KeyUIFont:           "界面字体",
		KeyUIFontHint:       "包含中文字形的字体文件（可选）",
		KeyExtensions:       "字体扩展名",
		KeyPollInterval:     "刷新间隔（毫秒）",
		KeyCheckNewFiles:    "自动勾选新添加的文件",
		KeyWatchChanges:     "检测在外部被删除的文件",
		KeyKeepList:         "重命名后保留列表",
		KeyWriteJournal:     "每次重命名写入 CSV 日志",
		KeyJournalDir:       "日志文件夹",
		KeySave:             "保存",
		KeyCancel:           "取消",
		KeyBrowse:           "浏览",
		KeySettingsSaved:    "设置已保存！",
		KeyRestartRequired:  "界面字体将在重启后生效。",
	}
}
