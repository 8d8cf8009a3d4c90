package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconMissing  = "⚠"
	IconDone     = "✓"
)

// Text fragments
const (
	DashPlaceholder = "—"
	RenameArrow     = " -> "
)

// Layout sizing (FileRow / lists)
const (
	StatusLabelWidth float32 = 84
	RowMinWidth      float32 = 560
	RowMinHeight     float32 = 40
	NameColumnWidth  float32 = 220
)

// Table column widths
const (
	TableCheckWidth   float32 = 36
	TableNameWidth    float32 = 220
	TableNewNameWidth float32 = 240
	TableSizeWidth    float32 = 80
	TableStatusWidth  float32 = 90
	TableDetailsWidth float32 = 420
	TableActionsWidth float32 = 110
)

// Dialog sizes
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 520
	FileDialogWidth      float32 = 760
	FileDialogHeight     float32 = 520
)

// Message limits
const (
	MaxListedFailures = 10
	MaxErrorDialogs   = 5
)

// Timings
const (
	PopUpAutoHide = 1500 * time.Millisecond
)
