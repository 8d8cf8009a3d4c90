package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the scan and rename services and renders loaded
// fonts as a checkbox list or a table. All UI strings are localized via Localization.
