package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/font-renamer/internal/config"
	"github.com/ytget/font-renamer/internal/platform"
	"github.com/ytget/font-renamer/internal/rename"
	"github.com/ytget/font-renamer/internal/scan"
	"github.com/ytget/font-renamer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.font-renamer"
	AppName = "Font Renamer"

	WindowWidth  = 1000
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Font Renamer v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Apply compact theme, with the configured CJK font if any
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetUIFontPath()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if settings.GetWriteJournal() {
		if err := platform.CreateDirectoryIfNotExists(settings.GetJournalDirectory()); err != nil {
			fmt.Printf("failed to ensure journal dir: %v\n", err)
		}
	}

	// Initialize services
	scanSvc := scan.NewService(settings.GetExtensions())
	renameSvc := rename.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, scanSvc, renameSvc)

	// Show and run
	myWindow.ShowAndRun()
}
