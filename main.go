package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/docforge/docforge/internal/backend"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/job"
	"github.com/docforge/docforge/internal/platform"
	"github.com/docforge/docforge/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.docforge.desktop"
	AppName = "DocForge"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("DocForge v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	client := backend.NewClient(settings.GetBackendURL())
	pollInterval := time.Duration(settings.GetPollIntervalSeconds()) * time.Second
	jobSvc := job.NewService(client, pollInterval)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, jobSvc)

	// Show and run
	myWindow.ShowAndRun()
}
