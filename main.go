package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fleetview/fleetview/internal/api"
	"github.com/fleetview/fleetview/internal/config"
	"github.com/fleetview/fleetview/internal/session"
	"github.com/fleetview/fleetview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fleetview.fleetview"
	AppName = "FleetView"
)

func main() {
	// Log version information
	fmt.Printf("FleetView v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	client, err := api.NewClient(settings.GetServerURL(), api.WithTokenFunc(func() string {
		return myApp.Preferences().String(session.KeyToken)
	}))
	if err != nil {
		log.Fatalf("invalid server URL %q: %v", settings.GetServerURL(), err)
	}

	sessions := session.NewStore(myApp, client)
	sessions.Restore()

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, client, sessions)
	root.ShowHome()

	// Show and run
	myWindow.ShowAndRun()
}
