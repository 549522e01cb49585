package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fleetview/fleetview/internal/api"
	"github.com/fleetview/fleetview/internal/config"
	"github.com/fleetview/fleetview/internal/session"
	"github.com/fleetview/fleetview/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.fleetview.fleetview")
	myWindow := myApp.NewWindow("FleetView")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	client, err := api.NewClient(settings.GetServerURL(), api.WithTokenFunc(func() string {
		return myApp.Preferences().String(session.KeyToken)
	}))
	if err != nil {
		log.Fatalf("invalid server URL %q: %v", settings.GetServerURL(), err)
	}

	sessions := session.NewStore(myApp, client)
	sessions.Restore()

	root := ui.NewRootUI(myWindow, myApp, client, sessions)
	root.ShowHome()

	myWindow.ShowAndRun()
}
