package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/config"
)

// ShowSettingsDialog displays the application settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization) {
	serverEntry := widget.NewEntry()
	serverEntry.SetText(settings.GetServerURL())
	serverEntry.SetPlaceHolder(config.DefaultServerURL)

	items := []*widget.FormItem{
		widget.NewFormItem(localization.GetText(KeyServerURL), serverEntry),
	}

	dialog.ShowForm(localization.GetText(KeySettings), localization.GetText(KeySave), localization.GetText(KeyCancel), items, func(confirmed bool) {
		if !confirmed {
			return
		}

		settings.SetServerURL(serverEntry.Text)
		log.Printf("Settings saved, server URL: %s", settings.GetServerURL())

		dialog.ShowInformation(localization.GetText(KeySettings), localization.GetText(KeySettingsSaved), window)
	}, window)
}
