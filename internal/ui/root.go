package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/api"
	"github.com/fleetview/fleetview/internal/config"
	"github.com/fleetview/fleetview/internal/session"
)

// RootUI represents the main UI structure: the navigation shell and the
// content area the individual views are swapped into.
type RootUI struct {
	window       fyne.Window
	client       *api.Client
	sessions     *session.Store
	settings     *config.Settings
	localization *Localization

	// Navigation bar
	homeBtn     *widget.Button
	ownersBtn   *widget.Button
	carsBtn     *widget.Button
	loginBtn    *widget.Button
	registerBtn *widget.Button
	logoutBtn   *widget.Button

	content *fyne.Container

	// Views
	home         fyne.CanvasObject
	homeTitle    *widget.Label
	homeHint     *widget.Label
	loginForm    *LoginForm
	registerForm *RegisterForm
	ownersPage   *OwnersPage
	carsPage     *CarsPage
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client, sessions *session.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		client:       client,
		sessions:     sessions,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized, session present: %v", sessions.Authenticated())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Navigation bar buttons
	ui.homeBtn = widget.NewButton(ui.localization.GetText(KeyNavHome), ui.ShowHome)
	ui.ownersBtn = widget.NewButton(ui.localization.GetText(KeyNavOwners), ui.ShowOwners)
	ui.carsBtn = widget.NewButton(ui.localization.GetText(KeyNavCars), ui.ShowCars)
	ui.loginBtn = widget.NewButton(ui.localization.GetText(KeyNavLogin), ui.ShowLogin)
	ui.registerBtn = widget.NewButton(ui.localization.GetText(KeyNavRegister), ui.ShowRegister)
	ui.logoutBtn = widget.NewButton(ui.localization.GetText(KeyNavLogout), ui.onLogout)
	ui.logoutBtn.Importance = widget.DangerImportance

	navLeft := container.NewHBox(ui.homeBtn, ui.ownersBtn, ui.carsBtn)
	navRight := container.NewHBox(ui.loginBtn, ui.registerBtn, ui.logoutBtn)
	navbar := container.NewBorder(nil, widget.NewSeparator(), navLeft, navRight)

	// Home view
	ui.homeTitle = widget.NewLabel(ui.localization.GetText(KeyHomeWelcome))
	ui.homeTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.homeTitle.Alignment = fyne.TextAlignCenter
	ui.homeHint = widget.NewLabel(ui.localization.GetText(KeyHomeHint))
	ui.homeHint.Alignment = fyne.TextAlignCenter
	ui.home = container.NewVBox(widget.NewLabel(""), ui.homeTitle, ui.homeHint)

	// Content area the views swap into
	ui.content = container.NewStack(ui.home)

	// Views
	ui.loginForm = NewLoginForm(ui)
	ui.registerForm = NewRegisterForm(ui)
	ui.ownersPage = NewOwnersPage(ui)
	ui.carsPage = NewCarsPage(ui)

	ui.window.SetContent(container.NewBorder(navbar, nil, nil, nil, ui.content))
	ui.refreshNavbar()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.homeBtn.SetText(ui.localization.GetText(KeyNavHome))
	ui.ownersBtn.SetText(ui.localization.GetText(KeyNavOwners))
	ui.carsBtn.SetText(ui.localization.GetText(KeyNavCars))
	ui.loginBtn.SetText(ui.localization.GetText(KeyNavLogin))
	ui.registerBtn.SetText(ui.localization.GetText(KeyNavRegister))
	ui.logoutBtn.SetText(ui.localization.GetText(KeyNavLogout))
	ui.homeTitle.SetText(ui.localization.GetText(KeyHomeWelcome))
	ui.homeHint.SetText(ui.localization.GetText(KeyHomeHint))

	ui.loginForm.RefreshTexts()
	ui.registerForm.RefreshTexts()
	ui.ownersPage.RefreshTexts()
	ui.carsPage.RefreshTexts()
}

// refreshNavbar shows the auth links matching the session presence
func (ui *RootUI) refreshNavbar() {
	if ui.sessions.Authenticated() {
		ui.loginBtn.Hide()
		ui.registerBtn.Hide()
		ui.logoutBtn.Show()
	} else {
		ui.loginBtn.Show()
		ui.registerBtn.Show()
		ui.logoutBtn.Hide()
	}
}

// setView swaps the content area to the given view
func (ui *RootUI) setView(view fyne.CanvasObject) {
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// ShowHome displays the home view
func (ui *RootUI) ShowHome() {
	ui.setView(ui.home)
}

// ShowLogin displays the login form
func (ui *RootUI) ShowLogin() {
	ui.loginForm.Reset()
	ui.setView(ui.loginForm.Content())
}

// ShowRegister displays the registration form
func (ui *RootUI) ShowRegister() {
	ui.registerForm.Reset()
	ui.setView(ui.registerForm.Content())
}

// ShowOwners displays the owners page; unauthenticated visitors are
// redirected to the login view.
func (ui *RootUI) ShowOwners() {
	if !ui.sessions.Authenticated() {
		log.Printf("Owners view requested without session, redirecting to login")
		ui.ShowLogin()
		return
	}
	ui.setView(ui.ownersPage.Content())
	ui.ownersPage.Reload()
}

// ShowCars displays the cars page; unauthenticated visitors are redirected
// to the login view.
func (ui *RootUI) ShowCars() {
	if !ui.sessions.Authenticated() {
		log.Printf("Cars view requested without session, redirecting to login")
		ui.ShowLogin()
		return
	}
	ui.setView(ui.carsPage.Content())
	ui.carsPage.Reload()
}

// onLoggedIn is called by the login form after a successful login
func (ui *RootUI) onLoggedIn() {
	ui.refreshNavbar()
	ui.ShowHome()
}

// onLogout clears the session and returns to the home view
func (ui *RootUI) onLogout() {
	ui.sessions.Logout()
	ui.refreshNavbar()
	ui.ShowHome()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization)
}
