package ui

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/api"
)

// LoginForm is the username/password login view
type LoginForm struct {
	root *RootUI

	title         *widget.Label
	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	errorLabel    *widget.Label
	submitBtn     *widget.Button

	content fyne.CanvasObject
}

// NewLoginForm creates the login view
func NewLoginForm(root *RootUI) *LoginForm {
	f := &LoginForm{root: root}

	f.title = widget.NewLabel(root.localization.GetText(KeyLoginTitle))
	f.title.TextStyle = fyne.TextStyle{Bold: true}
	f.title.Alignment = fyne.TextAlignCenter

	f.usernameEntry = widget.NewEntry()
	f.usernameEntry.SetPlaceHolder(root.localization.GetText(KeyUsername))

	f.passwordEntry = widget.NewPasswordEntry()
	f.passwordEntry.SetPlaceHolder(root.localization.GetText(KeyPassword))
	f.passwordEntry.OnSubmitted = func(string) { f.onSubmit() }

	f.errorLabel = widget.NewLabel("")
	f.errorLabel.Importance = widget.DangerImportance
	f.errorLabel.Hide()

	f.submitBtn = widget.NewButton(root.localization.GetText(KeyLoginTitle), f.onSubmit)
	f.submitBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		f.title,
		f.usernameEntry,
		f.passwordEntry,
		f.errorLabel,
		f.submitBtn,
	)

	f.content = container.NewCenter(container.NewGridWrap(fyne.NewSize(FormMinWidth, form.MinSize().Height), form))
	return f
}

// Content returns the view's root object
func (f *LoginForm) Content() fyne.CanvasObject {
	return f.content
}

// Reset clears the entered credentials and any previous error
func (f *LoginForm) Reset() {
	f.usernameEntry.SetText("")
	f.passwordEntry.SetText("")
	f.clearError()
}

// RefreshTexts updates texts with current language
func (f *LoginForm) RefreshTexts() {
	f.title.SetText(f.root.localization.GetText(KeyLoginTitle))
	f.usernameEntry.SetPlaceHolder(f.root.localization.GetText(KeyUsername))
	f.passwordEntry.SetPlaceHolder(f.root.localization.GetText(KeyPassword))
	f.submitBtn.SetText(f.root.localization.GetText(KeyLoginTitle))
}

func (f *LoginForm) showError(message string) {
	f.errorLabel.SetText(message)
	f.errorLabel.Show()
}

func (f *LoginForm) clearError() {
	f.errorLabel.SetText("")
	f.errorLabel.Hide()
}

func (f *LoginForm) onSubmit() {
	username := f.usernameEntry.Text
	password := f.passwordEntry.Text

	f.clearError()
	f.submitBtn.Disable()

	go func() {
		err := f.root.sessions.Login(context.Background(), username, password)

		fyne.Do(func() {
			f.submitBtn.Enable()

			if err != nil {
				var authErr *api.AuthenticationError
				if errors.As(err, &authErr) {
					f.showError(f.root.localization.GetText(KeyInvalidCredentials))
				} else {
					f.showError(err.Error())
				}
				log.Printf("Login failed for %q: %v", username, err)
				return
			}

			log.Printf("Logged in as %q", username)
			f.root.onLoggedIn()
		})
	}()
}
