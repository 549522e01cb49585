package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/api"
)

// RegisterForm is the account registration view. A successful registration
// never authenticates; it redirects to the login view after a short delay.
type RegisterForm struct {
	root *RootUI

	title         *widget.Label
	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	errorLabel    *widget.Label
	successLabel  *widget.Label
	submitBtn     *widget.Button

	content fyne.CanvasObject
}

// NewRegisterForm creates the registration view
func NewRegisterForm(root *RootUI) *RegisterForm {
	f := &RegisterForm{root: root}

	f.title = widget.NewLabel(root.localization.GetText(KeyRegisterTitle))
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

	f.successLabel = widget.NewLabel("")
	f.successLabel.Importance = widget.SuccessImportance
	f.successLabel.Hide()

	f.submitBtn = widget.NewButton(root.localization.GetText(KeyRegisterTitle), f.onSubmit)
	f.submitBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		f.title,
		f.usernameEntry,
		f.passwordEntry,
		f.errorLabel,
		f.successLabel,
		f.submitBtn,
	)

	f.content = container.NewCenter(container.NewGridWrap(fyne.NewSize(FormMinWidth, form.MinSize().Height), form))
	return f
}

// Content returns the view's root object
func (f *RegisterForm) Content() fyne.CanvasObject {
	return f.content
}

// Reset clears the entered credentials and any previous messages
func (f *RegisterForm) Reset() {
	f.usernameEntry.SetText("")
	f.passwordEntry.SetText("")
	f.errorLabel.SetText("")
	f.errorLabel.Hide()
	f.successLabel.SetText("")
	f.successLabel.Hide()
}

// RefreshTexts updates texts with current language
func (f *RegisterForm) RefreshTexts() {
	f.title.SetText(f.root.localization.GetText(KeyRegisterTitle))
	f.usernameEntry.SetPlaceHolder(f.root.localization.GetText(KeyUsername))
	f.passwordEntry.SetPlaceHolder(f.root.localization.GetText(KeyPassword))
	f.submitBtn.SetText(f.root.localization.GetText(KeyRegisterTitle))
}

func (f *RegisterForm) showError(message string) {
	f.successLabel.Hide()
	f.errorLabel.SetText(message)
	f.errorLabel.Show()
}

func (f *RegisterForm) onSubmit() {
	username := f.usernameEntry.Text
	password := f.passwordEntry.Text

	f.errorLabel.Hide()
	f.submitBtn.Disable()

	go func() {
		_, err := f.root.sessions.Register(context.Background(), username, password)

		fyne.Do(func() {
			f.submitBtn.Enable()

			if err != nil {
				var regErr *api.RegistrationError
				if errors.As(err, &regErr) {
					f.showError(f.root.localization.GetText(KeyUsernameTaken))
				} else {
					f.showError(err.Error())
				}
				log.Printf("Registration failed for %q: %v", username, err)
				return
			}

			log.Printf("Registered account %q", username)
			f.successLabel.SetText(f.root.localization.GetText(KeyRegisterSuccess))
			f.successLabel.Show()

			go func() {
				time.Sleep(RegisterRedirectDelay)
				fyne.Do(f.root.ShowLogin)
			}()
		})
	}()
}
