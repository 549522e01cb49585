package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/model"
	"github.com/fleetview/fleetview/internal/view"
)

// OwnerCard is a single owner row with inline editing. Saving an edit only
// updates the displayed values; the backend has no owner update endpoint, so
// the change lives until the next reload.
type OwnerCard struct {
	widget.BaseWidget

	root  *RootUI
	owner model.Owner

	onDeleted func()

	editing bool

	nameLabel  *widget.Label
	emailLabel *widget.Label
	idLabel    *widget.Label
	nameEntry  *widget.Entry
	emailEntry *widget.Entry
	errorLabel *widget.Label

	editBtn   *widget.Button
	saveBtn   *widget.Button
	cancelBtn *widget.Button
	deleteBtn *widget.Button

	box *fyne.Container
}

// NewOwnerCard creates a card for the given owner
func NewOwnerCard(root *RootUI, owner model.Owner, onDeleted func()) *OwnerCard {
	c := &OwnerCard{
		root:      root,
		owner:     owner,
		onDeleted: onDeleted,
	}

	c.nameLabel = widget.NewLabel(owner.Name)
	c.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.emailLabel = widget.NewLabel(owner.DisplayEmail())
	c.idLabel = widget.NewLabel(owner.DisplayID())

	c.nameEntry = widget.NewEntry()
	c.emailEntry = widget.NewEntry()

	c.errorLabel = widget.NewLabel("")
	c.errorLabel.Importance = widget.DangerImportance
	c.errorLabel.Hide()

	c.editBtn = widget.NewButton(root.localization.GetText(KeyEdit), c.startEdit)
	c.saveBtn = widget.NewButton(root.localization.GetText(KeySave), c.saveEdit)
	c.saveBtn.Importance = widget.HighImportance
	c.cancelBtn = widget.NewButton(root.localization.GetText(KeyCancel), c.cancelEdit)
	c.deleteBtn = widget.NewButton(root.localization.GetText(KeyDelete), c.confirmDelete)
	c.deleteBtn.Importance = widget.DangerImportance

	c.box = container.NewVBox()
	c.rebuild()

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *OwnerCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(c.box))
}

func (c *OwnerCard) rebuild() {
	if c.editing {
		c.box.Objects = []fyne.CanvasObject{
			c.nameEntry,
			c.emailEntry,
			c.errorLabel,
			container.NewHBox(c.saveBtn, c.cancelBtn),
			widget.NewSeparator(),
		}
	} else {
		c.box.Objects = []fyne.CanvasObject{
			c.nameLabel,
			c.emailLabel,
			c.idLabel,
			container.NewHBox(c.editBtn, c.deleteBtn),
			widget.NewSeparator(),
		}
	}
	c.box.Refresh()
}

func (c *OwnerCard) startEdit() {
	c.nameEntry.SetText(c.owner.Name)
	c.emailEntry.SetText(c.owner.Email)
	c.errorLabel.Hide()
	c.editing = true
	c.rebuild()
}

func (c *OwnerCard) cancelEdit() {
	c.editing = false
	c.rebuild()
}

func (c *OwnerCard) saveEdit() {
	if verr := view.RequireNonEmpty("name", c.nameEntry.Text, c.root.localization.GetText(KeyEnterOwnerName)); verr != nil {
		c.errorLabel.SetText(verr.Message)
		c.errorLabel.Show()
		return
	}

	c.owner.Name = c.nameEntry.Text
	c.owner.Email = c.emailEntry.Text

	c.nameLabel.SetText(c.owner.Name)
	c.emailLabel.SetText(c.owner.DisplayEmail())

	c.editing = false
	c.rebuild()
}

func (c *OwnerCard) confirmDelete() {
	dialog.ShowConfirm(
		c.root.localization.GetText(KeyConfirmDeleteTitle),
		c.root.localization.GetText(KeyConfirmDeleteOwner),
		func(confirmed bool) {
			if !confirmed {
				return
			}

			go func() {
				err := c.root.client.DeleteOwner(context.Background(), c.owner.ID)
				if err != nil {
					log.Printf("Failed to delete owner %d: %v", c.owner.ID, err)
					return
				}

				fyne.Do(c.onDeleted)
			}()
		},
		c.root.window,
	)
}
