package ui

import (
	"context"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/model"
	"github.com/fleetview/fleetview/internal/view"
)

// CarCard is a single car row with inline editing backed by the update
// endpoint. A failed save is logged and the row stays in edit mode.
type CarCard struct {
	widget.BaseWidget

	root *RootUI
	car  model.Car

	onChanged func()

	editing bool

	titleLabel *widget.Label
	yearLabel  *widget.Label
	ownerLabel *widget.Label

	brandEntry *widget.Entry
	modelEntry *widget.Entry
	yearEntry  *widget.Entry
	ownerEntry *widget.Entry
	errorLabel *widget.Label

	editBtn   *widget.Button
	saveBtn   *widget.Button
	cancelBtn *widget.Button
	deleteBtn *widget.Button

	box *fyne.Container
}

// NewCarCard creates a card for the given car
func NewCarCard(root *RootUI, car model.Car, onChanged func()) *CarCard {
	c := &CarCard{
		root:      root,
		car:       car,
		onChanged: onChanged,
	}

	c.titleLabel = widget.NewLabel(car.Brand + " " + car.DisplayModel())
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.yearLabel = widget.NewLabel(car.DisplayYear())
	c.ownerLabel = widget.NewLabel(car.DisplayOwnerID())

	c.brandEntry = widget.NewEntry()
	c.modelEntry = widget.NewEntry()
	c.yearEntry = widget.NewEntry()
	c.ownerEntry = widget.NewEntry()

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
func (c *CarCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(c.box))
}

func (c *CarCard) rebuild() {
	if c.editing {
		c.box.Objects = []fyne.CanvasObject{
			c.brandEntry,
			c.modelEntry,
			container.NewGridWithColumns(2, c.yearEntry, c.ownerEntry),
			c.errorLabel,
			container.NewHBox(c.saveBtn, c.cancelBtn),
			widget.NewSeparator(),
		}
	} else {
		c.box.Objects = []fyne.CanvasObject{
			c.titleLabel,
			c.yearLabel,
			c.ownerLabel,
			container.NewHBox(c.editBtn, c.deleteBtn),
			widget.NewSeparator(),
		}
	}
	c.box.Refresh()
}

func (c *CarCard) startEdit() {
	c.brandEntry.SetText(c.car.Brand)
	c.modelEntry.SetText(c.car.Model)
	c.yearEntry.SetText(strconv.Itoa(c.car.Year))
	c.ownerEntry.SetText(strconv.Itoa(c.car.OwnerID))
	c.errorLabel.Hide()
	c.editing = true
	c.rebuild()
}

func (c *CarCard) cancelEdit() {
	c.editing = false
	c.rebuild()
}

func (c *CarCard) saveEdit() {
	if verr := view.RequireNonEmpty("brand", c.brandEntry.Text, c.root.localization.GetText(KeyEnterBrand)); verr != nil {
		c.errorLabel.SetText(verr.Message)
		c.errorLabel.Show()
		return
	}
	c.errorLabel.Hide()

	draft := model.CarDraft{
		Brand:   c.brandEntry.Text,
		Model:   c.modelEntry.Text,
		Year:    parseIntOrZero(c.yearEntry.Text),
		OwnerID: parseIntOrZero(c.ownerEntry.Text),
	}

	c.saveBtn.Disable()

	go func() {
		updated, err := c.root.client.UpdateCar(context.Background(), c.car.ID, draft)

		fyne.Do(func() {
			c.saveBtn.Enable()

			if err != nil {
				log.Printf("Failed to update car %d: %v", c.car.ID, err)
				return
			}

			c.car = updated
			c.titleLabel.SetText(c.car.Brand + " " + c.car.DisplayModel())
			c.yearLabel.SetText(c.car.DisplayYear())
			c.ownerLabel.SetText(c.car.DisplayOwnerID())

			c.editing = false
			c.rebuild()
			c.onChanged()
		})
	}()
}

func (c *CarCard) confirmDelete() {
	dialog.ShowConfirm(
		c.root.localization.GetText(KeyConfirmDeleteTitle),
		c.root.localization.GetText(KeyConfirmDeleteCar),
		func(confirmed bool) {
			if !confirmed {
				return
			}

			go func() {
				err := c.root.client.DeleteCar(context.Background(), c.car.ID)
				if err != nil {
					log.Printf("Failed to delete car %d: %v", c.car.ID, err)
					return
				}

				fyne.Do(c.onChanged)
			}()
		},
		c.root.window,
	)
}

// parseIntOrZero turns a free-form numeric entry into an int, treating
// anything unparsable as zero.
func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
