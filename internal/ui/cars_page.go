package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fleetview/fleetview/internal/model"
	"github.com/fleetview/fleetview/internal/view"
)

// CarsPage is the paginated car collection view
type CarsPage struct {
	root *RootUI

	status model.ViewStatus
	err    error
	cars   []model.Car

	query     string
	sortField view.CarSortField
	sortOrder view.SortOrder
	page      int

	title       *widget.Label
	searchEntry *widget.Entry
	sortBrand   *widget.Button
	sortYear    *widget.Button
	orderBtn    *widget.Button
	exportBtn   *widget.Button

	brandEntry *widget.Entry
	modelEntry *widget.Entry
	yearEntry  *widget.Entry
	ownerEntry *widget.Entry
	addBtn     *widget.Button
	formError  *widget.Label

	statusLabel *widget.Label
	list        *fyne.Container
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	pageLabel   *widget.Label

	content fyne.CanvasObject
}

// NewCarsPage creates the cars view
func NewCarsPage(root *RootUI) *CarsPage {
	p := &CarsPage{
		root:      root,
		status:    model.ViewStatusLoading,
		sortField: view.CarSortBrand,
		sortOrder: view.SortAsc,
		page:      1,
	}

	p.title = widget.NewLabel(root.localization.GetText(KeyCarsTitle))
	p.title.TextStyle = fyne.TextStyle{Bold: true}

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(root.localization.GetText(KeySearchPlaceholder))
	p.searchEntry.OnChanged = func(q string) {
		p.query = q
		p.page = 1
		p.refreshList()
	}

	p.sortBrand = widget.NewButton(root.localization.GetText(KeySortByBrand), func() {
		p.setSortField(view.CarSortBrand)
	})
	p.sortYear = widget.NewButton(root.localization.GetText(KeySortByYear), func() {
		p.setSortField(view.CarSortYear)
	})
	p.orderBtn = widget.NewButton(root.localization.GetText(KeySortAsc), p.toggleOrder)
	p.exportBtn = widget.NewButton(root.localization.GetText(KeyExportCSV), p.onExport)

	p.brandEntry = widget.NewEntry()
	p.brandEntry.SetPlaceHolder(root.localization.GetText(KeyBrand))
	p.modelEntry = widget.NewEntry()
	p.modelEntry.SetPlaceHolder(root.localization.GetText(KeyModel))
	p.yearEntry = widget.NewEntry()
	p.yearEntry.SetPlaceHolder(root.localization.GetText(KeyYear))
	p.ownerEntry = widget.NewEntry()
	p.ownerEntry.SetPlaceHolder(root.localization.GetText(KeyOwnerID))
	p.addBtn = widget.NewButton(root.localization.GetText(KeyAddCar), p.onAdd)
	p.addBtn.Importance = widget.HighImportance
	p.formError = widget.NewLabel("")
	p.formError.Importance = widget.DangerImportance
	p.formError.Hide()

	p.statusLabel = widget.NewLabel("")
	p.list = container.NewVBox()

	p.prevBtn = widget.NewButton(root.localization.GetText(KeyPrevPage), func() {
		p.page--
		p.refreshList()
	})
	p.nextBtn = widget.NewButton(root.localization.GetText(KeyNextPage), func() {
		p.page++
		p.refreshList()
	})
	p.pageLabel = widget.NewLabel("")

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(p.sortBrand, p.sortYear, p.orderBtn),
		p.exportBtn,
		p.searchEntry,
	)
	addForm := container.NewVBox(
		container.NewGridWithColumns(4, p.brandEntry, p.modelEntry, p.yearEntry, p.ownerEntry),
		p.formError,
		p.addBtn,
	)
	pager := container.NewHBox(p.prevBtn, p.pageLabel, p.nextBtn)

	p.content = container.NewBorder(
		container.NewVBox(p.title, toolbar, addForm, widget.NewSeparator()),
		container.NewCenter(pager),
		nil, nil,
		container.NewVScroll(container.NewVBox(p.statusLabel, p.list)),
	)
	return p
}

// Content returns the view's root object
func (p *CarsPage) Content() fyne.CanvasObject {
	return p.content
}

// RefreshTexts updates texts with current language
func (p *CarsPage) RefreshTexts() {
	l := p.root.localization
	p.title.SetText(l.GetText(KeyCarsTitle))
	p.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	p.sortBrand.SetText(l.GetText(KeySortByBrand))
	p.sortYear.SetText(l.GetText(KeySortByYear))
	p.exportBtn.SetText(l.GetText(KeyExportCSV))
	p.brandEntry.SetPlaceHolder(l.GetText(KeyBrand))
	p.modelEntry.SetPlaceHolder(l.GetText(KeyModel))
	p.yearEntry.SetPlaceHolder(l.GetText(KeyYear))
	p.ownerEntry.SetPlaceHolder(l.GetText(KeyOwnerID))
	p.addBtn.SetText(l.GetText(KeyAddCar))
	p.prevBtn.SetText(l.GetText(KeyPrevPage))
	p.nextBtn.SetText(l.GetText(KeyNextPage))
	p.refreshOrderButton()
	p.refreshList()
}

// Reload fetches the car collection from the server and replaces the local
// copy wholesale. Responses are applied in arrival order.
func (p *CarsPage) Reload() {
	p.status = model.ViewStatusLoading
	p.err = nil
	p.refreshList()

	go func() {
		cars, err := p.root.client.FetchCars(context.Background())

		fyne.Do(func() {
			if err != nil {
				log.Printf("Failed to fetch cars: %v", err)
				p.status = model.ViewStatusError
				p.err = err
			} else {
				p.status = model.ViewStatusReady
				p.cars = cars
			}
			p.refreshList()
		})
	}()
}

func (p *CarsPage) setSortField(field view.CarSortField) {
	if p.sortField == field {
		p.toggleOrder()
		return
	}
	p.sortField = field
	p.sortOrder = view.SortAsc
	p.refreshOrderButton()
	p.refreshList()
}

func (p *CarsPage) toggleOrder() {
	p.sortOrder = p.sortOrder.Toggle()
	p.refreshOrderButton()
	p.refreshList()
}

func (p *CarsPage) refreshOrderButton() {
	if p.sortOrder == view.SortAsc {
		p.orderBtn.SetText(p.root.localization.GetText(KeySortAsc))
	} else {
		p.orderBtn.SetText(p.root.localization.GetText(KeySortDesc))
	}
}

// visible returns the filtered and sorted collection the page operates on
func (p *CarsPage) visible() []model.Car {
	return view.SortCars(view.FilterCars(p.cars, p.query), p.sortField, p.sortOrder)
}

func (p *CarsPage) refreshList() {
	switch p.status {
	case model.ViewStatusLoading:
		p.statusLabel.SetText(p.root.localization.GetText(KeyLoadingCars))
		p.statusLabel.Show()
	case model.ViewStatusError:
		p.statusLabel.SetText(p.err.Error())
		p.statusLabel.Show()
	default:
		p.statusLabel.Hide()
	}

	cars := p.visible()
	total := view.TotalPages(len(cars), view.CarsPerPage)
	p.page = view.ClampPage(p.page, len(cars), view.CarsPerPage)
	pageItems := view.Paginate(cars, p.page, view.CarsPerPage)

	p.pageLabel.SetText(fmt.Sprintf(PageLabelFormat, p.page, total))
	if p.page == 1 {
		p.prevBtn.Disable()
	} else {
		p.prevBtn.Enable()
	}
	if p.page == total {
		p.nextBtn.Disable()
	} else {
		p.nextBtn.Enable()
	}

	p.list.Objects = nil
	if p.status == model.ViewStatusReady && len(pageItems) == 0 {
		p.list.Add(widget.NewLabel(p.root.localization.GetText(KeyNoCars)))
	}
	for _, car := range pageItems {
		p.list.Add(NewCarCard(p.root, car, p.Reload))
	}
	p.list.Refresh()
}

func (p *CarsPage) onAdd() {
	if verr := view.RequireNonEmpty("brand", p.brandEntry.Text, p.root.localization.GetText(KeyEnterBrand)); verr != nil {
		p.formError.SetText(verr.Message)
		p.formError.Show()
		return
	}
	p.formError.Hide()

	draft := model.CarDraft{
		Brand:   p.brandEntry.Text,
		Model:   p.modelEntry.Text,
		Year:    parseIntOrZero(p.yearEntry.Text),
		OwnerID: parseIntOrZero(p.ownerEntry.Text),
	}

	p.addBtn.Disable()

	go func() {
		_, err := p.root.client.CreateCar(context.Background(), draft)

		fyne.Do(func() {
			p.addBtn.Enable()

			if err != nil {
				log.Printf("Failed to create car: %v", err)
				p.formError.SetText(err.Error())
				p.formError.Show()
				return
			}

			p.brandEntry.SetText("")
			p.modelEntry.SetText("")
			p.yearEntry.SetText("")
			p.ownerEntry.SetText("")
			p.Reload()
		})
	}()
}

func (p *CarsPage) onExport() {
	data, err := view.CarsCSV(p.visible())
	if err != nil {
		if errors.Is(err, view.ErrNoExportData) {
			p.formError.SetText(p.root.localization.GetText(KeyNoExportData))
			p.formError.Show()
			return
		}
		dialog.ShowError(err, p.root.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(data); err != nil {
			log.Printf("Failed to write CSV export: %v", err)
		}
	}, p.root.window)
	saveDialog.SetFileName(view.CarsExportFilename)
	saveDialog.Show()
}
