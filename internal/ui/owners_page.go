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

// OwnersPage is the paginated owner collection view
type OwnersPage struct {
	root *RootUI

	status model.ViewStatus
	err    error
	owners []model.Owner

	query     string
	sortField view.OwnerSortField
	sortOrder view.SortOrder
	page      int

	title       *widget.Label
	searchEntry *widget.Entry
	sortName    *widget.Button
	sortEmail   *widget.Button
	orderBtn    *widget.Button
	exportBtn   *widget.Button

	nameEntry  *widget.Entry
	emailEntry *widget.Entry
	addBtn     *widget.Button
	formError  *widget.Label

	statusLabel *widget.Label
	list        *fyne.Container
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	pageLabel   *widget.Label

	content fyne.CanvasObject
}

// NewOwnersPage creates the owners view
func NewOwnersPage(root *RootUI) *OwnersPage {
	p := &OwnersPage{
		root:      root,
		status:    model.ViewStatusLoading,
		sortField: view.OwnerSortName,
		sortOrder: view.SortAsc,
		page:      1,
	}

	p.title = widget.NewLabel(root.localization.GetText(KeyOwnersTitle))
	p.title.TextStyle = fyne.TextStyle{Bold: true}

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(root.localization.GetText(KeySearchPlaceholder))
	p.searchEntry.OnChanged = func(q string) {
		p.query = q
		p.page = 1
		p.refreshList()
	}

	p.sortName = widget.NewButton(root.localization.GetText(KeySortByName), func() {
		p.setSortField(view.OwnerSortName)
	})
	p.sortEmail = widget.NewButton(root.localization.GetText(KeySortByEmail), func() {
		p.setSortField(view.OwnerSortEmail)
	})
	p.orderBtn = widget.NewButton(root.localization.GetText(KeySortAsc), p.toggleOrder)
	p.exportBtn = widget.NewButton(root.localization.GetText(KeyExportCSV), p.onExport)

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder(root.localization.GetText(KeyOwnerName))
	p.emailEntry = widget.NewEntry()
	p.emailEntry.SetPlaceHolder(root.localization.GetText(KeyOwnerEmail))
	p.addBtn = widget.NewButton(root.localization.GetText(KeyAddOwner), p.onAdd)
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
		container.NewHBox(p.sortName, p.sortEmail, p.orderBtn),
		p.exportBtn,
		p.searchEntry,
	)
	addForm := container.NewVBox(
		container.NewGridWithColumns(2, p.nameEntry, p.emailEntry),
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
func (p *OwnersPage) Content() fyne.CanvasObject {
	return p.content
}

// RefreshTexts updates texts with current language
func (p *OwnersPage) RefreshTexts() {
	l := p.root.localization
	p.title.SetText(l.GetText(KeyOwnersTitle))
	p.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	p.sortName.SetText(l.GetText(KeySortByName))
	p.sortEmail.SetText(l.GetText(KeySortByEmail))
	p.exportBtn.SetText(l.GetText(KeyExportCSV))
	p.nameEntry.SetPlaceHolder(l.GetText(KeyOwnerName))
	p.emailEntry.SetPlaceHolder(l.GetText(KeyOwnerEmail))
	p.addBtn.SetText(l.GetText(KeyAddOwner))
	p.prevBtn.SetText(l.GetText(KeyPrevPage))
	p.nextBtn.SetText(l.GetText(KeyNextPage))
	p.refreshOrderButton()
	p.refreshList()
}

// Reload fetches the owner collection from the server and replaces the local
// copy wholesale. Responses are applied in arrival order.
func (p *OwnersPage) Reload() {
	p.status = model.ViewStatusLoading
	p.err = nil
	p.refreshList()

	go func() {
		owners, err := p.root.client.FetchOwners(context.Background())

		fyne.Do(func() {
			if err != nil {
				log.Printf("Failed to fetch owners: %v", err)
				p.status = model.ViewStatusError
				p.err = err
			} else {
				p.status = model.ViewStatusReady
				p.owners = owners
			}
			p.refreshList()
		})
	}()
}

func (p *OwnersPage) setSortField(field view.OwnerSortField) {
	if p.sortField == field {
		p.toggleOrder()
		return
	}
	p.sortField = field
	p.sortOrder = view.SortAsc
	p.refreshOrderButton()
	p.refreshList()
}

func (p *OwnersPage) toggleOrder() {
	p.sortOrder = p.sortOrder.Toggle()
	p.refreshOrderButton()
	p.refreshList()
}

func (p *OwnersPage) refreshOrderButton() {
	if p.sortOrder == view.SortAsc {
		p.orderBtn.SetText(p.root.localization.GetText(KeySortAsc))
	} else {
		p.orderBtn.SetText(p.root.localization.GetText(KeySortDesc))
	}
}

// visible returns the filtered and sorted collection the page operates on
func (p *OwnersPage) visible() []model.Owner {
	return view.SortOwners(view.FilterOwners(p.owners, p.query), p.sortField, p.sortOrder)
}

func (p *OwnersPage) refreshList() {
	switch p.status {
	case model.ViewStatusLoading:
		p.statusLabel.SetText(p.root.localization.GetText(KeyLoadingOwners))
		p.statusLabel.Show()
	case model.ViewStatusError:
		p.statusLabel.SetText(p.err.Error())
		p.statusLabel.Show()
	default:
		p.statusLabel.Hide()
	}

	owners := p.visible()
	total := view.TotalPages(len(owners), view.OwnersPerPage)
	p.page = view.ClampPage(p.page, len(owners), view.OwnersPerPage)
	pageItems := view.Paginate(owners, p.page, view.OwnersPerPage)

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
		p.list.Add(widget.NewLabel(p.root.localization.GetText(KeyNoOwners)))
	}
	for _, owner := range pageItems {
		p.list.Add(NewOwnerCard(p.root, owner, p.Reload))
	}
	p.list.Refresh()
}

func (p *OwnersPage) onAdd() {
	if verr := view.RequireNonEmpty("name", p.nameEntry.Text, p.root.localization.GetText(KeyEnterOwnerName)); verr != nil {
		p.formError.SetText(verr.Message)
		p.formError.Show()
		return
	}
	p.formError.Hide()

	draft := model.OwnerDraft{
		Name:  p.nameEntry.Text,
		Email: p.emailEntry.Text,
	}

	p.addBtn.Disable()

	go func() {
		_, err := p.root.client.CreateOwner(context.Background(), draft)

		fyne.Do(func() {
			p.addBtn.Enable()

			if err != nil {
				log.Printf("Failed to create owner: %v", err)
				p.formError.SetText(err.Error())
				p.formError.Show()
				return
			}

			p.nameEntry.SetText("")
			p.emailEntry.SetText("")
			p.Reload()
		})
	}()
}

func (p *OwnersPage) onExport() {
	data, err := view.OwnersCSV(p.visible())
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
	saveDialog.SetFileName(view.OwnersExportFilename)
	saveDialog.Show()
}
