package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fleetview/fleetview/internal/model"
)

// Fixed page sizes per resource
const (
	CarsPerPage   = 5
	OwnersPerPage = 3
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// CarSortField selects the car attribute to sort by.
type CarSortField string

const (
	CarSortBrand CarSortField = "brand"
	CarSortYear  CarSortField = "year"
)

// OwnerSortField selects the owner attribute to sort by.
type OwnerSortField string

const (
	OwnerSortName  OwnerSortField = "name"
	OwnerSortEmail OwnerSortField = "email"
)

// FilterCars returns the cars whose brand or model contains the query,
// ignoring case. An empty query returns the collection unchanged.
func FilterCars(cars []model.Car, query string) []model.Car {
	if query == "" {
		return cars
	}

	q := strings.ToLower(query)
	var result []model.Car
	for _, c := range cars {
		if strings.Contains(strings.ToLower(c.Brand), q) || strings.Contains(strings.ToLower(c.Model), q) {
			result = append(result, c)
		}
	}
	return result
}

// FilterOwners returns the owners whose name or email contains the query,
// ignoring case. An empty query returns the collection unchanged.
func FilterOwners(owners []model.Owner, query string) []model.Owner {
	if query == "" {
		return owners
	}

	q := strings.ToLower(query)
	var result []model.Owner
	for _, o := range owners {
		if strings.Contains(strings.ToLower(o.Name), q) || strings.Contains(strings.ToLower(o.Email), q) {
			result = append(result, o)
		}
	}
	return result
}

// SortCars returns a sorted copy: brand compares with locale-aware collation,
// year compares numerically.
func SortCars(cars []model.Car, field CarSortField, order SortOrder) []model.Car {
	sorted := make([]model.Car, len(cars))
	copy(sorted, cars)

	coll := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		var cmp int
		if field == CarSortYear {
			cmp = sorted[i].Year - sorted[j].Year
		} else {
			cmp = coll.CompareString(sorted[i].Brand, sorted[j].Brand)
		}
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// SortOwners returns a sorted copy using locale-aware collation. A missing
// email compares as the empty string.
func SortOwners(owners []model.Owner, field OwnerSortField, order SortOrder) []model.Owner {
	sorted := make([]model.Owner, len(owners))
	copy(sorted, owners)

	coll := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := ownerKey(field, sorted[i]), ownerKey(field, sorted[j])
		cmp := coll.CompareString(a, b)
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func ownerKey(field OwnerSortField, o model.Owner) string {
	if field == OwnerSortEmail {
		return o.Email
	}
	return o.Name
}

// TotalPages returns the number of pages for n records at the given page
// size, never less than 1 so the pager always has something to display.
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (n + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, TotalPages]. A shrinking filtered set can
// otherwise strand the pager past the end after a delete or a narrower search.
func ClampPage(page, n, perPage int) int {
	total := TotalPages(n, perPage)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate returns the window of items for the given (already clamped) page.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return items
	}
	start := (page - 1) * perPage
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
