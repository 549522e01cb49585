package view

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/fleetview/fleetview/internal/model"
)

// Export file names offered in the save dialog
const (
	CarsExportFilename   = "cars_export.csv"
	OwnersExportFilename = "owners_export.csv"
)

// ErrNoExportData is returned when an export is requested for an empty
// filtered set.
var ErrNoExportData = errors.New("no records to export")

// CarsCSV serializes the filtered (not paginated) car set. Fields containing
// commas, quotes, or newlines are quoted per RFC 4180.
func CarsCSV(cars []model.Car) ([]byte, error) {
	if len(cars) == 0 {
		return nil, ErrNoExportData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"ID", "Brand", "Model", "Year", "Owner ID"}}
	for _, c := range cars {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Brand,
			c.Model,
			strconv.Itoa(c.Year),
			strconv.Itoa(c.OwnerID),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write cars csv: %w", err)
	}
	return buf.Bytes(), nil
}

// OwnersCSV serializes the filtered (not paginated) owner set.
func OwnersCSV(owners []model.Owner) ([]byte, error) {
	if len(owners) == 0 {
		return nil, ErrNoExportData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"ID", "Name", "Email"}}
	for _, o := range owners {
		rows = append(rows, []string{strconv.Itoa(o.ID), o.Name, o.Email})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write owners csv: %w", err)
	}
	return buf.Bytes(), nil
}
