package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/fleetview/fleetview/internal/model"
)

func TestCarsCSV(t *testing.T) {
	data, err := CarsCSV([]model.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Year: 2015, OwnerID: 2},
		{ID: 2, Brand: "Lada", Model: "", Year: 0, OwnerID: 0},
	})
	if err != nil {
		t.Fatalf("CarsCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Brand,Model,Year,Owner ID" {
		t.Errorf("Header = %q", lines[0])
	}
	if lines[1] != "1,Toyota,Corolla,2015,2" {
		t.Errorf("Row 1 = %q", lines[1])
	}
	if lines[2] != "2,Lada,,0,0" {
		t.Errorf("Row 2 = %q", lines[2])
	}
}

func TestCarsCSV_QuotesEmbeddedCommas(t *testing.T) {
	data, err := CarsCSV([]model.Car{
		{ID: 3, Brand: "Rolls, Royce", Model: "Ghost", Year: 2022, OwnerID: 1},
	})
	if err != nil {
		t.Fatalf("CarsCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[1] != `3,"Rolls, Royce",Ghost,2022,1` {
		t.Errorf("Row with embedded comma = %q, expected it quoted", lines[1])
	}
}

func TestOwnersCSV(t *testing.T) {
	data, err := OwnersCSV([]model.Owner{
		{ID: 1, Name: "Ann", Email: "ann@example.com"},
		{ID: 2, Name: "Bob", Email: ""},
	})
	if err != nil {
		t.Fatalf("OwnersCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "ID,Name,Email" {
		t.Errorf("Header = %q", lines[0])
	}
	if lines[1] != "1,Ann,ann@example.com" {
		t.Errorf("Row 1 = %q", lines[1])
	}
	if lines[2] != "2,Bob," {
		t.Errorf("Row 2 = %q", lines[2])
	}
}

func TestCSV_EmptyFilteredSet(t *testing.T) {
	if _, err := CarsCSV(nil); !errors.Is(err, ErrNoExportData) {
		t.Errorf("CarsCSV(nil) error = %v, expected ErrNoExportData", err)
	}
	if _, err := OwnersCSV([]model.Owner{}); !errors.Is(err, ErrNoExportData) {
		t.Errorf("OwnersCSV(empty) error = %v, expected ErrNoExportData", err)
	}
}
