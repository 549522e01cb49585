package model

import (
	"encoding/json"
	"testing"
)

func TestCar_DisplayHelpers(t *testing.T) {
	tests := []struct {
		car         Car
		wantModel   string
		wantYear    string
		wantOwnerID string
	}{
		{Car{Brand: "Toyota", Model: "Corolla", Year: 2020, OwnerID: 3}, "Corolla", "2020", "3"},
		{Car{Brand: "Lada"}, "—", "—", "—"},
		{Car{Brand: "BMW", Year: 1999}, "—", "1999", "—"},
	}

	for _, test := range tests {
		if got := test.car.DisplayModel(); got != test.wantModel {
			t.Errorf("DisplayModel() for %q = %q, expected %q", test.car.Brand, got, test.wantModel)
		}
		if got := test.car.DisplayYear(); got != test.wantYear {
			t.Errorf("DisplayYear() for %q = %q, expected %q", test.car.Brand, got, test.wantYear)
		}
		if got := test.car.DisplayOwnerID(); got != test.wantOwnerID {
			t.Errorf("DisplayOwnerID() for %q = %q, expected %q", test.car.Brand, got, test.wantOwnerID)
		}
	}
}

func TestCar_WireFormat(t *testing.T) {
	data := []byte(`{"id":7,"brand":"Audi","model":"A4","year":2018,"ownerId":2}`)

	var car Car
	if err := json.Unmarshal(data, &car); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if car.ID != 7 || car.Brand != "Audi" || car.Model != "A4" || car.Year != 2018 || car.OwnerID != 2 {
		t.Errorf("Unexpected car after decode: %+v", car)
	}

	draft := CarDraft{Brand: "Audi", Model: "A4", Year: 2018, OwnerID: 2}
	encoded, err := json.Marshal(draft)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"brand":"Audi","model":"A4","year":2018,"ownerId":2}`
	if string(encoded) != expected {
		t.Errorf("CarDraft encoded as %s, expected %s", encoded, expected)
	}
}

func TestOwner_DisplayHelpers(t *testing.T) {
	withEmail := Owner{ID: 1, Name: "Ann", Email: "ann@example.com"}
	if got := withEmail.DisplayEmail(); got != "ann@example.com" {
		t.Errorf("DisplayEmail() = %q, expected ann@example.com", got)
	}

	noEmail := Owner{ID: 2, Name: "Bob"}
	if got := noEmail.DisplayEmail(); got != "—" {
		t.Errorf("DisplayEmail() with empty email = %q, expected —", got)
	}

	if got := noEmail.DisplayID(); got != "ID: 2" {
		t.Errorf("DisplayID() = %q, expected ID: 2", got)
	}
}

func TestViewStatus(t *testing.T) {
	if !ViewStatusLoading.IsLoading() {
		t.Error("ViewStatusLoading should report IsLoading")
	}
	if ViewStatusReady.IsLoading() {
		t.Error("ViewStatusReady should not report IsLoading")
	}
	if !ViewStatusReady.HasData() {
		t.Error("ViewStatusReady should report HasData")
	}
	if ViewStatusError.HasData() {
		t.Error("ViewStatusError should not report HasData")
	}
	if ViewStatusError.String() != "Error" {
		t.Errorf("ViewStatusError.String() = %s, expected Error", ViewStatusError)
	}
}
