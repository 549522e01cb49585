package view

import (
	"testing"

	"github.com/fleetview/fleetview/internal/model"
)

func sampleCars() []model.Car {
	return []model.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Year: 2015, OwnerID: 1},
		{ID: 2, Brand: "BMW", Model: "X5", Year: 2020, OwnerID: 2},
		{ID: 3, Brand: "Audi", Model: "A4", Year: 2018, OwnerID: 1},
		{ID: 4, Brand: "toyota", Model: "Camry", Year: 2021, OwnerID: 3},
		{ID: 5, Brand: "Lada", Model: "", Year: 0, OwnerID: 0},
		{ID: 6, Brand: "Kia", Model: "Rio", Year: 2019, OwnerID: 2},
		{ID: 7, Brand: "Ford", Model: "Focus", Year: 2012, OwnerID: 4},
	}
}

func sampleOwners() []model.Owner {
	return []model.Owner{
		{ID: 1, Name: "Charlie", Email: "charlie@example.com"},
		{ID: 2, Name: "alice", Email: "alice@example.com"},
		{ID: 3, Name: "Bob", Email: ""},
	}
}

func TestFilterCars(t *testing.T) {
	cars := sampleCars()

	tests := []struct {
		query   string
		wantIDs []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7}},
		{"toyota", []int{1, 4}},
		{"TOYOTA", []int{1, 4}},
		{"rio", []int{6}},     // matches model
		{"o", []int{1, 4, 6, 7}}, // brand or model
		{"tesla", nil},
	}

	for _, test := range tests {
		got := FilterCars(cars, test.query)
		ids := carIDs(got)
		if !equalInts(ids, test.wantIDs) {
			t.Errorf("FilterCars(%q) = %v, expected %v", test.query, ids, test.wantIDs)
		}
	}
}

func TestFilterOwners(t *testing.T) {
	owners := sampleOwners()

	tests := []struct {
		query   string
		wantIDs []int
	}{
		{"", []int{1, 2, 3}},
		{"ALICE", []int{2}},
		{"example.com", []int{1, 2}}, // matches email; Bob has none
		{"bob", []int{3}},
		{"nobody", nil},
	}

	for _, test := range tests {
		got := FilterOwners(owners, test.query)
		ids := ownerIDs(got)
		if !equalInts(ids, test.wantIDs) {
			t.Errorf("FilterOwners(%q) = %v, expected %v", test.query, ids, test.wantIDs)
		}
	}
}

func TestSortCars_ByYear(t *testing.T) {
	asc := SortCars(sampleCars(), CarSortYear, SortAsc)
	years := make([]int, len(asc))
	for i, c := range asc {
		years[i] = c.Year
	}
	expected := []int{0, 2012, 2015, 2018, 2019, 2020, 2021}
	if !equalInts(years, expected) {
		t.Errorf("SortCars by year asc = %v, expected %v", years, expected)
	}

	// Desc must be the exact reverse of asc on the same field.
	desc := SortCars(sampleCars(), CarSortYear, SortDesc)
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Errorf("Desc is not the reverse of asc at index %d: asc=%d desc=%d",
				i, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	}
}

func TestSortCars_ByBrand(t *testing.T) {
	asc := SortCars(sampleCars(), CarSortBrand, SortAsc)

	// Collation sorts "toyota" next to "Toyota" rather than by byte value.
	brands := make([]string, len(asc))
	for i, c := range asc {
		brands[i] = c.Brand
	}
	expected := []string{"Audi", "BMW", "Ford", "Kia", "Lada", "toyota", "Toyota"}
	for i := range expected {
		if brands[i] != expected[i] {
			t.Fatalf("Brands asc = %v, expected %v", brands, expected)
		}
	}

	if asc[0].Brand != "Audi" {
		t.Errorf("First brand asc = %q, expected Audi", asc[0].Brand)
	}

	desc := SortCars(sampleCars(), CarSortBrand, SortDesc)
	if got := desc[len(desc)-1].Brand; got != "Audi" {
		t.Errorf("Last brand desc = %q, expected Audi", got)
	}
}

func TestSortCars_DoesNotMutateInput(t *testing.T) {
	cars := sampleCars()
	SortCars(cars, CarSortYear, SortDesc)
	if cars[0].ID != 1 {
		t.Error("SortCars mutated its input slice")
	}
}

func TestSortOwners(t *testing.T) {
	asc := SortOwners(sampleOwners(), OwnerSortName, SortAsc)
	names := []string{asc[0].Name, asc[1].Name, asc[2].Name}
	// localeCompare-style ordering: "alice" sorts with the As, not after Z.
	if names[0] != "alice" || names[1] != "Bob" || names[2] != "Charlie" {
		t.Errorf("SortOwners by name asc = %v", names)
	}

	// Missing email compares as "" and sorts first ascending.
	byEmail := SortOwners(sampleOwners(), OwnerSortEmail, SortAsc)
	if byEmail[0].ID != 3 {
		t.Errorf("Owner without email should sort first, got id %d", byEmail[0].ID)
	}
}

func TestTotalPagesAndClamp(t *testing.T) {
	tests := []struct {
		n, perPage, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 3, 3},
		{9, 3, 3},
	}
	for _, test := range tests {
		if got := TotalPages(test.n, test.perPage); got != test.want {
			t.Errorf("TotalPages(%d, %d) = %d, expected %d", test.n, test.perPage, got, test.want)
		}
	}

	if got := ClampPage(4, 7, 3); got != 3 {
		t.Errorf("ClampPage(4, 7, 3) = %d, expected 3", got)
	}
	if got := ClampPage(0, 7, 3); got != 1 {
		t.Errorf("ClampPage(0, 7, 3) = %d, expected 1", got)
	}
	if got := ClampPage(2, 7, 3); got != 2 {
		t.Errorf("ClampPage(2, 7, 3) = %d, expected 2", got)
	}
	// Deleting down to an empty set pulls the pager back to page 1.
	if got := ClampPage(3, 0, 3); got != 1 {
		t.Errorf("ClampPage(3, 0, 3) = %d, expected 1", got)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{10, 20, 30, 40, 50, 60, 70}

	first := Paginate(items, 1, 3)
	if !equalInts(first, []int{10, 20, 30}) {
		t.Errorf("Page 1 = %v", first)
	}

	last := Paginate(items, 3, 3)
	if !equalInts(last, []int{70}) {
		t.Errorf("Last page = %v, expected the n mod p remainder", last)
	}

	if got := Paginate(items, 4, 3); got != nil {
		t.Errorf("Out-of-range page = %v, expected nil", got)
	}
}

func TestScenario_SevenCarsFilteredToTwo(t *testing.T) {
	// 7 cars filtered to 2 matching "Toyota" with page size 5:
	// one page, both shown, both pager controls disabled.
	filtered := FilterCars(sampleCars(), "Toyota")
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 Toyotas, got %d", len(filtered))
	}

	total := TotalPages(len(filtered), CarsPerPage)
	if total != 1 {
		t.Errorf("TotalPages = %d, expected 1", total)
	}

	page := ClampPage(1, len(filtered), CarsPerPage)
	window := Paginate(filtered, page, CarsPerPage)
	if len(window) != 2 {
		t.Errorf("Visible window has %d cars, expected 2", len(window))
	}

	prevDisabled := page == 1
	nextDisabled := page == total
	if !prevDisabled || !nextDisabled {
		t.Error("Both pager controls should be disabled on a single page")
	}
}

func TestRequireNonEmpty(t *testing.T) {
	if err := RequireNonEmpty("brand", "  Toyota ", "enter a brand"); err != nil {
		t.Errorf("Non-empty value rejected: %v", err)
	}

	err := RequireNonEmpty("brand", "   ", "enter a brand")
	if err == nil {
		t.Fatal("Blank value should be rejected")
	}
	if err.Field != "brand" || err.Error() != "enter a brand" {
		t.Errorf("Unexpected validation error: %+v", err)
	}
}

func carIDs(cars []model.Car) []int {
	var ids []int
	for _, c := range cars {
		ids = append(ids, c.ID)
	}
	return ids
}

func ownerIDs(owners []model.Owner) []int {
	var ids []int
	for _, o := range owners {
		ids = append(ids, o.ID)
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
