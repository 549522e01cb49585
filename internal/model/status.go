package model

// ViewStatus represents the state of a resource list view.
type ViewStatus string

const (
	// ViewStatusLoading means a fetch is in flight and no data is shown yet
	ViewStatusLoading ViewStatus = "Loading"

	// ViewStatusReady means the collection was fetched and is displayable
	ViewStatusReady ViewStatus = "Ready"

	// ViewStatusError means the last fetch failed and an error message is shown
	ViewStatusError ViewStatus = "Error"
)

// String returns the string representation of ViewStatus
func (vs ViewStatus) String() string {
	return string(vs)
}

// IsLoading returns true while a fetch is in flight
func (vs ViewStatus) IsLoading() bool {
	return vs == ViewStatusLoading
}

// HasData returns true if the view may render its collection
func (vs ViewStatus) HasData() bool {
	return vs == ViewStatusReady
}
