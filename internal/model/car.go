package model

import "strconv"

// Car represents a car record as stored by the backend.
type Car struct {
	ID      int    `json:"id"`    // server-assigned
	Brand   string `json:"brand"` // non-empty display string
	Model   string `json:"model"` // may be empty
	Year    int    `json:"year"`  // may be zero when unset
	OwnerID int    `json:"ownerId"`
}

// CarDraft carries the user-entered fields for creating or updating a car.
// OwnerID is not validated against existing owners on the client.
type CarDraft struct {
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	OwnerID int    `json:"ownerId"`
}

// DisplayModel returns the model name, or an em dash placeholder when empty.
func (c *Car) DisplayModel() string {
	if c.Model == "" {
		return "—"
	}
	return c.Model
}

// DisplayYear returns the year as text, or an em dash placeholder when zero.
func (c *Car) DisplayYear() string {
	if c.Year == 0 {
		return "—"
	}
	return strconv.Itoa(c.Year)
}

// DisplayOwnerID returns the owner id as text, or an em dash placeholder when zero.
func (c *Car) DisplayOwnerID() string {
	if c.OwnerID == 0 {
		return "—"
	}
	return strconv.Itoa(c.OwnerID)
}
