package model

import "strconv"

// Owner represents a car owner record as stored by the backend.
type Owner struct {
	ID    int    `json:"id"`    // server-assigned, immutable once created
	Name  string `json:"name"`  // non-empty display string
	Email string `json:"email"` // optional
}

// OwnerDraft carries the user-entered fields for creating an owner.
// The ID is assigned by the server.
type OwnerDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayEmail returns the email, or an em dash placeholder when unset.
func (o *Owner) DisplayEmail() string {
	if o.Email == "" {
		return "—"
	}
	return o.Email
}

// DisplayID returns the identifier formatted for the record card.
func (o *Owner) DisplayID() string {
	return "ID: " + strconv.Itoa(o.ID)
}
