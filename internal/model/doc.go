package model

// Package model defines the domain records exchanged with the registry backend:
// owners, cars, the session payload, and the view status enum. Structures carry
// JSON tags matching the backend wire format and are bound directly in the UI.
