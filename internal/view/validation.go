package view

import "strings"

// ValidationError reports a locally rejected form submission, e.g. an empty
// required field. No network call is made for these.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequireNonEmpty returns a ValidationError when value is blank after
// trimming, nil otherwise.
func RequireNonEmpty(field, value, message string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}
