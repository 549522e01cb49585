package api

import "fmt"

// AuthenticationError indicates the login endpoint rejected the credentials.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login failed: status=%d", e.StatusCode)
}

// RegistrationError indicates the register endpoint rejected the request,
// typically because the username is already taken.
type RegistrationError struct {
	StatusCode int
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed: status=%d", e.StatusCode)
}

// FetchError indicates a collection GET returned a non-2xx status.
type FetchError struct {
	Resource   string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: status=%d", e.Resource, e.StatusCode)
}

// CreateError indicates a create POST returned a non-2xx status. Body holds
// the server-provided error text when the server sent one.
type CreateError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *CreateError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("failed to create %s: %s", e.Resource, e.Body)
	}
	return fmt.Sprintf("failed to create %s: status=%d", e.Resource, e.StatusCode)
}

// UpdateError indicates an update PUT returned a non-2xx status.
type UpdateError struct {
	Resource   string
	ID         int
	StatusCode int
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update %s %d: status=%d", e.Resource, e.ID, e.StatusCode)
}

// DeleteError indicates a DELETE returned a non-2xx status.
type DeleteError struct {
	Resource   string
	ID         int
	StatusCode int
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s %d: status=%d", e.Resource, e.ID, e.StatusCode)
}

// DecodeError indicates a 2xx response body could not be decoded into its
// typed record. It is distinct from transport failures so callers can tell
// a broken payload apart from a rejected request.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Resource, e.Err)
}

// Unwrap exposes the underlying decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
