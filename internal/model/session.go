package model

// SessionPayload is the body returned by the login endpoint. The token is
// opaque to the client; its presence is what makes a session authenticated.
type SessionPayload struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}
