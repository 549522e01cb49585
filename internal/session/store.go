package session

import (
	"context"
	"log"

	"fyne.io/fyne/v2"

	"github.com/fleetview/fleetview/internal/model"
)

// Preference keys for the persisted session
const (
	KeyToken    = "auth_token"
	KeyUsername = "auth_username"
)

// Session is the authenticated user context. A non-empty token is what makes
// the session authenticated; the token is never validated locally.
type Session struct {
	Username string
	Token    string
}

// APIClient is the subset of the HTTP facade the store delegates to.
type APIClient interface {
	Login(ctx context.Context, username, password string) (model.SessionPayload, error)
	Register(ctx context.Context, username, password string) (string, error)
}

// Store holds the current session and persists it in the app preferences so
// it survives restarts. Preferences are the durable, process-wide storage;
// concurrent app instances are not coordinated.
type Store struct {
	app     fyne.App
	client  APIClient
	current *Session
}

// NewStore creates a session store bound to the given app and API client.
func NewStore(app fyne.App, client APIClient) *Store {
	return &Store{app: app, client: client}
}

// Restore rebuilds a minimal session from a previously persisted token.
// The token is not re-validated against the backend; it only answers
// "is a user present" until the first authenticated call says otherwise.
func (s *Store) Restore() {
	token := s.app.Preferences().String(KeyToken)
	if token == "" {
		return
	}
	s.current = &Session{
		Username: s.app.Preferences().String(KeyUsername),
		Token:    token,
	}
	log.Printf("Session restored for user %q", s.current.Username)
}

// Login authenticates against the backend. On success the token is persisted
// and the in-memory session replaced; on failure state is left untouched and
// the facade error is returned to the caller.
func (s *Store) Login(ctx context.Context, username, password string) error {
	payload, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	name := payload.Username
	if name == "" {
		name = username
	}

	s.app.Preferences().SetString(KeyToken, payload.Token)
	s.app.Preferences().SetString(KeyUsername, name)
	s.current = &Session{Username: name, Token: payload.Token}
	log.Printf("User %q logged in", name)
	return nil
}

// Register creates a new account. It never authenticates; navigation to the
// login view is the caller's responsibility.
func (s *Store) Register(ctx context.Context, username, password string) (string, error) {
	return s.client.Register(ctx, username, password)
}

// Logout clears both the persisted and the in-memory session.
func (s *Store) Logout() {
	s.app.Preferences().RemoveValue(KeyToken)
	s.app.Preferences().RemoveValue(KeyUsername)
	s.current = nil
	log.Printf("Session cleared")
}

// Token reads the bearer token from preferences at call time. It backs the
// API client's token source, so an external token change is picked up on the
// next request.
func (s *Store) Token() string {
	return s.app.Preferences().String(KeyToken)
}

// Current returns the in-memory session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	return s.current
}

// Authenticated reports whether a user is present.
func (s *Store) Authenticated() bool {
	return s.current != nil
}
