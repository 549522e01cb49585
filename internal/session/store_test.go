package session

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetview/fleetview/internal/model"
)

// fakeClient implements APIClient with canned responses.
type fakeClient struct {
	payload      model.SessionPayload
	loginErr     error
	confirmation string
	registerErr  error
	loginCalls   int
}

func (f *fakeClient) Login(_ context.Context, _, _ string) (model.SessionPayload, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return model.SessionPayload{}, f.loginErr
	}
	return f.payload, nil
}

func (f *fakeClient) Register(_ context.Context, _, _ string) (string, error) {
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return f.confirmation, nil
}

func TestLogin_PersistsSession(t *testing.T) {
	app := test.NewApp()
	client := &fakeClient{payload: model.SessionPayload{Token: "tok-1", Username: "alice"}}
	store := NewStore(app, client)

	require.NoError(t, store.Login(context.Background(), "alice", "pw"))

	assert.True(t, store.Authenticated())
	assert.Equal(t, "alice", store.Current().Username)
	assert.Equal(t, "tok-1", store.Token())
	assert.Equal(t, "tok-1", app.Preferences().String(KeyToken))
}

func TestLogin_FallsBackToEnteredUsername(t *testing.T) {
	app := test.NewApp()
	client := &fakeClient{payload: model.SessionPayload{Token: "tok-2"}}
	store := NewStore(app, client)

	require.NoError(t, store.Login(context.Background(), "bob", "pw"))
	assert.Equal(t, "bob", store.Current().Username)
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	app := test.NewApp()
	loginErr := errors.New("bad credentials")
	client := &fakeClient{loginErr: loginErr}
	store := NewStore(app, client)

	err := store.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, loginErr)

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	app := test.NewApp()
	client := &fakeClient{confirmation: "registered"}
	store := NewStore(app, client)

	confirmation, err := store.Register(context.Background(), "carol", "pw")
	require.NoError(t, err)
	assert.Equal(t, "registered", confirmation)
	assert.False(t, store.Authenticated())
	assert.Zero(t, client.loginCalls)
}

func TestLogout_ClearsEverything(t *testing.T) {
	app := test.NewApp()
	client := &fakeClient{payload: model.SessionPayload{Token: "tok-3", Username: "dave"}}
	store := NewStore(app, client)
	require.NoError(t, store.Login(context.Background(), "dave", "pw"))

	store.Logout()

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Empty(t, app.Preferences().String(KeyUsername))
}

func TestRestore_RebuildsFromPreferences(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyToken, "persisted")
	app.Preferences().SetString(KeyUsername, "erin")

	store := NewStore(app, &fakeClient{})
	store.Restore()

	require.True(t, store.Authenticated())
	assert.Equal(t, "erin", store.Current().Username)
	assert.Equal(t, "persisted", store.Current().Token)
}

func TestRestore_NoTokenMeansNoSession(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app, &fakeClient{})
	store.Restore()

	assert.False(t, store.Authenticated())
}
