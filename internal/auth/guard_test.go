package auth

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet_relay/internal/domain"
	"tweet_relay/internal/storage/jsonfile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newStores(t *testing.T) (*jsonfile.AuthState, *jsonfile.CookieStore) {
	t.Helper()
	dir := t.TempDir()
	state, err := jsonfile.NewAuthState(dir, "auth.json")
	require.NoError(t, err)
	return state, jsonfile.NewCookieStore(dir, "cookies.json")
}

func TestGuard_NoRecordedFailure(t *testing.T) {
	state, cookies := newStores(t)

	err := Guard(state, cookies, Credentials{Username: "u"}, testLogger())
	assert.NoError(t, err)
}

func TestGuard_SameCookiesFailFast(t *testing.T) {
	state, cookies := newStores(t)
	require.NoError(t, state.Record(domain.AuthFailure{
		Errored: true,
		Message: "unauthorized",
		Cookies: "c00kie5",
	}))

	err := Guard(state, cookies, Credentials{Cookies: "c00kie5"}, testLogger())
	assert.ErrorContains(t, err, "rotate")
}

func TestGuard_WipesCachedSessionAndFails(t *testing.T) {
	state, cookies := newStores(t)
	require.NoError(t, cookies.Save(map[string]string{"auth_token": "stale"}))
	require.NoError(t, state.Record(domain.AuthFailure{Errored: true, Message: "unauthorized"}))

	err := Guard(state, cookies, Credentials{Username: "u"}, testLogger())
	assert.ErrorContains(t, err, "wiped the cached session")
	assert.False(t, cookies.Exists())
}

func TestGuard_SameCredentialsSameForcePushFailFast(t *testing.T) {
	state, cookies := newStores(t)
	require.NoError(t, state.Record(domain.AuthFailure{
		Errored:   true,
		Message:   "unauthorized",
		Username:  "u",
		Email:     "e",
		Password:  "p",
		ForcePush: "v1",
	}))

	creds := Credentials{Username: "u", Email: "e", Password: "p", ForcePush: "v1"}
	err := Guard(state, cookies, creds, testLogger())
	assert.ErrorContains(t, err, "force-push")
}

func TestGuard_ForcePushChangeClearsBlock(t *testing.T) {
	state, cookies := newStores(t)
	require.NoError(t, state.Record(domain.AuthFailure{
		Errored:   true,
		Username:  "u",
		Email:     "e",
		Password:  "p",
		ForcePush: "v1",
	}))

	creds := Credentials{Username: "u", Email: "e", Password: "p", ForcePush: "v2"}
	err := Guard(state, cookies, creds, testLogger())
	require.NoError(t, err)

	// The token is remembered so the same value won't clear a future block.
	assert.Equal(t, "v2", state.Get().ForcePush)
	err = Guard(state, cookies, creds, testLogger())
	assert.Error(t, err)
}

func TestGuard_CredentialRotationClearsRecord(t *testing.T) {
	state, cookies := newStores(t)
	require.NoError(t, state.Record(domain.AuthFailure{
		Errored:  true,
		Username: "old-user",
		Email:    "e",
		Password: "p",
	}))

	err := Guard(state, cookies, Credentials{Username: "new-user", Email: "e", Password: "p"}, testLogger())
	require.NoError(t, err)
	assert.False(t, state.Get().Errored)
}

func TestRecorder_StampsCredentials(t *testing.T) {
	state, _ := newStores(t)

	rec := NewRecorder(state, Credentials{
		Username:  "u",
		Email:     "e",
		Password:  "p",
		Cookies:   "c",
		ForcePush: "v1",
	})

	require.NoError(t, rec.RecordFailure("account locked"))

	got := state.Get()
	assert.True(t, got.Errored)
	assert.Equal(t, "account locked", got.Message)
	assert.Equal(t, "u", got.Username)
	assert.Equal(t, "c", got.Cookies)
	assert.Equal(t, "v1", got.ForcePush)
}
