package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	lastLogin := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	user := &model.UserRecord{
		ID:        "u-1",
		Name:      "Dana Ops",
		Email:     "dana@example.com",
		Role:      "admin",
		LastLogin: &lastLogin,
	}

	require.NoError(t, store.Set("tok-abc", user))

	got := store.Get()
	assert.Equal(t, "tok-abc", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, *user, *got.User)
	assert.True(t, got.Active())
}

func TestStore_GetMissingFile(t *testing.T) {
	store := newTestStore(t)

	got := store.Get()
	assert.Equal(t, model.Session{}, got)
	assert.False(t, got.Active())
}

func TestStore_GetCorruptRecord(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		"{\"token\": 42}",
		"[1,2,3]",
		"{\"token\":\"trunca",
	}

	for _, raw := range cases {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

		store := NewStore(path)
		assert.Equal(t, model.Session{}, store.Get(), "raw=%q", raw)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("first", &model.UserRecord{ID: "a", Role: "booking"}))
	require.NoError(t, store.Set("second", &model.UserRecord{ID: "b", Role: "developer"}))

	got := store.Get()
	assert.Equal(t, "second", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "b", got.User.ID)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("tok", &model.UserRecord{ID: "u-1"}))
	require.NoError(t, store.Clear())
	assert.Equal(t, model.Session{}, store.Get())

	// Clearing an already-clear store is fine.
	require.NoError(t, store.Clear())
}

func TestStore_TokenSource(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Token())

	require.NoError(t, store.Set("bearer-me", nil))
	assert.Equal(t, "bearer-me", store.Token())
}

func TestStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := NewStore(path)

	require.NoError(t, store.Set("tok", nil))
	assert.Equal(t, "tok", store.Get().Token)
}
