package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileSessionStore(path)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	want := &Session{Token: "tok", User: User{ID: "u1", Name: "Alex", CalorieGoal: 2211, Streak: 4}}
	require.NoError(t, store.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := NewFileSessionStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestFileSessionStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileSessionStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestMemorySessionStoreCopies(t *testing.T) {
	store := NewMemorySessionStore()
	s := &Session{Token: "a"}
	require.NoError(t, store.Save(s))
	s.Token = "mutated"

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", got.Token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}
