package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/mmcdole/bookvibe/internal/domain"
)

func TestMemoryStorage(t *testing.T) {
	s := Memory()
	defer s.Close()

	_, ok, err := s.GetItem(KeyFavorites)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(KeyFavorites, `["a"]`))
	require.NoError(t, s.SetItem(KeyAdmin, "true"))

	v, ok, err := s.GetItem(KeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, v)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyAdmin, KeyFavorites}, keys)

	require.NoError(t, s.RemoveItem(KeyAdmin))
	require.NoError(t, s.RemoveItem("missing"))
	keys, err = s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyFavorites}, keys)

	require.NoError(t, s.Clear())
	keys, err = s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestBoltStoragePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "storage.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, SetJSON(s, KeyPurchases, []domain.Book{{ID: "sample-1"}}))
	require.NoError(t, s.SetItem(KeyAdmin, "true"))
	require.NoError(t, s.RemoveItem(KeyAdmin))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	var books []domain.Book
	found, err := GetJSON(reopened, KeyPurchases, &books)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, books, 1)
	assert.Equal(t, "sample-1", books[0].ID)

	_, ok, err := reopened.GetItem(KeyAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, reopened.Clear())
	keys, err := reopened.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClosedStorage(t *testing.T) {
	s := Memory()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err := s.GetItem(KeyFavorites)
	assert.ErrorIs(t, err, domain.ErrStorageClosed)
	assert.ErrorIs(t, s.SetItem(KeyFavorites, "[]"), domain.ErrStorageClosed)
}

func TestGetJSONCorrupt(t *testing.T) {
	s := Memory()
	require.NoError(t, s.SetItem(KeyFavorites, "{not json"))

	var ids []string
	found, err := GetJSON(s, KeyFavorites, &ids)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestFailedWriteIsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem(KeyFavorites, "[]"))

	// Swap in a read-only handle so every write fails
	require.NoError(t, s.db.Close())
	ro, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true})
	require.NoError(t, err)
	s.db = ro
	t.Cleanup(func() { s.Close() })

	err = s.SetItem(KeyFavorites, `["b1"]`)
	require.ErrorIs(t, err, berrors.ErrDatabaseReadOnly)
	v, ok, err := s.GetItem(KeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	err = s.SetItem(KeyPurchases, "[]")
	require.ErrorIs(t, err, berrors.ErrDatabaseReadOnly)
	_, ok, err = s.GetItem(KeyPurchases)
	require.NoError(t, err)
	assert.False(t, ok)

	require.ErrorIs(t, s.RemoveItem(KeyFavorites), berrors.ErrDatabaseReadOnly)
	v, ok, err = s.GetItem(KeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.ErrorIs(t, s.Clear(), berrors.ErrDatabaseReadOnly)
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyFavorites}, keys)
}
