package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/store"
)

func TestSessionLoginLogout(t *testing.T) {
	s := store.Memory()
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	sessions := NewSessionService(s, config.AdminConfig{Username: "admin", PasswordHash: hash})

	ok, err := sessions.IsLoggedIn()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = sessions.CurrentUser()
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	assert.ErrorIs(t, sessions.Login("admin", "wrong"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, sessions.Login("root", "s3cret!"), domain.ErrInvalidCredentials)
	require.NoError(t, sessions.Login("admin", "s3cret!"))

	ok, err = sessions.IsLoggedIn()
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := sessions.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	require.NoError(t, sessions.Logout())
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.NotContains(t, keys, store.KeyAdmin)
	assert.NotContains(t, keys, store.KeyAdminUser)
}

func TestSessionWithoutHashAcceptsAnyPassword(t *testing.T) {
	sessions := NewSessionService(store.Memory(), config.AdminConfig{})

	assert.ErrorIs(t, sessions.Login("editor", ""), domain.ErrInvalidCredentials)
	require.NoError(t, sessions.Login("editor", "x"))

	user, err := sessions.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "editor", user.Username)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "pw"))
	assert.False(t, VerifyPassword(hash, "other"))
	assert.False(t, VerifyPassword("not-a-hash", "pw"))
}
