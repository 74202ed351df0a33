package services

import (
	"testing"
	"time"

	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret", user.HashedPassword)

	token, err := f.auth.Login("alice", "secret")
	require.NoError(t, err)

	resolved, err := f.auth.ResolveIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	_, err = f.auth.Register("alice@example.com", "different", "secret")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	_, err = f.auth.Register("different@example.com", "alice", "secret")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("alice@example.com", "alice", "secret")
	require.NoError(t, err)

	_, err = f.auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveIdentityRejectsBadTokens(t *testing.T) {
	f := newFixture(t)
	user := f.user(t)

	_, err := f.auth.ResolveIdentity("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	expired, err := utils.GenerateToken(user.ID, user.Username, []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	_, err = f.auth.ResolveIdentity(expired)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	wrongKey, err := utils.GenerateToken(user.ID, user.Username, []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	_, err = f.auth.ResolveIdentity(wrongKey)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveIdentityDeletedUser(t *testing.T) {
	f := newFixture(t)
	user := f.user(t)

	token, err := utils.GenerateToken(user.ID, user.Username, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&models.User{}, user.ID).Error)

	_, err = f.auth.ResolveIdentity(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
