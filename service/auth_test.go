package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery-staple-42"

func TestAuth(t *testing.T) {
	repo := newMemoryUserRepo()
	auth, err := NewAuthService(repo, stubTokenizer{})
	require.NoError(t, err)

	require.NoError(t, auth.Register("walker_01", testPassword))

	t.Run("duplicate username", func(t *testing.T) {
		assert.ErrorIs(t, auth.Register("walker_01", testPassword), ErrUsernameTaken)
	})

	t.Run("sign in", func(t *testing.T) {
		user, token, err := auth.SignIn("walker_01", testPassword)
		require.NoError(t, err)
		assert.Equal(t, "walker_01", user.Username)
		assert.Equal(t, "token-for-walker_01", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("walker_01", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("ghost", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestNewAuthServiceRequiresDependencies(t *testing.T) {
	_, err := NewAuthService(nil, stubTokenizer{})
	assert.Error(t, err)
}
