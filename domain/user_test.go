package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		id := uuid.New()
		u, err := NewUser(UserConfig{ID: id, Username: "walker_01", PlainPassword: strongPassword})
		require.NoError(t, err)

		assert.Equal(t, id, u.ID)
		assert.NotEqual(t, strongPassword, u.PasswordHash)
		assert.True(t, u.VerifyPassword(strongPassword))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	tests := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "a_very_long_username_indeed", strongPassword, ErrUsernameTooLong},
		{"bad characters", "bad name!", strongPassword, ErrUsernameFormat},
		{"weak password", "walker", "password", ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: tt.username, PlainPassword: tt.password})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRecordClear(t *testing.T) {
	u := &User{}
	require.NoError(t, u.RecordClear(3))
	require.NoError(t, u.RecordClear(1))

	assert.Equal(t, 2, u.LevelsCleared)
	assert.Equal(t, 3, u.BestDepth)
	assert.ErrorIs(t, u.RecordClear(-1), ErrNegativeLevelDepth)
}
