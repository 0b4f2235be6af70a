package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	passwords := []string{"s3cret!", "пароль", "a", "correct horse battery staple"}
	for _, p := range passwords {
		hash, err := HashPassword(p)
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, p, hash)
		assert.True(t, CheckPassword(p, hash))
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("right")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("right", "not-a-bcrypt-hash"))
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPasswordEncoding)
}
