package auth_test

import (
	"chatterbox/backend/internal/auth"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, auth.ComparePassword("pw1", hash))
	assert.False(t, auth.ComparePassword("pw2", hash))
	assert.False(t, auth.ComparePassword("pw1", "not-a-hash"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	second, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenRoundtrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New().String()

	token, err := tm.Generate(userID)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Hour)

	token, err := tm.Generate(uuid.New().String())
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate(uuid.New().String())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}
