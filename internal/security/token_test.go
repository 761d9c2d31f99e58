package security

import (
	"testing"

	"keeso-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, err := tm.GenerateAccessToken(7, "admin@keeso.org.tr", domain.UserRoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "admin@keeso.org.tr", claims.Email)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
	assert.Equal(t, "keeso-backend", claims.Issuer)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -1)

	token, err := tm.GenerateAccessToken(7, "admin@keeso.org.tr", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60)

	token, err := tm.GenerateAccessToken(7, "admin@keeso.org.tr", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
