package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("user-123", "user", time.Hour)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-123", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	_, err := ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-123", "user", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro-segredo")

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
