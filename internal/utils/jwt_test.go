// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "John Doe", false, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "John Doe", claims.Name)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "storefront", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateJWTAdminClaim(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "Admin User", true, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT(uuid.New(), "John Doe", false, 1)
	require.NoError(t, err)

	SetJWTSecret("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "John Doe", false, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}
