package utils

import (
	"testing"
	"time"

	"bankapi/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseTokens(t *testing.T) {
	cfg := TokenConfig{
		Secret:     "test-secret",
		Issuer:     "bankapi-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}

	access, refresh, err := GenerateTokens(cfg, &models.UserClaims{
		UserID:      42,
		Email:       "jane@example.com",
		Role:        models.RoleUser,
		Permissions: models.GetDefaultPermissions(models.RoleUser),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := ParseToken(cfg, access)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.True(t, claims.HasPermission(models.PermissionCardWrite))
	assert.False(t, claims.HasPermission(models.PermissionWriteAdmin))

	// Refresh tokens carry no permissions.
	refreshClaims, err := ParseToken(cfg, refresh)
	assert.NoError(t, err)
	assert.Empty(t, refreshClaims.Permissions)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := TokenConfig{Secret: "secret-a", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	access, _, err := GenerateTokens(cfg, &models.UserClaims{UserID: 1})
	assert.NoError(t, err)

	_, err = ParseToken(TokenConfig{Secret: "secret-b"}, access)
	assert.Error(t, err)
}

func TestGenerateTokensRequiresSecret(t *testing.T) {
	_, _, err := GenerateTokens(TokenConfig{}, &models.UserClaims{UserID: 1})
	assert.Error(t, err)
}

func TestRandomDigits(t *testing.T) {
	s, err := RandomDigits(16)
	assert.NoError(t, err)
	assert.Len(t, s, 16)
	for _, r := range s {
		assert.True(t, r >= '0' && r <= '9')
	}
}
