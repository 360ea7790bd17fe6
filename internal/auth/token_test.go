package auth

import (
	"testing"

	"frontdoor_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-token-tests"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-1", "company", "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company", claims.Role)
	assert.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", claims.Wallet)
}

func TestParseToken_Invalid(t *testing.T) {
	setTestConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Токен, подписанный другим секретом
	token, err := GenerateToken("user-1", "company", "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a-different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
