package security

import (
	"Inkstone/internal/api/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setJWTConfig(t *testing.T, secret string) {
	t.Helper()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:      secret,
			ExpireHours: 24,
			Issuer:      "Inkstone",
		},
	}
}

func TestPasswordHashing(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := HashPassword("123456")
		require.NoError(t, err)
		assert.NotEqual(t, "123456", hash)
		assert.NoError(t, CheckPasswordHash("123456", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := HashPassword("123456")
		require.NoError(t, err)
		assert.Error(t, CheckPasswordHash("654321", hash))
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := HashPassword("")
		assert.Error(t, err)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	setJWTConfig(t, "test-secret")

	token, err := GenerateToken(42, "Al")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "Al", claims.Name)
	assert.Equal(t, "Inkstone", claims.Issuer)
}

func TestValidateTokenRejects(t *testing.T) {
	setJWTConfig(t, "test-secret")

	t.Run("tampered token", func(t *testing.T) {
		token, err := GenerateToken(42, "Al")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

		_, err = ValidateToken(tampered)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(42, "Al")
		require.NoError(t, err)

		setJWTConfig(t, "another-secret")
		_, err = ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
