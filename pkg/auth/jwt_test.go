package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() JWTConfig {
	return JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "ideahub-test",
		Expiry:    time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	gen, err := NewJWTGenerator(testConfig())
	require.NoError(t, err)
	val, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "sarah@example.com")
	require.NoError(t, err)

	claims, err := val.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "sarah@example.com", claims.Email)
	assert.Equal(t, "ideahub-test", claims.Issuer)
}

func TestTokenWrongSecret(t *testing.T) {
	gen, err := NewJWTGenerator(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.SecretKey = "a-different-secret"
	val, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "sarah@example.com")
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.Expiry = time.Nanosecond
	gen, err := NewJWTGenerator(cfg)
	require.NoError(t, err)
	val, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "sarah@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Issuer = "someone-else"
	gen, err := NewJWTGenerator(cfg)
	require.NoError(t, err)

	val, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "sarah@example.com")
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGeneratorRequiresSecret(t *testing.T) {
	_, err := NewJWTGenerator(JWTConfig{})
	assert.Error(t, err)

	_, err = NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestGarbageToken(t *testing.T) {
	val, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	_, err = val.ValidateToken("not.a.token")
	assert.Error(t, err)
}
