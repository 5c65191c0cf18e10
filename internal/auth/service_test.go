package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		Issuer:        "student-hub",
		Audience:      "student-hub-frontend",
		Secret:        "test-secret",
		TokenLifetime: time.Hour,
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := NewAuthService(testConfig())

	token, err := service.GenerateJWT("u1", "alice@example.edu", "Alice Chen", "https://avatars/alice.png")
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.edu", claims.Email)
	assert.Equal(t, "Alice Chen", claims.DisplayName)
	assert.Equal(t, "https://avatars/alice.png", claims.AvatarURL)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	service := NewAuthService(testConfig())
	token, err := service.GenerateJWT("u1", "", "Alice", "")
	require.NoError(t, err)

	other := testConfig()
	other.Secret = "different-secret"
	_, err = NewAuthService(other).ValidateJWT(token)

	assert.Error(t, err)
}

func TestValidateJWTWrongIssuer(t *testing.T) {
	issuerConfig := testConfig()
	issuerConfig.Issuer = "someone-else"
	token, err := NewAuthService(issuerConfig).GenerateJWT("u1", "", "Alice", "")
	require.NoError(t, err)

	_, err = NewAuthService(testConfig()).ValidateJWT(token)

	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	config := testConfig()
	config.TokenLifetime = -time.Minute
	token, err := NewAuthService(config).GenerateJWT("u1", "", "Alice", "")
	require.NoError(t, err)

	_, err = NewAuthService(testConfig()).ValidateJWT(token)

	assert.Error(t, err)
}

func TestValidateJWTMissingUserID(t *testing.T) {
	config := testConfig()
	now := time.Now()
	claims := &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			Audience:  jwt.ClaimStrings{config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Secret))
	require.NoError(t, err)

	_, err = NewAuthService(config).ValidateJWT(token)

	assert.ErrorContains(t, err, "user identifier")
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := NewAuthService(testConfig()).ValidateJWT("not-a-token")

	assert.Error(t, err)
}
