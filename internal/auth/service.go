package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

/// AuthClaims represents the identity carried by a bearer token: the auth
// provider's user identifier plus the profile fields the frontend shows.
type AuthClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}

// AuthService validates and issues JWT bearer tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) *AuthService {
	return &AuthService{config: config}
}

// ValidateJWT parses and validates a bearer token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token missing user identifier")
	}

	return claims, nil
}

// GenerateJWT issues a signed token for the given identity. Used by local
// development tooling and tests; production tokens come from the provider.
func (s *AuthService) GenerateJWT(userID, email, displayName, avatarURL string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   avatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
