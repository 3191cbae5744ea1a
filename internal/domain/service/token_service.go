package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken issues a fresh access token only.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	ValidateAccessToken(tokenString string) (*Claims, error)

	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hex SHA-256 of a raw token for storage.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
