package repository

import (
	"context"
	"errors"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrTokenNotFound is returned when a refresh token is not found.
	ErrTokenNotFound = errors.New("refresh token not found")
	// ErrDuplicateAuth is returned when a credential for the same login already exists.
	ErrDuplicateAuth = errors.New("authentication method already exists")
)

// AuthRepository stores login credentials and refresh-token sessions.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a credential up by provider and login email.
	FindAuthentication(ctx context.Context, provider, email string) (*entity.Authentication, error)

	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends a session. Deleting an unknown hash returns ErrTokenNotFound.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// DeleteExpiredRefreshTokens removes sessions of userID that expired before now.
	DeleteExpiredRefreshTokens(ctx context.Context, userID uuid.UUID) error
}
