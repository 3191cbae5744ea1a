package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail marks an email/password credential.
const ProviderEmail = "email"

// Authentication is one way a user can log in. Only email/password
// credentials are issued today.
type Authentication struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     string // "email"
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// RefreshToken is a persisted login session. Only the SHA-256 hash of the
// raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
