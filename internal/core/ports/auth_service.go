package ports

import (
	"context"
	"time"

	"github.com/petcare/pet-service/internal/core/domain"
)

// TokenDenylist records revoked tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService authenticates users and manages token lifecycle.
type AuthService interface {
	// Login verifies the credentials and returns a signed JWT carrying the
	// user's roles. Inactive accounts cannot log in.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, token string) error
}
