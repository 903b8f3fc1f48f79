package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// PasswordHasher transforms a plaintext secret into its storable form and
// verifies candidates against it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// UserService is the single source of truth for user lifecycle operations.
// Mutations persist immediately; lookup misses always surface as definite
// errors, never as empty success.
type UserService interface {
	// Register persists a new user holding the named role. The role must
	// already exist; the password is expected to be hashed by the caller's
	// flow before the user reaches the repository.
	Register(ctx context.Context, user *domain.User, roleName string) (*domain.User, error)

	// CreateRole persists a new role as-is. Duplicate names fail at the
	// store's uniqueness constraint.
	CreateRole(ctx context.Context, role *domain.Role) (*domain.Role, error)

	// GrantRole adds the named role to the user resolved by email.
	// Granting an already-held role is a no-op.
	GrantRole(ctx context.Context, email, roleName string) error

	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpdatePassword replaces the stored credential with the hashed form of
	// plaintext and persists the user.
	UpdatePassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error)

	// DeleteByUsername hard-deletes the user row and returns the removed
	// record. Referenced roles are never deleted, only the join rows.
	DeleteByUsername(ctx context.Context, username string) (*domain.User, error)

	// ToggleActive flips the active flag and persists the user.
	ToggleActive(ctx context.Context, user *domain.User) (*domain.User, error)
}
