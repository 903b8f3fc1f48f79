package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Every lookup returns domain.ErrUserNotFound on a miss; Save performs an
// insert-or-update and surfaces uniqueness violations as *domain.ConflictError.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

// RoleRepository defines the persistence contract for role definitions.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Save(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
