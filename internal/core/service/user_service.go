package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/api/metrics"
	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// UserService is the single source of truth for user lifecycle operations:
// registration, role grants, credential rotation, activation toggling, and
// hard deletion. Every mutation persists immediately; there is no in-memory
// cache between calls.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, logger: logger}
}

// Register persists a new user holding the named role. The role must already
// exist. Uniqueness of email and username is enforced by the store: the
// boundary's existence checks are only a fast path, and a concurrent
// registration racing past them still fails here with a conflict.
func (s *UserService) Register(ctx context.Context, user *domain.User, roleName string) (*domain.User, error) {
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	user.AddRole(*role)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(roleName).Inc()
	s.logger.Info().Str("email", saved.Email).Str("role", roleName).Msg("user registered")
	return saved, nil
}

// CreateRole persists a new role as-is. No uniqueness pre-check is performed;
// duplicate names fail at the store's unique index with a conflict.
func (s *UserService) CreateRole(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", saved.Name).Msg("role created")
	return saved, nil
}

// GrantRole adds the named role to the user resolved by email. Both lookups
// must hit; granting an already-held role leaves the role set unchanged.
func (s *UserService) GrantRole(ctx context.Context, email, roleName string) error {
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.HasRole(role.Name) {
		return nil
	}

	user.AddRole(*role)
	if _, err := s.users.Save(ctx, user); err != nil {
		return err
	}

	metrics.RolesGrantedTotal.WithLabelValues(roleName).Inc()
	s.logger.Info().Str("email", email).Str("role", roleName).Msg("role granted")
	return nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsByUsername(ctx, username)
}

// UpdatePassword replaces the stored credential with the hashed form of
// plaintext and persists the user.
func (s *UserService) UpdatePassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error) {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user.Password = hash
	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", saved.Email).Msg("password updated")
	return saved, nil
}

// DeleteByUsername resolves the user, hard-deletes the row by id, and returns
// the removed record. Join rows to roles go with the user; the roles
// themselves are never touched.
func (s *UserService) DeleteByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.users.DeleteByID(ctx, user.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user deleted")
	return user, nil
}

// ToggleActive flips the active flag and persists the user. Calling it twice
// restores the original value.
func (s *UserService) ToggleActive(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Status = !user.Status

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", saved.Email).Bool("status", saved.Status).Msg("user status toggled")
	return saved, nil
}
