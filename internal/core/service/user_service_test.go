package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[uint]*domain.User
	nextID  uint
	saveErr error // if set, Save returns this error
	saves   int   // number of Save calls
	deletes int   // number of DeleteByID calls
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uint]*domain.User), nextID: 1}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Save enforces email and username uniqueness the way the real store's
// unique indexes do.
func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	for id, u := range r.byID {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email {
			return nil, domain.NewConflictError("email", user.Email)
		}
		if u.Username == user.Username {
			return nil, domain.NewConflictError("username", user.Username)
		}
	}
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	clone := *user
	r.byID[user.ID] = &clone
	r.saves++
	return user, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	r.deletes++
	return nil
}

type stubRoleRepo struct {
	byName map[string]*domain.Role
	nextID uint
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{byName: make(map[string]*domain.Role), nextID: 1}
	for _, name := range names {
		r.byName[name] = &domain.Role{ID: r.nextID, Name: name}
		r.nextID++
	}
	return r
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.byName))
	for _, role := range r.byName {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Save(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := r.byName[role.Name]; ok {
		return nil, domain.NewConflictError("name", role.Name)
	}
	role.ID = r.nextID
	r.nextID++
	clone := *role
	r.byName[role.Name] = &clone
	return role, nil
}

// stubHasher marks hashes with a prefix so tests can tell plaintext from
// stored form without pulling in bcrypt.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (stubHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return errors.New("mismatch")
	}
	return nil
}

var discardLogger = zerolog.Nop()

func newUserService(users *stubUserRepo, roles *stubRoleRepo) *UserService {
	return NewUserService(users, roles, stubHasher{}, discardLogger)
}

func seedUser(repo *stubUserRepo, username, email string, roles ...domain.Role) *domain.User {
	u := &domain.User{
		Username: username,
		Email:    email,
		Password: "hashed:secret123",
		Status:   true,
		Roles:    roles,
	}
	saved, _ := repo.Save(context.Background(), u)
	return saved
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestUserService_Register_AttachesRole(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)

	saved, err := svc.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed:pw",
		Status:   true,
	}, domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.ID == 0 {
		t.Error("expected assigned id")
	}
	if !saved.HasRole(domain.RoleUser) {
		t.Errorf("expected role %q on saved user, got %v", domain.RoleUser, saved.RoleNames())
	}
}

func TestUserService_Register_UnknownRole_NoWrite(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)

	_, err := svc.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
	}, "MANAGER")
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if users.saves != 0 {
		t.Errorf("no user must be written when the role is missing, got %d saves", users.saves)
	}
}

func TestUserService_Register_DuplicateEmail_Conflict(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)
	seedUser(users, "alice", "alice@example.com")

	_, err := svc.Register(context.Background(), &domain.User{
		Username: "alice2",
		Email:    "alice@example.com",
	}, domain.RoleUser)

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "email" {
		t.Errorf("expected conflict on email, got %q", conflict.Field)
	}
}

// ---------------------------------------------------------------------------
// CreateRole
// ---------------------------------------------------------------------------

func TestUserService_CreateRole(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := newUserService(users, roles)

	saved, err := svc.CreateRole(context.Background(), &domain.Role{Name: "MANAGER"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected assigned id")
	}

	_, err = svc.CreateRole(context.Background(), &domain.Role{Name: "MANAGER"})
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError on duplicate role, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GrantRole
// ---------------------------------------------------------------------------

func TestUserService_GrantRole_AddsRole(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser, domain.RoleAdmin)
	svc := newUserService(users, roles)
	userRole, _ := roles.FindByName(context.Background(), domain.RoleUser)
	seedUser(users, "alice", "alice@example.com", *userRole)

	if err := svc.GrantRole(context.Background(), "alice@example.com", domain.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := users.FindByEmail(context.Background(), "alice@example.com")
	if !stored.HasRole(domain.RoleAdmin) || !stored.HasRole(domain.RoleUser) {
		t.Errorf("expected both roles, got %v", stored.RoleNames())
	}
}

func TestUserService_GrantRole_AlreadyHeld_NoWrite(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)
	userRole, _ := roles.FindByName(context.Background(), domain.RoleUser)
	seedUser(users, "alice", "alice@example.com", *userRole)

	savesBefore := users.saves
	if err := svc.GrantRole(context.Background(), "alice@example.com", domain.RoleUser); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.saves != savesBefore {
		t.Error("granting an already-held role must not write")
	}

	stored, _ := users.FindByEmail(context.Background(), "alice@example.com")
	if len(stored.Roles) != 1 {
		t.Errorf("role set must stay unchanged, got %v", stored.RoleNames())
	}
}

func TestUserService_GrantRole_MissingRole_NoWrite(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)
	seedUser(users, "alice", "alice@example.com")

	err := svc.GrantRole(context.Background(), "alice@example.com", "MANAGER")
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if users.saves != 1 { // just the seed
		t.Error("missing role must not trigger a user write")
	}
}

func TestUserService_GrantRole_MissingUser(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)

	err := svc.GrantRole(context.Background(), "ghost@example.com", domain.RoleUser)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdatePassword
// ---------------------------------------------------------------------------

func TestUserService_UpdatePassword_StoresHashedForm(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := newUserService(users, roles)
	user := seedUser(users, "alice", "alice@example.com")

	saved, err := svc.UpdatePassword(context.Background(), user, "newsecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Password != "hashed:newsecret" {
		t.Errorf("plaintext must pass through the hasher, got %q", saved.Password)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if stored.Password != "hashed:newsecret" {
		t.Errorf("stored credential not updated, got %q", stored.Password)
	}
}

// ---------------------------------------------------------------------------
// DeleteByUsername
// ---------------------------------------------------------------------------

func TestUserService_DeleteByUsername_ReturnsRemovedRecord(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(domain.RoleUser)
	svc := newUserService(users, roles)
	seeded := seedUser(users, "alice", "alice@example.com")

	removed, err := svc.DeleteByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != seeded.ID || removed.Email != seeded.Email {
		t.Errorf("expected the deleted record back, got %+v", removed)
	}
	if _, err := users.FindByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Error("user must be gone after delete")
	}
}

func TestUserService_DeleteByUsername_Missing(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := newUserService(users, roles)

	_, err := svc.DeleteByUsername(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if users.deletes != 0 {
		t.Error("no delete must be issued for a missing user")
	}
}

// ---------------------------------------------------------------------------
// ToggleActive
// ---------------------------------------------------------------------------

func TestUserService_ToggleActive_FlipsAndRestores(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := newUserService(users, roles)
	user := seedUser(users, "alice", "alice@example.com")

	toggled, err := svc.ToggleActive(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Status {
		t.Error("first toggle must deactivate an active user")
	}

	restored, err := svc.ToggleActive(context.Background(), toggled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !restored.Status {
		t.Error("second toggle must restore the original value")
	}
}
