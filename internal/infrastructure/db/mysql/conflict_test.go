package mysql

import (
	"errors"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

func TestTranslateDuplicate_EmailIndex(t *testing.T) {
	err := translateDuplicate(&gomysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'alice@example.com' for key 'users.idx_users_email'",
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "email" {
		t.Errorf("field: expected email, got %q", conflict.Field)
	}
	if conflict.Value != "alice@example.com" {
		t.Errorf("value: expected the duplicated entry, got %q", conflict.Value)
	}
}

func TestTranslateDuplicate_UsernameIndex(t *testing.T) {
	err := translateDuplicate(&gomysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'alice' for key 'users.idx_users_username'",
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "username" {
		t.Errorf("field: expected username, got %q", conflict.Field)
	}
}

func TestTranslateDuplicate_RoleNameIndex(t *testing.T) {
	err := translateDuplicate(&gomysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'ADMIN' for key 'roles.idx_roles_name'",
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "name" {
		t.Errorf("field: expected name, got %q", conflict.Field)
	}
	if conflict.Value != "ADMIN" {
		t.Errorf("value: expected ADMIN, got %q", conflict.Value)
	}
}

func TestTranslateDuplicate_UnknownIndexFallsBack(t *testing.T) {
	err := translateDuplicate(&gomysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'x' for key 'things.idx_things_code'",
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "value" {
		t.Errorf("unknown index must fall back to the generic field, got %q", conflict.Field)
	}
}

func TestTranslateDuplicate_OtherDriverErrorPassesThrough(t *testing.T) {
	in := &gomysql.MySQLError{Number: 1213, Message: "Deadlock found"}
	if err := translateDuplicate(in); !errors.Is(err, in) {
		t.Errorf("non-duplicate driver errors must pass through, got %v", err)
	}
}

func TestTranslateDuplicate_PlainErrorPassesThrough(t *testing.T) {
	in := errors.New("connection reset")
	if err := translateDuplicate(in); !errors.Is(err, in) {
		t.Errorf("unrelated errors must pass through, got %v", err)
	}
}

func TestTranslateDuplicate_GormDuplicatedKey(t *testing.T) {
	err := translateDuplicate(gorm.ErrDuplicatedKey)

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
