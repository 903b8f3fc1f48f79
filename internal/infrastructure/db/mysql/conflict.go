package mysql

import (
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// MySQL error number for "Duplicate entry '...' for key '...'".
const duplicateEntryErrNo = 1062

// translateDuplicate converts a duplicate-key driver error into a field-level
// *domain.ConflictError so the HTTP layer can name the offending field. The
// column is inferred from the unique index name in the driver message and the
// duplicated value from the quoted entry. Non-duplicate errors pass through
// unchanged.
//
// Uniqueness is enforced here, at the constraint: any service-level existence
// check is only a fast path, and two concurrent writers racing past it both
// end up in this translation.
func translateDuplicate(err error) error {
	var myErr *gomysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != duplicateEntryErrNo {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("value", "")
		}
		return err
	}

	field := "value"
	for _, candidate := range []string{"email", "username", "name"} {
		if strings.Contains(myErr.Message, candidate) {
			field = candidate
			break
		}
	}

	value := ""
	if parts := strings.SplitN(myErr.Message, "'", 3); len(parts) >= 2 {
		value = parts[1]
	}

	return domain.NewConflictError(field, value)
}
