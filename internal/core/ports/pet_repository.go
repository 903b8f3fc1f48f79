package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// PetRepository defines the persistence contract for the pet catalog.
type PetRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Pet, int64, error)
	Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}
