package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// OfferingRepository defines the persistence contract for service offerings.
type OfferingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Offering, error)
	FindAll(ctx context.Context) ([]domain.Offering, error)
	Save(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	DeleteByID(ctx context.Context, id string) error
}
