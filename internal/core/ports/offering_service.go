package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// UpdateOfferingInput carries the editable offering fields. Nil pointers leave
// the stored value untouched.
type UpdateOfferingInput struct {
	Name        *string
	Description *string
	Price       *int64
}

// OfferingService defines use-case operations for bookable service offerings.
type OfferingService interface {
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	List(ctx context.Context) ([]domain.Offering, error)
	Get(ctx context.Context, id string) (*domain.Offering, error)
	Update(ctx context.Context, id string, input UpdateOfferingInput) (*domain.Offering, error)
	SetStatus(ctx context.Context, id string, status bool) (*domain.Offering, error)
	Delete(ctx context.Context, id string) error
}
