package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// UpdatePetInput carries the editable catalog fields. Nil pointers leave the
// stored value untouched.
type UpdatePetInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *int
	Price       *int64
	Description *string
	ImageURL    *string
}

// ListPetsResult is returned by List with the pagination state applied.
type ListPetsResult struct {
	Items      []domain.Pet
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PetService defines use-case operations for the pet catalog.
type PetService interface {
	List(ctx context.Context, page, limit int) (*ListPetsResult, error)
	Get(ctx context.Context, id string) (*domain.Pet, error)
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, id string, input UpdatePetInput) (*domain.Pet, error)
	SetStatus(ctx context.Context, id string, status bool) (*domain.Pet, error)
	ClearImage(ctx context.Context, id string) (*domain.Pet, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
