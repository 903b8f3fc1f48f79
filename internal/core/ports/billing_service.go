package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// CreateBillInput carries all data needed to record a pet sale.
type CreateBillInput struct {
	UserID        uint
	PetID         string
	PaymentMethod string
}

// ListBillsResult is returned by List.
type ListBillsResult struct {
	Items      []domain.Bill
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BillingService defines use-case operations for billing records.
type BillingService interface {
	// Create records a sale. The pet must exist and still be available; the
	// sale price is captured from the catalog at call time.
	Create(ctx context.Context, input CreateBillInput) (*domain.Bill, error)
	List(ctx context.Context, page, limit int) (*ListBillsResult, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Bill, error)
	Get(ctx context.Context, id string) (*domain.Bill, error)
}
