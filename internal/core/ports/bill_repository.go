package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// BillRepository defines the persistence contract for bills.
type BillRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Bill, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Bill, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Bill, int64, error)
	// CreateWithSale inserts the bill and marks the referenced pet as sold in
	// a single transaction: either both writes apply or neither does.
	CreateWithSale(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
}
