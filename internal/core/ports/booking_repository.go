package ports

import (
	"context"

	"github.com/petcare/pet-service/internal/core/domain"
)

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Booking, int64, error)
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	DeleteByID(ctx context.Context, id string) error
}
