package ports

import (
	"context"
	"time"

	"github.com/petcare/pet-service/internal/core/domain"
)

// CreateBookingInput carries all data needed to book a service offering.
type CreateBookingInput struct {
	UserID        uint
	OfferingID    string
	BookedAt      time.Time
	PaymentMethod string
}

// ListBookingsResult is returned by ListAll.
type ListBookingsResult struct {
	Items      []domain.Booking
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookingService defines use-case operations for service bookings.
type BookingService interface {
	// Create books an offering for a user. The offering must exist and be
	// active.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	ListAll(ctx context.Context, page, limit int) (*ListBookingsResult, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status bool) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
