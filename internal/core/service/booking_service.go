package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/api/metrics"
	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// BookingService implements use cases for booking service offerings.
type BookingService struct {
	bookings  ports.BookingRepository
	offerings ports.OfferingRepository
	logger    zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, offerings ports.OfferingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, offerings: offerings, logger: logger}
}

// Create books an offering for a user. The offering must exist and be active.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	offering, err := s.offerings.FindByID(ctx, input.OfferingID)
	if err != nil {
		return nil, err
	}
	if !offering.Status {
		return nil, domain.ErrOfferingInactive
	}

	bookedAt := input.BookedAt
	if bookedAt.IsZero() {
		bookedAt = time.Now().UTC()
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		OfferingID:    offering.ID,
		BookedAt:      bookedAt,
		PaymentMethod: input.PaymentMethod,
		Status:        true,
	}

	saved, err := s.bookings.Save(ctx, booking)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(offering.Name).Inc()
	s.logger.Info().Str("booking_id", saved.ID).Uint("user_id", saved.UserID).Str("offering", offering.Name).Msg("booking created")
	return saved, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookings.FindByUser(ctx, userID)
}

func (s *BookingService) ListAll(ctx context.Context, page, limit int) (*ports.ListBookingsResult, error) {
	page, limit = normalizePage(page, limit)

	bookings, total, err := s.bookings.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListBookingsResult{
		Items:      bookings,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) SetStatus(ctx context.Context, id string, status bool) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Status = status
	return s.bookings.Save(ctx, booking)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return err
	}
	return s.bookings.DeleteByID(ctx, id)
}
