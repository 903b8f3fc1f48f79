package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// BookingRepository persists bookings through gorm.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).Preload("Offering").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).Preload("Offering").Where("user_id = ?", userID).Order("booked_at desc").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	var bookings []domain.Booking
	err := r.db.WithContext(ctx).Preload("Offering").Order("booked_at desc").Offset(offset).Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, total, nil
}

func (r *BookingRepository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	// Omit belongs-to associations so saving a booking never mutates the
	// referenced user or offering rows.
	if err := r.db.WithContext(ctx).Omit("User", "Offering").Save(booking).Error; err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return booking, nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
