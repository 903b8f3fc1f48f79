package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking records a user reserving a service offering. Status true means the
// booking is confirmed; false means cancelled or pending.
type Booking struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OfferingID    string    `gorm:"size:36;not null;index" json:"offering_id"`
	Offering      Offering  `json:"offering"`
	BookedAt      time.Time `gorm:"not null" json:"booked_at"`
	PaymentMethod string    `gorm:"size:32" json:"payment_method"`
	Status        bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
