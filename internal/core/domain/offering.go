package domain

import (
	"errors"
	"time"
)

var ErrOfferingNotFound = errors.New("service offering not found")
var ErrOfferingInactive = errors.New("service offering inactive")

// Offering is a bookable service (grooming, boarding, vet visit, ...).
// Status false takes the offering out of the bookable set without deleting
// the historical bookings that reference it.
type Offering struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:512" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Status      bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
