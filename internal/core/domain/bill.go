package domain

import (
	"errors"
	"time"
)

var ErrBillNotFound = errors.New("bill not found")

// Bill records a pet sale: who bought which pet, how, and for how much.
// The price is captured at sale time so later catalog edits do not rewrite
// billing history.
type Bill struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `json:"-"`
	PetID         string    `gorm:"size:36;not null;index" json:"pet_id"`
	Pet           Pet       `json:"pet"`
	PaymentMethod string    `gorm:"size:32" json:"payment_method"`
	Price         int64     `gorm:"not null" json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}
