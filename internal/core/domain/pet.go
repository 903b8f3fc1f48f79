package domain

import (
	"errors"
	"time"
)

var ErrPetNotFound = errors.New("pet not found")
var ErrPetNotAvailable = errors.New("pet not available")

// Pet is a catalog entry. Status true means the pet is still available;
// a sale flips it to false.
type Pet struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Species     string    `gorm:"size:64" json:"species"`
	Breed       string    `gorm:"size:64" json:"breed"`
	Age         int       `json:"age"`
	Price       int64     `gorm:"not null" json:"price"`
	Description string    `gorm:"size:512" json:"description"`
	ImageURL    string    `gorm:"size:256" json:"image_url,omitempty"`
	Status      bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
