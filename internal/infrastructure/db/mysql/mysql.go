package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// Config captures the settings for establishing a MySQL connection.
type Config struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

// DSN renders the go-sql-driver connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4", c.User, c.Password, c.Host, c.Port, c.Database)
}

// Connect opens a gorm connection.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all entities, including the
// user_roles join table and the unique indexes that back uniqueness
// enforcement.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Pet{},
		&domain.Offering{},
		&domain.Booking{},
		&domain.Bill{},
	)
}
