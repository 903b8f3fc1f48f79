package main

import (
	"os"

	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/infrastructure/config"
	"github.com/petcare/pet-service/internal/infrastructure/db/mysql"
	"github.com/petcare/pet-service/internal/infrastructure/hash"
	"github.com/petcare/pet-service/pkg/logger"
)

// Runs schema migration and seeds the baseline roles. When ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD are set, a first administrator account is
// created as well, so a fresh deployment has someone who can log in.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	db, err := mysql.Connect(mysql.Config{
		User:     cfg.MySQL.User,
		Password: cfg.MySQL.Password,
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		Database: cfg.MySQL.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}

	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("schema migrated")

	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		role := domain.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("role seed failed")
		}
	}
	log.Info().Msg("baseline roles seeded")

	if err := seedAdmin(db); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
}

func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := hash.NewBcryptHasher().Hash(password)
	if err != nil {
		return err
	}

	var adminRole domain.Role
	if err := db.Where("name = ?", domain.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := domain.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Status:   true,
		Roles:    []domain.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log := logger.Get()
	log.Info().Str("username", username).Msg("initial admin created")
	return nil
}
