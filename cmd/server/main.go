package main

import (
	"context"

	"github.com/petcare/pet-service/internal/api"
	"github.com/petcare/pet-service/internal/infrastructure/config"
	"github.com/petcare/pet-service/internal/infrastructure/db/mysql"
	"github.com/petcare/pet-service/internal/infrastructure/db/redis"
	"github.com/petcare/pet-service/pkg/logger"
)

// @title        Pet Service API
// @version      1.0
// @description  User directory, pet catalog, bookings and billing for the pet store.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

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

	rdb, err := redis.Connect(context.Background(), redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg.JWTSecret, logger.Component("api"))

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
