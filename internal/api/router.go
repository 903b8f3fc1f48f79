package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/petcare/pet-service/docs"
	"github.com/petcare/pet-service/internal/api/handler"
	"github.com/petcare/pet-service/internal/api/middleware"
	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/service"
	"github.com/petcare/pet-service/internal/infrastructure/db/mysql"
	"github.com/petcare/pet-service/internal/infrastructure/db/redis"
	"github.com/petcare/pet-service/internal/infrastructure/hash"
	"github.com/petcare/pet-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("petservice"))

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	petRepo := mysql.NewPetRepository(db)
	offeringRepo := mysql.NewOfferingRepository(db)
	bookingRepo := mysql.NewBookingRepository(db)
	billRepo := mysql.NewBillRepository(db)

	hasher := hash.NewBcryptHasher()
	denylist := redis.NewTokenDenylist(rdb)

	userService := service.NewUserService(userRepo, roleRepo, hasher, log)
	authService := service.NewAuthService(userRepo, hasher, denylist, jwtSecret, 24*time.Hour)
	petService := service.NewPetService(petRepo, log)
	offeringService := service.NewOfferingService(offeringRepo, log)
	bookingService := service.NewBookingService(bookingRepo, offeringRepo, log)
	billingService := service.NewBillingService(billRepo, petRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService, hasher)
	petHandler := handler.NewPetHandler(petService)
	offeringHandler := handler.NewOfferingHandler(offeringService)
	bookingHandler := handler.NewBookingHandler(bookingService, userService)
	billingHandler := handler.NewBillingHandler(billingService, userService)

	authMiddleware := middleware.Auth(jwtSecret, denylist)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout, authMiddleware)

	// --- Authenticated routes (any role) ---
	apiGroup := e.Group("/api", authMiddleware)

	apiGroup.GET("/pets", petHandler.List)
	apiGroup.GET("/pets/:id", petHandler.Get)
	apiGroup.GET("/offerings", offeringHandler.List)
	apiGroup.GET("/offerings/:id", offeringHandler.Get)

	apiGroup.POST("/bookings", bookingHandler.Create)
	apiGroup.GET("/bookings", bookingHandler.ListOwn)
	apiGroup.GET("/bookings/:id", bookingHandler.Get)

	apiGroup.POST("/bills", billingHandler.Create)
	apiGroup.GET("/bills", billingHandler.ListOwn)
	apiGroup.GET("/bills/:id", billingHandler.Get)

	// --- Admin routes ---
	adminGroup := apiGroup.Group("/admin", adminOnly)

	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.POST("/user/save", adminHandler.SaveUser)
	adminGroup.POST("/role/save", adminHandler.SaveRole)
	adminGroup.POST("/role/addtouser", adminHandler.AddRoleToUser)
	adminGroup.PUT("/user/password", adminHandler.UpdatePassword)
	adminGroup.PUT("/user/:username/active", adminHandler.ToggleActive)
	adminGroup.DELETE("/user/:username", adminHandler.DeleteUser)

	adminGroup.POST("/pets", petHandler.Create)
	adminGroup.PUT("/pets/:id", petHandler.Update)
	adminGroup.PUT("/pets/:id/status", petHandler.SetStatus)
	adminGroup.DELETE("/pets/:id/image", petHandler.ClearImage)
	adminGroup.DELETE("/pets/:id", petHandler.Delete)
	adminGroup.DELETE("/pets", petHandler.DeleteMany)

	adminGroup.POST("/offerings", offeringHandler.Create)
	adminGroup.PUT("/offerings/:id", offeringHandler.Update)
	adminGroup.PUT("/offerings/:id/status", offeringHandler.SetStatus)
	adminGroup.DELETE("/offerings/:id", offeringHandler.Delete)

	adminGroup.GET("/bookings", bookingHandler.ListAll)
	adminGroup.PUT("/bookings/:id/status", bookingHandler.SetStatus)
	adminGroup.DELETE("/bookings/:id", bookingHandler.Delete)

	adminGroup.GET("/bills", billingHandler.ListAll)

	// --- Operational surface ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
