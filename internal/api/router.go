package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itemvault/inventory-api/internal/api/handler"
	"github.com/itemvault/inventory-api/internal/api/middleware"
	"github.com/itemvault/inventory-api/internal/core/domain"
	"github.com/itemvault/inventory-api/internal/core/service"
	"github.com/itemvault/inventory-api/internal/infrastructure/config"
	mongodb "github.com/itemvault/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/itemvault/inventory-api/internal/infrastructure/db/redis"
	"github.com/itemvault/inventory-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	itemRepo := mongodb.NewItemRepository(db)
	itemCache := redisdb.NewItemCache(rdb, cfg.ItemCacheTTL)
	itemService := service.NewItemService(itemRepo, itemCache, log)
	itemHandler := handler.NewItemHandler(itemService)

	authRequired := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authRequired)

	// --- Item routes (all behind the bearer gate) ---
	items := e.Group("/item", authRequired)
	items.GET("", itemHandler.List)
	items.POST("", itemHandler.Create)
	items.GET("/:id", itemHandler.Get)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
