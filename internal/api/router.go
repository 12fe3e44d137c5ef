package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/user-console/internal/api/handler"
	"github.com/adminhub/user-console/internal/api/middleware"
	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
	"github.com/adminhub/user-console/internal/core/service"
	mongodb "github.com/adminhub/user-console/internal/infrastructure/db/mongo"
	redisdb "github.com/adminhub/user-console/internal/infrastructure/db/redis"
	"github.com/adminhub/user-console/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is constructed by the caller so its worker lifecycle can
// be tied to the process, not the router.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userconsole"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	revoked := redisdb.NewRevokedTokens(rdb)

	authService := service.NewAuthService(userRepo, revoked, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, addressRepo, audit, log)
	addressService := service.NewAddressService(addressRepo, userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	addressHandler := handler.NewAddressHandler(addressService)
	healthHandler := handler.NewHealthHandler(client, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret, revoked)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- User routes ---
	users := e.Group("/api/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/password", userHandler.UpdatePassword)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Address routes (nested under the owning user) ---
	addresses := e.Group("/api/users/:userId/addresses", authRequired)
	addresses.GET("", addressHandler.List)
	addresses.POST("", addressHandler.Create)
	addresses.GET("/:id", addressHandler.Get)
	addresses.PUT("/:id", addressHandler.Update)
	addresses.DELETE("/:id", addressHandler.Delete)

	// Cross-user address listing for the admin console.
	e.GET("/api/addresses", addressHandler.ListAll, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
