package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminhub/user-console/internal/api"
	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
	"github.com/adminhub/user-console/internal/core/service"
	mongodb "github.com/adminhub/user-console/internal/infrastructure/db/mongo"
	redisdb "github.com/adminhub/user-console/internal/infrastructure/db/redis"
	"github.com/adminhub/user-console/internal/infrastructure/queue"
	"github.com/adminhub/user-console/internal/pkg/config"
	"github.com/adminhub/user-console/pkg/logger"

	_ "github.com/adminhub/user-console/docs" // swagger docs
)

const shutdownTimeout = 10 * time.Second

// @title User Console API
// @version 1.0
// @description User and address administration API with JWT authentication, role-based access control, and an audit trail.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, !cfg.IsProduction())

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	// --- Audit trail ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- Initial admin account ---
	if err := seedAdmin(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(mongoClient, db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// seedAdmin provisions the initial administrator account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no such account exists yet.
func seedAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	repo := mongodb.NewUserRepository(db)
	if _, err := repo.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	auth := service.NewAuthService(repo, nil, cfg.JWTSecret, cfg.TokenTTL)
	_, err := auth.Signup(ctx, ports.SignupInput{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Roles:    []string{domain.RoleAdmin},
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("seeded initial admin account")
	return nil
}
