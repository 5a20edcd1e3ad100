package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/acmedash/invoice_dashboard_app/internal/core/services"
	"github.com/acmedash/invoice_dashboard_app/internal/handlers"
	"github.com/acmedash/invoice_dashboard_app/internal/middleware"
	"github.com/acmedash/invoice_dashboard_app/internal/platform/cache"
	"github.com/acmedash/invoice_dashboard_app/internal/platform/config"
	"github.com/acmedash/invoice_dashboard_app/internal/repositories/database/pgsql"
	"github.com/acmedash/invoice_dashboard_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Invoice Dashboard API
// @version 1.0
// @description Backend API for the invoice dashboard.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name dashboard_session
// @description Session cookie issued by POST /auth/login.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	listingCache := buildListingCache(cfg, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, listingCache, logger)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations before the server starts
// taking traffic.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Migrations use a standard sql.DB connection over the pgx stdlib driver,
	// separate from the application pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsDir, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// buildListingCache returns the Redis-backed listing cache when REDIS_ADDR is
// configured, and the in-process cache otherwise.
func buildListingCache(cfg *config.Config, logger *slog.Logger) portsrepo.ListingCache {
	if cfg.RedisAddr == "" {
		logger.Info("Using in-process listing cache")
		return cache.NewMemoryListingCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unreachable, falling back to in-process listing cache",
			slog.String("addr", cfg.RedisAddr),
			slog.String("error", err.Error()),
		)
		return cache.NewMemoryListingCache()
	}

	logger.Info("Using Redis listing cache", slog.String("addr", cfg.RedisAddr))
	return cache.NewRedisListingCache(client, cfg.ListingCacheTTL, logger)
}
