package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	transactionUseCase "github.com/mkarimi-dev/finance-tracker/internal/domain/usecase/transaction"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/ratelimit"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/logger"
	ratelimitAdapter "github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/ratelimit"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/config"

	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repository and use case
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	transactionService := transactionUseCase.NewService(transactionRepo, tp, appLogger)

	// Initialize rate limiter
	limiter := buildLimiter(cfg, tp, appLogger)

	// Initialize API handlers
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)
	healthHandler := handler.NewHealthHandler()

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, limiter, appLogger)
	routes.SetupRoutes(router, transactionHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildLimiter picks the Redis-backed limiter when a Redis address is
// configured and falls back to the in-process one otherwise.
func buildLimiter(cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) ratelimit.Limiter {
	if cfg.RateLimit.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		appLogger.Info("Using Redis rate limiter", map[string]any{
			"addr":     cfg.RateLimit.RedisAddr,
			"requests": cfg.RateLimit.Requests,
			"window":   cfg.RateLimit.Window.String(),
		})
		return ratelimitAdapter.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window, tp, appLogger)
	}

	appLogger.Info("Using in-memory rate limiter", map[string]any{
		"requests": cfg.RateLimit.Requests,
		"window":   cfg.RateLimit.Window.String(),
	})
	return ratelimitAdapter.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, tp)
}
