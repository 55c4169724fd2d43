package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wordrush/internal/config"
	"wordrush/internal/handlers"
	"wordrush/internal/repository"
	"wordrush/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	var handler slog.Handler
	if cfg.AppEnv == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 3. Initialize Database
	databaseURL := cfg.EffectiveDatabaseURL()
	db, err := repository.InitDB(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 4. Create Schema
	if strings.HasPrefix(databaseURL, "postgres") {
		logger.Info("Running database migrations...")
		if err := repository.RunMigrations(databaseURL, ""); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	} else {
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("schema creation failed: %w", err)
		}
	}

	// 5. Check Redis (optional session backing)
	if cfg.RedisURL != "" {
		addr, password, err := repository.ParseRedisURL(cfg.RedisURL)
		if err == nil {
			_, err = repository.InitRedis(addr, password, 0)
		}
		if err != nil {
			logger.Warn("Failed to connect to Redis, sessions stay cookie-backed", "error", err)
			cfg.RedisURL = ""
		}
	}

	// 6. Initialize Services
	auditService := services.NewAuditService(db, logger)
	userService := services.NewUserService(db, auditService)
	gameService := services.NewGameService(db, auditService)
	statsService := services.NewStatsService(db, logger)

	// 7. Initialize Handler
	h := handlers.NewHandler(cfg, logger, userService, gameService, statsService, auditService)

	// 8. Setup Router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := h.SetupRouter("web/templates/*", "./web/static")

	// 9. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Background Context for workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	go auditService.Start(workerCtx)

	// Initializing server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	// Graceful shutdown timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	workerCancel()
	// Wait a tiny bit for workers
	time.Sleep(100 * time.Millisecond)

	logger.Info("Server exiting")
	return nil
}
