package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/services"
	"github.com/SscSPs/online_banking_backend/internal/handlers"
	"github.com/SscSPs/online_banking_backend/internal/middleware"
	"github.com/SscSPs/online_banking_backend/internal/platform/config"
	"github.com/SscSPs/online_banking_backend/internal/platform/logging"
	"github.com/SscSPs/online_banking_backend/internal/platform/metrics"
	"github.com/SscSPs/online_banking_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/online_banking_backend/internal/scheduler"
	"github.com/SscSPs/online_banking_backend/pkg/database"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// @title Online Banking Savings API
// @version 1.0
// @description Interest rate policies, savings accounts and the daily settlement run.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Bootstrap logger until the configured one is ready
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, logCloser := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	slog.SetDefault(logger)
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logger.Error("Error closing log file", slog.String("error", cerr.Error()))
		}
	}()

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		_ = logCloser.Close()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, metrics.Settlement())

	runLimiter, err := middleware.NewInMemoryLimiter(cfg.SettlementRunRateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, runLimiter); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.SettlementEnabled {
		daily := scheduler.NewDailySettlement(
			serviceContainer.Savings,
			cfg.SettlementLocation,
			logger,
			scheduler.WithRunOnStartup(cfg.SettlementRunOnStartup),
		)
		g.Go(func() error {
			return daily.Run(gctx)
		})
	} else {
		logger.Info("Daily settlement scheduler disabled")
	}

	return g.Wait()
}
