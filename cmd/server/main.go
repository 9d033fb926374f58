package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recordbook/internal/config"
	"recordbook/internal/database"
	"recordbook/internal/middleware"
	"recordbook/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.Level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	recordStore := services.NewRecordStore(
		database.NewEngine(db.DB),
		services.RecordStoreConfig{
			DatabaseName: cfg.Store.DatabaseName,
			Version:      cfg.Store.Version,
			Upgrade:      services.CreateStoresUpgrade(cfg.Store.DefaultStores...),
		},
		services.NewPrometheusMetrics(),
		services.NewRecordLogger(logger),
	)
	defer recordStore.Close()

	if _, err := recordStore.Open(ctx); err != nil {
		return err
	}

	var tokenService services.TokenServiceInterface
	if cfg.Security.AuthEnabled() {
		tokenService = services.NewTokenService(&cfg.Security)
		logger.Info("bearer auth enabled for record writes", "issuer", cfg.Security.JWTIssuer)
	} else if cfg.IsProduction() {
		logger.Warn("JWT_SECRET not set, record writes are unauthenticated", "environment", cfg.Server.Environment)
	} else {
		logger.Info("JWT_SECRET not set, record writes are unauthenticated")
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	rateLimiter.StartCleanup(ctx)

	e := newRouter(routerDeps{
		db:           db,
		store:        recordStore,
		tokenService: tokenService,
		rateLimiter:  rateLimiter,
		corsOrigins:  cfg.Server.CORSAllowOrigins,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server shutdown complete")
	return nil
}
