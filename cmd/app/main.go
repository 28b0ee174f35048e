package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/jobboard/internal/bootstrap"
	"github.com/osse101/jobboard/internal/config"
	"github.com/osse101/jobboard/internal/database"
	"github.com/osse101/jobboard/internal/handler"
	"github.com/osse101/jobboard/internal/server"
)

// @title Jobboard API
// @version 1.0
// @description Job postings backed by PostgreSQL. Reads are public; writes require X-API-Key.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	version := cfg.Version
	if handler.BuildVersion != "" {
		version = handler.BuildVersion
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, version, dbPool, repos.Job)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
