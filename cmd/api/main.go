// Package main is the entry point for the Pockets Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pockets-tracker/backend/config"
	"github.com/pockets-tracker/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Pockets Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	injector, err := dependency.NewInjector(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := injector.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Seed default categories on first run
	if err := injector.SeedCategories.Execute(context.Background()); err != nil {
		slog.Error("Failed to seed default categories", "error", err)
		os.Exit(1)
	}

	// Startup sync pass: materialize due recurring templates, evaluate the
	// budget, and sweep stale alert state. Soft-failing, so the server starts
	// even when parts of it had trouble.
	syncOutput := injector.RunSync.Execute(context.Background())
	slog.Info("Startup sync completed",
		"templates_processed", syncOutput.TemplatesProcessed,
		"transactions_created", syncOutput.TransactionsCreated,
		"budget_alert_raised", syncOutput.BudgetAlertRaised,
	)

	// Notification delivery worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Alerts.WorkerEnabled {
		go injector.Worker.Start(workerCtx)
	} else {
		slog.Info("Notification worker disabled")
	}

	// Setup router and HTTP server
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
