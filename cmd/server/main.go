package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/raffaelramalhorosa/newsnow/internal/config"
	"github.com/raffaelramalhorosa/newsnow/internal/fetcher"
	"github.com/raffaelramalhorosa/newsnow/internal/store"
	"github.com/raffaelramalhorosa/newsnow/internal/web"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// --- Configuration ---
	cfg := config.Load()

	// --- Dependencies ---
	st := store.New(cfg.SnapshotPath, logger)
	fetch := fetcher.New(cfg, logger)
	srv := web.New(st, fetch, logger)

	// --- HTTP server ---
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // refresh waits on every feed
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started", "addr", cfg.Addr, "snapshot", cfg.SnapshotPath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
