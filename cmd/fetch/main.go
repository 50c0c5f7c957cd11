// Command fetch runs the fetch-normalize pipeline once and writes the
// snapshot, for running outside the web server (e.g. from a shell).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/raffaelramalhorosa/newsnow/internal/config"
	"github.com/raffaelramalhorosa/newsnow/internal/fetcher"
	"github.com/raffaelramalhorosa/newsnow/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	st := store.New(cfg.SnapshotPath, logger)

	items := fetcher.New(cfg, logger).FetchAll(context.Background())
	if len(items) == 0 {
		logger.Warn("no news items fetched, snapshot left unchanged")
		return
	}

	if err := st.Save(items); err != nil {
		logger.Error("snapshot save failed", "error", err)
		os.Exit(1)
	}
	logger.Info("fetch complete", "items", len(items), "path", st.Path())
}
