package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/raffaelramalhorosa/newsnow/internal/models"
)

// Store persists the full NewsItem collection as a single JSON snapshot
// file. Every successful save replaces the snapshot wholesale; there is no
// incremental merge.
type Store struct {
	path   string
	logger *slog.Logger
}

// New returns a Store writing to and reading from path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Save writes items as an indented UTF-8 JSON array, creating the parent
// directory if needed. The write goes to a temp file in the same directory
// followed by a rename, so a failed save never leaves a snapshot that a
// later Load would reject.
func (s *Store) Save(items []models.NewsItem) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "    ")
	// Keep non-ASCII text and URLs literal in the file.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}

	s.logger.Info("snapshot saved", "path", s.path, "items", len(items))
	return nil
}

// Load reads the current snapshot. A missing file or invalid JSON is
// logged and yields an empty collection; callers never see an error.
func (s *Store) Load() []models.NewsItem {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("snapshot unreadable", "path", s.path, "error", err)
		}
		return []models.NewsItem{}
	}

	var items []models.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("snapshot corrupt", "path", s.path, "error", err)
		return []models.NewsItem{}
	}
	return items
}
