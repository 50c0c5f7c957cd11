package store_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/raffaelramalhorosa/newsnow/internal/models"
	"github.com/raffaelramalhorosa/newsnow/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleItems() []models.NewsItem {
	return []models.NewsItem{
		{Title: "First", Link: "https://example.com/1", PublishedDate: "2025-06-10 08:30", Summary: "one", SerialNo: 1},
		{Title: "Zweite Überschrift", Link: "https://example.com/2?a=1&b=2", PublishedDate: models.Placeholder, Summary: "café news", SerialNo: 2},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "general_news.json")
	s := store.New(path, discardLogger())

	want := sampleItems()
	if err := s.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := s.Load()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveKeepsTextLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	s := store.New(path, discardLogger())

	if err := s.Save(sampleItems()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(raw), "Zweite Überschrift") {
		t.Fatal("non-ASCII text was not preserved literally")
	}
	if !strings.Contains(string(raw), "a=1&b=2") {
		t.Fatal("URL query was HTML-escaped in the snapshot")
	}
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	s := store.New(path, discardLogger())

	if err := s.Save(sampleItems()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := s.Save(sampleItems()[:1]); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if got := s.Load(); len(got) != 1 {
		t.Fatalf("expected snapshot replaced wholesale, got %d items", len(got))
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "nope", "missing.json"), discardLogger())

	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := store.New(path, discardLogger()).Load()
	if len(got) != 0 {
		t.Fatalf("expected empty collection for corrupt snapshot, got %d items", len(got))
	}
}

func TestSaveBlockedPathReturnsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file, so the save cannot happen.
	s := store.New(filepath.Join(blocker, "news.json"), discardLogger())
	if err := s.Save(sampleItems()); err == nil {
		t.Fatal("expected save into blocked path to fail")
	}
}
