package config

import (
	"os"
	"time"
)

// Config carries every knob the pipeline and web surface need. Passing it
// explicitly (rather than reading package-level constants) lets tests
// inject mock feed lists and temp snapshot paths.
type Config struct {
	// FeedURLs is the fixed, ordered list of RSS/Atom sources. Order is
	// significant: items are serial-numbered in feed-then-entry order.
	FeedURLs []string

	// MaxPerFeed caps how many entries are taken from each feed.
	MaxPerFeed int

	// RequestDelay is the politeness pause before each feed request.
	RequestDelay time.Duration

	// FetchTimeout bounds a single feed's HTTP round trip.
	FetchTimeout time.Duration

	// SnapshotPath is where the JSON snapshot is written and read.
	SnapshotPath string

	// Addr is the web server listen address.
	Addr string
}

// Default returns the fixed production configuration.
func Default() Config {
	return Config{
		FeedURLs: []string{
			"http://feeds.bbci.co.uk/news/world/rss.xml",
			"http://mf.reuters.com/mf/rss/TopNews",
		},
		MaxPerFeed:   10,
		RequestDelay: 1 * time.Second,
		FetchTimeout: 15 * time.Second,
		SnapshotPath: "data/general_news.json",
		Addr:         ":8080",
	}
}

// Load returns Default with the operational knobs overridden from the
// environment. The feed list and per-feed cap are deliberately not
// configurable at runtime.
func Load() Config {
	cfg := Default()
	cfg.Addr = getenv("NEWSNOW_ADDR", cfg.Addr)
	cfg.SnapshotPath = getenv("NEWSNOW_SNAPSHOT", cfg.SnapshotPath)
	cfg.FetchTimeout = parseDurationEnv("NEWSNOW_FETCH_TIMEOUT", cfg.FetchTimeout)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
