package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"

	"github.com/raffaelramalhorosa/newsnow/internal/config"
	"github.com/raffaelramalhorosa/newsnow/internal/models"
)

// Fetcher pulls every configured feed in order and normalizes the entries
// into NewsItem records. Feeds are fetched sequentially with a politeness
// pause before each request; one feed's failure never blocks the rest.
type Fetcher struct {
	cfg    config.Config
	client *http.Client
	parser *gofeed.Parser
	logger *slog.Logger
}

// New returns a Fetcher using the given configuration.
func New(cfg config.Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

// FetchAll runs the whole pipeline once. It never returns an error: every
// failure is contained to the feed or entry it occurred in and logged.
// Serial numbers are assigned 1..N over the final concatenated list, in
// feed order then within-feed entry order.
func (f *Fetcher) FetchAll(ctx context.Context) []models.NewsItem {
	all := make([]models.NewsItem, 0, len(f.cfg.FeedURLs)*f.cfg.MaxPerFeed)

	for _, url := range f.cfg.FeedURLs {
		f.logger.Info("fetching feed", "url", url)
		pause(ctx, f.cfg.RequestDelay)

		items, warnings, err := f.fetchFeed(ctx, url)
		for _, w := range warnings {
			f.logger.Warn(w, "url", url)
		}
		if err != nil {
			f.logger.Error("feed fetch failed", "url", url, "error", err)
			continue
		}

		all = append(all, items...)
		f.logger.Info("feed fetched", "url", url, "articles", len(items))
	}

	for i := range all {
		all[i].SerialNo = i + 1
	}
	return all
}

// fetchFeed downloads and parses a single feed. It returns a best-effort
// list of normalized items plus any warnings the caller should log. A
// non-2xx status or a malformed document is a warning, not an error: the
// body is still parsed and whatever entries were recoverable are kept.
func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]models.NewsItem, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	var warnings []string
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		warnings = append(warnings, fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, warnings, fmt.Errorf("read %s: %w", url, err)
	}

	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		// Malformed document: keep whatever the parser recovered.
		warnings = append(warnings, fmt.Sprintf("malformed feed: %v", err))
	}
	if feed == nil {
		return nil, warnings, nil
	}

	items := make([]models.NewsItem, 0, min(len(feed.Items), f.cfg.MaxPerFeed))
	for _, entry := range feed.Items {
		if len(items) >= f.cfg.MaxPerFeed {
			break
		}
		if entry == nil {
			continue
		}
		item, warns := normalizeEntry(entry)
		warnings = append(warnings, warns...)
		items = append(items, item)
	}
	return items, warnings, nil
}

// normalizeEntry maps one parsed entry onto the NewsItem shape, filling
// the placeholder for every field the source did not provide. A date that
// cannot be parsed yields the placeholder, never a dropped entry.
func normalizeEntry(entry *gofeed.Item) (models.NewsItem, []string) {
	item := models.NewsItem{
		Title:         models.Placeholder,
		Link:          models.Placeholder,
		PublishedDate: models.Placeholder,
		Summary:       models.Placeholder,
	}

	if entry.Title != "" {
		item.Title = entry.Title
	}
	if entry.Link != "" {
		item.Link = entry.Link
	}

	if entry.Description != "" {
		item.Summary = entry.Description
	} else if entry.Content != "" {
		item.Summary = entry.Content
	}

	var warnings []string
	if date, warn := normalizeDate(entry); warn != "" {
		warnings = append(warnings, warn)
	} else if date != "" {
		item.PublishedDate = date
	}
	return item, warnings
}

// normalizeDate picks the published timestamp, falling back to the updated
// one, and renders it in the fixed layout. The raw string wins over the
// parser's pre-parsed value so published-vs-updated precedence is decided
// on the fields the source actually sent.
func normalizeDate(entry *gofeed.Item) (string, string) {
	raw := entry.Published
	parsed := entry.PublishedParsed
	if raw == "" {
		raw = entry.Updated
		parsed = entry.UpdatedParsed
	}
	if raw == "" {
		return "", ""
	}

	if parsed != nil {
		return parsed.Format(models.DateLayout), ""
	}

	// gofeed could not parse it; try the lenient any-format parser.
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", fmt.Sprintf("unparseable date %q: %v", raw, err)
	}
	return t.Format(models.DateLayout), ""
}

// pause sleeps for d or until ctx is cancelled, whichever comes first.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
