package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const fetchTimeout = 30 * time.Second

// FetchError reports a failed feed retrieval or parse. It carries the feed
// URL so the top level can tell the user which source broke.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves RSS documents and turns them into episode lists. One
// fetch is one outbound request; there is no retry and no caching.
type Fetcher struct {
	client *http.Client
	log    *zap.Logger
}

func NewFetcher(log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Fetch downloads and parses the feed at url, returning up to limit
// episodes in document order. Items without a title or an enclosure URL
// are skipped, matching how podcast feeds mix episodes with announcement
// items. limit <= 0 disables truncation. Any transport, status, or parse
// failure comes back as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string, limit int) ([]Episode, error) {
	f.log.Debug("fetching feed", zap.String("url", url))

	fp := gofeed.NewParser()
	fp.Client = f.client

	parsed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	episodes := make([]Episode, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if limit > 0 && len(episodes) == limit {
			break
		}

		mediaURL := enclosureURL(item)
		if item.Title == "" || mediaURL == "" {
			f.log.Debug("skipping feed item without title or enclosure",
				zap.String("guid", item.GUID))
			continue
		}

		ep := Episode{
			Title:       item.Title,
			MediaURL:    mediaURL,
			Description: item.Description,
			Published:   item.PublishedParsed,
		}
		if item.ITunesExt != nil {
			ep.Duration = item.ITunesExt.Duration
		}
		episodes = append(episodes, ep)
	}

	f.log.Debug("feed parsed",
		zap.String("feed", parsed.Title),
		zap.Int("items", len(parsed.Items)),
		zap.Int("episodes", len(episodes)))

	return episodes, nil
}

func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
