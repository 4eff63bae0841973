package rsswire

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"NewsPulse/internal/config"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/source"
)

const providerName = "rsswire"

// Client pulls the configured wire feeds (BBC World, Al Jazeera, ...) and
// normalizes their items. Wire feeds carry no query surface, so the
// adapter only participates in global dashboard mode.
type Client struct {
	feeds   []config.FeedConfig
	timeout time.Duration
	parser  *gofeed.Parser
	logger  *slog.Logger
}

var _ source.Provider = (*Client)(nil)

// NewClient wires the adapter from the configured feed list.
func NewClient(cfg config.RSSConfig, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		feeds:   cfg.Feeds,
		timeout: timeout,
		parser:  gofeed.NewParser(),
		logger:  logger,
	}
}

// Name identifies the provider inside the registry.
func (c *Client) Name() string {
	return providerName
}

// SupportsSearch is false: the registry never selects this adapter for
// q/category queries.
func (c *Client) SupportsSearch() bool {
	return false
}

// Fetch polls every configured feed concurrently, each under its own
// deadline. A dead feed logs and contributes zero items; only an empty
// feed list is a hard error.
func (c *Client) Fetch(ctx context.Context, _ source.Query) ([]domain.Article, error) {
	if len(c.feeds) == 0 {
		return nil, fmt.Errorf("rsswire: no feeds configured")
	}

	buckets := make([][]domain.Article, len(c.feeds))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, feed := range c.feeds {
		g.Go(func() error {
			articles := c.fetchFeed(gctx, feed)
			mu.Lock()
			buckets[i] = articles
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // sub-tasks never return errors

	var merged []domain.Article
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}
	return merged, nil
}

func (c *Client) fetchFeed(ctx context.Context, cfg config.FeedConfig) []domain.Article {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parsed, err := c.parser.ParseURLWithContext(cfg.URL, callCtx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("feed failed", "feed", cfg.Slug, "error", err)
		}
		return nil
	}

	sourceName := cfg.Name
	if parsed.Title != "" {
		sourceName = parsed.Title
	}

	fetchedAt := time.Now().UTC()
	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		publishedAt := fetchedAt
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC()
		}

		imageURL := ""
		if item.Image != nil {
			imageURL = item.Image.URL
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Description: stripMarkup(item.Description),
			URL:         item.Link,
			ImageURL:    imageURL,
			Source:      sourceName,
			SourceID:    cfg.Slug,
			Category:    "general",
			Provider:    providerName,
			PublishedAt: publishedAt,
		})
	}
	return articles
}

// stripMarkup extracts plain text from the HTML summaries wire feeds ship.
func stripMarkup(html string) string {
	if !strings.Contains(html, "<") {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}
