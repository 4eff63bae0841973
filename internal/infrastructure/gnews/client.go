package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"NewsPulse/internal/config"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/source"
)

const providerName = "gnews"

// Client adapts gnews.io. Keyword-capable; in global dashboard mode it
// contributes a single world-headlines sweep.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

var _ source.Provider = (*Client)(nil)

// NewClient wires the adapter from configuration.
func NewClient(cfg config.GNewsConfig, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Name identifies the provider inside the registry.
func (c *Client) Name() string {
	return providerName
}

// SupportsSearch marks the adapter as usable for q/category queries.
func (c *Client) SupportsSearch() bool {
	return true
}

// Fetch resolves the query mode. Missing credential is the only hard
// error; upstream failures log and contribute zero articles.
func (c *Client) Fetch(ctx context.Context, q source.Query) ([]domain.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gnews: api key not configured")
	}

	switch {
	case q.Text != "":
		params := url.Values{}
		params.Set("q", q.Text)
		params.Set("lang", "en")
		params.Set("max", "50")
		return c.normalizeAll(c.call(ctx, "/search", params), "general"), nil
	case q.Category != "":
		params := url.Values{}
		params.Set("category", q.Category)
		params.Set("lang", "en")
		params.Set("max", "30")
		return c.normalizeAll(c.call(ctx, "/top-headlines", params), q.Category), nil
	default:
		params := url.Values{}
		params.Set("category", "world")
		params.Set("lang", "en")
		params.Set("max", "50")
		return c.normalizeAll(c.call(ctx, "/top-headlines", params), "general"), nil
	}
}

// rawArticle mirrors the gnews.io record shape. The API exposes no
// stable outlet slug, so SourceID stays empty after normalization.
type rawArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

type response struct {
	TotalArticles int          `json:"totalArticles"`
	Articles      []rawArticle `json:"articles"`
}

func (c *Client) call(ctx context.Context, path string, params url.Values) []rawArticle {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.warn("build request", path, err)
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.warn("request failed", path, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.warn("upstream status", path, fmt.Errorf("%s", resp.Status))
		return nil
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.warn("decode response", path, err)
		return nil
	}

	return parsed.Articles
}

func (c *Client) normalizeAll(raws []rawArticle, category string) []domain.Article {
	fetchedAt := time.Now().UTC()
	articles := make([]domain.Article, 0, len(raws))
	for _, raw := range raws {
		if raw.Title == "" || raw.Title == "[Removed]" {
			continue
		}

		publishedAt := fetchedAt
		if parsed, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
			publishedAt = parsed
		}

		articles = append(articles, domain.Article{
			Title:       raw.Title,
			Description: raw.Description,
			URL:         raw.URL,
			ImageURL:    raw.Image,
			Source:      raw.Source.Name,
			Category:    category,
			Provider:    providerName,
			PublishedAt: publishedAt,
		})
	}
	return articles
}

func (c *Client) warn(msg, path string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, "path", path, "error", err)
	}
}
