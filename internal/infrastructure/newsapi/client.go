package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsPulse/internal/config"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/source"
)

const (
	providerName = "newsapi"

	// themedCategory is not a real top-headlines category upstream; it is
	// served by the topic sweep in themedSweep instead.
	themedCategory = "thematic"
)

// themedQueries drives the themed category sweep.
var themedQueries = []string{
	"war OR conflict OR military",
	"earthquake OR tsunami OR volcano OR disaster",
	"Israel OR Jerusalem OR Middle East peace",
	"famine OR food crisis OR economic collapse",
	"digital currency OR CBDC OR surveillance",
	"persecution OR religious freedom",
}

// countryPage is one top-headlines sub-query of the global dashboard.
type countryPage struct {
	country string
	size    int
}

// topicSearch is one everything sub-query of the global dashboard.
type topicSearch struct {
	query    string
	size     int
	category string
}

// globalCountries drives the per-country snapshot; sizes weight major
// news producers higher.
var globalCountries = []countryPage{
	{"us", 10}, {"gb", 8}, {"ru", 5}, {"cn", 5},
	{"de", 4}, {"fr", 4}, {"it", 3}, {"es", 3}, {"pt", 3},
	{"nl", 2}, {"pl", 2}, {"se", 2}, {"no", 2}, {"ua", 3},
	{"ro", 2}, {"gr", 2}, {"at", 2}, {"ch", 2}, {"be", 2},
	{"ie", 2}, {"hu", 2}, {"cz", 2},
	{"br", 5}, {"ar", 3}, {"co", 3}, {"ve", 2},
	{"mx", 4}, {"cu", 2},
	{"il", 4}, {"ae", 3}, {"sa", 3}, {"eg", 3}, {"tr", 3},
	{"in", 5}, {"jp", 4}, {"kr", 3}, {"au", 3}, {"nz", 2},
	{"ph", 2}, {"my", 2}, {"sg", 2}, {"th", 2}, {"id", 2},
	{"tw", 2}, {"hk", 2},
	{"za", 3}, {"ng", 3}, {"ke", 2}, {"ma", 2}, {"et", 2},
}

// globalTopics sweeps geopolitical and macro themes the country
// headlines alone tend to miss.
var globalTopics = []topicSearch{
	{"war OR military OR troops OR airstrike OR missile", 15, "general"},
	{"aircraft carrier OR navy OR warship OR submarine OR destroyer", 10, "general"},
	{"conflict OR sanctions OR ceasefire OR invasion OR bombing", 10, "general"},
	{`Iran OR "US military" OR "Iran attack" OR "Middle East tensions" OR Hezbollah`, 10, "general"},
	{`Ukraine Russia OR Gaza OR "Red Sea" OR "South China Sea" OR Taiwan`, 10, "general"},
	{`nuclear OR "ballistic missile" OR ICBM OR "weapons of mass destruction"`, 8, "general"},
	{`NATO OR "military alliance" OR "defense pact" OR BRICS`, 8, "general"},
	{"coup OR revolution OR protest OR uprising OR civil war", 8, "general"},
	{`oil price OR OPEC OR "energy crisis" OR "gas pipeline" OR sanctions`, 8, "business"},
	{"cyber attack OR hacking OR espionage OR intelligence", 6, "technology"},
	{`"central bank" OR "interest rate" OR inflation OR recession OR "economic crisis"`, 8, "business"},
}

// Client adapts newsapi.org. Keyword-capable, and the workhorse of the
// global dashboard mode, where it issues the country and topic
// sub-queries above concurrently.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

var _ source.Provider = (*Client)(nil)

// NewClient wires the adapter from configuration.
func NewClient(cfg config.NewsAPIConfig, timeout time.Duration, logger *slog.Logger) *Client {
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

// Fetch resolves the query mode and returns whatever it could normalize.
// Only a missing credential is a hard error; failed sub-queries log and
// contribute zero articles.
func (c *Client) Fetch(ctx context.Context, q source.Query) ([]domain.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("newsapi: api key not configured")
	}

	switch {
	case q.Text != "":
		return c.search(ctx, q.Text), nil
	case q.Category == themedCategory:
		return c.themedSweep(ctx), nil
	case q.Category != "":
		return c.headlinesByCategory(ctx, q.Category), nil
	default:
		return c.globalDashboard(ctx), nil
	}
}

func (c *Client) search(ctx context.Context, text string) []domain.Article {
	params := url.Values{}
	params.Set("q", text)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "50")
	params.Set("language", "en")

	raws := c.call(ctx, "/everything", params)
	return c.normalizeAll(raws, "general", "")
}

func (c *Client) headlinesByCategory(ctx context.Context, category string) []domain.Article {
	params := url.Values{}
	params.Set("category", category)
	params.Set("pageSize", "30")
	params.Set("language", "en")

	raws := c.call(ctx, "/top-headlines", params)
	return c.normalizeAll(raws, category, "")
}

// themedSweep serves the themed category. The upstream has no such
// headlines category, so the adapter searches the themed topic list
// concurrently and tags every article with the category itself.
func (c *Client) themedSweep(ctx context.Context) []domain.Article {
	buckets := make([][]domain.Article, len(themedQueries))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, query := range themedQueries {
		g.Go(func() error {
			params := url.Values{}
			params.Set("q", query)
			params.Set("sortBy", "publishedAt")
			params.Set("pageSize", "15")
			params.Set("language", "en")

			raws := c.call(gctx, "/everything", params)
			articles := c.normalizeAll(raws, themedCategory, "")

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
	return merged
}

// globalDashboard fans out every country and topic sub-query at once and
// merges in sub-query table order, so the result is deterministic even
// though completion order is not.
func (c *Client) globalDashboard(ctx context.Context) []domain.Article {
	buckets := make([][]domain.Article, len(globalCountries)+len(globalTopics))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, page := range globalCountries {
		g.Go(func() error {
			params := url.Values{}
			params.Set("country", page.country)
			params.Set("pageSize", strconv.Itoa(page.size))

			raws := c.call(gctx, "/top-headlines", params)
			articles := c.normalizeAll(raws, "general", page.country)

			mu.Lock()
			buckets[i] = articles
			mu.Unlock()
			return nil
		})
	}

	for i, topic := range globalTopics {
		g.Go(func() error {
			params := url.Values{}
			params.Set("q", topic.query)
			params.Set("sortBy", "publishedAt")
			params.Set("pageSize", strconv.Itoa(topic.size))
			params.Set("language", "en")

			raws := c.call(gctx, "/everything", params)
			articles := c.normalizeAll(raws, topic.category, "")

			mu.Lock()
			buckets[len(globalCountries)+i] = articles
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // sub-tasks never return errors

	var merged []domain.Article
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}
	return merged
}

// rawArticle mirrors the newsapi.org record shape; discarded after
// normalization.
type rawArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

type response struct {
	Status   string       `json:"status"`
	Articles []rawArticle `json:"articles"`
}

// call issues one sub-query under its own deadline. Timeouts and
// non-success responses are isolated here: logged, zero articles.
func (c *Client) call(ctx context.Context, path string, params url.Values) []rawArticle {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params.Set("apiKey", c.apiKey)
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

func (c *Client) normalizeAll(raws []rawArticle, category, country string) []domain.Article {
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
			ImageURL:    raw.URLToImage,
			Source:      raw.Source.Name,
			SourceID:    raw.Source.ID,
			Country:     country,
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
