package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsPulse/internal/cache"
	"NewsPulse/internal/dedup"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/enrich"
	"NewsPulse/internal/source"
)

// ErrNoProviders reports that not a single provider could be invoked for
// the query. Distinct from a pipeline run that produced zero articles,
// which is a normal (and cacheable) result.
var ErrNoProviders = errors.New("no news provider could be invoked")

// AggregatorDeps wires the aggregation pipeline dependencies.
type AggregatorDeps struct {
	Registry *source.Registry
	Cache    *cache.FeedCache
	TTL      time.Duration
	Logger   *slog.Logger
}

// Aggregator turns one inbound query into one feed: cache lookup,
// concurrent provider fan-out, priority-ordered merge, dedup, enrichment,
// recency sort, cache write.
type Aggregator struct {
	registry *source.Registry
	cache    *cache.FeedCache
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewAggregator constructs the orchestration component.
func NewAggregator(deps AggregatorDeps) *Aggregator {
	ttl := deps.TTL
	if ttl <= 0 {
		ttl = 3 * time.Minute
	}
	return &Aggregator{
		registry: deps.Registry,
		cache:    deps.Cache,
		ttl:      ttl,
		logger:   deps.Logger,
		now:      time.Now,
	}
}

// Feed serves the query, from cache when fresh, otherwise by running the
// full aggregation pipeline.
func (a *Aggregator) Feed(ctx context.Context, q source.Query) (domain.Feed, error) {
	key := q.CacheKey()

	if a.cache != nil {
		if feed, ok, age := a.cache.Get(key); ok && age < a.ttl {
			a.debug("cache hit", "key", key, "age", age)
			return feed, nil
		}
	}

	providers := a.registry.Select(q)
	if len(providers) == 0 {
		return domain.Feed{}, ErrNoProviders
	}

	merged, invoked := a.fanOut(ctx, providers, q)
	if invoked == 0 {
		return domain.Feed{}, fmt.Errorf("%w: all %d selected providers failed", ErrNoProviders, len(providers))
	}

	unique := dedup.Collapse(merged)
	feed := a.buildFeed(unique, providers, q)

	if a.cache != nil {
		a.cache.Put(key, feed)
	}

	a.debug("aggregation done", "key", key, "fetched", len(merged), "served", feed.Total)
	return feed, nil
}

// fanOut calls every selected provider concurrently and waits for all of
// them. Results are concatenated in registry priority order, never in
// completion order, so the downstream dedup pass is deterministic.
func (a *Aggregator) fanOut(ctx context.Context, providers []source.Provider, q source.Query) ([]domain.Article, int) {
	results := make([][]domain.Article, len(providers))
	ran := make([]bool, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		g.Go(func() error {
			articles, err := p.Fetch(gctx, q)
			if err != nil {
				a.warn("provider skipped", "provider", p.Name(), "error", err)
				return nil // isolated, siblings keep running
			}
			results[i] = articles
			ran[i] = true
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.Article
	invoked := 0
	for i := range providers {
		if ran[i] {
			invoked++
		}
		merged = append(merged, results[i]...)
	}
	return merged, invoked
}

func (a *Aggregator) buildFeed(articles []domain.Article, providers []source.Provider, q source.Query) domain.Feed {
	generatedAt := a.now().UTC()

	enriched := make([]domain.EnrichedArticle, 0, len(articles))
	counts := make(map[string]int, len(providers))
	for _, p := range providers {
		counts[p.Name()] = 0
	}

	for i, article := range articles {
		enriched = append(enriched, enrichArticle(article, i, generatedAt, q))
		counts[article.Provider]++
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].PublishedAt.After(enriched[j].PublishedAt)
	})

	return domain.Feed{
		Articles:  enriched,
		Total:     len(enriched),
		Sources:   counts,
		FetchedAt: generatedAt,
	}
}

// enrichArticle attaches the derived signals. The id only has to be
// unique within a single response.
func enrichArticle(article domain.Article, position int, generatedAt time.Time, q source.Query) domain.EnrichedArticle {
	location := enrich.ResolveLocation(article)

	sourceName := article.Source
	if sourceName == "" {
		sourceName = "Unknown"
	}

	category := article.Category
	if q.Category != "" {
		category = q.Category
	}
	if category == "" {
		category = "general"
	}

	return domain.EnrichedArticle{
		ID:                fmt.Sprintf("%s-%d-%d", article.Provider, position, generatedAt.UnixMilli()),
		Title:             article.Title,
		Description:       optional(article.Description),
		URL:               article.URL,
		ImageURL:          optional(article.ImageURL),
		Source:            sourceName,
		SourceID:          article.SourceID,
		PublishedAt:       article.PublishedAt,
		Category:          category,
		Country:           location.Country,
		Continent:         location.Continent,
		Coordinates:       location.Coordinates,
		Sentiment:         enrich.ClassifySentiment(article.Title, article.Description),
		RegionalImpact:    enrich.HasRegionalImpact(article.Title, article.Description),
		ThematicReference: optional(enrich.ThematicReference(article.Title, article.Description)),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (a *Aggregator) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *Aggregator) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
