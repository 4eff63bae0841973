package source

import (
	"context"

	"NewsPulse/internal/domain"
)

// Query carries the inbound request parameters shared by all providers.
type Query struct {
	Category string
	Text     string
}

// Global reports whether the query selects the multi-provider dashboard
// mode (no category, no free-text).
func (q Query) Global() bool {
	return q.Category == "" && q.Text == ""
}

// CacheKey derives the deterministic cache key for this query shape.
func (q Query) CacheKey() string {
	return q.Category + ":" + q.Text
}

// Provider fetches and normalizes articles from one upstream news source.
// Fetch returns an error only when the adapter cannot run at all (missing
// credential, no transport); partial sub-query failures are absorbed
// inside the adapter and yield a shorter result instead.
type Provider interface {
	Name() string
	SupportsSearch() bool
	Fetch(ctx context.Context, q Query) ([]domain.Article, error)
}

// Registry keeps providers in a fixed priority order. Registration order
// is the merge order of the aggregated feed.
type Registry struct {
	providers []Provider
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a provider; re-registering a name replaces it in place
// without changing its priority slot.
func (r *Registry) Register(p Provider) {
	for i, existing := range r.providers {
		if existing.Name() == p.Name() {
			r.providers[i] = p
			return
		}
	}
	r.providers = append(r.providers, p)
}

// Select returns the providers that should serve the query, in priority
// order: keyword or category queries go to search-capable providers only,
// the global dashboard fans out to everyone.
func (r *Registry) Select(q Query) []Provider {
	if q.Global() {
		return append([]Provider(nil), r.providers...)
	}

	selected := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.SupportsSearch() {
			selected = append(selected, p)
		}
	}
	return selected
}
