package cache

import (
	"sync"
	"time"

	"NewsPulse/internal/domain"
)

type entry struct {
	feed    domain.Feed
	written time.Time
}

// FeedCache is a process-wide store mapping query signatures to computed
// feeds. It is deliberately dumb: staleness is judged by the caller from
// the returned age, and writes overwrite in place. Safe for concurrent
// use; keys are the small enumerable set of query shapes, so no eviction
// beyond overwrite is needed.
type FeedCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New constructs an empty cache. Built once at service start and passed
// into the aggregator as a dependency.
func New() *FeedCache {
	return &FeedCache{entries: map[string]entry{}, now: time.Now}
}

// Get returns the stored feed, whether the key exists, and the entry age.
func (c *FeedCache) Get(key string) (domain.Feed, bool, time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Feed{}, false, 0
	}
	return e.feed, true, c.now().Sub(e.written)
}

// Put stores or overwrites the feed for the key.
func (c *FeedCache) Put(key string, feed domain.Feed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{feed: feed, written: c.now()}
}
