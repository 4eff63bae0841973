package domain

import "time"

// Article is the canonical shape every provider adapter normalizes into.
// Optional fields stay empty strings; PublishedAt defaults to fetch time
// when the provider timestamp cannot be parsed.
type Article struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	Source      string
	SourceID    string
	Country     string // provider-declared 2-letter code, may be empty
	Category    string
	Provider    string // origin provider tag, drives merge priority
	PublishedAt time.Time
}

// Sentiment classifies article tone from keyword counts.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
)

// EnrichedArticle is an Article with derived signals attached. Immutable
// once produced; lives only inside one response or one cache entry.
type EnrichedArticle struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description"`
	URL               string    `json:"url"`
	ImageURL          *string   `json:"imageUrl"`
	Source            string    `json:"source"`
	SourceID          string    `json:"sourceId"`
	PublishedAt       time.Time `json:"publishedAt"`
	Category          string    `json:"category"`
	Country           string    `json:"country"`
	Continent         string    `json:"continent"`
	Coordinates       []float64 `json:"coordinates"` // [lon, lat], nil renders as null
	Sentiment         Sentiment `json:"sentiment"`
	RegionalImpact    bool      `json:"regionalImpact"`
	ThematicReference *string   `json:"thematicReference"`
}

// Feed is the response envelope served to clients and stored in the cache.
type Feed struct {
	Articles  []EnrichedArticle `json:"articles"`
	Total     int               `json:"total"`
	Sources   map[string]int    `json:"sources"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
