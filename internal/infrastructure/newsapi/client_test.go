package newsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"NewsPulse/internal/config"
	"NewsPulse/internal/source"
)

func testClient(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.NewsAPIConfig{BaseURL: srv.URL, APIKey: "test-key"}, timeout, nil)
}

func TestFetchRequiresKey(t *testing.T) {
	t.Parallel()

	c := NewClient(config.NewsAPIConfig{BaseURL: "http://example.invalid"}, time.Second, nil)
	if _, err := c.Fetch(context.Background(), source.Query{Text: "storm"}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestSearchNormalization(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "rate cut" {
			t.Errorf("unexpected q=%q", got)
		}
		if r.URL.Query().Get("apiKey") == "" {
			t.Error("api key missing from request")
		}
		fmt.Fprint(w, `{"status":"ok","articles":[
			{"source":{"id":"bbc-news","name":"BBC News"},"title":"Markets rally after rate cut",
			 "description":"Shares climb.","url":"https://example.org/a","urlToImage":"https://example.org/a.jpg",
			 "publishedAt":"2026-02-10T08:30:00Z"},
			{"source":{"id":"","name":"Wire"},"title":"[Removed]","url":"https://example.org/b","publishedAt":"bad"},
			{"source":{"id":"","name":"Wire"},"title":"Second story","url":"https://example.org/c","publishedAt":"not-a-date"}
		]}`)
	}), time.Second)

	articles, err := c.Fetch(context.Background(), source.Query{Text: "rate cut"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected placeholder filtered, got %d articles", len(articles))
	}

	first := articles[0]
	if first.SourceID != "bbc-news" || first.Source != "BBC News" {
		t.Fatalf("source not normalized: %+v", first)
	}
	if first.Provider != "newsapi" || first.Category != "general" {
		t.Fatalf("tags not applied: %+v", first)
	}
	want := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Fatalf("publishedAt = %s", first.PublishedAt)
	}

	// Unparsable timestamp defaults to fetch time, not zero.
	if articles[1].PublishedAt.IsZero() {
		t.Fatal("expected fetch-time fallback for bad timestamp")
	}
}

func TestGlobalDashboardMergesInTableOrder(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		label := r.URL.Query().Get("country")
		if label == "" {
			label = "topic:" + r.URL.Query().Get("q")
		}
		fmt.Fprintf(w, `{"status":"ok","articles":[{"source":{"id":"","name":"S"},"title":%q,"url":"u","publishedAt":"2026-02-10T00:00:00Z"}]}`, label)
	}), 5*time.Second)

	articles, err := c.Fetch(context.Background(), source.Query{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != len(globalCountries)+len(globalTopics) {
		t.Fatalf("expected one article per sub-query, got %d", len(articles))
	}
	if articles[0].Title != globalCountries[0].country {
		t.Fatalf("merge order must follow the sub-query table, first = %q", articles[0].Title)
	}
	if articles[0].Country != globalCountries[0].country {
		t.Fatalf("country sub-query should tag declared country, got %q", articles[0].Country)
	}
}

func TestThemedCategorySweepsTopics(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("themed category must search, not hit headlines: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "" {
			t.Errorf("no category param expected upstream, got %q", got)
		}
		fmt.Fprintf(w, `{"status":"ok","articles":[{"source":{"id":"","name":"S"},"title":%q,"url":"u","publishedAt":"2026-02-10T00:00:00Z"}]}`,
			r.URL.Query().Get("q"))
	}), 5*time.Second)

	articles, err := c.Fetch(context.Background(), source.Query{Category: "thematic"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != len(themedQueries) {
		t.Fatalf("expected one article per topic sweep, got %d", len(articles))
	}
	if articles[0].Title != themedQueries[0] {
		t.Fatalf("merge order must follow the topic table, first = %q", articles[0].Title)
	}
	for _, a := range articles {
		if a.Category != "thematic" {
			t.Fatalf("sweep must tag the themed category, got %q", a.Category)
		}
	}
}

func TestSlowSubQueryIsIsolated(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("country") == "ru" {
			time.Sleep(500 * time.Millisecond)
		}
		fmt.Fprintf(w, `{"status":"ok","articles":[{"source":{"id":"","name":"S"},"title":%q,"url":"u","publishedAt":"2026-02-10T00:00:00Z"}]}`,
			r.URL.Query().Get("country")+r.URL.Query().Get("q"))
	}), 100*time.Millisecond)

	started := time.Now()
	articles, err := c.Fetch(context.Background(), source.Query{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if elapsed := time.Since(started); elapsed > 2*time.Second {
		t.Fatalf("slow sub-query delayed the batch: %s", elapsed)
	}

	for _, a := range articles {
		if a.Country == "ru" {
			t.Fatal("timed-out sub-query should contribute zero articles")
		}
	}
	if len(articles) != len(globalCountries)+len(globalTopics)-1 {
		t.Fatalf("expected every other sub-query to survive, got %d", len(articles))
	}
}

func TestUpstreamErrorYieldsEmpty(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}), time.Second)

	articles, err := c.Fetch(context.Background(), source.Query{Category: "business"})
	if err != nil {
		t.Fatalf("upstream failure must not surface as an error: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("expected zero articles, got %d", len(articles))
	}
}
