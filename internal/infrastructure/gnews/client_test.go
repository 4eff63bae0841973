package gnews

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

func TestFetchRequiresKey(t *testing.T) {
	t.Parallel()

	c := NewClient(config.GNewsConfig{BaseURL: "http://example.invalid"}, time.Second, nil)
	if _, err := c.Fetch(context.Background(), source.Query{}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestFetchModes(t *testing.T) {
	t.Parallel()

	var gotPath, gotCategory, gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCategory = r.URL.Query().Get("category")
		gotQ = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"totalArticles":1,"articles":[
			{"title":"Port reopens after storm","description":"<b>cleanup</b> begins","url":"https://example.org/p",
			 "image":"https://example.org/p.jpg","publishedAt":"2026-02-10T06:00:00Z",
			 "source":{"name":"Harbour Times","url":"https://example.org"}}
		]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.GNewsConfig{BaseURL: srv.URL, APIKey: "k"}, time.Second, nil)

	articles, err := c.Fetch(context.Background(), source.Query{Text: "storm"})
	if err != nil {
		t.Fatalf("search fetch: %v", err)
	}
	if gotPath != "/search" || gotQ != "storm" {
		t.Fatalf("search request wrong: path=%s q=%s", gotPath, gotQ)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	a := articles[0]
	if a.Provider != "gnews" || a.SourceID != "" || a.Source != "Harbour Times" {
		t.Fatalf("normalization wrong: %+v", a)
	}
	if a.ImageURL != "https://example.org/p.jpg" {
		t.Fatalf("image not mapped: %q", a.ImageURL)
	}

	if _, err := c.Fetch(context.Background(), source.Query{Category: "business"}); err != nil {
		t.Fatalf("category fetch: %v", err)
	}
	if gotPath != "/top-headlines" || gotCategory != "business" {
		t.Fatalf("category request wrong: path=%s category=%s", gotPath, gotCategory)
	}

	if _, err := c.Fetch(context.Background(), source.Query{}); err != nil {
		t.Fatalf("global fetch: %v", err)
	}
	if gotCategory != "world" {
		t.Fatalf("global mode should sweep world headlines, got %s", gotCategory)
	}
}

func TestUpstreamErrorYieldsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.GNewsConfig{BaseURL: srv.URL, APIKey: "k"}, time.Second, nil)
	articles, err := c.Fetch(context.Background(), source.Query{Text: "storm"})
	if err != nil {
		t.Fatalf("upstream failure must not surface as an error: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("expected zero articles, got %d", len(articles))
	}
}
