package source

import (
	"context"
	"testing"

	"NewsPulse/internal/domain"
)

type stubProvider struct {
	name     string
	searches bool
}

func (s stubProvider) Name() string         { return s.name }
func (s stubProvider) SupportsSearch() bool { return s.searches }
func (s stubProvider) Fetch(context.Context, Query) ([]domain.Article, error) {
	return nil, nil
}

func TestQueryCacheKey(t *testing.T) {
	t.Parallel()

	if got := (Query{}).CacheKey(); got != ":" {
		t.Fatalf("global key = %q", got)
	}
	if got := (Query{Category: "business"}).CacheKey(); got != "business:" {
		t.Fatalf("category key = %q", got)
	}
	if got := (Query{Text: "rate cut"}).CacheKey(); got != ":rate cut" {
		t.Fatalf("search key = %q", got)
	}
}

func TestRegistrySelect(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(stubProvider{name: "alpha", searches: true})
	r.Register(stubProvider{name: "beta", searches: true})
	r.Register(stubProvider{name: "wire", searches: false})

	global := r.Select(Query{})
	if len(global) != 3 || global[0].Name() != "alpha" || global[2].Name() != "wire" {
		t.Fatalf("global selection wrong: %+v", names(global))
	}

	search := r.Select(Query{Text: "storm"})
	if len(search) != 2 || search[0].Name() != "alpha" || search[1].Name() != "beta" {
		t.Fatalf("search selection wrong: %+v", names(search))
	}

	category := r.Select(Query{Category: "business"})
	if len(category) != 2 {
		t.Fatalf("category selection wrong: %+v", names(category))
	}
}

func TestRegistryRegisterKeepsPrioritySlot(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(stubProvider{name: "alpha", searches: true})
	r.Register(stubProvider{name: "beta", searches: true})
	r.Register(stubProvider{name: "alpha", searches: false}) // replacement

	all := r.Select(Query{})
	if len(all) != 2 || all[0].Name() != "alpha" {
		t.Fatalf("replacement should keep slot: %+v", names(all))
	}
	if all[0].SupportsSearch() {
		t.Fatal("replacement instance should be the one stored")
	}
}

func names(providers []Provider) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.Name())
	}
	return out
}
