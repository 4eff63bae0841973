package enrich

import (
	"math/rand/v2"
	"strings"

	"NewsPulse/internal/domain"
)

const (
	// FallbackCountry is attached when no resolution tier succeeds.
	FallbackCountry = "us"
	// FallbackContinent is attached when a country code has no continent entry.
	FallbackContinent = "Europe"

	jitterSpread = 4.0 // degrees, centered on zero
)

// Location is the geo signal derived for one article.
type Location struct {
	Country     string
	Continent   string
	Coordinates []float64 // [lon, lat], nil when no tier resolved
}

// ResolveLocation maps an article to a country, continent and indicative
// coordinates. Three tiers, first success wins: curated outlet table by
// sourceId, then the provider-declared country, then an ordered keyword
// scan over title+description.
func ResolveLocation(a domain.Article) Location {
	code := resolveCountry(a)

	loc := Location{Country: code, Continent: FallbackContinent}
	if code == "" {
		loc.Country = FallbackCountry
		return loc
	}

	if continent, ok := countryContinent[code]; ok {
		loc.Continent = continent
	}
	if anchor, ok := countryCoords[code]; ok {
		loc.Coordinates = []float64{anchor[0] + jitter(), anchor[1] + jitter()}
	}
	return loc
}

func resolveCountry(a domain.Article) string {
	if a.SourceID != "" {
		if code, ok := sourceCountry[a.SourceID]; ok {
			return code
		}
	}

	if a.Country != "" {
		return strings.ToLower(a.Country)
	}

	return countryFromText(a.Title, a.Description)
}

// countryFromText scans the case-folded article text against the ordered
// keyword table; table order encodes tie-break priority.
func countryFromText(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, entry := range textCountry {
		if strings.Contains(text, entry.keyword) {
			return entry.code
		}
	}
	return ""
}

// jitter spreads same-country articles a few degrees apart on the map.
// Cosmetic only; it must never feed into any other derived field.
func jitter() float64 {
	return (rand.Float64() - 0.5) * jitterSpread
}
