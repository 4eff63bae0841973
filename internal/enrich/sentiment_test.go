package enrich

import (
	"testing"

	"NewsPulse/internal/domain"
)

func TestClassifySentiment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		title       string
		description string
		want        domain.Sentiment
	}{
		{
			name:  "single positive keyword",
			title: "Markets rally after rate cut",
			want:  domain.SentimentPositive,
		},
		{
			name:  "single negative keyword",
			title: "Factory explosion injures dozens",
			want:  domain.SentimentNegative,
		},
		{
			name:  "no keywords",
			title: "Council publishes quarterly minutes",
			want:  domain.SentimentNeutral,
		},
		{
			name:        "equal nonzero counts tie to neutral",
			title:       "Rally planned",
			description: "crash reported",
			want:        domain.SentimentNeutral,
		},
		{
			name:  "case insensitive",
			title: "BREAKTHROUGH in talks",
			want:  domain.SentimentPositive,
		},
		{
			name:        "majority wins across title and description",
			title:       "War deepens crisis",
			description: "growth forecast trimmed",
			want:        domain.SentimentNegative,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifySentiment(tc.title, tc.description)
			if got != tc.want {
				t.Fatalf("ClassifySentiment(%q, %q) = %q, want %q", tc.title, tc.description, got, tc.want)
			}
		})
	}
}
