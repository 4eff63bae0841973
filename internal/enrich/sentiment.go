package enrich

import (
	"strings"

	"NewsPulse/internal/domain"
)

// ClassifySentiment scores title+description by counting case-insensitive
// occurrences of the fixed negative and positive keyword lists. The
// majority side wins; zero counts or exact ties are neutral. Pure
// function, no state.
func ClassifySentiment(title, description string) domain.Sentiment {
	text := strings.ToLower(title + " " + description)

	var negative, positive int
	for _, w := range negativeWords {
		negative += strings.Count(text, w)
	}
	for _, w := range positiveWords {
		positive += strings.Count(text, w)
	}

	switch {
	case negative > positive && negative > 0:
		return domain.SentimentNegative
	case positive > negative && positive > 0:
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}
