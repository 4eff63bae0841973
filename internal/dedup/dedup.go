package dedup

import (
	"strings"

	"NewsPulse/internal/domain"
)

const (
	fingerprintLen   = 60
	placeholderTitle = "[Removed]"

	// minPrefixCollapse is the shortest fingerprint allowed to swallow an
	// extension of itself (the "live updates" style of headline rewrite).
	// Keeps short generic headlines from absorbing unrelated longer ones.
	minPrefixCollapse = 20
)

// Fingerprint normalizes a title into the dedup key: lower-cased, stripped
// of everything but letters and digits, truncated to a fixed prefix.
func Fingerprint(title string) string {
	var b strings.Builder
	b.Grow(fingerprintLen)
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= fingerprintLen {
				break
			}
		}
	}
	return b.String()
}

// Collapse removes near-duplicate articles in a single linear pass.
// First occurrence wins, so the caller's concatenation order encodes
// provider priority. Articles with empty or placeholder titles are
// dropped outright. Two articles count as duplicates when their
// fingerprints are equal, or when one fingerprint extends the other
// (same headline republished with a suffix).
func Collapse(articles []domain.Article) []domain.Article {
	seen := make(map[string]struct{}, len(articles))
	var order []string
	kept := make([]domain.Article, 0, len(articles))

	for _, a := range articles {
		if a.Title == "" || a.Title == placeholderTitle {
			continue
		}
		fp := Fingerprint(a.Title)
		if duplicate(seen, order, fp) {
			continue
		}
		seen[fp] = struct{}{}
		order = append(order, fp)
		kept = append(kept, a)
	}

	return kept
}

func duplicate(seen map[string]struct{}, order []string, fp string) bool {
	if _, ok := seen[fp]; ok {
		return true
	}
	for _, prior := range order {
		shorter := prior
		if len(fp) < len(shorter) {
			shorter = fp
		}
		if len(shorter) < minPrefixCollapse {
			continue
		}
		if strings.HasPrefix(fp, prior) || strings.HasPrefix(prior, fp) {
			return true
		}
	}
	return false
}
