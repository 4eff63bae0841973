package enrich

import "strings"

// HasRegionalImpact reports whether the article text matches any entry of
// the regional-relevance keyword table.
func HasRegionalImpact(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, k := range regionalKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ThematicReference returns the cross-reference annotation of the first
// matching keyword in the ordered reference table, or "" when no keyword
// matches. Table order encodes priority.
func ThematicReference(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, entry := range thematicReferences {
		if strings.Contains(text, entry.keyword) {
			return entry.reference
		}
	}
	return ""
}
