package repository

import "strings"

// Score rates a free-text query against a document. Each distinct
// whitespace-separated query token found as a substring of the document is
// worth one point; an exact contiguous match of the full query adds two.
// Matching is case-insensitive. A blank query scores zero.
//
// Intentionally naive: no stemming, no punctuation handling. Downstream
// ranking depends on these exact semantics.
func Score(query, document string) int {
	query = strings.ToLower(query)
	document = strings.ToLower(document)

	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(tokens))
	score := 0
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if strings.Contains(document, token) {
			score++
		}
	}

	if strings.Contains(document, query) {
		score += 2
	}

	return score
}
