package repository

import (
	"sort"
	"strings"

	"legalease-rag/models"
)

// CaseCorpus holds the fixed in-process set of sample legal cases. The
// corpus is loaded once at construction and never mutated, so it is safe
// for unlimited concurrent readers.
type CaseCorpus struct {
	cases []models.LocalCase
}

// NewCaseCorpus creates a corpus backed by the built-in sample cases.
func NewCaseCorpus() *CaseCorpus {
	return &CaseCorpus{cases: sampleLegalCases}
}

// NewCaseCorpusWithCases creates a corpus over the given cases.
func NewCaseCorpusWithCases(cases []models.LocalCase) *CaseCorpus {
	return &CaseCorpus{cases: cases}
}

// Len returns the number of cases in the corpus.
func (c *CaseCorpus) Len() int {
	return len(c.cases)
}

// Search scores every case in the corpus against the query and returns up
// to topK matches with positive scores, sorted by score descending. Ties
// keep corpus order.
func (c *CaseCorpus) Search(query string, topK int) []models.ScoredMatch {
	if topK <= 0 {
		return nil
	}

	var matches []models.ScoredMatch
	for _, lc := range c.cases {
		document := strings.Join([]string{lc.Facts, lc.Judgment, lc.LegalIssues, lc.Title}, " ")
		if score := Score(query, document); score > 0 {
			matches = append(matches, models.ScoredMatch{Case: lc, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}
