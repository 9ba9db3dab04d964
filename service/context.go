package service

import (
	"fmt"
	"strings"

	"legalease-rag/models"
)

const noMatchContext = "No specific matching cases found."

// renderRemoteBlock renders one remote case under the live-case template.
func renderRemoteBlock(c models.CaseSummary) string {
	return fmt.Sprintf("LIVE CASE from Indian Kanoon:\nTitle: %s\nSource: %s\nSummary: %s\nDocument ID: %s\n",
		c.Title, c.DocSource, c.Snippet, c.SourceID)
}

// renderLocalBlock renders one corpus case under the reference-case
// template.
func renderLocalBlock(c models.LocalCase) string {
	return fmt.Sprintf("REFERENCE CASE from Database:\nTitle: %s (%s)\nCourt: %s\nFacts: %s\nJudgment: %s\nLegal Issues: %s\n",
		c.Title, c.Year, c.Court, c.Facts, c.Judgment, c.LegalIssues)
}

// assembleContext joins the per-case blocks with newlines, remote blocks
// first, preserving retrieval order. No length cap is applied here; the
// generation collaborator owns truncation.
func assembleContext(remote []models.CaseSummary, local []models.ScoredMatch) string {
	blocks := make([]string, 0, len(remote)+len(local))
	for _, c := range remote {
		blocks = append(blocks, renderRemoteBlock(c))
	}
	for _, match := range local {
		blocks = append(blocks, renderLocalBlock(match.Case))
	}
	if len(blocks) == 0 {
		return noMatchContext
	}
	return strings.Join(blocks, "\n")
}
