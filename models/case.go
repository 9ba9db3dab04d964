package models

// Origin marks which source a retrieved case came from
type Origin string

const (
	OriginRemote Origin = "indian_kanoon"
	OriginLocal  Origin = "local_database"
)

// Priority represents the fixed merge priority of a source
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// CaseSummary is the canonical, normalized record for a retrieved case.
// Origin and Priority are set exactly once at normalization time.
type CaseSummary struct {
	Title     string   `json:"title"`
	SourceID  string   `json:"tid,omitempty"`
	Snippet   string   `json:"headline,omitempty"`
	DocSource string   `json:"docsource,omitempty"`
	DocSize   int      `json:"docsize,omitempty"`
	URL       string   `json:"url,omitempty"`
	Court     string   `json:"court,omitempty"`
	Year      string   `json:"year,omitempty"`
	Citation  string   `json:"citation,omitempty"`
	Origin    Origin   `json:"type"`
	Priority  Priority `json:"priority"`
}

// LocalCase is a fixture record from the in-process corpus. All fields are
// required and immutable for the process lifetime.
type LocalCase struct {
	Title       string `json:"title"`
	Facts       string `json:"facts"`
	Judgment    string `json:"judgment"`
	LegalIssues string `json:"legal_issues"`
	Court       string `json:"court"`
	Year        string `json:"year"`
	Citation    string `json:"citation"`
}

// Summary converts a local case into its canonical summary form with
// Origin=Local and Priority=Medium.
func (c LocalCase) Summary() CaseSummary {
	return CaseSummary{
		Title:    c.Title,
		Court:    c.Court,
		Year:     c.Year,
		Citation: c.Citation,
		Origin:   OriginLocal,
		Priority: PriorityMedium,
	}
}

// ScoredMatch pairs a local case with its lexical relevance score.
// Produced per query and discarded after ranking.
type ScoredMatch struct {
	Case  LocalCase
	Score int
}

// RetrievalResult is the merged, priority-ordered output of one retrieval:
// remote-origin summaries precede local-origin summaries, and Context holds
// the assembled prompt context for generation.
type RetrievalResult struct {
	Cases   []CaseSummary
	Context string
}
