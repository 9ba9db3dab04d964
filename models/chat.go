package models

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message string  `json:"message" binding:"required"`
	UserID  *string `json:"user_id"`
}

// ChatResponse is the body returned by POST /chat
type ChatResponse struct {
	Response string        `json:"response"`
	Sources  []CaseSummary `json:"sources"`
	Success  bool          `json:"success"`
}

// SearchResponse is the body returned by GET /search
type SearchResponse struct {
	Query             string        `json:"query"`
	IndianKanoonCases []CaseSummary `json:"indian_kanoon_cases"`
	LocalCases        []LocalCase   `json:"local_cases"`
	TotalResults      int           `json:"total_results"`
	PrimarySource     string        `json:"primary_source"`
	APIStatus         string        `json:"api_status"`
	Success           bool          `json:"success"`
}
