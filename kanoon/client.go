package kanoon

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"legalease-rag/models"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL  = "https://api.indiankanoon.org"
	documentBaseURL = "https://indiankanoon.org/doc"
	requestTimeout  = 15 * time.Second
	userAgent       = "LegalEase-AI/1.0"
)

// Client queries the Indian Kanoon case-law API. Its search contract never
// fails: every transport, auth, or schema fault is logged and collapses to
// an empty result, so callers cannot distinguish "no matches" from "source
// unavailable".
type Client struct {
	http   *resty.Client
	apiKey string
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// NewClient creates an Indian Kanoon API client. An empty API key yields a
// client whose every call behaves as though the source were unreachable.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(requestTimeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", userAgent),
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the search endpoint and returns up to limit normalized
// case summaries. POST with a form-encoded body is tried first; a 405
// answer triggers a single retry as GET with query parameters.
func (c *Client) Search(ctx context.Context, query string, limit int) []models.CaseSummary {
	if c.apiKey == "" {
		log.Printf("Warning: Indian Kanoon API key not available")
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+c.apiKey).
		SetFormData(map[string]string{
			"formInput": query,
			"pagenum":   "0",
		}).
		Post("/search/")
	if err != nil {
		log.Printf("Error calling Indian Kanoon API: %v", err)
		return nil
	}

	if resp.StatusCode() == http.StatusMethodNotAllowed {
		log.Printf("POST method not allowed, trying GET...")
		resp, err = c.http.R().
			SetContext(ctx).
			SetHeader("Authorization", "Token "+c.apiKey).
			SetQueryParams(map[string]string{
				"formInput": query,
				"pagenum":   "0",
			}).
			Get("/search/")
		if err != nil {
			log.Printf("Error calling Indian Kanoon API: %v", err)
			return nil
		}
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		log.Printf("Indian Kanoon API authentication failed: %d", resp.StatusCode())
		return nil
	case resp.StatusCode() != http.StatusOK:
		log.Printf("Warning: Indian Kanoon API returned status %d", resp.StatusCode())
		return nil
	}

	payload, err := decodeBody(resp.Body())
	if err != nil {
		log.Printf("Error: Indian Kanoon response is not valid JSON: %v", err)
		return nil
	}

	docs, ok := resolveDocs(payload)
	if !ok {
		log.Printf("Warning: unknown Indian Kanoon response format")
		return nil
	}

	if limit < 0 {
		limit = 0
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}

	summaries := make([]models.CaseSummary, 0, len(docs))
	for _, raw := range docs {
		summary, ok := normalizeDoc(raw)
		if !ok {
			log.Printf("Error parsing Indian Kanoon response: unexpected document record shape")
			return nil
		}
		summaries = append(summaries, summary)
	}

	log.Printf("Successfully parsed %d cases from Indian Kanoon", len(summaries))
	return summaries
}

// FetchDocument retrieves one full document record by identifier. A blank
// identifier, a missing key, or any fault yields nil without error.
func (c *Client) FetchDocument(ctx context.Context, docID string) map[string]any {
	if c.apiKey == "" || docID == "" {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+c.apiKey).
		Get("/doc/" + docID + "/")
	if err != nil {
		log.Printf("Error getting document %s: %v", docID, err)
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		log.Printf("Warning: failed to get document %s: %d", docID, resp.StatusCode())
		return nil
	}

	payload, err := decodeBody(resp.Body())
	if err != nil {
		log.Printf("Error getting document %s: %v", docID, err)
		return nil
	}
	doc, ok := payload.(map[string]any)
	if !ok {
		log.Printf("Warning: unexpected document format for %s", docID)
		return nil
	}
	return doc
}

// decodeBody parses a response body as untyped JSON. Numbers stay exact as
// json.Number so numeric identifiers survive stringification.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
