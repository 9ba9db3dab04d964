package service

import (
	"context"
	"errors"
	"strings"

	"legalease-rag/models"
)

// ErrEmptyQuery rejects blank queries before any outbound call is made.
// It is the only error the retrieval path surfaces to callers.
var ErrEmptyQuery = errors.New("query must not be empty")

// RemoteSearcher searches the external case-law source. Implementations
// never fail: faults collapse to an empty result.
type RemoteSearcher interface {
	Search(ctx context.Context, query string, limit int) []models.CaseSummary
}

// CorpusSearcher searches the local case corpus.
type CorpusSearcher interface {
	Search(query string, topK int) []models.ScoredMatch
}

// RetrievalService merges remote and local case-law results under a fixed
// priority policy and assembles the prompt context for generation. It is
// stateless and safe for concurrent use.
type RetrievalService struct {
	remote RemoteSearcher
	corpus CorpusSearcher
}

// RetrievalServiceOption is a functional option for RetrievalService
type RetrievalServiceOption func(*RetrievalService)

// WithRemoteSource sets the remote case-law source
func WithRemoteSource(remote RemoteSearcher) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.remote = remote
	}
}

// WithCorpus sets the local case corpus
func WithCorpus(corpus CorpusSearcher) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.corpus = corpus
	}
}

// NewRetrievalService creates a new retrieval service
func NewRetrievalService(opts ...RetrievalServiceOption) *RetrievalService {
	s := &RetrievalService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RetrieveRequest represents a request to retrieve case-law context
type RetrieveRequest struct {
	Query       string
	RemoteLimit int
	LocalLimit  int
}

// SearchResult holds the per-source outcomes of one query before merging.
type SearchResult struct {
	Remote []models.CaseSummary
	Local  []models.ScoredMatch
}

// SearchSources queries the remote source and the local corpus for one
// query. The two have no data dependency, so the remote call runs in its
// own goroutine while the corpus is searched inline; a failure of one
// source never suppresses the other (remote faults arrive here as an
// empty list).
func (s *RetrievalService) SearchSources(ctx context.Context, query string, remoteLimit, localLimit int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	remoteCh := make(chan []models.CaseSummary, 1)
	go func() {
		remoteCh <- s.searchRemote(ctx, query, remoteLimit)
	}()

	local := s.searchLocal(query, localLimit)
	remote := <-remoteCh

	return &SearchResult{Remote: remote, Local: local}, nil
}

// Retrieve queries both sources and returns the merged, priority-ordered
// result plus the assembled context.
func (s *RetrievalService) Retrieve(ctx context.Context, req RetrieveRequest) (*models.RetrievalResult, error) {
	result, err := s.SearchSources(ctx, req.Query, req.RemoteLimit, req.LocalLimit)
	if err != nil {
		return nil, err
	}

	// Remote entries first, local entries second. This ordering is the
	// entire priority mechanism; scores never re-rank across origins.
	cases := make([]models.CaseSummary, 0, len(result.Remote)+len(result.Local))
	cases = append(cases, result.Remote...)
	for _, match := range result.Local {
		cases = append(cases, match.Case.Summary())
	}

	return &models.RetrievalResult{
		Cases:   cases,
		Context: assembleContext(result.Remote, result.Local),
	}, nil
}

func (s *RetrievalService) searchRemote(ctx context.Context, query string, limit int) []models.CaseSummary {
	if s.remote == nil {
		return nil
	}
	return s.remote.Search(ctx, query, limit)
}

func (s *RetrievalService) searchLocal(query string, topK int) []models.ScoredMatch {
	if s.corpus == nil {
		return nil
	}
	return s.corpus.Search(query, topK)
}
