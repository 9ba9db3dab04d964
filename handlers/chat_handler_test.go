package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legalease-rag/models"
	"legalease-rag/repository"
	"legalease-rag/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	results   []models.CaseSummary
	calls     int
	lastLimit int
}

func (f *fakeRemote) Search(_ context.Context, _ string, limit int) []models.CaseSummary {
	f.calls++
	f.lastLimit = limit
	return f.results
}

type fakeGenerator struct {
	text string
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return f.text, nil
}

type fakeDocuments struct {
	doc map[string]any
}

func (f *fakeDocuments) FetchDocument(_ context.Context, docID string) map[string]any {
	if docID == "" || f.doc == nil {
		return nil
	}
	return f.doc
}

func newTestRouter(remote *fakeRemote, generator service.TextGenerator, documents DocumentFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	corpus := repository.NewCaseCorpus()
	retrieval := service.NewRetrievalService(
		service.WithRemoteSource(remote),
		service.WithCorpus(corpus),
	)
	generationOpts := []service.GenerationServiceOption{service.GenerationWithCorpus(corpus)}
	if generator != nil {
		generationOpts = append(generationOpts, service.GenerationWithModel(generator))
	}
	generation := service.NewGenerationService(generationOpts...)

	handler := NewChatHandler(retrieval, generation, documents)

	r := gin.New()
	r.POST("/chat", handler.Chat)
	r.GET("/search", handler.Search)
	r.GET("/document/:id", handler.GetDocument)
	return r
}

func TestChat(t *testing.T) {
	t.Run("Should answer with merged sources", func(t *testing.T) {
		remote := &fakeRemote{results: []models.CaseSummary{{
			Title:    "Remote Case",
			SourceID: "7",
			URL:      "https://indiankanoon.org/doc/7/",
			Origin:   models.OriginRemote,
			Priority: models.PriorityHigh,
		}}}
		router := newTestRouter(remote, &fakeGenerator{text: "generated answer"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "agricultural land ownership"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "generated answer", resp.Response)
		require.NotEmpty(t, resp.Sources)
		assert.Equal(t, "Remote Case", resp.Sources[0].Title)
		assert.Equal(t, models.OriginRemote, resp.Sources[0].Origin)
		// local supplement follows the remote entries
		assert.Equal(t, models.OriginLocal, resp.Sources[len(resp.Sources)-1].Origin)
	})

	t.Run("Should return 400 for a whitespace message without calling sources", func(t *testing.T) {
		remote := &fakeRemote{}
		router := newTestRouter(remote, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "   "}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMPTY_QUERY")
		assert.Zero(t, remote.calls)
	})

	t.Run("Should return 400 for a missing message", func(t *testing.T) {
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should serve the local fallback answer when generation is unavailable", func(t *testing.T) {
		// no generator configured and the remote source returns nothing
		router := newTestRouter(&fakeRemote{}, nil, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "agricultural land ownership"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Response, "State of Maharashtra vs. Ram Kumar")
		require.NotEmpty(t, resp.Sources)
		assert.Equal(t, models.OriginLocal, resp.Sources[0].Origin)
		assert.Equal(t, models.PriorityMedium, resp.Sources[0].Priority)
	})
}

func TestSearch(t *testing.T) {
	t.Run("Should split results by source", func(t *testing.T) {
		remote := &fakeRemote{results: []models.CaseSummary{{Title: "Remote Case", Origin: models.OriginRemote, Priority: models.PriorityHigh}}}
		router := newTestRouter(remote, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=agricultural+land+ownership", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "active", resp.APIStatus)
		require.Len(t, resp.IndianKanoonCases, 1)
		require.NotEmpty(t, resp.LocalCases)
		assert.Equal(t, "State of Maharashtra vs. Ram Kumar", resp.LocalCases[0].Title)
		assert.NotEmpty(t, resp.LocalCases[0].Facts)
		assert.Equal(t, len(resp.IndianKanoonCases)+len(resp.LocalCases), resp.TotalResults)
	})

	t.Run("Should report no_results when the remote source is empty", func(t *testing.T) {
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=contract+breach", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "no_results", resp.APIStatus)
		assert.Empty(t, resp.IndianKanoonCases)
	})

	t.Run("Should clamp the remote limit to eight", func(t *testing.T) {
		remote := &fakeRemote{}
		router := newTestRouter(remote, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=land&limit=50", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 8, remote.lastLimit)
	})

	t.Run("Should pass a small limit through to both sources", func(t *testing.T) {
		remote := &fakeRemote{}
		router := newTestRouter(remote, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=land&limit=3", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, remote.lastLimit)
	})

	t.Run("Should return 400 for a blank query", func(t *testing.T) {
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=++", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMPTY_QUERY")
	})

	t.Run("Should return 400 for an invalid limit", func(t *testing.T) {
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search?q=land&limit=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_LIMIT")
	})
}

func TestGetDocument(t *testing.T) {
	t.Run("Should return the document when found", func(t *testing.T) {
		documents := &fakeDocuments{doc: map[string]any{"title": "Full Judgment"}}
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, documents)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/document/7", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Full Judgment")
		assert.Contains(t, w.Body.String(), "Indian Kanoon")
	})

	t.Run("Should return 404 when the document is absent", func(t *testing.T) {
		router := newTestRouter(&fakeRemote{}, &fakeGenerator{text: "x"}, &fakeDocuments{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/document/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
