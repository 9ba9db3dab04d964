package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"legalease-rag/models"
	"legalease-rag/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	chatRemoteLimit = 3
	chatLocalLimit  = 2

	errorResponseText = "I apologize, but I encountered an error while processing your request. Please try again or contact support."
)

// DocumentFetcher retrieves one full case document by identifier, or nil
// when the document is absent or the source is unavailable.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, docID string) map[string]any
}

// ChatHandler handles HTTP requests for legal queries
type ChatHandler struct {
	retrievalService  *service.RetrievalService
	generationService *service.GenerationService
	documents         DocumentFetcher
}

// NewChatHandler creates a new chat handler
func NewChatHandler(retrieval *service.RetrievalService, generation *service.GenerationService, documents DocumentFetcher) *ChatHandler {
	return &ChatHandler{
		retrievalService:  retrieval,
		generationService: generation,
		documents:         documents,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	requestID := uuid.New()
	log.Printf("Chat request %s received", requestID)

	result, err := h.retrievalService.Retrieve(c.Request.Context(), service.RetrieveRequest{
		Query:       req.Message,
		RemoteLimit: chatRemoteLimit,
		LocalLimit:  chatLocalLimit,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_QUERY",
					"message": "Empty query",
				},
			})
			return
		}
		log.Printf("Error in chat request %s: %v", requestID, err)
		c.JSON(http.StatusOK, models.ChatResponse{
			Response: errorResponseText,
			Sources:  []models.CaseSummary{},
			Success:  false,
		})
		return
	}

	answer := h.generationService.Answer(c.Request.Context(), strings.TrimSpace(req.Message), result.Context)

	c.JSON(http.StatusOK, models.ChatResponse{
		Response: answer,
		Sources:  result.Cases,
		Success:  true,
	})
}

// Search handles GET /search
func (h *ChatHandler) Search(c *gin.Context) {
	query := c.Query("q")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_LIMIT",
					"message": "limit must be a positive integer",
				},
			})
			return
		}
		limit = parsed
	}

	result, err := h.retrievalService.SearchSources(c.Request.Context(), query, min(8, limit), min(5, limit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_QUERY",
				"message": "Empty query",
			},
		})
		return
	}

	remote := result.Remote
	if remote == nil {
		remote = []models.CaseSummary{}
	}
	locals := make([]models.LocalCase, 0, len(result.Local))
	for _, match := range result.Local {
		locals = append(locals, match.Case)
	}

	apiStatus := "no_results"
	if len(remote) > 0 {
		apiStatus = "active"
	}

	log.Printf("Search completed: %d from Indian Kanoon, %d local", len(remote), len(locals))
	c.JSON(http.StatusOK, models.SearchResponse{
		Query:             query,
		IndianKanoonCases: remote,
		LocalCases:        locals,
		TotalResults:      len(remote) + len(locals),
		PrimarySource:     "Indian Kanoon API",
		APIStatus:         apiStatus,
		Success:           true,
	})
}

// GetDocument handles GET /document/:id
func (h *ChatHandler) GetDocument(c *gin.Context) {
	docID := c.Param("id")

	doc := h.documents.FetchDocument(c.Request.Context(), docID)
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"document": doc,
			"source":   "Indian Kanoon",
		},
	})
}
