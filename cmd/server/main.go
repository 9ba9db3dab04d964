package main

import (
	"context"
	"log"
	"os"

	"legalease-rag/handlers"
	"legalease-rag/kanoon"
	"legalease-rag/repository"
	"legalease-rag/service"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Local corpus is loaded once and immutable afterwards
	corpus := repository.NewCaseCorpus()
	log.Printf("Loaded %d sample legal cases", corpus.Len())

	// An absent key leaves the client permanently degraded: every call
	// behaves like an unreachable source
	kanoonKey := os.Getenv("INDIAN_KANOON_API_KEY")
	if kanoonKey == "" {
		log.Println("Warning: INDIAN_KANOON_API_KEY not set")
	} else {
		log.Println("Indian Kanoon API key found")
	}
	kanoonClient := kanoon.NewClient(kanoonKey)

	model, err := initGemini()
	if err != nil {
		log.Fatal("Failed to initialize Gemini:", err)
	}

	// Initialize services
	retrievalService := service.NewRetrievalService(
		service.WithRemoteSource(kanoonClient),
		service.WithCorpus(corpus),
	)

	generationOpts := []service.GenerationServiceOption{
		service.GenerationWithCorpus(corpus),
	}
	if model != nil {
		generationOpts = append(generationOpts, service.GenerationWithModel(model))
	}
	generationService := service.NewGenerationService(generationOpts...)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(retrievalService, generationService, kanoonClient)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "LegalEase RAG",
		})
	})

	r.POST("/chat", chatHandler.Chat)
	r.GET("/search", chatHandler.Search)
	r.GET("/document/:id", chatHandler.GetDocument)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// initGemini builds the Gemini-backed generator, or nil when no API key is
// configured so answers fall back to the local corpus.
func initGemini() (*service.GeminiModel, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GOOGLE_API_KEY not set")
		return nil, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Google Gemini API configured successfully")
	return service.NewGeminiModel(client), nil
}
