package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legalease-rag/models"
)

// TextGenerator is the opaque generate(prompt) -> text capability.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const answerPrompt = `You are a legal AI assistant for Indian law. Based on the following legal case context,
provide a helpful and accurate response to the user's query.

User Query: %s

Relevant Legal Cases:
%s

Please provide:
1. A direct answer to the query based on the cases shown
2. Key legal principles that apply
3. Practical next steps the user should consider

Keep the response professional, concise, and helpful. Always recommend consulting with a qualified legal professional for specific legal advice.`

const fallbackTemplate = `Based on similar legal cases in our database:

%s

Key considerations for your query about "%s":
- Review relevant case law and precedents
- Gather all necessary documentation
- Consider the specific legal principles that apply
- Consult with a qualified legal professional for personalized advice

This is based on similar cases and general legal principles. For specific legal advice tailored to your situation, please consult with a practicing lawyer.`

const deflectionTemplate = "I understand you're asking about: %s. I recommend consulting with a qualified legal professional who can provide specific advice for your situation."

// GenerationService produces the answer text for a query. When the model
// is missing or faults, it substitutes a deterministic fallback built from
// the local corpus instead of surfacing an error.
type GenerationService struct {
	model  TextGenerator
	corpus CorpusSearcher
}

// GenerationServiceOption is a functional option for GenerationService
type GenerationServiceOption func(*GenerationService)

// GenerationWithModel sets the text generator
func GenerationWithModel(model TextGenerator) GenerationServiceOption {
	return func(s *GenerationService) {
		s.model = model
	}
}

// GenerationWithCorpus sets the corpus used for fallback answers
func GenerationWithCorpus(corpus CorpusSearcher) GenerationServiceOption {
	return func(s *GenerationService) {
		s.corpus = corpus
	}
}

// NewGenerationService creates a new generation service
func NewGenerationService(opts ...GenerationServiceOption) *GenerationService {
	s := &GenerationService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Answer generates a response to the query from the assembled case
// context. Never fails outward.
func (s *GenerationService) Answer(ctx context.Context, query, caseContext string) string {
	if s.model == nil {
		return s.fallbackAnswer(query)
	}

	text, err := s.model.GenerateText(ctx, fmt.Sprintf(answerPrompt, query, caseContext))
	if err != nil {
		log.Printf("Error generating AI response: %v", err)
		return s.fallbackAnswer(query)
	}
	return text
}

// fallbackAnswer builds the deterministic degraded answer: the judgments
// of the top-2 local matches, or a generic deflection when nothing in the
// corpus matches the query.
func (s *GenerationService) fallbackAnswer(query string) string {
	var matches []models.ScoredMatch
	if s.corpus != nil {
		matches = s.corpus.Search(query, 2)
	}
	if len(matches) == 0 {
		return fmt.Sprintf(deflectionTemplate, query)
	}

	summaries := make([]string, 0, len(matches))
	for _, match := range matches {
		summaries = append(summaries, fmt.Sprintf("- %s: %s", match.Case.Title, match.Case.Judgment))
	}
	return fmt.Sprintf(fallbackTemplate, strings.Join(summaries, "\n"), query)
}
