package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

const geminiModelName = "gemini-1.5-pro-latest"

// GeminiModel adapts the Gemini SDK to the TextGenerator contract.
type GeminiModel struct {
	model *genai.GenerativeModel
}

// NewGeminiModel creates a generator backed by the given Gemini client.
func NewGeminiModel(client *genai.Client) *GeminiModel {
	return &GeminiModel{model: client.GenerativeModel(geminiModelName)}
}

// GenerateText sends the prompt to Gemini and concatenates the text parts
// of all returned candidates.
func (m *GeminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
	}
	if out.Len() == 0 {
		return "", errors.New("model returned no text candidates")
	}
	return out.String(), nil
}
