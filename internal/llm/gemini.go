package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiModel talks to the Gemini API.
type GeminiModel struct {
	client *genai.Client
}

// NewGeminiModel creates a Gemini API client
func NewGeminiModel(ctx context.Context, apiKey string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiModel{client: client}, nil
}

// Generate sends prompt as a single text content
func (m *GeminiModel) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	return resp.Text(), nil
}

// Name returns the backend name
func (m *GeminiModel) Name() string {
	return "gemini"
}
