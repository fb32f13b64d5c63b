package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIModel talks to any OpenAI-compatible chat completion endpoint.
type OpenAIModel struct {
	name   string
	client *openai.Client
}

// NewOpenAIModel creates a chat completion client. An empty baseURL uses
// the public OpenAI API.
func NewOpenAIModel(name, apiKey, baseURL string) *OpenAIModel {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIModel{
		name:   name,
		client: openai.NewClientWithConfig(config),
	}
}

// Generate sends prompt as a single user message
func (m *OpenAIModel) Generate(ctx context.Context, model, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", m.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", m.name, ErrEmptyResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the backend name
func (m *OpenAIModel) Name() string {
	return m.name
}
