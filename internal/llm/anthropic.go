package llm

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

// AnthropicModel talks to the Claude messages API.
type AnthropicModel struct {
	client anthropic.Client
}

// NewAnthropicModel creates a Claude API client
func NewAnthropicModel(apiKey string) *AnthropicModel {
	return &AnthropicModel{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Generate sends prompt as a single user message and concatenates the text
// blocks of the answer.
func (m *AnthropicModel) Generate(ctx context.Context, model, prompt string) (string, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	return b.String(), nil
}

// Name returns the backend name
func (m *AnthropicModel) Name() string {
	return "anthropic"
}
