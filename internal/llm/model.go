package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultProvider serves a local Ollama instance.
	DefaultProvider = "ollama"
	// DefaultModel is a small Japanese-tuned Gemma build.
	DefaultModel = "schroneko/gemma-2-2b-jpn-it:latest"
	// DefaultOllamaURL is Ollama's OpenAI-compatible endpoint.
	DefaultOllamaURL = "http://localhost:11434/v1"
)

// ErrEmptyResponse is returned when a backend answers without any choice or
// content block. A blank answer is not an error.
var ErrEmptyResponse = errors.New("no response from model")

// Model produces a free-text completion for a prompt.
type Model interface {
	// Generate sends prompt to the named model and returns its answer.
	Generate(ctx context.Context, model, prompt string) (string, error)

	// Name returns the backend name
	Name() string
}

// Config selects and configures a backend.
type Config struct {
	Provider string // "ollama", "openai", "gemini" or "anthropic"
	APIKey   string
	BaseURL  string // Overrides the endpoint of OpenAI-compatible backends

	// Circuit breaker settings; zero values fall back to defaults.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// NewModel creates the backend named by config.Provider, wrapped in a
// circuit breaker.
func NewModel(ctx context.Context, config Config) (Model, error) {
	var (
		model Model
		err   error
	)

	switch config.Provider {
	case "", "ollama":
		baseURL := config.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		model = NewOpenAIModel("ollama", config.APIKey, baseURL)

	case "openai":
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		model = NewOpenAIModel("openai", config.APIKey, config.BaseURL)

	case "gemini":
		if config.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		model, err = NewGeminiModel(ctx, config.APIKey)

	case "anthropic":
		if config.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key is required")
		}
		model = NewAnthropicModel(config.APIKey)

	default:
		return nil, fmt.Errorf("unknown model provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewBreakerModel(model, config.BreakerFailures, config.BreakerTimeout), nil
}
