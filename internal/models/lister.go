package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available models
type Lister struct {
	apiKey  string
	baseURL string
	client  *openai.Client
}

// NewLister creates a new model lister. An empty baseURL targets the OpenAI
// API, which requires apiKey.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// ListModels returns the sorted model IDs served by the endpoint
func (l *Lister) ListModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" && l.baseURL == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .tangocards.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// PrintModels writes the available models to w, marking current.
// Audio and image models are left out since they cannot write cards.
func (l *Lister) PrintModels(ctx context.Context, w io.Writer, current string) error {
	ids, err := l.ListModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available models:")
	shown := 0
	for _, id := range ids {
		if !isTextModel(id) {
			continue
		}
		marker := " "
		if id == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, id)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "  No text models found")
	}
	return nil
}

func isTextModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "whisper", "embed", "image"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return true
}
