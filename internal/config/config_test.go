package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/tangocards/internal/llm"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, llm.DefaultModel, cfg.Model)
	assert.Equal(t, "kagome", cfg.Analyzer)
	assert.Equal(t, "anki_cards.txt", cfg.OutputFile)
	assert.Zero(t, cfg.Concurrency)
	assert.Zero(t, cfg.RequestsPerSecond)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "openai with base url",
			mutate: func(c *Config) { c.Provider = "openai"; c.BaseURL = "https://api.openai.com/v1" },
		},
		{
			name:   "mecab analyzer",
			mutate: func(c *Config) { c.Analyzer = "mecab" },
		},
		{
			name:   "bounded concurrency and rate",
			mutate: func(c *Config) { c.Concurrency = 4; c.RequestsPerSecond = 2.5; c.RequestTimeout = time.Minute },
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "llama.cpp" },
			wantErr: "Provider",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.Model = "" },
			wantErr: "Model",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Concurrency = -1 },
			wantErr: "Concurrency",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.RequestsPerSecond = -0.5 },
			wantErr: "RequestsPerSecond",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RequestTimeout = -time.Second },
			wantErr: "timeout",
		},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.BaseURL = "not a url" },
			wantErr: "BaseURL",
		},
		{
			name:    "unknown analyzer",
			mutate:  func(c *Config) { c.Analyzer = "sudachi" },
			wantErr: "Analyzer",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "LogFormat",
		},
		{
			name:    "missing output",
			mutate:  func(c *Config) { c.OutputFile = "" },
			wantErr: "OutputFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLLM(t *testing.T) {
	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.APIKey = "key"
	cfg.BaseURL = "http://example.com"

	got := cfg.LLM()
	assert.Equal(t, "anthropic", got.Provider)
	assert.Equal(t, "key", got.APIKey)
	assert.Equal(t, "http://example.com", got.BaseURL)
}
