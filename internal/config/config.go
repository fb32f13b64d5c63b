// Package config holds the resolved settings of a tangocards run.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"codeberg.org/snonux/tangocards/internal/anki"
	"codeberg.org/snonux/tangocards/internal/llm"
)

// ErrInvalidConfig is returned when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config replaces the compile-time constants of earlier versions.
type Config struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=ollama openai gemini anthropic"`
	Model    string `mapstructure:"model"    validate:"required"`
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey   string `mapstructure:"api_key"`

	Analyzer string `mapstructure:"analyzer" validate:"required,oneof=kagome mecab"`

	BatchFile  string `mapstructure:"batch"`
	OutputFile string `mapstructure:"output" validate:"required"`
	Archive    bool   `mapstructure:"archive"`

	// Concurrency bounds in-flight cards; 0 means one goroutine per word.
	Concurrency int `mapstructure:"concurrency" validate:"gte=0"`
	// RequestsPerSecond limits model calls across all cards; 0 disables it.
	RequestsPerSecond float64 `mapstructure:"rate" validate:"gte=0"`
	// RequestTimeout applies to each card; 0 means none.
	RequestTimeout time.Duration `mapstructure:"timeout"`

	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`
}

// Default returns a configuration that talks to a local Ollama with the
// built-in analyzer.
func Default() *Config {
	return &Config{
		Provider:   llm.DefaultProvider,
		Model:      llm.DefaultModel,
		Analyzer:   "kagome",
		OutputFile: anki.DefaultGeneratorOptions().OutputPath,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

var validate = validator.New()

// Validate checks the struct tags and the fields they cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}

	return nil
}

// LLM returns the model backend settings.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.Provider,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
	}
}
