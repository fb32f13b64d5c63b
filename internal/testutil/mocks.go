package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockModel mocks a language model collaborator. Responses and Errors are
// keyed by a substring of the prompt, usually the vocabulary word; errors
// take precedence over responses.
type MockModel struct {
	Responses map[string]string
	Errors    map[string]error
	// Default is returned when no key matches. Empty means
	// "mock response to <prompt>".
	Default string

	mu    sync.Mutex
	calls []string
}

// Generate mocks a completion request
func (m *MockModel) Generate(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("%s: %s", model, prompt))
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for key, err := range m.Errors {
		if strings.Contains(prompt, key) {
			return "", err
		}
	}

	for key, resp := range m.Responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}

	if m.Default != "" {
		return m.Default, nil
	}
	return fmt.Sprintf("mock response to %s", prompt), nil
}

// Calls returns a copy of the recorded calls
func (m *MockModel) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns the number of Generate calls
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Name returns the backend name
func (m *MockModel) Name() string {
	return "mock"
}

// MockAnalyzer mocks a morphological analyzer. Parses and Errors are keyed
// by the exact input text.
type MockAnalyzer struct {
	Parses map[string]string
	Errors map[string]error

	mu    sync.Mutex
	Calls []string
}

// Parse returns the configured parse for text, or an IPA-style parse with
// the reading ヨミ when none is configured.
func (m *MockAnalyzer) Parse(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if parse, ok := m.Parses[text]; ok {
		return parse, nil
	}

	return IPAParse(text, "ヨミ"), nil
}

// Name returns the analyzer name
func (m *MockAnalyzer) Name() string {
	return "mock"
}

// IPAParse builds a one-token MeCab parse of surface with the given reading.
func IPAParse(surface, reading string) string {
	return fmt.Sprintf("%s\t名詞,一般,*,*,*,*,%s,%s,%s\nEOS\n", surface, surface, reading, reading)
}
