// Package llm talks to generative language models. A Model turns a prompt
// into free text; backends exist for OpenAI-compatible endpoints (OpenAI
// itself and local Ollama servers), Google Gemini and Anthropic Claude.
// Every model built by NewModel sits behind a circuit breaker.
package llm
