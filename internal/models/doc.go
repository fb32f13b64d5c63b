// Package models lists the models an OpenAI-compatible endpoint serves,
// such as a local Ollama or the OpenAI API, so users can pick a --model.
package models
