package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"codeberg.org/snonux/tangocards/internal/llm"
)

const (
	translatePrompt = "Do not use any excess formatting in your response.\nPlease translate「%s」to english."
	examplePrompt   = "過剰な書式設定を使わないでください。「%s」の単語を使い、日本語で例文を一つ作ってください。"
)

// Translator handles Japanese to English translation and example sentences
type Translator struct {
	model     llm.Model
	modelName string
	cache     *ResponseCache
	limiter   *rate.Limiter
}

// NewTranslator creates a new translator instance. cache and limiter may be nil.
func NewTranslator(model llm.Model, modelName string, cache *ResponseCache, limiter *rate.Limiter) *Translator {
	return &Translator{
		model:     model,
		modelName: modelName,
		cache:     cache,
		limiter:   limiter,
	}
}

// TranslateWord translates a Japanese word to English
func (t *Translator) TranslateWord(ctx context.Context, word string) (string, error) {
	translation, err := t.ask(ctx, TranslatePrompt(word))
	if err != nil {
		return "", fmt.Errorf("translation of %q failed: %w", word, err)
	}
	return translation, nil
}

// ExampleSentence asks for one Japanese sentence that uses word
func (t *Translator) ExampleSentence(ctx context.Context, word string) (string, error) {
	example, err := t.ask(ctx, ExamplePrompt(word))
	if err != nil {
		return "", fmt.Errorf("example sentence for %q failed: %w", word, err)
	}
	return example, nil
}

func (t *Translator) ask(ctx context.Context, prompt string) (string, error) {
	if t.cache != nil {
		if answer, ok := t.cache.Get(prompt); ok {
			return answer, nil
		}
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	answer, err := t.model.Generate(ctx, t.modelName, prompt)
	if errors.Is(err, llm.ErrEmptyResponse) {
		// Left to the card builder, which skips cards without a translation.
		return "", nil
	}
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)

	if t.cache != nil && answer != "" {
		t.cache.Add(prompt, answer)
	}
	return answer, nil
}

// CachedAnswers returns the number of answers held in the response cache
func (t *Translator) CachedAnswers() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Count()
}

// TranslatePrompt returns the prompt asking for the English meaning of word
func TranslatePrompt(word string) string {
	return fmt.Sprintf(translatePrompt, word)
}

// ExamplePrompt returns the prompt asking for an example sentence with word
func ExamplePrompt(word string) string {
	return fmt.Sprintf(examplePrompt, word)
}
