package translation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/tangocards/internal/llm"
	"codeberg.org/snonux/tangocards/internal/testutil"
)

func TestPrompts(t *testing.T) {
	assert.Equal(t,
		"Do not use any excess formatting in your response.\nPlease translate「単語」to english.",
		TranslatePrompt("単語"))
	assert.Equal(t,
		"過剰な書式設定を使わないでください。「単語」の単語を使い、日本語で例文を一つ作ってください。",
		ExamplePrompt("単語"))
}

func TestTranslateWord_TrimsResponse(t *testing.T) {
	model := &testutil.MockModel{Responses: map[string]string{"translate「単語」": "\n  Vocabulary  \n"}}
	translator := NewTranslator(model, llm.DefaultModel, nil, nil)

	got, err := translator.TranslateWord(context.Background(), "単語")
	require.NoError(t, err)
	assert.Equal(t, "Vocabulary", got)

	calls := model.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], llm.DefaultModel)
}

func TestExampleSentence(t *testing.T) {
	model := &testutil.MockModel{Responses: map[string]string{"例文": " 彼は新しい単語を覚えた。\n"}}
	translator := NewTranslator(model, llm.DefaultModel, nil, nil)

	got, err := translator.ExampleSentence(context.Background(), "単語")
	require.NoError(t, err)
	assert.Equal(t, "彼は新しい単語を覚えた。", got)
}

func TestTranslateWord_ModelError(t *testing.T) {
	boom := errors.New("connection refused")
	model := &testutil.MockModel{Errors: map[string]error{"単語": boom}}
	translator := NewTranslator(model, llm.DefaultModel, nil, nil)

	_, err := translator.TranslateWord(context.Background(), "単語")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `translation of "単語" failed`)
}

func TestTranslator_CacheAvoidsRepeatedCalls(t *testing.T) {
	model := &testutil.MockModel{Default: "Vocabulary"}
	cache := NewResponseCache(0)
	translator := NewTranslator(model, llm.DefaultModel, cache, nil)

	for i := 0; i < 3; i++ {
		got, err := translator.TranslateWord(context.Background(), "単語")
		require.NoError(t, err)
		assert.Equal(t, "Vocabulary", got)
	}

	assert.Equal(t, 1, model.CallCount())
	assert.Equal(t, 1, cache.Count())
	assert.Equal(t, 1, translator.CachedAnswers())
}

func TestTranslator_EmptyAnswerNotCached(t *testing.T) {
	model := &testutil.MockModel{Default: "   "}
	cache := NewResponseCache(time.Minute)
	translator := NewTranslator(model, llm.DefaultModel, cache, nil)

	got, err := translator.TranslateWord(context.Background(), "単語")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, 0, cache.Count())
}

func TestTranslator_NoAnswerIsEmpty(t *testing.T) {
	model := &testutil.MockModel{Errors: map[string]error{"単語": fmt.Errorf("ollama: %w", llm.ErrEmptyResponse)}}
	translator := NewTranslator(model, llm.DefaultModel, nil, nil)

	got, err := translator.TranslateWord(context.Background(), "単語")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTranslator_LimiterHonoursContext(t *testing.T) {
	model := &testutil.MockModel{Default: "Vocabulary"}
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	translator := NewTranslator(model, llm.DefaultModel, nil, limiter)

	_, err := translator.TranslateWord(context.Background(), "単語")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = translator.ExampleSentence(ctx, "単語")
	assert.Error(t, err)
	assert.Equal(t, 1, model.CallCount())
}
