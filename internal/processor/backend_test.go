package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/tangocards/internal/anki"
	"codeberg.org/snonux/tangocards/internal/batch"
	"codeberg.org/snonux/tangocards/internal/config"
	"codeberg.org/snonux/tangocards/internal/llm"
	"codeberg.org/snonux/tangocards/internal/testutil"
)

// newBlankTranslationServer serves an OpenAI-compatible chat endpoint that
// answers translation prompts with whitespace and everything else with a
// sentence.
func newBlankTranslationServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		answer := "例文です。"
		if strings.Contains(req.Messages[0].Content, "translate") {
			answer = "   "
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": answer},
				},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newBackendProcessor(t *testing.T, words ...string) (*Processor, *config.Config) {
	t.Helper()
	server := newBlankTranslationServer(t)

	cfg := config.Default()
	cfg.BaseURL = server.URL + "/v1"
	cfg.Concurrency = 1
	cfg.BatchFile = testutil.CreateWordList(t, words...)
	cfg.OutputFile = filepath.Join(t.TempDir(), "anki_cards.txt")

	// A breaker that trips on the first failure makes any blank answer
	// counted as a backend failure visible in the results.
	model, err := llm.NewModel(context.Background(), llm.Config{
		Provider:        cfg.Provider,
		BaseURL:         cfg.BaseURL,
		BreakerFailures: 1,
	})
	require.NoError(t, err)

	p := NewProcessor(cfg, model, &testutil.MockAnalyzer{})
	p.SetOutput(&bytes.Buffer{})
	return p, cfg
}

func TestGenerateCard_BlankTranslationFromBackendIsSkipped(t *testing.T) {
	p, _ := newBackendProcessor(t, "猫")

	r := p.GenerateCard(context.Background(), batch.WordEntry{Word: "猫"})
	assert.Equal(t, anki.StatusSkipped, r.Status)
	assert.ErrorIs(t, r.Err, anki.ErrInsufficientInput)
}

func TestProcessBatch_BlankTranslationsKeepBackendAvailable(t *testing.T) {
	p, cfg := newBackendProcessor(t, "一", "二", "三", "四", "五", "六 = six", "七 = seven")

	summary, err := p.ProcessBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 5, summary.Skipped)
	assert.Equal(t, 2, summary.Written)
	assert.Zero(t, summary.Failed)

	assert.Equal(t, []string{
		"「六」<br>例文です。;<ruby>六<rt>よみ</rt></ruby><br>six",
		"「七」<br>例文です。;<ruby>七<rt>よみ</rt></ruby><br>seven",
	}, testutil.ReadLines(t, cfg.OutputFile))
}
