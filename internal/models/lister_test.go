package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModelsServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[
			{"id":"schroneko/gemma-2-2b-jpn-it:latest","object":"model","owned_by":"library"},
			{"id":"nomic-embed-text:latest","object":"model","owned_by":"library"},
			{"id":"gemma2:9b","object":"model","owned_by":"library"}
		]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	require.NotNil(t, lister)
	assert.Equal(t, "test-api-key", lister.apiKey)
	assert.NotNil(t, lister.client)
}

func TestListModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	_, err := lister.ListModels(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAI API key not found")
}

func TestListModels_Sorted(t *testing.T) {
	server := newModelsServer(t)
	lister := NewLister("", server.URL+"/v1")

	ids, err := lister.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gemma2:9b",
		"nomic-embed-text:latest",
		"schroneko/gemma-2-2b-jpn-it:latest",
	}, ids)
}

func TestPrintModels(t *testing.T) {
	server := newModelsServer(t)
	lister := NewLister("", server.URL+"/v1")

	var buf bytes.Buffer
	err := lister.PrintModels(context.Background(), &buf, "gemma2:9b")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "* gemma2:9b\n")
	assert.Contains(t, out, "  schroneko/gemma-2-2b-jpn-it:latest\n")
	assert.NotContains(t, out, "nomic-embed-text")
}

func TestListModels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	lister := NewLister("", server.URL+"/v1")
	_, err := lister.ListModels(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list models")
}

func TestListModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	ids, err := NewLister(apiKey, "").ListModels(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, ids)
}
