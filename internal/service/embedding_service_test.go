package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-rag/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEmbedTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *EmbeddingService) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewEmbeddingService(&config.EmbeddingConfig{
		BaseURL: server.URL,
		Model:   "nomic-embed-text",
	}, zap.NewNop())
	return server, svc
}

func TestEmbedDecodesVector(t *testing.T) {
	var gotModel, gotPrompt string
	_, svc := newEmbedTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req["model"]
		gotPrompt = req["prompt"]

		json.NewEncoder(w).Encode(map[string]any{
			"embedding": []float32{0.1, 0.2, 0.3},
		})
	})

	vec, err := svc.Embed(context.Background(), "what to wear in rain")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, "nomic-embed-text", gotModel)
	assert.Equal(t, "what to wear in rain", gotPrompt)
}

func TestEmbedAcceptsEmptyText(t *testing.T) {
	_, svc := newEmbedTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{0}})
	})

	vec, err := svc.Embed(context.Background(), "")

	require.NoError(t, err)
	assert.NotEmpty(t, vec)
}

func TestEmbedPropagatesServerError(t *testing.T) {
	_, svc := newEmbedTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Embed(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestEmbedPropagatesTransportError(t *testing.T) {
	server, svc := newEmbedTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := svc.Embed(context.Background(), "anything")

	require.Error(t, err)
}
