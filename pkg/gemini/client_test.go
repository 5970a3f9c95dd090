package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/turismo-backend/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{
		apiKey:   "test-key",
		model:    defaultModel,
		endpoint: server.URL,
		client:   server.Client(),
		logger:   logger.NewNopLogger(),
	}
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	client := &Client{logger: logger.NewNopLogger()}

	_, err := client.Complete(context.Background(), "Oi")
	assert.ErrorContains(t, err, "GOOGLE_API_KEY")
}

func TestComplete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "Qual a capital de Portugal?", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Lisboa"},{"text":" é a capital.  "}]}}]}`))
	})

	text, err := client.Complete(context.Background(), "Qual a capital de Portugal?")
	require.NoError(t, err)
	assert.Equal(t, "Lisboa é a capital.", text)
}

func TestCompleteAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota excedida","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.Complete(context.Background(), "Oi")
	assert.ErrorContains(t, err, "429")
	assert.ErrorContains(t, err, "quota excedida")
}

func TestCompleteNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Complete(context.Background(), "Oi")
	assert.ErrorContains(t, err, "sem candidatos")
}
