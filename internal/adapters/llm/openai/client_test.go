package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/adapters/llm/openai"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

func testOptions(baseURL string) openai.Options {
	return openai.Options{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "test-model",
		MaxTokens:   150,
		Temperature: 0.8,
		Timeout:     5 * time.Second,
	}
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Complete_Success(t *testing.T) {
	var gotReq struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &gotReq))

		writeJSON(w, http.StatusOK, completionBody("  Feel your heels root down in Chair Pose.\n"))
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), testOptions(srv.URL), slog.Default())

	out, err := client.Complete(context.Background(), "great job in chair")
	require.NoError(t, err)
	assert.Equal(t, "Feel your heels root down in Chair Pose.", out)

	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 150, gotReq.MaxTokens)
	assert.InDelta(t, 0.8, gotReq.Temperature, 1e-9)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, `NEVER use the words "awesome" or "amazing"`)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Contains(t, gotReq.Messages[1].Content, `wants to say "great job in chair" to their students`)
}

func TestClient_Complete_UpstreamErrorNoRetry(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusUnauthorized} {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(w, status, map[string]any{"error": map[string]any{"message": "boom"}})
		}))

		client := openai.NewClient(srv.Client(), testOptions(srv.URL), slog.Default())
		_, err := client.Complete(context.Background(), "tree")
		srv.Close()

		require.ErrorIs(t, err, domain.ErrUpstream, "status %d", status)
		assert.Equal(t, int32(1), calls.Load(), "status %d", status)
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := completionBody("")
		body["choices"] = []map[string]any{}
		writeJSON(w, http.StatusOK, body)
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), testOptions(srv.URL), slog.Default())
	_, err := client.Complete(context.Background(), "tree")
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Complete_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, completionBody("   "))
	}))
	defer srv.Close()

	client := openai.NewClient(srv.Client(), testOptions(srv.URL), slog.Default())
	_, err := client.Complete(context.Background(), "tree")
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	opts := testOptions(srv.URL)
	opts.Timeout = 100 * time.Millisecond
	client := openai.NewClient(srv.Client(), opts, slog.Default())

	start := time.Now()
	_, err := client.Complete(context.Background(), "tree")
	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Less(t, time.Since(start), 3*time.Second)
}
