package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path    string
	Auth    string
	Referer string
	Title   string
	Body    map[string]any
}

func fakeUpstream(t *testing.T, status int, content string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Auth = r.Header.Get("Authorization")
		captured.Referer = r.Header.Get("HTTP-Referer")
		captured.Title = r.Header.Get("X-Title")
		_ = json.NewDecoder(r.Body).Decode(&captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestCompleteSendsSingleUserMessage(t *testing.T) {
	srv, captured := fakeUpstream(t, http.StatusOK, "HTML:\n```html\n<p>ok</p>\n```")
	g := NewGenerator(Settings{
		APIKey:      "sk-test",
		BaseURL:     srv.URL,
		Model:       "test-model",
		Temperature: 0.7,
		Referer:     "https://builder.example.com",
		Title:       "Builder",
	})

	out, err := g.Complete(context.Background(), "make a site")
	require.NoError(t, err)
	assert.Equal(t, "HTML:\n```html\n<p>ok</p>\n```", out)

	assert.Equal(t, "/chat/completions", captured.Path)
	assert.Equal(t, "Bearer sk-test", captured.Auth)
	assert.Equal(t, "https://builder.example.com", captured.Referer)
	assert.Equal(t, "Builder", captured.Title)
	assert.Equal(t, "test-model", captured.Body["model"])
	assert.InDelta(t, 0.7, captured.Body["temperature"], 0.001)
	assert.Nil(t, captured.Body["stream"])

	messages, ok := captured.Body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "make a site", msg["content"])
}

func TestGenerateSiteAppliesOutputContract(t *testing.T) {
	srv, captured := fakeUpstream(t, http.StatusOK, "done")
	g := NewGenerator(Settings{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := g.GenerateSite(context.Background(), "  a bakery  ")
	require.NoError(t, err)

	msg := captured.Body["messages"].([]any)[0].(map[string]any)
	content := msg["content"].(string)
	assert.Contains(t, content, "HTML:\n```html")
	assert.Contains(t, content, "User Prompt:\na bakery")
}

func TestCompleteEmptyContent(t *testing.T) {
	srv, _ := fakeUpstream(t, http.StatusOK, "")
	g := NewGenerator(Settings{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := g.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
	assert.NotErrorIs(t, err, ErrGenerationFailed)
}

func TestCompleteUpstreamFailure(t *testing.T) {
	srv, _ := fakeUpstream(t, http.StatusInternalServerError, "")
	g := NewGenerator(Settings{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := g.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestCompleteWithoutAPIKeyFailsAtRequestTime(t *testing.T) {
	srv, captured := fakeUpstream(t, http.StatusOK, "unused")
	g := NewGenerator(Settings{BaseURL: srv.URL})

	_, err := g.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Empty(t, captured.Path, "no request should reach the provider")
}
