package geminiservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"HealthCompanion/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})
	return string(b)
}

func newTestClient(url string) *Client {
	c := NewClient(config.GeminiConfig{APIKey: "k", BaseURL: url + "/", Model: "test-model"})
	c.backoff = time.Millisecond
	return c
}

func TestGenerateJSON(t *testing.T) {
	var payload GeminiPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		io.WriteString(w, candidate(`{"answer":"ok","score":3}`))
	}))
	defer srv.Close()

	var out struct {
		Answer string `json:"answer"`
		Score  int    `json:"score"`
	}
	err := newTestClient(srv.URL).GenerateJSON(context.Background(), Request{
		System: "be brief",
		Prompt: "hello",
		Schema: Object(map[string]*GeminiSchema{"answer": String(""), "score": Number("")}),
		Inline: NewInlineData("image/png", []byte{1, 2, 3}),
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Answer)
	assert.Equal(t, 3, out.Score)

	require.NotNil(t, payload.SystemInstruction)
	assert.Equal(t, "be brief", payload.SystemInstruction.Parts[0].Text)
	require.Len(t, payload.Contents[0].Parts, 2)
	assert.Equal(t, "hello", payload.Contents[0].Parts[0].Text)
	assert.Equal(t, "AQID", payload.Contents[0].Parts[1].InlineData.Data)
	assert.Equal(t, structuredMimeType, payload.GenerationConfig.ResponseMimeType)
	assert.Equal(t, []string{"answer", "score"}, payload.GenerationConfig.ResponseSchema.Required)
}

func TestGenerateRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, candidate(`{}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "{}", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGenerateGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(maxRetries), calls.Load())
}

func TestGenerateNoContent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Equal(t, int32(1), calls.Load(), "empty answers are not retried")
}

func TestGenerateNotConfigured(t *testing.T) {
	c := NewClient(config.GeminiConfig{})
	assert.False(t, c.Enabled())

	_, err := c.Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestObjectRequiredSkipsNullable(t *testing.T) {
	s := Object(map[string]*GeminiSchema{
		"b":    String(""),
		"a":    String(""),
		"flag": {Type: "STRING", Nullable: true},
	})
	assert.Equal(t, []string{"a", "b"}, s.Required)
	assert.Equal(t, "OBJECT", s.Type)
}
