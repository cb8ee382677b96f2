package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 1
	return cfg
}

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
		"modelVersion": "test-model-001",
	})
	return string(b)
}

func TestClient_Generate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(candidateBody("Install formwork for the east pier.")))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "draft it"})

	require.NoError(t, err)
	assert.Equal(t, "Install formwork for the east pier.", resp.Text)
	assert.Equal(t, "test-model-001", resp.Model)
	assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "draft it", gotBody.Contents[0].Parts[0].Text)
	assert.Nil(t, gotBody.GenerationConfig)
}

func TestClient_Generate_WantJSONSetsMimeType(t *testing.T) {
	var gotBody generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(candidateBody(`["a","b"]`)))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "subtasks", Prompt: "p", WantJSON: true})

	require.NoError(t, err)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestClient_Generate_NoCredentials(t *testing.T) {
	cfg := DefaultConfig() // no API key
	client := NewClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(candidateBody("second try")))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Generate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestClient_Generate_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Generate_ObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateBody("ok")))
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Kind: "description", Prompt: "p"})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "description", events[0].Kind)
	assert.True(t, events[0].Success)
	assert.Empty(t, events[0].ErrorCode)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
