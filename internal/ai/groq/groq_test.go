package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/prproof/internal/config"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/httpclient"
)

func newTestGenerator(server *httptest.Server) *GroqGenerator {
	return &GroqGenerator{
		apiKey:  "test-key",
		model:   string(config.ModelLlama31Instant),
		baseURL: server.URL,
		client:  server.Client(),
	}
}

func TestNewGroqGenerator(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		gen, err := NewGroqGenerator(config.Default())

		assert.Nil(t, gen)
		assert.True(t, errors.Is(err, domainErrors.ErrAPIKeyMissing))
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProviders["groq"] = config.AIProviderConfig{APIKey: "k"}

		gen, err := NewGroqGenerator(cfg)

		require.NoError(t, err)
		assert.Equal(t, config.DefaultGroqURL, gen.baseURL)
		assert.Equal(t, "llama-3.1-8b-instant", gen.GetModelName())
		assert.Equal(t, "groq", gen.GetProviderName())
		client, ok := gen.client.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, cfg.Timeout(), client.Timeout)
	})

	t.Run("custom base url", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProviders["groq"] = config.AIProviderConfig{APIKey: "k", BaseURL: "http://localhost:1234/v1/chat/completions"}

		gen, err := NewGroqGenerator(cfg)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:1234/v1/chat/completions", gen.baseURL)
	})
}

func TestGroqGenerator_Generate(t *testing.T) {
	t.Run("sends one request and returns content", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req chatRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "llama-3.1-8b-instant", req.Model)
			assert.Equal(t, 500, req.MaxTokens)
			if assert.NotNil(t, req.Temperature) {
				assert.InDelta(t, 0.3, *req.Temperature, 1e-9)
			}
			if assert.Len(t, req.Messages, 1) {
				assert.Equal(t, "user", req.Messages[0].Role)
				assert.Equal(t, "the prompt", req.Messages[0].Content)
			}

			_ = json.NewEncoder(w).Encode(chatResponse{
				Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: `{"summary":"s"}`}}},
				Usage:   chatUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer server.Close()

		text, usage, err := newTestGenerator(server).Generate(context.Background(), "the prompt")

		require.NoError(t, err)
		assert.Equal(t, `{"summary":"s"}`, text)
		require.NotNil(t, usage)
		assert.Equal(t, 10, usage.InputTokens)
		assert.Equal(t, 5, usage.OutputTokens)
		assert.Equal(t, 15, usage.TotalTokens)
		assert.Equal(t, "llama-3.1-8b-instant", usage.Model)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("non-2xx is an error without retry", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer server.Close()

		_, _, err := newTestGenerator(server).Generate(context.Background(), "p")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAIStatus))
		assert.Contains(t, err.Error(), "HTTP 429")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, _, err := newTestGenerator(server).Generate(context.Background(), "p")

		assert.True(t, errors.Is(err, domainErrors.ErrInvalidAIOutput))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, _, err := newTestGenerator(server).Generate(context.Background(), "p")

		assert.True(t, errors.Is(err, domainErrors.ErrInvalidAIOutput))
	})

	t.Run("transport error from a custom client", func(t *testing.T) {
		cfg := config.Default()
		cfg.AIProviders["groq"] = config.AIProviderConfig{APIKey: "k"}
		var seen *http.Request
		gen, err := NewGroqGenerator(cfg, WithHTTPClient(httpclient.DoFunc(func(req *http.Request) (*http.Response, error) {
			seen = req
			return nil, errors.New("connection refused")
		})))
		require.NoError(t, err)

		_, _, err = gen.Generate(context.Background(), "p")

		assert.True(t, errors.Is(err, domainErrors.ErrAIGeneration))
		require.NotNil(t, seen)
		assert.Equal(t, config.DefaultGroqURL, seen.URL.String())
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := newTestGenerator(server).Generate(ctx, "p")

		assert.True(t, errors.Is(err, domainErrors.ErrAIGeneration))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
