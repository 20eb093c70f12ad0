package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thomas-vilte/prproof/internal/ai"
	"github.com/thomas-vilte/prproof/internal/config"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/httpclient"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
)

const (
	temperature = 0.3
	maxTokens   = 500
)

var _ ai.Generator = (*GroqGenerator)(nil)
var _ ai.ProviderInfo = (*GroqGenerator)(nil)

// GroqGenerator talks to any OpenAI-compatible chat-completions endpoint,
// Groq by default.
type GroqGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  httpclient.HTTPClient
}

type Option func(*GroqGenerator)

// WithHTTPClient replaces the default timeout-bound client.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(g *GroqGenerator) {
		if client != nil {
			g.client = client
		}
	}
}

func NewGroqGenerator(cfg *config.Config, opts ...Option) (*GroqGenerator, error) {
	providerCfg, exists := cfg.AIProviders[string(config.AIGroq)]
	if !exists || providerCfg.APIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", config.AIGroq)
	}

	baseURL := providerCfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGroqURL
	}

	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	g := &GroqGenerator{
		apiKey:  providerCfg.APIKey,
		model:   string(cfg.ModelFor(config.AIGroq)),
		baseURL: baseURL,
		client:  httpclient.New(timeout),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *GroqGenerator) GetModelName() string    { return g.model }
func (g *GroqGenerator) GetProviderName() string { return string(config.AIGroq) }

// Generate performs exactly one POST. Any non-2xx status is an error.
func (g *GroqGenerator) Generate(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	log := logger.FromContext(ctx)

	temp := temperature
	body := chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: &temp,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return "", nil, domainErrors.ErrAIGeneration.WithError(err).WithContext("provider", config.AIGroq)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		log.Debug("groq returned an error status",
			"status", httpResp.StatusCode,
			"body_length", len(respBody))
		return "", nil, domainErrors.ErrAIStatus.
			WithContext("status", httpResp.StatusCode).
			WithContext("provider", config.AIGroq)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", nil, domainErrors.ErrInvalidAIOutput.WithError(err).WithContext("reason", "failed to parse response body")
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", nil, domainErrors.ErrInvalidAIOutput.WithContext("reason", "empty response from AI")
	}

	usage := &models.TokenUsage{
		InputTokens:  result.Usage.PromptTokens,
		OutputTokens: result.Usage.CompletionTokens,
		TotalTokens:  result.Usage.TotalTokens,
		Model:        g.model,
		DurationMs:   time.Since(start).Milliseconds(),
	}

	return result.Choices[0].Message.Content, usage, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
