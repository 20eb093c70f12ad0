package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/thomas-vilte/prproof/internal/ai"
	"github.com/thomas-vilte/prproof/internal/config"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
	"google.golang.org/genai"
)

const maxOutputTokens int32 = 500

var _ ai.Generator = (*GeminiGenerator)(nil)
var _ ai.ProviderInfo = (*GeminiGenerator)(nil)

type generateFunc func(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error)

type GeminiGenerator struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	generateFn generateFunc
}

func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (*GeminiGenerator, error) {
	providerCfg, exists := cfg.AIProviders[string(config.AIGemini)]
	if !exists || providerCfg.APIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing.WithContext("provider", config.AIGemini)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  providerCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}

	g := &GeminiGenerator{
		client:  client,
		model:   string(cfg.ModelFor(config.AIGemini)),
		timeout: cfg.Timeout(),
	}
	g.generateFn = g.defaultGenerate
	return g, nil
}

func (g *GeminiGenerator) GetModelName() string    { return g.model }
func (g *GeminiGenerator) GetProviderName() string { return string(config.AIGemini) }

func (g *GeminiGenerator) defaultGenerate(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), GetGenerateConfig(model, maxOutputTokens, analysisSchema()))
}

// Generate issues a single GenerateContent call bounded by the configured timeout.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	log := logger.FromContext(ctx)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.generateFn(ctx, g.model, prompt)
	if err != nil {
		log.Debug("gemini API call failed", "error", err, "model", g.model)
		return "", nil, classifyError(err)
	}

	text := formatResponse(resp)
	if strings.TrimSpace(text) == "" {
		return "", nil, domainErrors.ErrInvalidAIOutput.
			WithContext("reason", "empty response from AI").
			WithContext("provider", config.AIGemini)
	}

	usage := extractUsage(resp)
	if usage != nil {
		usage.Model = g.model
		usage.DurationMs = time.Since(start).Milliseconds()
	}
	return text, usage, nil
}

func classifyError(err error) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "quota"),
		strings.Contains(errMsg, "rate limit"),
		strings.Contains(errMsg, "resource exhausted"):
		return domainErrors.ErrAIStatus.WithError(err).WithContext("status", 429).WithContext("provider", config.AIGemini)
	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "api key"):
		return domainErrors.ErrAIStatus.WithError(err).WithContext("status", 401).WithContext("provider", config.AIGemini)
	default:
		return domainErrors.ErrAIGeneration.WithError(err).WithContext("provider", config.AIGemini)
	}
}
