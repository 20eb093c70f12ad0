package providers

import (
	"context"
	"errors"

	"github.com/thomas-vilte/prproof/internal/ai"
	"github.com/thomas-vilte/prproof/internal/ai/gemini"
	"github.com/thomas-vilte/prproof/internal/ai/groq"
	"github.com/thomas-vilte/prproof/internal/config"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/logger"
)

// NewGenerator creates the Generator of the active provider. It returns a
// nil Generator, and no error, when that provider has no API key.
func NewGenerator(ctx context.Context, cfg *config.Config) (ai.Generator, error) {
	active, _ := cfg.Provider()
	if active == "" {
		return nil, nil
	}

	var (
		gen ai.Generator
		err error
	)
	switch active {
	case config.AIGroq:
		var g *groq.GroqGenerator
		if g, err = groq.NewGroqGenerator(cfg); err == nil {
			gen = g
		}
	case config.AIGemini:
		var g *gemini.GeminiGenerator
		if g, err = gemini.NewGeminiGenerator(ctx, cfg); err == nil {
			gen = g
		}
	default:
		return nil, domainErrors.ErrProviderNotSupported.WithContext("provider", active)
	}

	if errors.Is(err, domainErrors.ErrAPIKeyMissing) {
		logger.Debug(ctx, "no API key for AI provider", "provider", active)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gen, nil
}

// NewAnalyzer wires the configured generator and analysis knobs into an
// Analyzer. offline skips the provider entirely.
func NewAnalyzer(ctx context.Context, cfg *config.Config, offline bool) (*ai.Analyzer, error) {
	var gen ai.Generator
	if !offline {
		var err error
		if gen, err = NewGenerator(ctx, cfg); err != nil {
			return nil, err
		}
	}

	return ai.NewAnalyzer(gen,
		ai.WithLanguage(cfg.Language),
		ai.WithMaxPatchFiles(cfg.Analysis.MaxPatchFiles),
		ai.WithPatchCharBudget(cfg.Analysis.PatchCharBudget),
	), nil
}
