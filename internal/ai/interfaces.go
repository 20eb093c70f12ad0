package ai

import (
	"context"

	"github.com/thomas-vilte/prproof/internal/models"
)

// Generator sends one prompt to a language model and returns the raw text
// of its answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, *models.TokenUsage, error)
}

// ProviderInfo is implemented by generators that can describe themselves.
// It is only used for logging.
type ProviderInfo interface {
	// GetModelName returns the name of the current model (e.g.: "llama-3.1-8b-instant")
	GetModelName() string

	// GetProviderName returns the name of the provider (e.g.: "groq", "gemini")
	GetProviderName() string
}
