package ai

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/prproof/internal/models"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, *models.TokenUsage, error) {
	args := m.Called(ctx, prompt)
	var usage *models.TokenUsage
	if u := args.Get(1); u != nil {
		usage = u.(*models.TokenUsage)
	}
	return args.String(0), usage, args.Error(2)
}
