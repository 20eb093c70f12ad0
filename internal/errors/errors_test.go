package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrFetchPR.WithError(baseErr)

	assert.Same(t, baseErr, appErr.Err)
	assert.Equal(t, TypeVCS, appErr.Type)
	assert.Nil(t, ErrFetchPR.Err, "sentinel must not be mutated")
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrAIStatus.WithContext("status", 503).WithContext("provider", "groq")

	assert.Equal(t, 503, appErr.Context["status"])
	assert.Equal(t, "groq", appErr.Context["provider"])
	assert.Nil(t, ErrAIStatus.Context)
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "simple error without underlying error",
			err:      ErrNoSource,
			contains: []string{"INPUT", "no change record source given"},
		},
		{
			name:     "error with underlying error",
			err:      ErrReadInput.WithError(errors.New("open record.json: no such file")),
			contains: []string{"INPUT", "failed to read change record", "no such file"},
		},
		{
			name:     "error with status context",
			err:      ErrAIStatus.WithContext("status", 429),
			contains: []string{"AI", "error status", "HTTP 429"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("fetching: %w", ErrGitHubRateLimit.WithContext("retry_after", "60"))

	assert.True(t, errors.Is(wrapped, ErrGitHubRateLimit))
	assert.False(t, errors.Is(wrapped, ErrRepositoryNotFound))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "60", appErr.Context["retry_after"])
}

func TestAppError_WithSuggestion(t *testing.T) {
	appErr := ErrInvalidAIOutput.WithSuggestion("try again")

	assert.Equal(t, "try again", appErr.Suggestion)
	assert.Empty(t, ErrInvalidAIOutput.Suggestion)
}
