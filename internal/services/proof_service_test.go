package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/prproof/internal/ai"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/models"
)

func retryRecord() models.ChangeRecord {
	return models.ChangeRecord{
		Title:     "Add retry logic to payment client",
		Additions: 40,
		Deletions: 5,
		Patches: []models.FilePatch{{
			Filename: "src/payments/retry.ts",
			Status:   "modified",
			Patch:    "+  try {\n+    ...\n+  } catch (e) { throw e }",
		}},
		Number: 12,
		Repo:   "acme/payments",
	}
}

const modelAnswer = `{"summary":"Adds retries.","impactStatement":"Checkout survives flaky networks.","skills":["TypeScript","Resilience","Error Handling"],"complexity":"low","category":"feature"}`

func TestProofService_FetchRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the fetched record", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("GetChangeRecord", ctx, "acme", "payments", 12).
			Return(models.ChangeRecord{Title: "t", Additions: -1}, nil).Once()

		service := NewProofService(WithProofVCSClient(mockVCS))

		record, err := service.FetchRecord(ctx, "acme", "payments", 12)

		require.NoError(t, err)
		assert.Equal(t, 0, record.Additions)
		assert.NotNil(t, record.Patches)
		assert.NotNil(t, record.Reviews)
		mockVCS.AssertExpectations(t)
	})

	t.Run("propagates VCS errors", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("GetChangeRecord", ctx, "acme", "payments", 99).
			Return(models.ChangeRecord{}, domainErrors.ErrRepositoryNotFound).Once()

		service := NewProofService(WithProofVCSClient(mockVCS))

		_, err := service.FetchRecord(ctx, "acme", "payments", 99)

		assert.True(t, errors.Is(err, domainErrors.ErrRepositoryNotFound))
	})

	t.Run("without VCS client", func(t *testing.T) {
		_, err := NewProofService().FetchRecord(ctx, "acme", "payments", 1)

		assert.Error(t, err)
	})
}

func TestProofService_Score(t *testing.T) {
	scores := NewProofService().Score(context.Background(), retryRecord())

	assert.Equal(t, 90, scores.Craft)
	assert.Equal(t, 50, scores.Collaboration)
	assert.Equal(t, 95, scores.Velocity)
	assert.Equal(t, 78, scores.Overall)
	assert.Equal(t, models.TierGold, scores.Tier)
	assert.Equal(t, models.KindFeature, scores.Kind)
	assert.Equal(t, []string{"TypeScript"}, scores.Skills)
}

func TestProofService_BuildReport(t *testing.T) {
	ctx := context.Background()

	t.Run("joins scores and model analysis", func(t *testing.T) {
		gen := new(ai.MockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything).Return(modelAnswer, nil, nil).Once()

		service := NewProofService(WithProofAnalyzer(ai.NewAnalyzer(gen)))

		report := service.BuildReport(ctx, retryRecord())

		assert.Equal(t, "acme/payments", report.Repo)
		assert.Equal(t, 12, report.Number)
		assert.Equal(t, 1, report.FilesChanged)
		assert.Equal(t, 78, report.Scores.Overall)
		assert.Equal(t, "Adds retries.", report.Analysis.Summary)
		assert.Equal(t, models.SourceModel, report.AnalysisSource)
		gen.AssertExpectations(t)
	})

	t.Run("falls back without analyzer", func(t *testing.T) {
		record := retryRecord()
		record.ChangedFiles = 4

		report := NewProofService().BuildReport(ctx, record)

		assert.Equal(t, models.SourceFallback, report.AnalysisSource)
		assert.Equal(t, 4, report.FilesChanged)
		assert.Equal(t, ai.Fallback(record), report.Analysis)
	})

	t.Run("falls back when the model fails", func(t *testing.T) {
		gen := new(ai.MockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything).Return("", nil, errors.New("timeout")).Once()

		report := NewProofService(WithProofAnalyzer(ai.NewAnalyzer(gen))).BuildReport(ctx, retryRecord())

		assert.Equal(t, models.SourceFallback, report.AnalysisSource)
		assert.Equal(t, models.TierGold, report.Scores.Tier)
	})
}

func TestProofService_Listings(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockVCS.On("ListClosedPRs", ctx, "acme", "api").
		Return([]models.PullRequestRef{{Number: 3, Title: "Fix"}}, nil).Once()
	mockVCS.On("ListRepos", ctx).
		Return([]models.RepositoryRef{{FullName: "acme/api", DefaultBranch: "main"}}, nil).Once()

	service := NewProofService(WithProofVCSClient(mockVCS))

	prs, err := service.ListClosedPRs(ctx, "acme", "api")
	require.NoError(t, err)
	assert.Len(t, prs, 1)

	repos, err := service.ListRepos(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme/api", repos[0].FullName)

	mockVCS.AssertExpectations(t)
}
