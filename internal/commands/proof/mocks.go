package proof

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/prproof/internal/git"
	"github.com/thomas-vilte/prproof/internal/models"
)

type MockProofService struct {
	mock.Mock
}

func (m *MockProofService) FetchRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error) {
	args := m.Called(ctx, owner, repo, number)
	return args.Get(0).(models.ChangeRecord), args.Error(1)
}

func (m *MockProofService) Score(ctx context.Context, record models.ChangeRecord) models.ScoreSet {
	args := m.Called(ctx, record)
	return args.Get(0).(models.ScoreSet)
}

func (m *MockProofService) Analyze(ctx context.Context, record models.ChangeRecord) models.AnalysisResult {
	args := m.Called(ctx, record)
	return args.Get(0).(models.AnalysisResult)
}

func (m *MockProofService) BuildReport(ctx context.Context, record models.ChangeRecord) models.Report {
	args := m.Called(ctx, record)
	return args.Get(0).(models.Report)
}

func (m *MockProofService) ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PullRequestRef), args.Error(1)
}

func (m *MockProofService) ListRepos(ctx context.Context) ([]models.RepositoryRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepositoryRef), args.Error(1)
}

type MockRepoResolver struct {
	mock.Mock
}

func (m *MockRepoResolver) ResolveRepo(ctx context.Context, ref string) (git.RepoRef, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(git.RepoRef), args.Error(1)
}
