package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/prproof/internal/models"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetChangeRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error) {
	args := m.Called(ctx, owner, repo, number)
	return args.Get(0).(models.ChangeRecord), args.Error(1)
}

func (m *MockVCSClient) ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error) {
	args := m.Called(ctx, owner, repo)
	return args.Get(0).([]models.PullRequestRef), args.Error(1)
}

func (m *MockVCSClient) ListRepos(ctx context.Context) ([]models.RepositoryRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RepositoryRef), args.Error(1)
}
