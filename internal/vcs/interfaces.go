package vcs

import (
	"context"

	"github.com/thomas-vilte/prproof/internal/models"
)

// VCSClient reads pull requests and repositories from a hosting provider.
type VCSClient interface {
	// GetChangeRecord fetches a pull request with its file patches, reviews
	// and discussion comments.
	GetChangeRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error)
	// ListClosedPRs lists the most recently updated closed pull requests.
	ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error)
	// ListRepos lists the repositories of the authenticated user.
	ListRepos(ctx context.Context) ([]models.RepositoryRef, error)
}
