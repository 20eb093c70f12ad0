package providers

import (
	"github.com/thomas-vilte/prproof/internal/config"
	"github.com/thomas-vilte/prproof/internal/vcs"
	"github.com/thomas-vilte/prproof/internal/vcs/github"
)

// NewVCSClient creates the GitHub client. Without a token it still works
// against public repositories, with GitHub's lower anonymous rate limit.
func NewVCSClient(cfg *config.Config) vcs.VCSClient {
	return github.NewGitHubClient(cfg.GitHub.Token)
}
