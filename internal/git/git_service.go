package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/regex"
)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// IsInsideRepo reports whether the working directory belongs to a git checkout.
func (s *GitService) IsInsideRepo(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) == "true"
}

// GetRepoInfo returns owner, repository and provider of the origin remote.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	if !s.IsInsideRepo(ctx) {
		return "", "", "", errors.ErrNotInGitRepo
	}

	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", "", errors.ErrGetRepoURL.WithError(err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

func parseRepoURL(url string) (string, string, string, error) {
	var matches []string
	if regex.SSHRepo.MatchString(url) {
		matches = regex.SSHRepo.FindStringSubmatch(url)
	} else if regex.HTTPSRepo.MatchString(url) {
		matches = regex.HTTPSRepo.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		provider := detectProvider(matches[1])
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, provider, nil
	}

	return "", "", "", fmt.Errorf("%w [%s]", errors.ErrExtractRepoInfo, url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
