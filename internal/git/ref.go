package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/regex"
)

// RepoRef points at a GitHub repository and, when parsed from a pull
// request URL, at one of its pull requests.
type RepoRef struct {
	Owner  string
	Name   string
	Number int
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoRef accepts owner/name, a GitHub pull request URL or a GitHub
// remote URL.
func ParseRepoRef(ref string) (RepoRef, error) {
	ref = strings.TrimSpace(ref)

	if m := regex.GitHubPRURL.FindStringSubmatch(ref); m != nil {
		number, err := strconv.Atoi(m[3])
		if err != nil {
			return RepoRef{}, errors.ErrInvalidRepo.WithError(err).WithContext("repo", ref)
		}
		return RepoRef{Owner: m[1], Name: m[2], Number: number}, nil
	}

	if m := regex.RepoSlug.FindStringSubmatch(ref); m != nil {
		return RepoRef{Owner: m[1], Name: strings.TrimSuffix(m[2], ".git")}, nil
	}

	owner, name, provider, err := parseRepoURL(ref)
	if err == nil && provider == "github" {
		return RepoRef{Owner: owner, Name: name}, nil
	}

	return RepoRef{}, errors.ErrInvalidRepo.WithContext("repo", ref)
}

// ResolveRepo parses ref when given, otherwise reads the origin remote of
// the current checkout.
func (s *GitService) ResolveRepo(ctx context.Context, ref string) (RepoRef, error) {
	if strings.TrimSpace(ref) != "" {
		return ParseRepoRef(ref)
	}

	owner, name, provider, err := s.GetRepoInfo(ctx)
	if err != nil {
		return RepoRef{}, err
	}
	if provider != "github" {
		return RepoRef{}, errors.ErrInvalidRepo.
			WithContext("provider", provider).
			WithSuggestion("Only GitHub remotes are supported; pass --repo owner/name")
	}
	return RepoRef{Owner: owner, Name: name}, nil
}
