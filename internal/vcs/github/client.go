package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
	"github.com/thomas-vilte/prproof/internal/vcs"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

var _ vcs.VCSClient = (*GitHubClient)(nil)

const (
	closedPRsPerPage = 30
	reposPerPage     = 100
	filesPerPage     = 100
	maxFilePages     = 30
)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	ListReviews(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.PullRequestReview, *github.Response, error)
}

type IssuesService interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}

type RepositoriesService interface {
	ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	repoService   RepositoriesService
}

func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return NewGitHubClientWithServices(client.PullRequests, client.Issues, client.Repositories)
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	repoService RepositoriesService,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		repoService:   repoService,
	}
}

// GetChangeRecord fetches the pull request, its files, its reviews and its
// issue comments concurrently. Reviews come before comments in the result;
// files without a textual patch are dropped.
func (ghc *GitHubClient) GetChangeRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error) {
	log := logger.FromContext(ctx)
	fullName := fmt.Sprintf("%s/%s", owner, repo)

	log.Debug("fetching github pull request",
		"repo", fullName,
		"pr_number", number)

	var (
		pr       *github.PullRequest
		files    []*github.CommitFile
		reviews  []*github.PullRequestReview
		comments []*github.IssueComment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var resp *github.Response
		var err error
		pr, resp, err = ghc.prService.Get(gctx, owner, repo, number)
		if err != nil {
			return mapError(resp, err, "get PR", fullName, number)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		files, err = ghc.listFiles(gctx, owner, repo, number)
		return err
	})

	g.Go(func() error {
		var resp *github.Response
		var err error
		reviews, resp, err = ghc.prService.ListReviews(gctx, owner, repo, number, &github.ListOptions{PerPage: 100})
		if err != nil {
			return mapError(resp, err, "list reviews", fullName, number)
		}
		return nil
	})

	g.Go(func() error {
		var resp *github.Response
		var err error
		comments, resp, err = ghc.issuesService.ListComments(gctx, owner, repo, number, &github.IssueListCommentsOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		})
		if err != nil {
			return mapError(resp, err, "list comments", fullName, number)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to fetch github PR",
			"error", err,
			"repo", fullName,
			"pr_number", number)
		return models.ChangeRecord{}, err
	}

	patches := make([]models.FilePatch, 0, len(files))
	for _, f := range files {
		if f.GetPatch() == "" {
			continue
		}
		patches = append(patches, models.FilePatch{
			Filename: f.GetFilename(),
			Status:   f.GetStatus(),
			Patch:    f.GetPatch(),
		})
	}

	discussion := make([]models.Review, 0, len(reviews)+len(comments))
	for _, r := range reviews {
		discussion = append(discussion, models.Review{Body: r.GetBody()})
	}
	for _, c := range comments {
		discussion = append(discussion, models.Review{Body: c.GetBody()})
	}

	record := models.ChangeRecord{
		Title:        pr.GetTitle(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		Patches:      patches,
		Reviews:      discussion,
		Number:       number,
		Repo:         fullName,
		ChangedFiles: pr.GetChangedFiles(),
	}
	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		record.MergedAt = &mergedAt
	}

	log.Debug("github PR fetched successfully",
		"pr_number", number,
		"title", record.Title,
		"files", len(patches),
		"skipped_files", len(files)-len(patches),
		"reviews", len(discussion))

	return record, nil
}

func (ghc *GitHubClient) listFiles(ctx context.Context, owner, repo string, number int) ([]*github.CommitFile, error) {
	fullName := fmt.Sprintf("%s/%s", owner, repo)
	opts := &github.ListOptions{PerPage: filesPerPage}

	var all []*github.CommitFile
	for page := 0; page < maxFilePages; page++ {
		files, resp, err := ghc.prService.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, mapError(resp, err, "list files", fullName, number)
		}
		all = append(all, files...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListClosedPRs returns up to 30 closed pull requests, most recently updated first.
func (ghc *GitHubClient) ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error) {
	fullName := fmt.Sprintf("%s/%s", owner, repo)

	prs, resp, err := ghc.prService.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       "closed",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: closedPRsPerPage},
	})
	if err != nil {
		return nil, mapError(resp, err, "list PRs", fullName, 0)
	}

	refs := make([]models.PullRequestRef, 0, len(prs))
	for _, pr := range prs {
		refs = append(refs, models.PullRequestRef{
			Number: pr.GetNumber(),
			Title:  pr.GetTitle(),
		})
	}

	logger.Debug(ctx, "listed closed pull requests", "repo", fullName, "count", len(refs))
	return refs, nil
}

// ListRepos returns the authenticated user's repositories, most recently updated first.
func (ghc *GitHubClient) ListRepos(ctx context.Context) ([]models.RepositoryRef, error) {
	repos, resp, err := ghc.repoService.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	})
	if err != nil {
		return nil, mapError(resp, err, "list repositories", "", 0)
	}

	refs := make([]models.RepositoryRef, 0, len(repos))
	for _, r := range repos {
		refs = append(refs, models.RepositoryRef{
			FullName:      r.GetFullName(),
			DefaultBranch: r.GetDefaultBranch(),
		})
	}
	return refs, nil
}

func mapError(resp *github.Response, err error, operation, repo string, number int) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return domainErrors.ErrGitHubRateLimit.
			WithError(err).
			WithContext("operation", operation)
	}

	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return domainErrors.ErrGitHubTokenInvalid.
				WithContext("operation", operation)
		case http.StatusTooManyRequests:
			return domainErrors.ErrGitHubRateLimit.
				WithContext("retry_after", resp.Header.Get("Retry-After")).
				WithContext("operation", operation)
		case http.StatusNotFound:
			appErr := domainErrors.ErrRepositoryNotFound.
				WithContext("operation", operation)
			if repo != "" {
				appErr = appErr.WithContext("repo", repo)
			}
			if number > 0 {
				appErr = appErr.WithContext("pr_number", number)
			}
			return appErr
		}
	}

	base := domainErrors.ErrGitHubAPI
	if number > 0 {
		base = domainErrors.ErrFetchPR
	}
	appErr := base.
		WithError(err).
		WithContext("operation", operation)
	if resp != nil && resp.Response != nil {
		appErr = appErr.WithContext("status", resp.StatusCode)
	}
	return appErr
}
