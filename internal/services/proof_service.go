package services

import (
	"context"
	"time"

	"github.com/thomas-vilte/prproof/internal/ai"
	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
	"github.com/thomas-vilte/prproof/internal/signals"
)

// proofVCSClient defines the methods needed by ProofService from a VCS provider.
type proofVCSClient interface {
	GetChangeRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error)
	ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error)
	ListRepos(ctx context.Context) ([]models.RepositoryRef, error)
}

// proofAnalyzer defines the methods needed by ProofService from the analyzer.
type proofAnalyzer interface {
	Analyze(ctx context.Context, record models.ChangeRecord) models.AnalysisResult
	AnalyzeAsync(ctx context.Context, record models.ChangeRecord) <-chan models.AnalysisResult
}

type ProofService struct {
	vcsClient proofVCSClient
	analyzer  proofAnalyzer
}

type ProofOption func(*ProofService)

func WithProofVCSClient(vcs proofVCSClient) ProofOption {
	return func(s *ProofService) {
		s.vcsClient = vcs
	}
}

func WithProofAnalyzer(analyzer proofAnalyzer) ProofOption {
	return func(s *ProofService) {
		s.analyzer = analyzer
	}
}

// NewProofService builds the service. Without an analyzer every analysis is
// the deterministic fallback.
func NewProofService(opts ...ProofOption) *ProofService {
	s := &ProofService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil {
		s.analyzer = ai.NewAnalyzer(nil)
	}
	return s
}

func (s *ProofService) FetchRecord(ctx context.Context, owner, repo string, number int) (models.ChangeRecord, error) {
	if s.vcsClient == nil {
		return models.ChangeRecord{}, domainErrors.NewAppError(domainErrors.TypeInternal, "VCS client not configured", nil)
	}

	record, err := s.vcsClient.GetChangeRecord(ctx, owner, repo, number)
	if err != nil {
		return models.ChangeRecord{}, err
	}
	return record.Normalize(), nil
}

func (s *ProofService) Score(ctx context.Context, record models.ChangeRecord) models.ScoreSet {
	scores := signals.Compute(record)

	logger.Debug(ctx, "signals computed",
		"craft", scores.Craft,
		"collaboration", scores.Collaboration,
		"velocity", scores.Velocity,
		"overall", scores.Overall,
		"tier", scores.Tier)

	return scores
}

func (s *ProofService) Analyze(ctx context.Context, record models.ChangeRecord) models.AnalysisResult {
	return s.analyzer.Analyze(ctx, record)
}

// BuildReport scores the record while the analysis runs in the background,
// then joins both.
func (s *ProofService) BuildReport(ctx context.Context, record models.ChangeRecord) models.Report {
	log := logger.FromContext(ctx)
	record = record.Normalize()
	start := time.Now()

	analysisCh := s.analyzer.AnalyzeAsync(ctx, record)
	scores := s.Score(ctx, record)
	analysis := <-analysisCh

	log.Info("report ready",
		"pr_number", record.Number,
		"overall", scores.Overall,
		"tier", scores.Tier,
		"source", analysis.Source,
		"duration", time.Since(start))

	filesChanged := record.ChangedFiles
	if filesChanged == 0 {
		filesChanged = record.FileCount()
	}

	return models.Report{
		Repo:           record.Repo,
		Number:         record.Number,
		Title:          record.Title,
		Additions:      record.Additions,
		Deletions:      record.Deletions,
		FilesChanged:   filesChanged,
		MergedAt:       record.MergedAt,
		Scores:         scores,
		Analysis:       analysis,
		AnalysisSource: analysis.Source,
	}
}

func (s *ProofService) ListClosedPRs(ctx context.Context, owner, repo string) ([]models.PullRequestRef, error) {
	if s.vcsClient == nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "VCS client not configured", nil)
	}
	return s.vcsClient.ListClosedPRs(ctx, owner, repo)
}

func (s *ProofService) ListRepos(ctx context.Context) ([]models.RepositoryRef, error) {
	if s.vcsClient == nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "VCS client not configured", nil)
	}
	return s.vcsClient.ListRepos(ctx)
}
