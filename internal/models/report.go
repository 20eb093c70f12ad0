package models

import "time"

// Report is everything shown for one change: metadata, signals and analysis.
type Report struct {
	Repo         string         `json:"repo,omitempty"`
	Number       int            `json:"number,omitempty"`
	Title        string         `json:"title"`
	Additions    int            `json:"additions"`
	Deletions    int            `json:"deletions"`
	FilesChanged int            `json:"files_changed"`
	MergedAt     *time.Time     `json:"merged_at,omitempty"`
	Scores       ScoreSet       `json:"scores"`
	Analysis     AnalysisResult `json:"analysis"`
	// AnalysisSource tells whether Analysis came from a model or the fallback.
	AnalysisSource AnalysisSource `json:"analysis_source"`
}

type (
	// PullRequestRef is a lightweight entry of a pull request listing.
	PullRequestRef struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
	}

	// RepositoryRef is a lightweight entry of a repository listing.
	RepositoryRef struct {
		FullName      string `json:"full_name"`
		DefaultBranch string `json:"default_branch"`
	}
)
