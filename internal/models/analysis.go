package models

// AnalysisSource records where an AnalysisResult came from.
type AnalysisSource string

const (
	SourceModel    AnalysisSource = "model"
	SourceFallback AnalysisSource = "fallback"
)

// AnalysisResult is the natural-language analysis of a change.
type AnalysisResult struct {
	Summary         string     `json:"summary"`
	ImpactStatement string     `json:"impactStatement"`
	Skills          []string   `json:"skills"`
	Complexity      Complexity `json:"complexity"`
	Category        Kind       `json:"category"`

	Source AnalysisSource `json:"-"`
	Usage  *TokenUsage    `json:"-"`
}
