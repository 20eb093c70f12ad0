package ai

import (
	"context"
	"time"

	"github.com/thomas-vilte/prproof/internal/logger"
	"github.com/thomas-vilte/prproof/internal/models"
)

// Analyzer turns a change record into an AnalysisResult, asking the
// generator once and falling back to Fallback on any failure.
type Analyzer struct {
	generator     Generator
	language      string
	maxPatchFiles int
	patchBudget   int
}

type AnalyzerOption func(*Analyzer)

func WithLanguage(lang string) AnalyzerOption {
	return func(a *Analyzer) {
		if lang != "" {
			a.language = lang
		}
	}
}

func WithMaxPatchFiles(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxPatchFiles = n
		}
	}
}

func WithPatchCharBudget(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.patchBudget = n
		}
	}
}

// NewAnalyzer builds an analyzer. A nil generator means no model is
// configured and every call returns the fallback analysis.
func NewAnalyzer(generator Generator, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		generator:     generator,
		language:      "en",
		maxPatchFiles: DefaultMaxPatchFiles,
		patchBudget:   DefaultPatchCharBudget,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze never fails: transport errors and unusable answers degrade to the
// fallback analysis.
func (a *Analyzer) Analyze(ctx context.Context, record models.ChangeRecord) models.AnalysisResult {
	log := logger.FromContext(ctx)
	record = record.Normalize()

	if a.generator == nil {
		log.Debug("no AI provider configured, using fallback analysis")
		return Fallback(record)
	}

	prompt, err := BuildAnalysisPrompt(record, a.language, a.maxPatchFiles, a.patchBudget)
	if err != nil {
		log.Warn("could not render analysis prompt, using fallback", "error", err)
		return Fallback(record)
	}

	if info, ok := a.generator.(ProviderInfo); ok {
		log = log.With("provider", info.GetProviderName(), "model", info.GetModelName())
	}
	log.Debug("requesting AI analysis", "prompt_length", len(prompt), "files", record.FileCount())

	start := time.Now()
	text, usage, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn("AI request failed, using fallback", "error", err, "duration", time.Since(start))
		return Fallback(record)
	}

	switch res := ParseAnalysis(text).(type) {
	case Parsed:
		result := res.Result
		result.Usage = usage
		log.Info("AI analysis generated",
			"duration", time.Since(start),
			"skills", len(result.Skills),
			"category", result.Category)
		return result
	case Unparseable:
		log.Warn("AI response unusable, using fallback",
			"reason", res.Reason,
			"response_length", len(text))
	}

	return Fallback(record)
}

// AnalyzeAsync runs Analyze in a goroutine. The channel receives exactly one
// result and is then closed.
func (a *Analyzer) AnalyzeAsync(ctx context.Context, record models.ChangeRecord) <-chan models.AnalysisResult {
	out := make(chan models.AnalysisResult, 1)
	go func() {
		defer close(out)
		out <- a.Analyze(ctx, record)
	}()
	return out
}
