package ai

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/prproof/internal/models"
	"github.com/thomas-vilte/prproof/internal/signals"
)

const defaultSkill = "Software Development"

// Fallback builds an analysis from the change itself, without a model.
func Fallback(record models.ChangeRecord) models.AnalysisResult {
	record = record.Normalize()
	category := signals.Classify(record)

	skills := signals.DetectSkills(record)
	if len(skills) > MaxAnalysisSkills {
		skills = skills[:MaxAnalysisSkills]
	}
	if len(skills) == 0 {
		skills = []string{defaultSkill}
	}

	return models.AnalysisResult{
		Summary:         fallbackSummary(record),
		ImpactStatement: impactStatement(category, record),
		Skills:          skills,
		Complexity:      complexityFor(record.Additions),
		Category:        category,
		Source:          models.SourceFallback,
	}
}

func complexityFor(additions int) models.Complexity {
	switch {
	case additions > 200:
		return models.ComplexityHigh
	case additions > 50:
		return models.ComplexityMedium
	default:
		return models.ComplexityLow
	}
}

func fallbackSummary(record models.ChangeRecord) string {
	var hasTests, hasConfig bool
	for _, p := range record.Patches {
		if strings.Contains(strings.ToLower(p.Filename), "test") {
			hasTests = true
		}
		if strings.Contains(p.Filename, ".yml") || strings.Contains(p.Filename, ".json") {
			hasConfig = true
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "This PR \"%s\" modifies %d file(s)", record.Title, record.FileCount())
	if hasTests {
		sb.WriteString(" including test coverage")
	}
	if hasConfig {
		sb.WriteString(" with configuration updates")
	}
	fmt.Fprintf(&sb, " (+%d/-%d lines).", record.Additions, record.Deletions)
	return sb.String()
}

func impactStatement(category models.Kind, record models.ChangeRecord) string {
	switch category {
	case models.KindFeature:
		return fmt.Sprintf("Added new functionality with %d lines of implementation code.", record.Additions)
	case models.KindBugfix:
		return "Fixed issues improving code reliability and stability."
	case models.KindRefactor:
		if record.Deletions > record.Additions {
			return fmt.Sprintf("Improved code quality by removing %d lines of technical debt.", record.Deletions-record.Additions)
		}
		return "Improved code quality through restructuring."
	case models.KindTesting:
		return "Enhanced test coverage to ensure code reliability."
	case models.KindDevOps:
		return "Improved deployment and infrastructure configuration."
	case models.KindDocumentation:
		return "Enhanced project documentation for better maintainability."
	default:
		return fmt.Sprintf("Updated codebase with %d lines of new code.", record.Additions)
	}
}
