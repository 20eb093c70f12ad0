package ai

import (
	"encoding/json"
	"strings"

	"github.com/thomas-vilte/prproof/internal/models"
)

// MaxAnalysisSkills caps the skills of a parsed analysis.
const MaxAnalysisSkills = 5

// ParseResult is either Parsed or Unparseable.
type ParseResult interface {
	parseResult()
}

// Parsed carries a validated analysis.
type Parsed struct {
	Result models.AnalysisResult
}

// Unparseable explains why a model answer was rejected.
type Unparseable struct {
	Reason string
}

func (Parsed) parseResult()      {}
func (Unparseable) parseResult() {}

type analysisJSON struct {
	Summary         *string   `json:"summary"`
	ImpactStatement *string   `json:"impactStatement"`
	Skills          *[]string `json:"skills"`
	Complexity      string    `json:"complexity"`
	Category        string    `json:"category"`
}

// ParseAnalysis extracts the JSON object from a raw model answer and
// validates it field by field.
func ParseAnalysis(raw string) ParseResult {
	object, ok := ExtractJSONObject(raw)
	if !ok {
		return Unparseable{Reason: "no JSON object in response"}
	}

	var payload analysisJSON
	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return Unparseable{Reason: "invalid JSON: " + err.Error()}
	}

	if payload.Summary == nil || strings.TrimSpace(*payload.Summary) == "" {
		return Unparseable{Reason: "missing summary"}
	}
	if payload.ImpactStatement == nil || strings.TrimSpace(*payload.ImpactStatement) == "" {
		return Unparseable{Reason: "missing impactStatement"}
	}
	if payload.Skills == nil {
		return Unparseable{Reason: "missing skills"}
	}

	skills := cleanSkills(*payload.Skills)
	if len(skills) == 0 {
		return Unparseable{Reason: "empty skills"}
	}

	complexity := models.Complexity(strings.ToLower(strings.TrimSpace(payload.Complexity)))
	if !complexity.Valid() {
		return Unparseable{Reason: "unknown complexity: " + payload.Complexity}
	}

	category := models.Kind(strings.ToLower(strings.TrimSpace(payload.Category)))
	if !category.Valid() {
		return Unparseable{Reason: "unknown category: " + payload.Category}
	}

	return Parsed{Result: models.AnalysisResult{
		Summary:         strings.TrimSpace(*payload.Summary),
		ImpactStatement: strings.TrimSpace(*payload.ImpactStatement),
		Skills:          skills,
		Complexity:      complexity,
		Category:        category,
		Source:          models.SourceModel,
	}}
}

func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, MaxAnalysisSkills)
	seen := make(map[string]bool)

	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, trimmed)
		if len(cleaned) == MaxAnalysisSkills {
			break
		}
	}

	return cleaned
}
