package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/prproof/internal/models"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("valid answer wrapped in prose", func(t *testing.T) {
		raw := "Sure!\n```json\n" + `{
  "summary": "  Adds retries to the payment client. ",
  "impactStatement": "Fewer failed checkouts.",
  "skills": ["TypeScript", " Error Handling ", "typescript", "", "Resilience", "HTTP", "Testing", "Extra"],
  "complexity": "Medium",
  "category": "FEATURE"
}` + "\n```"

		res := ParseAnalysis(raw)

		parsed, ok := res.(Parsed)
		require.True(t, ok, "expected Parsed, got %#v", res)
		assert.Equal(t, "Adds retries to the payment client.", parsed.Result.Summary)
		assert.Equal(t, "Fewer failed checkouts.", parsed.Result.ImpactStatement)
		assert.Equal(t, []string{"TypeScript", "Error Handling", "Resilience", "HTTP", "Testing"}, parsed.Result.Skills)
		assert.Equal(t, models.ComplexityMedium, parsed.Result.Complexity)
		assert.Equal(t, models.KindFeature, parsed.Result.Category)
		assert.Equal(t, models.SourceModel, parsed.Result.Source)
	})

	rejected := []struct {
		name   string
		raw    string
		reason string
	}{
		{"no object", "nothing useful", "no JSON object"},
		{"invalid json", `{"summary": nope}`, "invalid JSON"},
		{"missing summary", `{"impactStatement":"i","skills":["Go"],"complexity":"low","category":"bugfix"}`, "missing summary"},
		{"blank summary", `{"summary":"  ","impactStatement":"i","skills":["Go"],"complexity":"low","category":"bugfix"}`, "missing summary"},
		{"missing impact", `{"summary":"s","skills":["Go"],"complexity":"low","category":"bugfix"}`, "missing impactStatement"},
		{"missing skills", `{"summary":"s","impactStatement":"i","complexity":"low","category":"bugfix"}`, "missing skills"},
		{"only blank skills", `{"summary":"s","impactStatement":"i","skills":[" "],"complexity":"low","category":"bugfix"}`, "empty skills"},
		{"unknown complexity", `{"summary":"s","impactStatement":"i","skills":["Go"],"complexity":"huge","category":"bugfix"}`, "unknown complexity"},
		{"unknown category", `{"summary":"s","impactStatement":"i","skills":["Go"],"complexity":"low","category":"chore"}`, "unknown category"},
	}

	for _, tt := range rejected {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			res := ParseAnalysis(tt.raw)

			unparseable, ok := res.(Unparseable)
			require.True(t, ok, "expected Unparseable, got %#v", res)
			assert.Contains(t, unparseable.Reason, tt.reason)
		})
	}
}
