package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestExtractUsage(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Nil(t, extractUsage(nil))
	})

	t.Run("nil UsageMetadata", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{}
		assert.Nil(t, extractUsage(resp))
	})

	t.Run("valid UsageMetadata", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount:     10,
				CandidatesTokenCount: 20,
				TotalTokenCount:      30,
			},
		}
		usage := extractUsage(resp)
		assert.NotNil(t, usage)
		assert.Equal(t, 10, usage.InputTokens)
		assert.Equal(t, 20, usage.OutputTokens)
		assert.Equal(t, 30, usage.TotalTokens)
	})
}

func TestGetGenerateConfig(t *testing.T) {
	t.Run("analysis settings", func(t *testing.T) {
		cfg := GetGenerateConfig("gemini-2.0-flash", 500, nil)
		assert.Equal(t, float32(0.3), *cfg.Temperature)
		assert.Equal(t, int32(500), cfg.MaxOutputTokens)
		assert.Equal(t, "application/json", cfg.ResponseMIMEType)
		assert.Nil(t, cfg.ResponseSchema)
		assert.Nil(t, cfg.ThinkingConfig)
	})

	t.Run("schema attached", func(t *testing.T) {
		schema := analysisSchema()
		cfg := GetGenerateConfig("gemini-2.0-flash", 500, schema)
		assert.Same(t, schema, cfg.ResponseSchema)
	})

	t.Run("thinking disabled for 2.5 flash models", func(t *testing.T) {
		for _, model := range []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"} {
			cfg := GetGenerateConfig(model, 500, nil)
			if assert.NotNil(t, cfg.ThinkingConfig, model) {
				assert.Equal(t, int32(0), *cfg.ThinkingConfig.ThinkingBudget, model)
			}
			assert.Equal(t, int32(500), cfg.MaxOutputTokens, model)
		}
	})

	t.Run("2.5 pro keeps the minimum thinking budget", func(t *testing.T) {
		cfg := GetGenerateConfig("gemini-2.5-pro", 500, nil)
		if assert.NotNil(t, cfg.ThinkingConfig) {
			budget := *cfg.ThinkingConfig.ThinkingBudget
			assert.GreaterOrEqual(t, budget, int32(128))
			assert.Equal(t, int32(500)+budget, cfg.MaxOutputTokens)
		}
	})
}

func TestAnalysisSchema(t *testing.T) {
	schema := analysisSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t, []string{"summary", "impactStatement", "skills", "complexity", "category"}, schema.Required)
	assert.Equal(t, []string{"low", "medium", "high"}, schema.Properties["complexity"].Enum)
	assert.Equal(t, []string{"feature", "bugfix", "refactor", "testing", "devops", "documentation"}, schema.Properties["category"].Enum)
	assert.Equal(t, genai.TypeString, schema.Properties["skills"].Items.Type)
}

func TestFormatResponse(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Empty(t, formatResponse(nil))
	})

	t.Run("joins parts and skips thoughts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: `{"summary":`},
					{Text: `"s"}`},
				}},
			}},
		}
		assert.Equal(t, `{"summary":"s"}`, formatResponse(resp))
	})
}
