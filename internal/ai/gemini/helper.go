package gemini

import (
	"strings"

	"github.com/thomas-vilte/prproof/internal/models"
	"google.golang.org/genai"
)

// extractUsage extracts usage metadata from the Gemini response
func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}

// proThinkingBudget is the smallest budget gemini-2.5-pro accepts; it
// cannot run with thinking off.
const proThinkingBudget int32 = 128

// GetGenerateConfig returns the generation settings for an analysis request.
// Thinking tokens count against MaxOutputTokens.
func GetGenerateConfig(modelName string, maxOutputTokens int32, schema *genai.Schema) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:      float32Ptr(0.3),
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
	}
	if schema != nil {
		config.ResponseSchema = schema
	}

	switch {
	case strings.HasPrefix(modelName, "gemini-2.5-pro"):
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: int32Ptr(proThinkingBudget)}
		config.MaxOutputTokens = maxOutputTokens + proThinkingBudget
	case strings.HasPrefix(modelName, "gemini-2.5-flash"):
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: int32Ptr(0)}
	}

	return config
}

// analysisSchema mirrors models.AnalysisResult.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"summary", "impactStatement", "skills", "complexity", "category"},
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "Two or three sentences describing the change",
			},
			"impactStatement": {
				Type:        genai.TypeString,
				Description: "One sentence on the value the change delivers",
			},
			"skills": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Up to five skills shown by the change",
			},
			"complexity": {
				Type: genai.TypeString,
				Enum: []string{
					string(models.ComplexityLow),
					string(models.ComplexityMedium),
					string(models.ComplexityHigh),
				},
			},
			"category": {
				Type: genai.TypeString,
				Enum: kindNames(),
			},
		},
	}
}

func kindNames() []string {
	kinds := models.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return names
}

// formatResponse joins the text parts of every candidate, skipping thoughts.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			formattedContent.WriteString(part.Text)
		}
	}
	return formattedContent.String()
}

func float32Ptr(f float32) *float32 {
	return &f
}

func int32Ptr(i int32) *int32 {
	return &i
}
