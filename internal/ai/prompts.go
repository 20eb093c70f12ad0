package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/thomas-vilte/prproof/internal/models"
)

const (
	DefaultMaxPatchFiles   = 5
	DefaultPatchCharBudget = 3000
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	Title     string
	Additions int
	Deletions int
	FileCount int
	Diffs     string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const (
	analysisPromptTemplateEN = `# Task
Analyze this GitHub Pull Request and describe it for a developer portfolio.

# Pull Request
Title: {{.Title}}
Changes: +{{.Additions}} -{{.Deletions}} lines across {{.FileCount}} file(s)

# Code changes
{{.Diffs}}
# Rules
1. Only describe what the diff shows. Do not invent features.
2. Keep the summary to 2-3 sentences and the impact statement to one sentence.
3. List between 3 and 5 concrete technical skills.
4. Answer with raw JSON only. No markdown fences, no text before or after.

# Output format
{
  "summary": "2-3 sentence technical summary",
  "impactStatement": "one sentence on the value this change brings",
  "skills": ["skill1", "skill2", "skill3"],
  "complexity": "low|medium|high",
  "category": "feature|bugfix|refactor|testing|devops|documentation"
}`

	analysisPromptTemplateES = `# Tarea
Analizá este Pull Request de GitHub y describilo para un portfolio de desarrollador.

# Pull Request
Título: {{.Title}}
Cambios: +{{.Additions}} -{{.Deletions}} líneas en {{.FileCount}} archivo(s)

# Cambios de código
{{.Diffs}}
# Reglas
1. Describí solo lo que muestra el diff. No inventes funcionalidades.
2. El resumen en 2-3 oraciones y el impacto en una sola oración.
3. Listá entre 3 y 5 habilidades técnicas concretas.
4. Respondé solo con JSON crudo. Sin bloques markdown ni texto antes o después.
5. Los valores de "complexity" y "category" van en inglés, tal como aparecen abajo.

# Formato de salida
{
  "summary": "resumen técnico de 2-3 oraciones",
  "impactStatement": "una oración sobre el valor que aporta el cambio",
  "skills": ["habilidad1", "habilidad2", "habilidad3"],
  "complexity": "low|medium|high",
  "category": "feature|bugfix|refactor|testing|devops|documentation"
}`
)

// GetAnalysisPromptTemplate returns the analysis prompt for lang, defaulting to English.
func GetAnalysisPromptTemplate(lang string) string {
	switch lang {
	case "es":
		return analysisPromptTemplateES
	default:
		return analysisPromptTemplateEN
	}
}

// BuildAnalysisPrompt renders the analysis prompt with at most maxFiles
// patches, each cut to budget runes.
func BuildAnalysisPrompt(record models.ChangeRecord, lang string, maxFiles, budget int) (string, error) {
	data := PromptData{
		Title:     record.Title,
		Additions: record.Additions,
		Deletions: record.Deletions,
		FileCount: record.FileCount(),
		Diffs:     formatDiffs(record.Patches, maxFiles, budget),
	}
	return RenderPrompt("analysis", GetAnalysisPromptTemplate(lang), data)
}

func formatDiffs(patches []models.FilePatch, maxFiles, budget int) string {
	if len(patches) > maxFiles {
		patches = patches[:maxFiles]
	}

	var sb strings.Builder
	for _, p := range patches {
		fmt.Fprintf(&sb, "File: %s\n```diff\n%s\n```\n\n", p.Filename, TruncateRunes(p.Patch, budget))
	}
	return sb.String()
}

// TruncateRunes cuts s to at most n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
