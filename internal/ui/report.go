package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/thomas-vilte/prproof/internal/i18n"
	"github.com/thomas-vilte/prproof/internal/models"
)

const barWidth = 20

var headerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderReport prints the full scorecard of a change.
func RenderReport(w io.Writer, report models.Report, t *i18n.Translations) {
	header := report.Title
	if report.Number > 0 {
		header = fmt.Sprintf("#%d %s", report.Number, report.Title)
	}
	_, _ = fmt.Fprintf(w, "\n%s\n\n", headerStyle.Render(header+"\n"+tierBadge(report.Scores.Tier)))

	if report.Repo != "" {
		PrintKeyValue(w, t.GetMessage("label.repo", 0, nil), report.Repo)
	}
	PrintKeyValue(w, t.GetMessage("label.change", 0, nil), changeSize(report.Additions, report.Deletions))
	PrintKeyValue(w, t.GetMessage("label.files", 0, nil), fmt.Sprintf("%d", report.FilesChanged))
	if report.MergedAt != nil {
		PrintKeyValue(w, t.GetMessage("label.merged", 0, nil), report.MergedAt.Format("2006-01-02"))
	}

	RenderScores(w, report.Scores, t)
	RenderAnalysis(w, report.Analysis, report.AnalysisSource, t)
}

// RenderScores prints the three signals, the overall score and the tier.
func RenderScores(w io.Writer, scores models.ScoreSet, t *i18n.Translations) {
	_, _ = fmt.Fprintf(w, "\n%s\n", Accent.Sprint(t.GetMessage("ui.scores_title", 0, nil)))

	printScoreLine(w, t.GetMessage("label.craft", 0, nil), scores.Craft)
	printScoreLine(w, t.GetMessage("label.collaboration", 0, nil), scores.Collaboration)
	printScoreLine(w, t.GetMessage("label.velocity", 0, nil), scores.Velocity)
	printScoreLine(w, t.GetMessage("label.overall", 0, nil), scores.Overall)

	_, _ = fmt.Fprintln(w)
	PrintKeyValue(w, t.GetMessage("label.tier", 0, nil), tierBadge(scores.Tier))
	PrintKeyValue(w, t.GetMessage("label.kind", 0, nil), string(scores.Kind))
	PrintKeyValue(w, t.GetMessage("label.skills", 0, nil), skillList(scores.Skills, t))
}

// RenderAnalysis prints an analysis result and where it came from.
func RenderAnalysis(w io.Writer, analysis models.AnalysisResult, source models.AnalysisSource, t *i18n.Translations) {
	_, _ = fmt.Fprintf(w, "\n%s\n", Accent.Sprint(t.GetMessage("ui.analysis_title", 0, nil)))

	PrintKeyValue(w, t.GetMessage("label.summary", 0, nil), analysis.Summary)
	PrintKeyValue(w, t.GetMessage("label.impact", 0, nil), analysis.ImpactStatement)
	PrintKeyValue(w, t.GetMessage("label.complexity", 0, nil), string(analysis.Complexity))
	PrintKeyValue(w, t.GetMessage("label.category", 0, nil), string(analysis.Category))
	PrintKeyValue(w, t.GetMessage("label.skills", 0, nil), skillList(analysis.Skills, t))
	if source == "" {
		source = analysis.Source
	}
	PrintKeyValue(w, t.GetMessage("label.source", 0, nil), sourceLabel(source, t))
}

// RenderPRList prints a closed pull request listing.
func RenderPRList(w io.Writer, repo string, prs []models.PullRequestRef, t *i18n.Translations) {
	PrintSectionBanner(w, t.GetMessage("ui.prs_title", 0, map[string]interface{}{"Repo": repo}))
	if len(prs) == 0 {
		PrintInfo(w, t.GetMessage("ui.no_prs", 0, nil))
		return
	}
	numColor := color.New(color.FgCyan, color.Bold)
	for _, pr := range prs {
		_, _ = fmt.Fprintf(w, "   %s  %s\n", numColor.Sprintf("#%-5d", pr.Number), pr.Title)
	}
}

// RenderRepoList prints the repositories of the authenticated user.
func RenderRepoList(w io.Writer, repos []models.RepositoryRef, t *i18n.Translations) {
	PrintSectionBanner(w, t.GetMessage("ui.repos_title", 0, nil))
	if len(repos) == 0 {
		PrintInfo(w, t.GetMessage("ui.no_repos", 0, nil))
		return
	}
	for _, r := range repos {
		_, _ = fmt.Fprintf(w, "   %s %s\n", r.FullName, Dim.Sprintf("(%s)", r.DefaultBranch))
	}
}

func printScoreLine(w io.Writer, label string, value int) {
	_, _ = fmt.Fprintf(w, "   %-14s %s %s\n", label, scoreColor(value).Sprintf("%3d", value), scoreBar(value))
}

func scoreBar(value int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * barWidth / 100
	return scoreColor(value).Sprint(strings.Repeat("█", filled)) + Dim.Sprint(strings.Repeat("░", barWidth-filled))
}

func scoreColor(value int) *color.Color {
	switch {
	case value >= 70:
		return Success
	case value >= 55:
		return Warning
	default:
		return Error
	}
}

func tierBadge(tier models.Tier) string {
	switch tier {
	case models.TierPlatinum:
		return "💎 " + color.New(color.FgHiCyan, color.Bold).Sprint(tier)
	case models.TierGold:
		return "🥇 " + color.New(color.FgYellow, color.Bold).Sprint(tier)
	case models.TierSilver:
		return "🥈 " + color.New(color.FgWhite, color.Bold).Sprint(tier)
	default:
		return "🥉 " + color.New(color.FgRed).Sprint(tier)
	}
}

func skillList(skills []string, t *i18n.Translations) string {
	if len(skills) == 0 {
		return t.GetMessage("ui.no_skills", 0, nil)
	}
	return strings.Join(skills, ", ")
}

func sourceLabel(source models.AnalysisSource, t *i18n.Translations) string {
	if source == models.SourceModel {
		return t.GetMessage("ui.source_model", 0, nil)
	}
	return t.GetMessage("ui.source_fallback", 0, nil)
}

func changeSize(additions, deletions int) string {
	return Success.Sprintf("+%d", additions) + " / " + Error.Sprintf("-%d", deletions)
}
