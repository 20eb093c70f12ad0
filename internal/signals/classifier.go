package signals

import (
	"strings"

	"github.com/thomas-vilte/prproof/internal/models"
)

var (
	testMarkers = []string{"test", "spec"}
	ciMarkers   = []string{".yml", ".yaml", "dockerfile"}
	docMarkers  = []string{"readme", ".md", "doc"}
)

// titleRule maps title keywords to a kind. Rules are evaluated in order.
type titleRule struct {
	keywords []string
	kind     models.Kind
}

var titleRules = []titleRule{
	{keywords: []string{"fix", "bug", "patch"}, kind: models.KindBugfix},
	{keywords: []string{"refactor", "chore", "cleanup", "style"}, kind: models.KindRefactor},
	{keywords: []string{"test"}, kind: models.KindTesting},
	{keywords: []string{"doc"}, kind: models.KindDocumentation},
}

// Classify maps a record to its Kind. File paths are stronger evidence than
// title wording, so they are checked first.
func Classify(record models.ChangeRecord) models.Kind {
	files := lowerFilenames(record.Patches)

	if len(files) > 0 && all(files, func(f string) bool { return containsAny(f, testMarkers) }) {
		return models.KindTesting
	}
	if anyOf(files, func(f string) bool { return containsAny(f, ciMarkers) }) {
		return models.KindDevOps
	}
	if len(files) <= 2 && anyOf(files, func(f string) bool { return containsAny(f, docMarkers) }) {
		return models.KindDocumentation
	}

	title := strings.ToLower(record.Title)
	for _, rule := range titleRules {
		if containsAny(title, rule.keywords) {
			return rule.kind
		}
	}

	return models.KindFeature
}

func lowerFilenames(patches []models.FilePatch) []string {
	files := make([]string, 0, len(patches))
	for _, p := range patches {
		files = append(files, strings.ToLower(p.Filename))
	}
	return files
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func all(items []string, pred func(string) bool) bool {
	for _, it := range items {
		if !pred(it) {
			return false
		}
	}
	return true
}

func anyOf(items []string, pred func(string) bool) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}
