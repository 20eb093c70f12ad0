package signals

import (
	"strings"

	"github.com/thomas-vilte/prproof/internal/models"
)

// MaxSkills caps the number of labels returned by DetectSkills.
const MaxSkills = 8

// skillRule adds Label when Match reports true for a lower-cased
// filename/diff pair.
type skillRule struct {
	Label string
	Match func(file, code string) bool
}

func hasSuffix(suffixes ...string) func(file, code string) bool {
	return func(file, _ string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(file, s) {
				return true
			}
		}
		return false
	}
}

func fileContains(markers ...string) func(file, code string) bool {
	return func(file, _ string) bool {
		return containsAny(file, markers)
	}
}

func codeContains(markers ...string) func(file, code string) bool {
	return func(_, code string) bool {
		return containsAny(code, markers)
	}
}

func either(a, b func(file, code string) bool) func(file, code string) bool {
	return func(file, code string) bool {
		return a(file, code) || b(file, code)
	}
}

// skillRules is evaluated in order for every patch; the order is part of the
// output contract since labels keep discovery order.
var skillRules = []skillRule{
	// languages
	{"TypeScript", hasSuffix(".ts", ".tsx")},
	{"JavaScript", hasSuffix(".js", ".jsx")},
	{"Java", hasSuffix(".java")},
	{"Python", hasSuffix(".py")},
	{"Go", hasSuffix(".go")},
	{"Rust", hasSuffix(".rs")},
	{"Ruby", hasSuffix(".rb")},
	{"C#", hasSuffix(".cs")},
	{"C/C++", hasSuffix(".cpp", ".c")},

	// frameworks and tools
	{"React", either(codeContains("react"), fileContains(".jsx", ".tsx"))},
	{"Next.js", either(codeContains("next"), fileContains("next.config"))},
	{"Node.js", codeContains("express", "fastify")},
	{"Docker", fileContains("dockerfile")},
	{"CI/CD", fileContains(".yml", ".yaml")},
	{"SQL", codeContains("sql", "query")},
	{"MongoDB", codeContains("mongodb", "mongoose")},
	{"Prisma", codeContains("prisma")},

	// practices
	{"Testing", fileContains("test", "spec")},
	{"Async Programming", codeContains("async", "await", "promise")},
	{"API Integration", codeContains("api", "fetch", "axios")},
}

// DetectSkills scans filenames and diffs for language, framework and practice
// signatures. Labels keep discovery order, are never duplicated and are
// capped at MaxSkills.
func DetectSkills(record models.ChangeRecord) []string {
	skills := make([]string, 0, MaxSkills)
	seen := make(map[string]bool)

	for _, patch := range record.Patches {
		file := strings.ToLower(patch.Filename)
		code := strings.ToLower(patch.Patch)

		for _, rule := range skillRules {
			if seen[rule.Label] || !rule.Match(file, code) {
				continue
			}
			seen[rule.Label] = true
			skills = append(skills, rule.Label)
		}
	}

	if len(skills) > MaxSkills {
		skills = skills[:MaxSkills]
	}
	return skills
}
