package signals

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/thomas-vilte/prproof/internal/models"
)

const (
	minScore = 10
	maxScore = 100

	craftBase         = 60
	collaborationBase = 50
	velocityBase      = 70
)

// bracket applies Bonus when the measured value falls on the bracket's side
// of Threshold.
type bracket struct {
	Threshold int
	Above     bool // true: value > Threshold, false: value < Threshold
	Bonus     int
}

func (b bracket) matches(v int) bool {
	if b.Above {
		return v > b.Threshold
	}
	return v < b.Threshold
}

// ladder is an ordered bracket table; only the first matching bracket
// applies.
type ladder []bracket

func (l ladder) bonus(v int) int {
	for _, b := range l {
		if b.matches(v) {
			return b.Bonus
		}
	}
	return 0
}

// upperBound builds a "value <= Threshold" bracket as "value < Threshold+1".
func upperBound(threshold, bonus int) bracket {
	return bracket{Threshold: threshold + 1, Bonus: bonus}
}

var (
	// Penalties are listed from the largest threshold down so that a
	// 1200-line change lands in the -20 bracket, not the -10 one.
	craftSizeLadder = ladder{
		{Threshold: 1000, Above: true, Bonus: -20},
		{Threshold: 500, Above: true, Bonus: -10},
		{Threshold: 50, Bonus: 20},
		{Threshold: 150, Bonus: 15},
		{Threshold: 300, Bonus: 5},
	}

	velocitySizeLadder = ladder{
		{Threshold: 100, Bonus: 15},
		{Threshold: 250, Bonus: 5},
		{Threshold: 500, Above: true, Bonus: -15},
	}

	velocityFileLadder = ladder{
		upperBound(3, 10),
		upperBound(6, 5),
		{Threshold: 10, Above: true, Bonus: -10},
	}
)

// clamp rounds and bounds a raw score to [10,100].
func clamp(score float64) int {
	return int(math.Max(minScore, math.Min(maxScore, math.Round(score))))
}

// CraftScore rewards focused, tested, defensive changes.
func CraftScore(record models.ChangeRecord) int {
	record = record.Normalize()
	score := craftBase

	score += craftSizeLadder.bonus(record.Additions)

	if Classify(record) == models.KindRefactor && record.Deletions > record.Additions {
		score += 15
	}

	if len(record.Patches) > 0 {
		code := joinedCode(record.Patches)

		if anyOf(lowerFilenames(record.Patches), func(f string) bool { return strings.Contains(f, "test") }) {
			score += 10
		}
		if containsAny(code, []string{"try", "catch", "throw"}) {
			score += 5
		}
		if strings.Contains(code, "if") && containsAny(code, []string{"null", "undefined", "empty"}) {
			score += 5
		}
		if containsAny(code, []string{"/**", "//"}) {
			score += 5
		}
	}

	if n := utf8.RuneCountInString(record.Title); n > 20 && n < 80 {
		score += 5
	}

	return clamp(float64(score))
}

// CollaborationScore rewards review activity. A record without reviews is
// neutral (exactly 50).
func CollaborationScore(record models.ChangeRecord) int {
	if len(record.Reviews) == 0 {
		return collaborationBase
	}

	score := collaborationBase
	score += min(len(record.Reviews)*10, 30)

	for _, r := range record.Reviews {
		if utf8.RuneCountInString(r.Body) > 50 {
			score += 8
		}
	}

	if len(record.Reviews) >= 3 {
		score += 10
	}

	return clamp(float64(score))
}

// VelocityScore rewards small changes touching few files.
func VelocityScore(record models.ChangeRecord) int {
	record = record.Normalize()
	score := velocityBase

	score += velocitySizeLadder.bonus(record.Additions)
	score += velocityFileLadder.bonus(record.FileCount())

	return clamp(float64(score))
}

func joinedCode(patches []models.FilePatch) string {
	parts := make([]string, len(patches))
	for i, p := range patches {
		parts[i] = p.Patch
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}
