package signals

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/prproof/internal/models"
)

func retryRecord() models.ChangeRecord {
	return models.ChangeRecord{
		Title:     "Add retry logic to payment client",
		Additions: 40,
		Deletions: 5,
		Patches: []models.FilePatch{{
			Filename: "src/payments/retry.ts",
			Status:   "modified",
			Patch:    "+  try {\n+    ...\n+  } catch (e) { throw e }",
		}},
	}
}

func largeRecord() models.ChangeRecord {
	ps := make([]models.FilePatch, 30)
	for i := range ps {
		ps[i] = models.FilePatch{Filename: fmt.Sprintf("src/module_%d.go", i), Patch: "+x"}
	}
	return models.ChangeRecord{Title: "Big change", Additions: 1200, Deletions: 50, Patches: ps}
}

func TestCraftScore(t *testing.T) {
	t.Run("small change with error handling", func(t *testing.T) {
		score := CraftScore(retryRecord())

		assert.Equal(t, 90, score)
		assert.GreaterOrEqual(t, score, 85)
	})

	t.Run("large change gets the largest penalty only", func(t *testing.T) {
		assert.Equal(t, 40, CraftScore(largeRecord()))
	})

	t.Run("size brackets are mutually exclusive", func(t *testing.T) {
		cases := map[int]int{
			0:    80,
			49:   80,
			50:   75,
			149:  75,
			150:  65,
			299:  65,
			300:  60,
			500:  60,
			501:  50,
			1000: 50,
			1001: 40,
		}
		for additions, want := range cases {
			got := CraftScore(models.ChangeRecord{Additions: additions})
			assert.Equal(t, want, got, "additions=%d", additions)
		}
	})

	t.Run("refactor that removes code earns a bonus", func(t *testing.T) {
		record := models.ChangeRecord{Title: "Refactor auth module", Additions: 10, Deletions: 100}

		assert.Equal(t, 95, CraftScore(record))
	})

	t.Run("refactor that adds code earns no bonus", func(t *testing.T) {
		record := models.ChangeRecord{Title: "Refactor auth module", Additions: 100, Deletions: 10}

		assert.Equal(t, 75, CraftScore(record))
	})

	t.Run("content bonuses stack and the result is clamped", func(t *testing.T) {
		record := models.ChangeRecord{
			Title:     "Refactor user validation helpers",
			Additions: 20,
			Deletions: 80,
			Patches: []models.FilePatch{
				{Filename: "src/user.go", Patch: "-// remove try catch if x == null"},
				{Filename: "src/user_test.go", Patch: "+assert"},
			},
		}

		assert.Equal(t, 100, CraftScore(record))
	})

	t.Run("title length bounds are exclusive", func(t *testing.T) {
		base := CraftScore(models.ChangeRecord{Title: strings.Repeat("a", 20), Additions: 400})
		inside := CraftScore(models.ChangeRecord{Title: strings.Repeat("a", 21), Additions: 400})
		upper := CraftScore(models.ChangeRecord{Title: strings.Repeat("a", 80), Additions: 400})

		assert.Equal(t, 60, base)
		assert.Equal(t, 65, inside)
		assert.Equal(t, 60, upper)
	})

	t.Run("negative additions are treated as zero", func(t *testing.T) {
		assert.Equal(t, 80, CraftScore(models.ChangeRecord{Additions: -5}))
	})
}

func TestCollaborationScore(t *testing.T) {
	long := strings.Repeat("looks good, but please extract this helper. ", 2)

	tests := []struct {
		name    string
		reviews []models.Review
		want    int
	}{
		{name: "no reviews is neutral", reviews: nil, want: 50},
		{name: "empty slice is neutral", reviews: []models.Review{}, want: 50},
		{name: "one short review", reviews: []models.Review{{Body: "LGTM"}}, want: 60},
		{name: "one substantive review among two", reviews: []models.Review{{Body: "LGTM"}, {Body: long}}, want: 78},
		{name: "activity bonus is capped", reviews: []models.Review{{}, {}, {}, {}, {}}, want: 90},
		{name: "clamped to 100", reviews: []models.Review{{Body: long}, {Body: long}, {Body: long}}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollaborationScore(models.ChangeRecord{Reviews: tt.reviews}))
		})
	}

	t.Run("neutral regardless of size and title", func(t *testing.T) {
		assert.Equal(t, 50, CollaborationScore(largeRecord()))
		assert.Equal(t, 50, CollaborationScore(retryRecord()))
	})
}

func TestVelocityScore(t *testing.T) {
	t.Run("large change touching many files", func(t *testing.T) {
		assert.Equal(t, 45, VelocityScore(largeRecord()))
	})

	t.Run("size brackets", func(t *testing.T) {
		cases := map[int]int{99: 95, 100: 85, 249: 85, 250: 80, 500: 80, 501: 65}
		for additions, want := range cases {
			assert.Equal(t, want, VelocityScore(models.ChangeRecord{Additions: additions}), "additions=%d", additions)
		}
	})

	t.Run("file count brackets", func(t *testing.T) {
		cases := map[int]int{0: 80, 3: 80, 4: 75, 6: 75, 7: 70, 10: 70, 11: 60}
		for count, want := range cases {
			record := models.ChangeRecord{Additions: 300, Patches: make([]models.FilePatch, count)}
			assert.Equal(t, want, VelocityScore(record), "files=%d", count)
		}
	})
}

func TestScores_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"fix", "refactor", "test", "doc", "feature", "null", "try", "//", "if"}

	for i := 0; i < 500; i++ {
		record := models.ChangeRecord{
			Title:     strings.Repeat(words[rng.Intn(len(words))]+" ", rng.Intn(30)),
			Additions: rng.Intn(3000) - 100,
			Deletions: rng.Intn(3000) - 100,
		}
		for j := rng.Intn(15); j > 0; j-- {
			record.Patches = append(record.Patches, models.FilePatch{
				Filename: fmt.Sprintf("dir/%s_%d.go", words[rng.Intn(len(words))], j),
				Patch:    words[rng.Intn(len(words))],
			})
		}
		for j := rng.Intn(8); j > 0; j-- {
			record.Reviews = append(record.Reviews, models.Review{Body: strings.Repeat("x", rng.Intn(120))})
		}

		for name, score := range map[string]int{
			"craft":         CraftScore(record),
			"collaboration": CollaborationScore(record),
			"velocity":      VelocityScore(record),
		} {
			assert.GreaterOrEqual(t, score, 10, "%s out of range for %+v", name, record)
			assert.LessOrEqual(t, score, 100, "%s out of range for %+v", name, record)
		}
	}
}
