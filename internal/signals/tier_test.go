package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thomas-vilte/prproof/internal/models"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		overall int
		want    models.Tier
	}{
		{0, models.TierBronze},
		{54, models.TierBronze},
		{55, models.TierSilver},
		{69, models.TierSilver},
		{70, models.TierGold},
		{84, models.TierGold},
		{85, models.TierPlatinum},
		{100, models.TierPlatinum},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, TierFor(c.overall), "overall=%d", c.overall)
	}
}

func TestTierFor_Monotonic(t *testing.T) {
	prev := TierFor(0).Rank()
	for overall := 1; overall <= 100; overall++ {
		rank := TierFor(overall).Rank()
		assert.GreaterOrEqual(t, rank, prev, "tier dropped at %d", overall)
		prev = rank
	}
}

func TestAggregate(t *testing.T) {
	t.Run("rounds the mean", func(t *testing.T) {
		overall, tier := Aggregate(90, 50, 95)

		assert.Equal(t, 78, overall)
		assert.Equal(t, models.TierGold, tier)
	})

	t.Run("rounds up from two thirds", func(t *testing.T) {
		overall, tier := Aggregate(54, 55, 55)

		assert.Equal(t, 55, overall)
		assert.Equal(t, models.TierSilver, tier)
	})

	t.Run("rounds down from one third", func(t *testing.T) {
		overall, tier := Aggregate(54, 54, 55)

		assert.Equal(t, 54, overall)
		assert.Equal(t, models.TierBronze, tier)
	})
}

func TestCompute(t *testing.T) {
	t.Run("small focused change", func(t *testing.T) {
		got := Compute(retryRecord())

		assert.Equal(t, models.ScoreSet{
			Craft:         90,
			Collaboration: 50,
			Velocity:      95,
			Kind:          models.KindFeature,
			Skills:        []string{"TypeScript"},
			Tier:          models.TierGold,
			Overall:       78,
		}, got)
	})

	t.Run("large change across many files", func(t *testing.T) {
		got := Compute(largeRecord())

		assert.Equal(t, 40, got.Craft)
		assert.Equal(t, 50, got.Collaboration)
		assert.LessOrEqual(t, got.Velocity, 45)
		assert.Equal(t, 45, got.Overall)
		assert.Contains(t, []models.Tier{models.TierBronze, models.TierSilver}, got.Tier)
	})

	t.Run("zero value record", func(t *testing.T) {
		got := Compute(models.ChangeRecord{})

		assert.Equal(t, models.KindFeature, got.Kind)
		assert.Empty(t, got.Skills)
		assert.Equal(t, 50, got.Collaboration)
	})
}
