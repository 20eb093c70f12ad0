package signals

import (
	"math"

	"github.com/thomas-vilte/prproof/internal/models"
)

// tierThresholds are inclusive lower bounds, highest first.
var tierThresholds = []struct {
	Min  int
	Tier models.Tier
}{
	{Min: 85, Tier: models.TierPlatinum},
	{Min: 70, Tier: models.TierGold},
	{Min: 55, Tier: models.TierSilver},
}

// Aggregate averages the three scores and maps the rounded mean to a tier.
func Aggregate(craft, collaboration, velocity int) (int, models.Tier) {
	overall := int(math.Round(float64(craft+collaboration+velocity) / 3))
	return overall, TierFor(overall)
}

// TierFor is a monotonic step function of the overall score.
func TierFor(overall int) models.Tier {
	for _, t := range tierThresholds {
		if overall >= t.Min {
			return t.Tier
		}
	}
	return models.TierBronze
}
