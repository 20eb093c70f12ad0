package signals

import "github.com/thomas-vilte/prproof/internal/models"

// Compute derives the full ScoreSet of a record.
func Compute(record models.ChangeRecord) models.ScoreSet {
	record = record.Normalize()

	craft := CraftScore(record)
	collaboration := CollaborationScore(record)
	velocity := VelocityScore(record)
	overall, tier := Aggregate(craft, collaboration, velocity)

	return models.ScoreSet{
		Craft:         craft,
		Collaboration: collaboration,
		Velocity:      velocity,
		Kind:          Classify(record),
		Skills:        DetectSkills(record),
		Tier:          tier,
		Overall:       overall,
	}
}
