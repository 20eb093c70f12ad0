package models

// Kind is the categorical classification of a change.
type Kind string

const (
	KindFeature       Kind = "feature"
	KindBugfix        Kind = "bugfix"
	KindRefactor      Kind = "refactor"
	KindTesting       Kind = "testing"
	KindDevOps        Kind = "devops"
	KindDocumentation Kind = "documentation"
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFeature, KindBugfix, KindRefactor, KindTesting, KindDevOps, KindDocumentation}
}

func (k Kind) Valid() bool {
	for _, kk := range Kinds() {
		if k == kk {
			return true
		}
	}
	return false
}

// Tier is the ordinal quality label derived from the overall score.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Rank orders tiers: bronze=0 < silver < gold < platinum=3. Unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierBronze:
		return 0
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	default:
		return -1
	}
}

// Complexity is the size label of an analysis.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}
