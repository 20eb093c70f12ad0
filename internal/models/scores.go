package models

// ScoreSet holds the signals derived from a ChangeRecord. It is computed on
// demand and never cached.
type ScoreSet struct {
	Craft         int      `json:"craft"`
	Collaboration int      `json:"collaboration"`
	Velocity      int      `json:"velocity"`
	Kind          Kind     `json:"kind"`
	Skills        []string `json:"skills"`
	Tier          Tier     `json:"tier"`
	Overall       int      `json:"overall"`
}
