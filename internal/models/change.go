package models

import "time"

type (
	// ChangeRecord is one reviewed code change: its metadata, per-file diffs
	// and discussion. It is treated as immutable once built.
	ChangeRecord struct {
		Title     string      `json:"title" yaml:"title"`
		Additions int         `json:"additions" yaml:"additions"`
		Deletions int         `json:"deletions" yaml:"deletions"`
		Patches   []FilePatch `json:"patches" yaml:"patches"`
		Reviews   []Review    `json:"reviews" yaml:"reviews"`

		// Boundary metadata, only used for rendering.
		Number       int        `json:"number,omitempty" yaml:"number,omitempty"`
		Repo         string     `json:"repo,omitempty" yaml:"repo,omitempty"`
		ChangedFiles int        `json:"changed_files,omitempty" yaml:"changed_files,omitempty"`
		MergedAt     *time.Time `json:"merged_at,omitempty" yaml:"merged_at,omitempty"`
	}

	// FilePatch is the textual diff of a single file.
	FilePatch struct {
		Filename string `json:"filename" yaml:"filename"`
		Status   string `json:"status" yaml:"status"`
		Patch    string `json:"patch" yaml:"patch"`
	}

	// Review is a review body or a discussion comment.
	Review struct {
		Body string `json:"body" yaml:"body"`
	}
)

// Normalize returns a copy with negative counts set to zero and nil
// sequences replaced by empty ones.
func (r ChangeRecord) Normalize() ChangeRecord {
	out := r
	if out.Additions < 0 {
		out.Additions = 0
	}
	if out.Deletions < 0 {
		out.Deletions = 0
	}
	if out.Patches == nil {
		out.Patches = []FilePatch{}
	}
	if out.Reviews == nil {
		out.Reviews = []Review{}
	}
	return out
}

// FileCount is the number of files with a textual patch.
func (r ChangeRecord) FileCount() int {
	return len(r.Patches)
}
