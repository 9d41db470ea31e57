package teams

import (
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

// Link ties a record from a secondary source to a primary team name.
// Canonical is empty when the record matched nothing.
type Link struct {
	Source    string           `json:"source"`
	Record    Record           `json:"record"`
	Canonical string           `json:"canonical,omitempty"`
	Match     namematch.Result `json:"match"`
}

// Board is the current rankings with the join outcomes a reviewer still has to look at.
type Board struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Rankings  []Ranking `json:"rankings"`
	Applied   []Link    `json:"applied,omitempty"`
	Review    []Link    `json:"review,omitempty"`
	Untracked []Record  `json:"untracked,omitempty"`
}
