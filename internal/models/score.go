package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Score represents a participant's score on the leaderboard. A zero ID
// means the score has not been persisted yet; the database assigns the
// identifier on insert and it never changes afterwards.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s" json:"-"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Points    int       `bun:"points,notnull" json:"points"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// IsNew reports whether the score has been assigned an identifier yet
func (s *Score) IsNew() bool {
	return s.ID == 0
}
