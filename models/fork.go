package models

import "time"

// Fork records that a user copied someone else's public flashcard. The
// composite unique index is the backstop against concurrent double forks;
// the resolver's existence pre-check only produces the friendly error.
type Fork struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ForkedFrom uint      `gorm:"not null;index;uniqueIndex:idx_fork_once" json:"forkedFrom"`
	ForkedTo   uint      `gorm:"not null;uniqueIndex" json:"forkedTo"`
	ForkedBy   uint      `gorm:"not null;index;uniqueIndex:idx_fork_once" json:"forkedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
