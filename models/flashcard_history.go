package models

import "time"

type FlashcardStatus string

const (
	StatusUnattempted    FlashcardStatus = "unattempted"
	StatusKnowAnswer     FlashcardStatus = "knowAnswer"
	StatusDontKnowAnswer FlashcardStatus = "dontKnowAnswer"
)

// FlashcardHistory is an append-only log of attempts, one row per attempt.
// ResponseDuration stays NULL for unattempted rows so a skipped card is
// never mistaken for a zero-second answer.
type FlashcardHistory struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	FlashcardID      uint            `gorm:"not null;index;index:idx_history_card_user" json:"flashcardId"`
	UserID           uint            `gorm:"not null;index;index:idx_history_card_user" json:"userId"`
	Status           FlashcardStatus `gorm:"not null;default:unattempted;size:20" json:"status"`
	ResponseDuration *float64        `json:"responseDuration,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
