package models

import "time"

// Tag names are lowercased at write time and never deleted once created.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:30" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Flashcards  []Flashcard  `gorm:"many2many:flashcard_tags;" json:"-"`
	Collections []Collection `gorm:"many2many:collection_tags;" json:"-"`
	Users       []User       `gorm:"many2many:user_tags;" json:"-"`
}
