package models

import "gorm.io/gorm"

// Collection groups flashcards under a name. A public collection may only
// contain public flashcards.
type Collection struct {
	gorm.Model
	Name        string `gorm:"not null;size:100" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	IsPublic    bool   `gorm:"not null;default:false" json:"isPublic"`

	CreatorID uint `gorm:"not null;index" json:"creatorId"`
	Creator   User `gorm:"foreignKey:CreatorID" json:"-"`

	Flashcards []Flashcard `gorm:"many2many:collection_flashcards;" json:"flashcards,omitempty"`
	Tags       []Tag       `gorm:"many2many:collection_tags;" json:"tags,omitempty"`
}
