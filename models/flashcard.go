package models

import "gorm.io/gorm"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Visibility is the derived status of a flashcard as seen by a viewer.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityDeleted Visibility = "deleted"
)

// Flashcard represents an individual flashcard. Deletion is a soft delete;
// the row stays behind so attempt history keeps resolving.
type Flashcard struct {
	gorm.Model
	RandID     string     `gorm:"uniqueIndex;not null;size:21" json:"randId"`
	Title      string     `gorm:"not null;size:200" json:"title"`
	Body       string     `gorm:"not null" json:"body"`
	IsPublic   bool       `gorm:"not null;default:false" json:"isPublic"`
	IsFork     bool       `gorm:"not null;default:false" json:"isFork"`
	Difficulty Difficulty `gorm:"not null;default:easy;size:10" json:"difficulty"`

	CreatorID uint `gorm:"not null;index" json:"creatorId"`
	Creator   User `gorm:"foreignKey:CreatorID" json:"-"`

	Tags        []Tag        `gorm:"many2many:flashcard_tags;" json:"tags,omitempty"`
	Collections []Collection `gorm:"many2many:collection_flashcards;" json:"-"`
}
