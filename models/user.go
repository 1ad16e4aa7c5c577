package models

import "gorm.io/gorm"

// User represents a registered user in the system
type User struct {
	gorm.Model
	Name       string `gorm:"not null;size:100" json:"name"`
	Email      string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Username   string `gorm:"uniqueIndex;not null;size:100" json:"username"`
	ProfilePic string `gorm:"size:500" json:"profilePic"`

	Flashcards  []Flashcard  `gorm:"foreignKey:CreatorID" json:"-"`
	Collections []Collection `gorm:"foreignKey:CreatorID" json:"-"`

	// Every tag the user has attached to something, kept for personalized
	// suggestions.
	Tags []Tag `gorm:"many2many:user_tags;" json:"-"`
}
