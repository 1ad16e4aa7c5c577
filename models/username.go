package models

import "time"

// Username reserves a generated username base and counts how many numeric
// suffixes have been handed out for it.
type Username struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
