package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cardbin/cardbin-api/models"
	"gorm.io/gorm"
)

var nonWord = regexp.MustCompile(`\W+`)

// ReserveUsername derives a unique username from a display name by stripping
// non-word characters and lowercasing, appending a numeric suffix when the
// base is already taken. The reservation row counts handed-out suffixes; the
// unique constraints on usernames and users are the backstop when two logins
// race on the same base.
func ReserveUsername(tx *gorm.DB, displayName string) (string, error) {
	base := strings.ToLower(nonWord.ReplaceAllString(displayName, ""))
	if base == "" {
		base = "user"
	}

	var reserved models.Username
	err := tx.Where("username = ?", base).First(&reserved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		reserved = models.Username{Username: base, Count: 1}
		if err := tx.Create(&reserved).Error; err != nil {
			return "", err
		}
		return base, nil
	}
	if err != nil {
		return "", err
	}

	reserved.Count++
	if err := tx.Save(&reserved).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", base, reserved.Count-1), nil
}
