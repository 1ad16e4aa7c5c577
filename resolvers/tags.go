package resolvers

import (
	"strings"

	"github.com/cardbin/cardbin-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertTags runs the shared tag sub-protocol inside tx: lowercase and
// dedupe the requested names, insert any that are missing (idempotent by
// unique name), reload the full rows, and union them into the acting user's
// tag set. Callers associate the returned tags with their own entity inside
// the same transaction.
func upsertTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	rows := make([]models.Tag, len(normalized))
	for i, name := range normalized {
		rows[i] = models.Tag{Name: name}
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}

	// Reload: conflicting rows above keep their zero IDs, so fetch the full
	// set of requested tags, pre-existing ones included.
	var tags []models.Tag
	if err := tx.Where("name IN ?", normalized).Find(&tags).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&user).Association("Tags").Append(tags); err != nil {
		return nil, err
	}

	return tags, nil
}
