package resolvers

import (
	"context"
	"regexp"

	"github.com/cardbin/cardbin-api/models"
)

var wordTerm = regexp.MustCompile(`^\w+$`)

// MyTopTags suggests tags from the set the caller has used before.
func (r *Resolver) MyTopTags(ctx context.Context) ([]models.Tag, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	err = r.DB.WithContext(ctx).
		Joins("JOIN user_tags ON user_tags.tag_id = tags.id").
		Where("user_tags.user_id = ?", userID).
		Limit(10).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *Resolver) TopTags(ctx context.Context) ([]models.Tag, error) {
	if _, err := r.requireUser(ctx); err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := r.DB.WithContext(ctx).Limit(10).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// SearchTags matches tag names by substring. Terms with anything beyond
// word characters return nothing rather than reaching the database.
func (r *Resolver) SearchTags(ctx context.Context, term string) ([]models.Tag, error) {
	if _, err := r.requireUser(ctx); err != nil {
		return nil, err
	}
	if !wordTerm.MatchString(term) {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	err := r.DB.WithContext(ctx).
		Where("name LIKE ?", "%"+term+"%").
		Limit(10).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
