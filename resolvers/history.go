package resolvers

import (
	"context"
	"time"

	"github.com/cardbin/cardbin-api/models"
)

type GetFlashcardHistoryInput struct {
	Limit  int `validate:"required,min=1"`
	Cursor *time.Time
}

// FlashcardHistoryFeed pages through the caller's attempt log, newest
// first.
func (r *Resolver) FlashcardHistoryFeed(ctx context.Context, input GetFlashcardHistoryInput) (*PaginatedFlashcardHistory, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return nil, &InvalidInputError{Errors: errs}
	}

	limit := input.Limit
	if limit > maxPageSize {
		limit = maxPageSize
	}

	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if input.Cursor != nil {
		query = query.Where("created_at < ?", *input.Cursor)
	}

	var history []models.FlashcardHistory
	if err := query.Order("created_at DESC").Limit(limit + 1).Find(&history).Error; err != nil {
		return nil, err
	}

	hasMore := len(history) == limit+1
	if hasMore {
		history = history[:limit]
	}
	return &PaginatedFlashcardHistory{FlashcardHistory: history, HasMore: hasMore}, nil
}
