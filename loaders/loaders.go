// Package loaders provides per-request batch loaders that coalesce the
// individual lookups made while resolving nested fields into single queries,
// with results realigned to the order the keys were requested in.
package loaders

import (
	"context"
	"math"
	"time"

	"github.com/cardbin/cardbin-api/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

// UserFlashcardKey identifies one user's relationship to one flashcard.
type UserFlashcardKey struct {
	UserID      uint
	FlashcardID uint
}

// FlashcardStats aggregates a user's attempt history for one flashcard.
type FlashcardStats struct {
	AvgTime     float64   `json:"avgTime"`
	NumAttempts int       `json:"numAttempts"`
	LastSeenOn  time.Time `json:"lastSeenOn"`
}

// Loaders holds one request's batch loaders. Instances must not be shared
// across requests.
type Loaders struct {
	Users          *dataloader.Loader[uint, *models.User]
	Flashcards     *dataloader.Loader[uint, *models.Flashcard]
	FlashcardTags  *dataloader.Loader[uint, []models.Tag]
	FlashcardStats *dataloader.Loader[UserFlashcardKey, *FlashcardStats]
	IsForked       *dataloader.Loader[UserFlashcardKey, bool]
}

func New(db *gorm.DB) *Loaders {
	return &Loaders{
		Users:          dataloader.NewBatchedLoader(batchUsers(db)),
		Flashcards:     dataloader.NewBatchedLoader(batchFlashcards(db)),
		FlashcardTags:  dataloader.NewBatchedLoader(batchFlashcardTags(db)),
		FlashcardStats: dataloader.NewBatchedLoader(batchFlashcardStats(db)),
		IsForked:       dataloader.NewBatchedLoader(batchIsForked(db)),
	}
}

type contextKey struct{}

func ToContext(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

func batchUsers(db *gorm.DB) dataloader.BatchFunc[uint, *models.User] {
	return func(ctx context.Context, keys []uint) []*dataloader.Result[*models.User] {
		var users []models.User
		if err := db.WithContext(ctx).Where("id IN ?", keys).Find(&users).Error; err != nil {
			return errorResults[uint, *models.User](keys, err)
		}

		byID := make(map[uint]*models.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*models.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*models.User]{Data: byID[key]}
		}
		return results
	}
}

// batchFlashcards loads unscoped so history rows can still resolve their
// soft-deleted cards; field resolvers redact the content.
func batchFlashcards(db *gorm.DB) dataloader.BatchFunc[uint, *models.Flashcard] {
	return func(ctx context.Context, keys []uint) []*dataloader.Result[*models.Flashcard] {
		var cards []models.Flashcard
		if err := db.WithContext(ctx).Unscoped().Where("id IN ?", keys).Find(&cards).Error; err != nil {
			return errorResults[uint, *models.Flashcard](keys, err)
		}

		byID := make(map[uint]*models.Flashcard, len(cards))
		for i := range cards {
			byID[cards[i].ID] = &cards[i]
		}

		results := make([]*dataloader.Result[*models.Flashcard], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*models.Flashcard]{Data: byID[key]}
		}
		return results
	}
}

func batchFlashcardTags(db *gorm.DB) dataloader.BatchFunc[uint, []models.Tag] {
	return func(ctx context.Context, keys []uint) []*dataloader.Result[[]models.Tag] {
		var rows []struct {
			FlashcardID uint
			ID          uint
			Name        string
			CreatedAt   time.Time
			UpdatedAt   time.Time
		}
		err := db.WithContext(ctx).
			Table("tags").
			Select("flashcard_tags.flashcard_id AS flashcard_id, tags.id, tags.name, tags.created_at, tags.updated_at").
			Joins("JOIN flashcard_tags ON flashcard_tags.tag_id = tags.id").
			Where("flashcard_tags.flashcard_id IN ?", keys).
			Scan(&rows).Error
		if err != nil {
			return errorResults[uint, []models.Tag](keys, err)
		}

		byCard := make(map[uint][]models.Tag, len(keys))
		for _, row := range rows {
			byCard[row.FlashcardID] = append(byCard[row.FlashcardID], models.Tag{
				ID:        row.ID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			})
		}

		results := make([]*dataloader.Result[[]models.Tag], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[[]models.Tag]{Data: byCard[key]}
		}
		return results
	}
}

func batchFlashcardStats(db *gorm.DB) dataloader.BatchFunc[UserFlashcardKey, *FlashcardStats] {
	return func(ctx context.Context, keys []UserFlashcardKey) []*dataloader.Result[*FlashcardStats] {
		var rows []struct {
			UserID      uint
			FlashcardID uint
			AvgTime     *float64
			NumAttempts int
			LastSeenOn  time.Time
		}
		err := db.WithContext(ctx).
			Model(&models.FlashcardHistory{}).
			Select("user_id, flashcard_id, avg(response_duration) AS avg_time, count(*) AS num_attempts, max(created_at) AS last_seen_on").
			Where(pairCondition(db, keys)).
			Group("user_id, flashcard_id").
			Scan(&rows).Error
		if err != nil {
			return errorResults[UserFlashcardKey, *FlashcardStats](keys, err)
		}

		byKey := make(map[UserFlashcardKey]*FlashcardStats, len(rows))
		for _, row := range rows {
			stats := &FlashcardStats{
				NumAttempts: row.NumAttempts,
				LastSeenOn:  row.LastSeenOn,
			}
			if row.AvgTime != nil {
				stats.AvgTime = math.Round(*row.AvgTime*100) / 100
			}
			byKey[UserFlashcardKey{UserID: row.UserID, FlashcardID: row.FlashcardID}] = stats
		}

		results := make([]*dataloader.Result[*FlashcardStats], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*FlashcardStats]{Data: byKey[key]}
		}
		return results
	}
}

func batchIsForked(db *gorm.DB) dataloader.BatchFunc[UserFlashcardKey, bool] {
	return func(ctx context.Context, keys []UserFlashcardKey) []*dataloader.Result[bool] {
		condition := db.Where("forked_by = ? AND forked_from = ?", keys[0].UserID, keys[0].FlashcardID)
		for _, key := range keys[1:] {
			condition = condition.Or("forked_by = ? AND forked_from = ?", key.UserID, key.FlashcardID)
		}

		var forks []models.Fork
		if err := db.WithContext(ctx).Where(condition).Find(&forks).Error; err != nil {
			return errorResults[UserFlashcardKey, bool](keys, err)
		}

		forked := make(map[UserFlashcardKey]bool, len(forks))
		for _, fork := range forks {
			forked[UserFlashcardKey{UserID: fork.ForkedBy, FlashcardID: fork.ForkedFrom}] = true
		}

		results := make([]*dataloader.Result[bool], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[bool]{Data: forked[key]}
		}
		return results
	}
}

// pairCondition builds an OR-of-pairs filter so the aggregate only touches
// the exact (user, flashcard) combinations that were requested.
func pairCondition(db *gorm.DB, keys []UserFlashcardKey) *gorm.DB {
	condition := db.Where("user_id = ? AND flashcard_id = ?", keys[0].UserID, keys[0].FlashcardID)
	for _, key := range keys[1:] {
		condition = condition.Or("user_id = ? AND flashcard_id = ?", key.UserID, key.FlashcardID)
	}
	return condition
}

func errorResults[K comparable, V any](keys []K, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
