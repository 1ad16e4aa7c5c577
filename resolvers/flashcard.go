package resolvers

import (
	"context"
	"errors"
	"time"

	"github.com/cardbin/cardbin-api/middleware"
	"github.com/cardbin/cardbin-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const maxPageSize = 50

type CreateFlashcardInput struct {
	Title      string            `validate:"required,min=5,max=100"`
	Body       string            `validate:"required,min=10"`
	Tags       []string          `validate:"required,min=1,max=20,dive,min=1,max=20"`
	Difficulty models.Difficulty `validate:"required,oneof=easy medium hard"`
	IsPublic   bool
}

// UpdateFlashcardInput uses pointer fields as the presence wrapper: a nil
// field was absent from the request and stays untouched.
type UpdateFlashcardInput struct {
	RandID     string             `validate:"required"`
	Title      *string            `validate:"omitempty,min=5,max=100"`
	Body       *string            `validate:"omitempty,min=10"`
	Tags       []string           `validate:"omitempty,max=20,dive,min=1,max=20"`
	IsPublic   *bool
	Difficulty *models.Difficulty `validate:"omitempty,oneof=easy medium hard"`
}

type GetFlashcardsInput struct {
	Limit    int `validate:"required,min=1"`
	Cursor   *time.Time
	Tags     []string
	Username *string
}

type RespondToFlashcardInput struct {
	RandID   string                 `validate:"required"`
	Type     models.FlashcardStatus `validate:"required,oneof=unattempted knowAnswer dontKnowAnswer"`
	Duration *float64               `validate:"omitempty,min=0"`
}

func (r *Resolver) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (*CreateFlashcardResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return &CreateFlashcardResponse{Errors: errs}, nil
	}

	resp := &CreateFlashcardResponse{}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := upsertTags(tx, userID, input.Tags)
		if err != nil {
			return err
		}

		randID, err := gonanoid.New()
		if err != nil {
			return err
		}
		card := models.Flashcard{
			RandID:     randID,
			Title:      input.Title,
			Body:       input.Body,
			IsPublic:   input.IsPublic,
			Difficulty: input.Difficulty,
			CreatorID:  userID,
			Tags:       tags,
		}
		if err := tx.Create(&card).Error; err != nil {
			return err
		}
		resp.Flashcard = &card
		return nil
	})
	if err != nil {
		report(err)
		return &CreateFlashcardResponse{
			Errors: fieldError("flashcard", "Cannot save flashcard. Please try again later."),
		}, nil
	}
	return resp, nil
}

func (r *Resolver) UpdateFlashcard(ctx context.Context, input UpdateFlashcardInput) (*UpdateFlashcardResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return &UpdateFlashcardResponse{Errors: errs}, nil
	}

	resp := &UpdateFlashcardResponse{}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Scoped to the caller: "not found" and "not yours" are the same
		// failure from the outside.
		var card models.Flashcard
		if err := tx.Preload("Tags").Where("rand_id = ? AND creator_id = ?", input.RandID, userID).First(&card).Error; err != nil {
			return err
		}

		if input.IsPublic != nil {
			if *input.IsPublic && card.IsFork {
				resp.Errors = fieldError("isPublic", "Forked flashcards cannot be made public.")
				return nil
			}
			card.IsPublic = *input.IsPublic
		}
		if input.Difficulty != nil {
			card.Difficulty = *input.Difficulty
		}
		if input.Title != nil {
			card.Title = *input.Title
		}
		if input.Body != nil {
			card.Body = *input.Body
		}
		if input.Tags != nil {
			if len(input.Tags) == 0 {
				resp.Errors = fieldError("tags", "Tags cannot be empty!")
				return nil
			}
			tags, err := upsertTags(tx, userID, input.Tags)
			if err != nil {
				return err
			}
			// Full replacement of the prior set, not a merge.
			if err := tx.Model(&card).Association("Tags").Replace(tags); err != nil {
				return err
			}
			card.Tags = tags
		}

		if err := tx.Save(&card).Error; err != nil {
			return err
		}
		resp.Flashcard = &card
		return nil
	})
	if err != nil {
		report(err)
		return &UpdateFlashcardResponse{
			Errors: fieldError("", "Cannot update the flashcard. Please try again later."),
		}, nil
	}
	return resp, nil
}

// DeleteFlashcard soft-deletes the caller's flashcard and removes any fork
// bookkeeping pointing at it. Deleting a card that does not exist succeeds.
func (r *Resolver) DeleteFlashcard(ctx context.Context, randID string) (bool, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return false, err
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.Flashcard
		if err := tx.Where("rand_id = ?", randID).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("rand_id = ? AND creator_id = ?", randID, userID).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Where("forked_to = ? AND forked_by = ?", card.ID, userID).Delete(&models.Fork{}).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) ForkFlashcard(ctx context.Context, fromRandID string) (*ForkFlashcardResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	// Preconditions are checked before the transaction so violations never
	// mutate state.
	var source models.Flashcard
	err = r.DB.WithContext(ctx).Preload("Tags").Where("rand_id = ?", fromRandID).First(&source).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !source.IsPublic) {
		return &ForkFlashcardResponse{Errors: fieldError("from", "That flashcard cannot be forked.")}, nil
	}
	if err != nil {
		return nil, err
	}
	if source.CreatorID == userID {
		return &ForkFlashcardResponse{Errors: fieldError("from", "You cannot fork your own flashcard!")}, nil
	}

	var existing models.Fork
	err = r.DB.WithContext(ctx).Where("forked_from = ? AND forked_by = ?", source.ID, userID).First(&existing).Error
	if err == nil {
		return &ForkFlashcardResponse{Errors: fieldError("from", "You have already forked this flashcard.")}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	resp := &ForkFlashcardResponse{}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		randID, err := gonanoid.New()
		if err != nil {
			return err
		}
		target := models.Flashcard{
			RandID:     randID,
			Title:      source.Title,
			Body:       source.Body,
			Difficulty: source.Difficulty,
			IsPublic:   false,
			IsFork:     true,
			CreatorID:  userID,
			Tags:       source.Tags,
		}
		if err := tx.Create(&target).Error; err != nil {
			return err
		}

		fork := models.Fork{ForkedFrom: source.ID, ForkedTo: target.ID, ForkedBy: userID}
		if err := tx.Create(&fork).Error; err != nil {
			return err
		}

		if len(source.Tags) > 0 {
			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				return err
			}
			if err := tx.Model(&user).Association("Tags").Append(source.Tags); err != nil {
				return err
			}
		}

		resp.ForkedID = randID
		return nil
	})
	if err != nil {
		report(err)
		return &ForkFlashcardResponse{
			Errors: fieldError("from", "The flashcard cannot be forked. Please try again later."),
		}, nil
	}
	return resp, nil
}

func (r *Resolver) RespondToFlashcard(ctx context.Context, input RespondToFlashcardInput) (*RespondToFlashcardResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return &RespondToFlashcardResponse{Errors: errs}, nil
	}

	var card models.Flashcard
	err = r.DB.WithContext(ctx).Where("rand_id = ?", input.RandID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && card.CreatorID != userID && !card.IsPublic) {
		return &RespondToFlashcardResponse{
			Errors: fieldError("id", "This flashcard is no longer available."),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	history := models.FlashcardHistory{
		FlashcardID: card.ID,
		UserID:      userID,
		Status:      input.Type,
	}
	// Duration only means something for answered attempts.
	if input.Type == models.StatusKnowAnswer || input.Type == models.StatusDontKnowAnswer {
		duration := 0.0
		if input.Duration != nil {
			duration = *input.Duration
		}
		history.ResponseDuration = &duration
	}

	if err := r.DB.WithContext(ctx).Create(&history).Error; err != nil {
		report(err)
		return &RespondToFlashcardResponse{Done: false}, nil
	}
	return &RespondToFlashcardResponse{Done: true}, nil
}

// Flashcard loads a single card by its public id, applying the visibility
// rules: public cards load for anyone, private ones only for their creator.
func (r *Resolver) Flashcard(ctx context.Context, randID string) (*models.Flashcard, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	var card models.Flashcard
	err = r.DB.WithContext(ctx).Preload("Tags").Where("rand_id = ?", randID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !card.IsPublic && card.CreatorID != userID {
		return nil, nil
	}
	return &card, nil
}

// FlashcardsFeed pages through non-fork cards that are public or the
// caller's own, newest first.
func (r *Resolver) FlashcardsFeed(ctx context.Context, input GetFlashcardsInput) (*PaginatedFlashcards, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return nil, &InvalidInputError{Errors: errs}
	}

	query := r.DB.WithContext(ctx).Model(&models.Flashcard{}).
		Where(r.DB.Where("creator_id = ?", userID).Or("is_public = ?", true)).
		Where("is_fork = ?", false)
	query = withTagFilter(r.DB.WithContext(ctx), query, input.Tags)

	return paginateFlashcards(query, input.Limit, input.Cursor)
}

// UserFlashcards pages through one user's cards; viewers other than the
// owner only see the public ones.
func (r *Resolver) UserFlashcards(ctx context.Context, input GetFlashcardsInput) (*PaginatedFlashcards, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return nil, &InvalidInputError{Errors: errs}
	}

	creatorID := userID
	if input.Username != nil && *input.Username != "" {
		var owner models.User
		if err := r.DB.WithContext(ctx).Where("username = ?", *input.Username).First(&owner).Error; err != nil {
			return nil, err
		}
		creatorID = owner.ID
	}

	query := r.DB.WithContext(ctx).Model(&models.Flashcard{}).Where("creator_id = ?", creatorID)
	if creatorID != userID {
		query = query.Where("is_public = ?", true)
	}
	query = withTagFilter(r.DB.WithContext(ctx), query, input.Tags)

	return paginateFlashcards(query, input.Limit, input.Cursor)
}

// withTagFilter keeps cards carrying at least one of the named tags. A
// subquery rather than a join: a card matching several filter tags must
// still appear once, in the page and in the total.
func withTagFilter(db, query *gorm.DB, tags []string) *gorm.DB {
	if len(tags) == 0 {
		return query
	}
	tagged := db.Table("flashcard_tags").
		Select("flashcard_tags.flashcard_id").
		Joins("JOIN tags ON tags.id = flashcard_tags.tag_id").
		Where("tags.name IN ?", tags)
	return query.Where("flashcards.id IN (?)", tagged)
}

func paginateFlashcards(query *gorm.DB, limit int, cursor *time.Time) (*PaginatedFlashcards, error) {
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if cursor != nil {
		query = query.Where("flashcards.created_at < ?", *cursor)
	}

	// Fetch one extra row to learn whether another page exists.
	var cards []models.Flashcard
	if err := query.Order("flashcards.created_at DESC").Limit(limit + 1).Find(&cards).Error; err != nil {
		return nil, err
	}

	hasMore := len(cards) == limit+1
	if hasMore {
		cards = cards[:limit]
	}
	return &PaginatedFlashcards{Flashcards: cards, HasMore: hasMore, Total: total}, nil
}

// FlashcardVisibility derives the status field reported for a card.
func (r *Resolver) FlashcardVisibility(card *models.Flashcard) models.Visibility {
	if !card.IsPublic {
		return models.VisibilityPrivate
	}
	if card.DeletedAt.Valid {
		return models.VisibilityDeleted
	}
	return models.VisibilityPublic
}

// FlashcardTitle redacts the title to an empty string when the card is
// deleted or the viewer may not see it. A value substitution, not an error.
func (r *Resolver) FlashcardTitle(ctx context.Context, card *models.Flashcard) string {
	if !flashcardContentVisible(ctx, card) {
		return ""
	}
	return card.Title
}

func (r *Resolver) FlashcardBody(ctx context.Context, card *models.Flashcard) string {
	if !flashcardContentVisible(ctx, card) {
		return ""
	}
	return card.Body
}

func flashcardContentVisible(ctx context.Context, card *models.Flashcard) bool {
	if card.DeletedAt.Valid {
		return false
	}
	if card.IsPublic {
		return true
	}
	userID, ok := middleware.UserID(ctx)
	return ok && card.CreatorID == userID
}
