package resolvers

import (
	"context"

	"github.com/cardbin/cardbin-api/models"
	"gorm.io/gorm"
)

type CreateCollectionInput struct {
	Name        string   `validate:"required,min=1,max=100"`
	Description *string  `validate:"omitempty,max=500"`
	Flashcards  []uint   `validate:"required,min=1"`
	Tags        []string `validate:"required,min=1,max=20,dive,min=1,max=20"`
	IsPublic    bool
}

// CreateCollection groups existing flashcards under a name. A public
// collection must consist entirely of public flashcards.
func (r *Resolver) CreateCollection(ctx context.Context, input CreateCollectionInput) (*CreateCollectionResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return &CreateCollectionResponse{Errors: errs}, nil
	}

	resp := &CreateCollectionResponse{}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cards []models.Flashcard
		if err := tx.Where("id IN ?", input.Flashcards).Find(&cards).Error; err != nil {
			return err
		}

		if input.IsPublic {
			for _, card := range cards {
				if !card.IsPublic {
					resp.Errors = fieldError("flashcards", "Public collection must have all public flashcards!")
					return nil
				}
			}
		}

		tags, err := upsertTags(tx, userID, input.Tags)
		if err != nil {
			return err
		}

		collection := models.Collection{
			Name:       input.Name,
			IsPublic:   input.IsPublic,
			CreatorID:  userID,
			Flashcards: cards,
			Tags:       tags,
		}
		if input.Description != nil {
			collection.Description = *input.Description
		}
		if err := tx.Create(&collection).Error; err != nil {
			return err
		}
		resp.Collection = &collection
		return nil
	})
	if err != nil {
		report(err)
		return &CreateCollectionResponse{
			Errors: fieldError("collection", "Cannot save your collection. Please try again later."),
		}, nil
	}
	return resp, nil
}
