package resolvers

import (
	"context"
	"errors"

	"github.com/cardbin/cardbin-api/auth"
	"github.com/cardbin/cardbin-api/middleware"
	"github.com/cardbin/cardbin-api/models"
	"github.com/cardbin/cardbin-api/utils"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name *string `validate:"omitempty,min=2"`
}

// Me returns the caller's own profile, or nil when the request is
// anonymous. Not an auth-gated operation.
func (r *Resolver) Me(ctx context.Context) (*models.User, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, nil
	}

	var user models.User
	err := r.DB.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the external id token, creates the user on first sight of
// the email, and issues a session token. The user object itself is never
// part of this response.
func (r *Resolver) Login(ctx context.Context, idToken, name string) (*UserResponse, error) {
	const errMessage = "Cannot login! Please try again with a different email."

	claims, err := r.Identity.Verify(ctx, idToken)
	if err != nil || claims.Email == "" {
		if err != nil {
			report(err)
		}
		return &UserResponse{Errors: fieldError("idToken", errMessage)}, nil
	}

	var user models.User
	err = r.DB.WithContext(ctx).Where("email = ?", claims.Email).First(&user).Error
	isNewUser := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNewUser {
		report(err)
		return &UserResponse{Errors: fieldError("email", errMessage)}, nil
	}

	if isNewUser {
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			username, err := utils.ReserveUsername(tx, name)
			if err != nil {
				return err
			}
			user = models.User{
				Name:       name,
				Email:      claims.Email,
				Username:   username,
				ProfilePic: claims.Picture,
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			report(err)
			return &UserResponse{Errors: fieldError("email", errMessage)}, nil
		}
	}

	accessToken, err := auth.CreateToken(user.ID)
	if err != nil {
		report(err)
		return &UserResponse{Errors: fieldError("idToken", errMessage)}, nil
	}
	return &UserResponse{AccessToken: accessToken, IsNewUser: isNewUser}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, input UpdateUserInput) (*models.User, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if errs := validateInput(&input); errs != nil {
		return nil, nil
	}

	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		report(err)
		return nil, nil
	}
	if input.Name != nil && user.Name != *input.Name {
		user.Name = *input.Name
		if err := r.DB.WithContext(ctx).Save(&user).Error; err != nil {
			report(err)
			return nil, nil
		}
	}
	return &user, nil
}

// UserEmail redacts the address unless the caller is looking at their own
// record.
func (r *Resolver) UserEmail(ctx context.Context, user *models.User) string {
	if userID, ok := middleware.UserID(ctx); ok && userID == user.ID {
		return user.Email
	}
	return ""
}

// NumFlashcards counts a user's cards; other viewers only see the public
// count.
// TODO: batch this through a loader; profile lists resolve it once per
// creator.
func (r *Resolver) NumFlashcards(ctx context.Context, user *models.User) (int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.Flashcard{}).Where("creator_id = ?", user.ID)
	if userID, ok := middleware.UserID(ctx); !ok || userID != user.ID {
		query = query.Where("is_public = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
