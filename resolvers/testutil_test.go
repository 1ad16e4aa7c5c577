package resolvers

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cardbin/cardbin-api/auth"
	"github.com/cardbin/cardbin-api/config"
	"github.com/cardbin/cardbin-api/middleware"
	"github.com/cardbin/cardbin-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubIdentity stands in for the external identity provider.
type stubIdentity struct {
	claims *auth.IdentityClaims
	err    error
}

func (s stubIdentity) Verify(_ context.Context, _ string) (*auth.IdentityClaims, error) {
	return s.claims, s.err
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return New(db, stubIdentity{})
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Name:     username,
		Email:    username + "@example.com",
		Username: username,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authCtx(user models.User) context.Context {
	return middleware.WithUserID(context.Background(), user.ID)
}

func createCard(t *testing.T, r *Resolver, user models.User, input CreateFlashcardInput) models.Flashcard {
	t.Helper()
	resp, err := r.CreateFlashcard(authCtx(user), input)
	require.NoError(t, err)
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Flashcard)
	return *resp.Flashcard
}

func publicCardInput(title string) CreateFlashcardInput {
	return CreateFlashcardInput{
		Title:      title,
		Body:       "a body with enough characters",
		Tags:       []string{"general"},
		Difficulty: models.DifficultyEasy,
		IsPublic:   true,
	}
}
