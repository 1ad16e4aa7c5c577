package resolvers

import (
	"testing"
	"time"

	"github.com/cardbin/cardbin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, r *Resolver, userID, cardID uint, n int, from time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		entry := models.FlashcardHistory{
			FlashcardID: cardID,
			UserID:      userID,
			Status:      models.StatusKnowAnswer,
			CreatedAt:   from.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, r.DB.Create(&entry).Error)
	}
}

func TestFlashcardHistoryFeedPagination(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")
	card := createCard(t, r, alice, publicCardInput("a practiced card"))

	seedHistory(t, r, alice.ID, card.ID, 3, time.Now().Add(-time.Hour))

	page, err := r.FlashcardHistoryFeed(authCtx(alice), GetFlashcardHistoryInput{Limit: 2})
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.FlashcardHistory, 2)
	assert.True(t, page.FlashcardHistory[0].CreatedAt.After(page.FlashcardHistory[1].CreatedAt))

	cursor := page.FlashcardHistory[1].CreatedAt
	rest, err := r.FlashcardHistoryFeed(authCtx(alice), GetFlashcardHistoryInput{Limit: 2, Cursor: &cursor})
	require.NoError(t, err)
	assert.False(t, rest.HasMore)
	assert.Len(t, rest.FlashcardHistory, 1)
}

func TestFlashcardHistoryFeedInvalidLimit(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	_, err := r.FlashcardHistoryFeed(authCtx(alice), GetFlashcardHistoryInput{Limit: 0})
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.NotEmpty(t, invalid.Errors)
	assert.Equal(t, "limit", invalid.Errors[0].Field)
}

func TestFlashcardHistoryFeedScopedToCaller(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")
	bob := createUser(t, r.DB, "bob")
	card := createCard(t, r, alice, publicCardInput("a practiced card"))

	seedHistory(t, r, alice.ID, card.ID, 2, time.Now().Add(-time.Hour))
	seedHistory(t, r, bob.ID, card.ID, 1, time.Now().Add(-time.Hour))

	page, err := r.FlashcardHistoryFeed(authCtx(bob), GetFlashcardHistoryInput{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.FlashcardHistory, 1)
}
