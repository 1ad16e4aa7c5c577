package loaders

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cardbin/cardbin-api/config"
	"github.com/cardbin/cardbin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
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

func createCard(t *testing.T, db *gorm.DB, creatorID uint, randID string) models.Flashcard {
	t.Helper()
	card := models.Flashcard{
		RandID:    randID,
		Title:     "card " + randID,
		Body:      "body of card " + randID,
		IsPublic:  true,
		CreatorID: creatorID,
	}
	require.NoError(t, db.Create(&card).Error)
	return card
}

func TestBatchUsersAlignsResultsWithKeys(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	ctx := context.Background()
	l := New(db)

	// Out of storage order, with a hole in the middle.
	thunks := []func() (*models.User, error){
		l.Users.Load(ctx, bob.ID),
		l.Users.Load(ctx, 9999),
		l.Users.Load(ctx, alice.ID),
	}

	got0, err := thunks[0]()
	require.NoError(t, err)
	got1, err := thunks[1]()
	require.NoError(t, err)
	got2, err := thunks[2]()
	require.NoError(t, err)

	require.NotNil(t, got0)
	assert.Equal(t, "bob", got0.Username)
	assert.Nil(t, got1)
	require.NotNil(t, got2)
	assert.Equal(t, "alice", got2.Username)
}

func TestBatchFlashcardsResolvesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	card := createCard(t, db, alice.ID, "r1")
	require.NoError(t, db.Delete(&models.Flashcard{}, card.ID).Error)

	l := New(db)
	got, err := l.Flashcards.Load(context.Background(), card.ID)()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.RandID)
	assert.True(t, got.DeletedAt.Valid)
}

func TestBatchFlashcardTags(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	card := createCard(t, db, alice.ID, "r1")
	bare := createCard(t, db, alice.ID, "r2")

	tags := []models.Tag{{Name: "math"}, {Name: "algebra"}}
	require.NoError(t, db.Create(&tags).Error)
	require.NoError(t, db.Model(&card).Association("Tags").Append(tags))

	ctx := context.Background()
	l := New(db)
	taggedThunk := l.FlashcardTags.Load(ctx, card.ID)
	bareThunk := l.FlashcardTags.Load(ctx, bare.ID)

	tagged, err := taggedThunk()
	require.NoError(t, err)
	names := make([]string, 0, len(tagged))
	for _, tag := range tagged {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"math", "algebra"}, names)

	none, err := bareThunk()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBatchFlashcardStats(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	card := createCard(t, db, alice.ID, "r1")

	durations := []float64{1.111, 2.222}
	for _, d := range durations {
		duration := d
		require.NoError(t, db.Create(&models.FlashcardHistory{
			FlashcardID:      card.ID,
			UserID:           bob.ID,
			Status:           models.StatusKnowAnswer,
			ResponseDuration: &duration,
		}).Error)
	}

	ctx := context.Background()
	l := New(db)
	statsThunk := l.FlashcardStats.Load(ctx, UserFlashcardKey{UserID: bob.ID, FlashcardID: card.ID})
	emptyThunk := l.FlashcardStats.Load(ctx, UserFlashcardKey{UserID: alice.ID, FlashcardID: card.ID})

	stats, err := statsThunk()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.NumAttempts)
	// avg(1.111, 2.222) rounded to two decimals.
	assert.InDelta(t, 1.67, stats.AvgTime, 0.001)
	assert.False(t, stats.LastSeenOn.IsZero())

	empty, err := emptyThunk()
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestBatchIsForked(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	source := createCard(t, db, alice.ID, "r1")
	target := createCard(t, db, bob.ID, "r2")

	require.NoError(t, db.Create(&models.Fork{
		ForkedFrom: source.ID,
		ForkedTo:   target.ID,
		ForkedBy:   bob.ID,
	}).Error)

	ctx := context.Background()
	l := New(db)
	forkedThunk := l.IsForked.Load(ctx, UserFlashcardKey{UserID: bob.ID, FlashcardID: source.ID})
	notForkedThunk := l.IsForked.Load(ctx, UserFlashcardKey{UserID: alice.ID, FlashcardID: source.ID})

	forked, err := forkedThunk()
	require.NoError(t, err)
	assert.True(t, forked)

	notForked, err := notForkedThunk()
	require.NoError(t, err)
	assert.False(t, notForked)
}
