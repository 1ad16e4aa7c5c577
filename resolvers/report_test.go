package resolvers

import (
	"testing"
	"time"

	"github.com/cardbin/cardbin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWindowWeekStartsSunday(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, time.January, 10, 15, 30, 0, 0, time.UTC)
	start, end := reportWindow(now, TimespanWeek)

	assert.Equal(t, time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), end)

	// A Sunday anchors its own week.
	sunday := time.Date(2024, time.January, 7, 8, 0, 0, 0, time.UTC)
	start, end = reportWindow(sunday, TimespanWeek)
	assert.Equal(t, time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), end)
}

func TestReportWindowMonth(t *testing.T) {
	now := time.Date(2024, time.February, 20, 9, 0, 0, 0, time.UTC)
	start, end := reportWindow(now, TimespanMonth)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestFlashcardsReportByStatus(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")
	bob := createUser(t, r.DB, "bob")
	card := createCard(t, r, alice, publicCardInput("a practiced card"))

	respond := func(user models.User, status models.FlashcardStatus) {
		resp, err := r.RespondToFlashcard(authCtx(user), RespondToFlashcardInput{
			RandID: card.RandID,
			Type:   status,
		})
		require.NoError(t, err)
		require.True(t, resp.Done)
	}
	respond(bob, models.StatusKnowAnswer)
	respond(bob, models.StatusKnowAnswer)
	respond(bob, models.StatusDontKnowAnswer)
	// Another user's attempts stay out of bob's report.
	respond(alice, models.StatusKnowAnswer)

	report, err := r.FlashcardsReport(authCtx(bob), FlashcardReportInput{
		Timespan: TimespanWeek,
		GroupBy:  GroupByAnswerStatus,
	})
	require.NoError(t, err)
	require.NotNil(t, report.ByStatus)
	assert.Nil(t, report.ByDifficulty)

	require.NotNil(t, report.ByStatus.KnowAnswer)
	assert.Equal(t, 2, *report.ByStatus.KnowAnswer)
	require.NotNil(t, report.ByStatus.DontKnowAnswer)
	assert.Equal(t, 1, *report.ByStatus.DontKnowAnswer)
	// No unattempted rows, so the group stays absent.
	assert.Nil(t, report.ByStatus.Unattempted)
}

func TestFlashcardsReportByDifficulty(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")
	bob := createUser(t, r.DB, "bob")

	easy := createCard(t, r, alice, publicCardInput("an easy card"))
	hardInput := publicCardInput("a hard card")
	hardInput.Difficulty = models.DifficultyHard
	hard := createCard(t, r, alice, hardInput)

	for _, randID := range []string{easy.RandID, easy.RandID, hard.RandID} {
		resp, err := r.RespondToFlashcard(authCtx(bob), RespondToFlashcardInput{
			RandID: randID,
			Type:   models.StatusKnowAnswer,
		})
		require.NoError(t, err)
		require.True(t, resp.Done)
	}

	report, err := r.FlashcardsReport(authCtx(bob), FlashcardReportInput{
		Timespan: TimespanMonth,
		GroupBy:  GroupByDifficulty,
	})
	require.NoError(t, err)
	require.NotNil(t, report.ByDifficulty)

	require.NotNil(t, report.ByDifficulty.Easy)
	assert.Equal(t, 2, *report.ByDifficulty.Easy)
	require.NotNil(t, report.ByDifficulty.Hard)
	assert.Equal(t, 1, *report.ByDifficulty.Hard)
	assert.Nil(t, report.ByDifficulty.Medium)
}

func TestFlashcardsReportEmpty(t *testing.T) {
	r := newTestResolver(t)
	alice := createUser(t, r.DB, "alice")

	report, err := r.FlashcardsReport(authCtx(alice), FlashcardReportInput{
		Timespan: TimespanWeek,
		GroupBy:  GroupByAnswerStatus,
	})
	require.NoError(t, err)
	assert.Nil(t, report.ByStatus)
	assert.Nil(t, report.ByDifficulty)
}
