package resolvers

import (
	"context"
	"time"

	"github.com/cardbin/cardbin-api/models"
)

type ReportTimespan string

const (
	TimespanWeek  ReportTimespan = "week"
	TimespanMonth ReportTimespan = "month"
)

type ReportGroupBy string

const (
	GroupByDifficulty   ReportGroupBy = "difficulty"
	GroupByAnswerStatus ReportGroupBy = "status"
)

type FlashcardReportInput struct {
	Timespan ReportTimespan `validate:"required,oneof=week month"`
	GroupBy  ReportGroupBy  `validate:"required,oneof=difficulty status"`
}

// FlashcardsReport aggregates the caller's attempt history over the current
// week or month. Groups with no attempts are omitted, not zero-filled.
func (r *Resolver) FlashcardsReport(ctx context.Context, input FlashcardReportInput) (*FlashcardReportResponse, error) {
	userID, err := r.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	resp := &FlashcardReportResponse{}
	if errs := validateInput(&input); errs != nil {
		return resp, nil
	}

	start, end := reportWindow(time.Now(), input.Timespan)
	query := r.DB.WithContext(ctx).
		Model(&models.FlashcardHistory{}).
		Joins("LEFT JOIN flashcards ON flashcard_histories.flashcard_id = flashcards.id").
		Where("flashcard_histories.user_id = ?", userID).
		Where("flashcard_histories.created_at > ?", start).
		Where("flashcard_histories.created_at < ?", end)

	switch input.GroupBy {
	case GroupByDifficulty:
		var rows []struct {
			Difficulty models.Difficulty
			Count      int
		}
		err := query.
			Select("flashcards.difficulty AS difficulty, count(*) AS count").
			Group("flashcards.difficulty").
			Scan(&rows).Error
		if err != nil {
			report(err)
			return resp, nil
		}
		if len(rows) == 0 {
			return resp, nil
		}

		byDifficulty := &ReportByDifficulty{}
		for _, row := range rows {
			count := row.Count
			switch row.Difficulty {
			case models.DifficultyEasy:
				byDifficulty.Easy = &count
			case models.DifficultyMedium:
				byDifficulty.Medium = &count
			case models.DifficultyHard:
				byDifficulty.Hard = &count
			}
		}
		resp.ByDifficulty = byDifficulty

	case GroupByAnswerStatus:
		var rows []struct {
			Status models.FlashcardStatus
			Count  int
		}
		err := query.
			Select("flashcard_histories.status AS status, count(*) AS count").
			Group("flashcard_histories.status").
			Scan(&rows).Error
		if err != nil {
			report(err)
			return resp, nil
		}
		if len(rows) == 0 {
			return resp, nil
		}

		byStatus := &ReportByStatus{}
		for _, row := range rows {
			count := row.Count
			switch row.Status {
			case models.StatusKnowAnswer:
				byStatus.KnowAnswer = &count
			case models.StatusDontKnowAnswer:
				byStatus.DontKnowAnswer = &count
			case models.StatusUnattempted:
				byStatus.Unattempted = &count
			}
		}
		resp.ByStatus = byStatus
	}

	return resp, nil
}

// reportWindow bounds the current calendar week (starting Sunday) or month.
func reportWindow(now time.Time, span ReportTimespan) (time.Time, time.Time) {
	if span == TimespanMonth {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := day.AddDate(0, 0, -int(now.Weekday()))
	return start, start.AddDate(0, 0, 7)
}
