package resolvers

import "github.com/cardbin/cardbin-api/models"

// FieldError scopes a user-facing message to the input field it concerns.
// Mutations return these inline rather than failing the transport request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldError(field, message string) []FieldError {
	return []FieldError{{Field: field, Message: message}}
}

type CreateFlashcardResponse struct {
	Flashcard *models.Flashcard `json:"flashcard,omitempty"`
	Errors    []FieldError      `json:"errors,omitempty"`
}

type UpdateFlashcardResponse struct {
	Flashcard *models.Flashcard `json:"flashcard,omitempty"`
	Errors    []FieldError      `json:"errors,omitempty"`
}

type ForkFlashcardResponse struct {
	ForkedID string       `json:"forkedId,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

type RespondToFlashcardResponse struct {
	Done   bool         `json:"done"`
	Errors []FieldError `json:"errors,omitempty"`
}

// UserResponse deliberately omits the User object; the caller fetches their
// profile with a separate query once the token is stored.
type UserResponse struct {
	AccessToken string       `json:"accessToken,omitempty"`
	IsNewUser   bool         `json:"isNewUser"`
	Errors      []FieldError `json:"errors,omitempty"`
}

type CreateCollectionResponse struct {
	Collection *models.Collection `json:"collection,omitempty"`
	Errors     []FieldError       `json:"errors,omitempty"`
}

type PaginatedFlashcards struct {
	Flashcards []models.Flashcard `json:"flashcards"`
	HasMore    bool               `json:"hasMore"`
	Total      int64              `json:"total"`
}

type PaginatedFlashcardHistory struct {
	FlashcardHistory []models.FlashcardHistory `json:"flashcardHistory"`
	HasMore          bool                      `json:"hasMore"`
}

// Report counts are sparse: a group with no rows stays nil rather than
// being zero-filled.
type ReportByDifficulty struct {
	Easy   *int `json:"easy,omitempty"`
	Medium *int `json:"medium,omitempty"`
	Hard   *int `json:"hard,omitempty"`
}

type ReportByStatus struct {
	KnowAnswer     *int `json:"knowAnswer,omitempty"`
	DontKnowAnswer *int `json:"dontKnowAnswer,omitempty"`
	Unattempted    *int `json:"unattempted,omitempty"`
}

type FlashcardReportResponse struct {
	ByDifficulty *ReportByDifficulty `json:"byDifficulty,omitempty"`
	ByStatus     *ReportByStatus     `json:"byStatus,omitempty"`
}
