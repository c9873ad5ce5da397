package models

import (
	"encoding/json"
	"time"
)

const ReviewTypeNormal = "normal"

type ReviewOutcome struct {
	VocabularyID int64         `validate:"required,gt=0"`
	IsCorrect    bool
	ResponseTime time.Duration `validate:"min=0"`
	ReviewType   string        `validate:"required"`
}

// MarshalJSON writes the catalog wire shape; response time travels as whole
// milliseconds and is omitted when unknown.
func (o ReviewOutcome) MarshalJSON() ([]byte, error) {
	type wire struct {
		VocabularyID int64  `json:"vocabulary_id"`
		IsCorrect    bool   `json:"is_correct"`
		ResponseTime *int64 `json:"response_time,omitempty"`
		ReviewType   string `json:"review_type"`
	}
	w := wire{
		VocabularyID: o.VocabularyID,
		IsCorrect:    o.IsCorrect,
		ReviewType:   o.ReviewType,
	}
	if o.ResponseTime > 0 {
		ms := o.ResponseTime.Milliseconds()
		w.ResponseTime = &ms
	}
	return json.Marshal(w)
}

type ReviewLog struct {
	ID           int64     `json:"id"`
	VocabularyID int64     `json:"vocabulary_id"`
	IsCorrect    bool      `json:"is_correct"`
	ResponseTime *int64    `json:"response_time,omitempty"`
	ReviewType   string    `json:"review_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewStats struct {
	TotalReviews      int     `json:"total_reviews"`
	CorrectReviews    int     `json:"correct_reviews"`
	AccuracyRate      float64 `json:"accuracy_rate"`
	TodayReviews      int     `json:"today_reviews"`
	DueVocabularies   int     `json:"due_vocabularies"`
	HardVocabularies  int     `json:"hard_vocabularies"`
	TotalVocabularies int     `json:"total_vocabularies"`
}

type JournalResult struct {
	UserID       int64     `db:"user_id"`
	SessionID    string    `db:"session_id"`
	VocabularyID int64     `db:"vocabulary_id"`
	IsCorrect    bool      `db:"is_correct"`
	ResponseMS   int64     `db:"response_ms"`
	ReviewType   string    `db:"review_type"`
	CreatedAt    time.Time `db:"created_at"`
}

type JournalStats struct {
	SessionCount int `db:"session_count"`
	TotalCount   int `db:"total_count"`
	RightCount   int `db:"right_count"`
	WrongCount   int `db:"wrong_count"`
}
