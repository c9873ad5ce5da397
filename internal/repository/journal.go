package repository

import (
	"context"
	"fmt"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/google/uuid"
)

type JournalR struct {
	db QueryI
}

func NewJournalRepository(db QueryI) *JournalR {
	return &JournalR{
		db: db,
	}
}

func (j *JournalR) AddResult(ctx context.Context, userID int64, sessionID uuid.UUID, outcome models.ReviewOutcome) error {
	query := `
        INSERT INTO review_results (user_id, session_id, vocabulary_id, is_correct, response_ms, review_type)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := j.db.ExecContext(ctx, query,
		userID, sessionID, outcome.VocabularyID, outcome.IsCorrect, outcome.ResponseTime.Milliseconds(), outcome.ReviewType)
	if err != nil {
		return fmt.Errorf("insert review result: %w", err)
	}

	return nil
}

// AddSession stores the summary of a finished session. Storing the same
// session twice keeps the latest summary.
func (j *JournalR) AddSession(ctx context.Context, userID int64, sessionID uuid.UUID, summary models.Summary) error {
	query := `
        INSERT INTO review_sessions (session_id, user_id, correct, total, accuracy)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (session_id)
        DO UPDATE SET
            correct = EXCLUDED.correct,
            total = EXCLUDED.total,
            accuracy = EXCLUDED.accuracy,
            finished_at = NOW()
    `

	_, err := j.db.ExecContext(ctx, query, sessionID, userID, summary.Correct, summary.Total, summary.AccuracyPercent)
	if err != nil {
		return fmt.Errorf("insert review session: %w", err)
	}

	return nil
}

func (j *JournalR) JournalStats(ctx context.Context, userID int64) (models.JournalStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM review_sessions WHERE user_id = $1) AS session_count,
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 0 ELSE 1 END), 0) AS wrong_count
	FROM review_results
	WHERE user_id = $1`

	var stats models.JournalStats
	if err := j.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.JournalStats{}, fmt.Errorf("select journal stats: %w", err)
	}

	return stats, nil
}

func (j *JournalR) RecentResults(ctx context.Context, userID int64, limit int) ([]models.JournalResult, error) {
	query := `
		SELECT user_id, session_id, vocabulary_id, is_correct, response_ms, review_type, created_at
		FROM review_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	results := make([]models.JournalResult, 0, limit)
	if err := j.db.SelectContext(ctx, &results, query, userID, limit); err != nil {
		return nil, fmt.Errorf("select recent results: %w", err)
	}

	return results, nil
}
