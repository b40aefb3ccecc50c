package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
)

type SessionsR struct {
	db QueryI
}

func NewSessionsRepository(db QueryI) *SessionsR {
	return &SessionsR{db: db}
}

func (s *SessionsR) AddSession(ctx context.Context, summary models.SessionSummary) (models.SessionRecord, error) {
	query := `
		INSERT INTO sessions (session_id, user_id, deck_id, session_type, score, total_cards)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING session_id, user_id, deck_id, session_type, score, total_cards, created_at
	`

	var record models.SessionRecord
	err := s.db.GetContext(ctx, &record, query,
		uuid.NewString(), summary.UserID, summary.DeckID, summary.SessionType, summary.Score, summary.TotalCards)
	if err != nil {
		return models.SessionRecord{}, err
	}

	return record, nil
}

func (s *SessionsR) SessionStats(ctx context.Context, userID int64) (models.SessionStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN session_type = 'study' THEN 1 ELSE 0 END), 0) AS study_count,
		COALESCE(SUM(CASE WHEN session_type = 'quiz' THEN 1 ELSE 0 END), 0) AS quiz_count,
		COALESCE(SUM(CASE WHEN session_type = 'match' THEN 1 ELSE 0 END), 0) AS match_count,
		COALESCE(SUM(total_cards), 0) AS cards_seen,
		COALESCE(SUM(score), 0) AS cards_correct
	FROM sessions
	WHERE user_id = $1`

	var stats models.SessionStats
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.SessionStats{}, err
	}

	return stats, nil
}
