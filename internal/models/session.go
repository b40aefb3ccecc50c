package models

import "time"

type SessionSummary struct {
	UserID      int64  `db:"user_id"`
	DeckID      int64  `db:"deck_id"`
	SessionType string `db:"session_type"`
	Score       int    `db:"score"`
	TotalCards  int    `db:"total_cards"`
}

type SessionRecord struct {
	ID          string    `db:"session_id"`
	UserID      int64     `db:"user_id"`
	DeckID      int64     `db:"deck_id"`
	SessionType string    `db:"session_type"`
	Score       int       `db:"score"`
	TotalCards  int       `db:"total_cards"`
	CreatedAt   time.Time `db:"created_at"`
}

type SessionStats struct {
	TotalCount   int `db:"total_count"`
	StudyCount   int `db:"study_count"`
	QuizCount    int `db:"quiz_count"`
	MatchCount   int `db:"match_count"`
	CardsSeen    int `db:"cards_seen"`
	CardsCorrect int `db:"cards_correct"`
}
