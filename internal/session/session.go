// Package session implements the learning session engine: pure state
// machines for the three drill modes over a deck's flashcards. The
// engine never talks to storage or Telegram; callers feed it user
// decisions and read snapshots back.
package session

import (
	"math"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
)

type Mode int

const (
	ModeStudy Mode = iota
	ModeQuiz
	ModeMatch
)

func (m Mode) String() string {
	switch m {
	case ModeStudy:
		return "study"
	case ModeQuiz:
		return "quiz"
	case ModeMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Result is the reduced outcome of a completed session.
type Result struct {
	Mode     Mode
	Total    int
	Correct  int
	Attempts int
}

// Summary maps a result onto the persistence record. Attempts and the
// percentage never cross this boundary.
func (r Result) Summary(userID, deckID int64) models.SessionSummary {
	return models.SessionSummary{
		UserID:      userID,
		DeckID:      deckID,
		SessionType: r.Mode.String(),
		Score:       r.Correct,
		TotalCards:  r.Total,
	}
}

// Percent is for display only.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
}
