package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/session"
)

// SessionS drives the learning session engine: it loads the deck's
// flashcards, hands them to the mode generator, and persists the
// reduced summary once the state machine reports completion.
type SessionS struct {
	decks    DeckRI
	sessions SessionRI
	log      *zap.Logger
}

func NewSessionService(decks DeckRI, sessions SessionRI, log *zap.Logger) *SessionS {
	return &SessionS{
		decks:    decks,
		sessions: sessions,
		log:      log,
	}
}

func (s *SessionS) StartStudy(ctx context.Context, deckID int64) (*session.Study, error) {
	cards, err := s.decks.DeckFlashcards(ctx, deckID)
	if err != nil {
		s.log.Error("failed to load flashcards", zap.Int64("deck_id", deckID), zap.Error(err))
		return nil, fmt.Errorf("failed to load flashcards for deck %d: %w", deckID, err)
	}

	study, err := session.NewStudy(cards)
	if err != nil {
		return nil, err
	}

	return study, nil
}

func (s *SessionS) StartQuiz(ctx context.Context, deckID int64) (*session.Quiz, error) {
	cards, err := s.decks.DeckFlashcards(ctx, deckID)
	if err != nil {
		s.log.Error("failed to load flashcards", zap.Int64("deck_id", deckID), zap.Error(err))
		return nil, fmt.Errorf("failed to load flashcards for deck %d: %w", deckID, err)
	}

	quiz, err := session.NewQuiz(cards)
	if err != nil {
		return nil, err
	}

	return quiz, nil
}

func (s *SessionS) StartMatch(ctx context.Context, deckID int64) (*session.Match, error) {
	cards, err := s.decks.DeckFlashcards(ctx, deckID)
	if err != nil {
		s.log.Error("failed to load flashcards", zap.Int64("deck_id", deckID), zap.Error(err))
		return nil, fmt.Errorf("failed to load flashcards for deck %d: %w", deckID, err)
	}

	match, err := session.NewMatch(cards)
	if err != nil {
		return nil, err
	}

	return match, nil
}

// Complete persists the result of a finished session. Persistence is
// best-effort: a missing user skips the save, a storage failure is
// logged and swallowed. The caller's navigation never depends on the
// outcome.
func (s *SessionS) Complete(ctx context.Context, res session.Result, userID, deckID int64) {
	if userID == 0 {
		s.log.Info("skipping session persistence without a user",
			zap.Int64("deck_id", deckID), zap.String("mode", res.Mode.String()))
		return
	}

	summary := res.Summary(userID, deckID)
	if _, err := s.sessions.AddSession(ctx, summary); err != nil {
		s.log.Warn("failed to save session result",
			zap.Int64("user_id", userID),
			zap.Int64("deck_id", deckID),
			zap.String("mode", res.Mode.String()),
			zap.Error(err))
	}
}

func (s *SessionS) SessionStats(ctx context.Context, userID int64) (string, error) {
	stats, err := s.sessions.SessionStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get session stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	return sessionStatsFormat(stats), nil
}

func sessionStatsFormat(stats models.SessionStats) string {
	var sb strings.Builder

	sb.WriteString("📊 *Sessions completed*: **")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("**\n\n")

	sb.WriteString("📖 *Study*: **")
	sb.WriteString(strconv.Itoa(stats.StudyCount))
	sb.WriteString("**  🧠 *Quiz*: **")
	sb.WriteString(strconv.Itoa(stats.QuizCount))
	sb.WriteString("**  🧩 *Match*: **")
	sb.WriteString(strconv.Itoa(stats.MatchCount))
	sb.WriteString("**\n\n")

	sb.WriteString("🃏 *Cards seen*: **")
	sb.WriteString(strconv.Itoa(stats.CardsSeen))
	sb.WriteString("**\n\n")

	sb.WriteString("✅ *Cards correct*: **")
	sb.WriteString(strconv.Itoa(stats.CardsCorrect))
	sb.WriteString("**")

	return sb.String()
}
