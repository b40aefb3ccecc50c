package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
)

type DeckRI interface {
	CreateDeck(ctx context.Context, deck models.Deck) (int64, error)
	Deck(ctx context.Context, deckID int64) (models.Deck, error)
	Decks(ctx context.Context, userID int64, offset int) ([]models.Deck, int, error)
	DeleteDeck(ctx context.Context, userID, deckID int64) error
	DeckFlashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error)
	AddFlashcard(ctx context.Context, card models.Flashcard) (int64, error)
	DeleteFlashcard(ctx context.Context, deckID, cardID int64) error
	CreateFolder(ctx context.Context, folder models.Folder) (int64, error)
	Folders(ctx context.Context, userID int64) ([]models.Folder, error)
}

type SessionRI interface {
	AddSession(ctx context.Context, summary models.SessionSummary) (models.SessionRecord, error)
	SessionStats(ctx context.Context, userID int64) (models.SessionStats, error)
}

type RepositoryI interface {
	DeckRI
	SessionRI
}

type Service struct {
	*DeckS
	*SessionS
}

func InitServices(repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		DeckS:    NewDeckService(repo, log),
		SessionS: NewSessionService(repo, repo, log),
	}
}
