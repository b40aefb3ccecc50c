package service

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/pkg/validator"
)

type DeckS struct {
	repo DeckRI
	log  *zap.Logger
}

func NewDeckService(repo DeckRI, log *zap.Logger) *DeckS {
	return &DeckS{
		repo: repo,
		log:  log,
	}
}

type DeckInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Name     string `validate:"required,max=100"`
	FolderID int64  `validate:"min=0"`
	Public   bool
}

type FlashcardInput struct {
	DeckID  int64  `validate:"required,gt=0"`
	Word    string `validate:"required,max=100"`
	Meaning string `validate:"required,max=500"`
	Example string `validate:"max=500"`
}

func (d *DeckS) CreateDeck(ctx context.Context, input DeckInput) (int64, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validator.ValidateStruct(input); err != nil {
		return 0, err
	}

	deck := models.Deck{
		UserID: input.UserID,
		Name:   input.Name,
		Public: input.Public,
	}
	if input.FolderID > 0 {
		deck.FolderID = sql.NullInt64{Int64: input.FolderID, Valid: true}
	}

	deckID, err := d.repo.CreateDeck(ctx, deck)
	if err != nil {
		d.log.Error("failed to create deck", zap.Int64("user_id", input.UserID), zap.Error(err))
		return 0, err
	}

	return deckID, nil
}

func (d *DeckS) Deck(ctx context.Context, deckID int64) (models.Deck, error) {
	return d.repo.Deck(ctx, deckID)
}

func (d *DeckS) Decks(ctx context.Context, userID int64, offset int) ([]models.Deck, int, error) {
	decks, total, err := d.repo.Decks(ctx, userID, offset)
	if err != nil {
		d.log.Error("failed to list decks", zap.Int64("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	return decks, total, nil
}

func (d *DeckS) DeleteDeck(ctx context.Context, userID, deckID int64) error {
	if err := d.repo.DeleteDeck(ctx, userID, deckID); err != nil {
		d.log.Warn("failed to delete deck", zap.Int64("user_id", userID), zap.Int64("deck_id", deckID), zap.Error(err))
		return err
	}

	return nil
}

func (d *DeckS) AddFlashcard(ctx context.Context, input FlashcardInput) (int64, error) {
	input.Word = strings.TrimSpace(input.Word)
	input.Meaning = strings.TrimSpace(input.Meaning)
	input.Example = strings.TrimSpace(input.Example)
	if err := validator.ValidateStruct(input); err != nil {
		return 0, err
	}

	cardID, err := d.repo.AddFlashcard(ctx, models.Flashcard{
		DeckID:  input.DeckID,
		Word:    input.Word,
		Meaning: input.Meaning,
		Example: input.Example,
	})
	if err != nil {
		d.log.Error("failed to add flashcard", zap.Int64("deck_id", input.DeckID), zap.Error(err))
		return 0, err
	}

	return cardID, nil
}

func (d *DeckS) DeckFlashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error) {
	return d.repo.DeckFlashcards(ctx, deckID)
}

func (d *DeckS) DeleteFlashcard(ctx context.Context, deckID, cardID int64) error {
	return d.repo.DeleteFlashcard(ctx, deckID, cardID)
}

func (d *DeckS) CreateFolder(ctx context.Context, userID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errEmptyFolderName
	}

	folderID, err := d.repo.CreateFolder(ctx, models.Folder{UserID: userID, Name: name})
	if err != nil {
		d.log.Error("failed to create folder", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}

	return folderID, nil
}

func (d *DeckS) Folders(ctx context.Context, userID int64) ([]models.Folder, error) {
	return d.repo.Folders(ctx, userID)
}
