package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
)

const decksPerPage = 10

type DecksR struct {
	db QueryI
}

func NewDecksRepository(db QueryI) *DecksR {
	return &DecksR{db: db}
}

func (d *DecksR) CreateDeck(ctx context.Context, deck models.Deck) (int64, error) {
	query := `
		INSERT INTO decks (user_id, folder_id, name, public)
		VALUES ($1, $2, $3, $4)
		RETURNING deck_id
	`

	var deckID int64
	err := d.db.GetContext(ctx, &deckID, query, deck.UserID, deck.FolderID, deck.Name, deck.Public)
	if err != nil {
		return 0, err
	}

	return deckID, nil
}

func (d *DecksR) Deck(ctx context.Context, deckID int64) (models.Deck, error) {
	query := `
		SELECT d.deck_id, d.user_id, d.folder_id, d.name, d.public, d.created_at,
			COUNT(f.flashcard_id) AS card_count
		FROM decks d
		LEFT JOIN flashcards f ON f.deck_id = d.deck_id
		WHERE d.deck_id = $1
		GROUP BY d.deck_id
	`

	var deck models.Deck
	err := d.db.GetContext(ctx, &deck, query, deckID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Deck{}, fmt.Errorf("deck %d not found", deckID)
		}
		return models.Deck{}, fmt.Errorf("database error: %w", err)
	}

	return deck, nil
}

func (d *DecksR) Decks(ctx context.Context, userID int64, offset int) ([]models.Deck, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM decks WHERE user_id = $1`
	if err := d.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT d.deck_id, d.user_id, d.folder_id, d.name, d.public, d.created_at,
			COUNT(f.flashcard_id) AS card_count
		FROM decks d
		LEFT JOIN flashcards f ON f.deck_id = d.deck_id
		WHERE d.user_id = $1
		GROUP BY d.deck_id
		ORDER BY d.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var decks []models.Deck
	err := d.db.SelectContext(ctx, &decks, query, userID, decksPerPage, offset)
	if err != nil {
		return nil, 0, err
	}

	return decks, total, nil
}

func (d *DecksR) DeleteDeck(ctx context.Context, userID, deckID int64) error {
	query := `DELETE FROM decks WHERE deck_id = $1 AND user_id = $2`

	result, err := d.db.ExecContext(ctx, query, deckID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("deck %d not found for user %d", deckID, userID)
	}

	return nil
}

func (d *DecksR) DeckFlashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error) {
	query := `
		SELECT flashcard_id, deck_id, word, meaning, example
		FROM flashcards
		WHERE deck_id = $1
		ORDER BY flashcard_id
	`

	var cards []models.Flashcard
	err := d.db.SelectContext(ctx, &cards, query, deckID)
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (d *DecksR) AddFlashcard(ctx context.Context, card models.Flashcard) (int64, error) {
	query := `
		INSERT INTO flashcards (deck_id, word, meaning, example)
		VALUES ($1, $2, $3, $4)
		RETURNING flashcard_id
	`

	var cardID int64
	err := d.db.GetContext(ctx, &cardID, query, card.DeckID, card.Word, card.Meaning, card.Example)
	if err != nil {
		return 0, err
	}

	return cardID, nil
}

func (d *DecksR) DeleteFlashcard(ctx context.Context, deckID, cardID int64) error {
	query := `DELETE FROM flashcards WHERE flashcard_id = $1 AND deck_id = $2`

	_, err := d.db.ExecContext(ctx, query, cardID, deckID)
	return err
}

func (d *DecksR) CreateFolder(ctx context.Context, folder models.Folder) (int64, error) {
	query := `
		INSERT INTO folders (user_id, name)
		VALUES ($1, $2)
		RETURNING folder_id
	`

	var folderID int64
	err := d.db.GetContext(ctx, &folderID, query, folder.UserID, folder.Name)
	if err != nil {
		return 0, err
	}

	return folderID, nil
}

func (d *DecksR) Folders(ctx context.Context, userID int64) ([]models.Folder, error) {
	query := `
		SELECT fo.folder_id, fo.user_id, fo.name, fo.created_at,
			COUNT(d.deck_id) AS deck_count
		FROM folders fo
		LEFT JOIN decks d ON d.folder_id = fo.folder_id
		WHERE fo.user_id = $1
		GROUP BY fo.folder_id
		ORDER BY fo.name
	`

	var folders []models.Folder
	err := d.db.SelectContext(ctx, &folders, query, userID)
	if err != nil {
		return nil, err
	}

	return folders, nil
}
