package session

import "errors"

var (
	// ErrEmptyDeck is returned when a study session is requested for a
	// deck with no flashcards.
	ErrEmptyDeck = errors.New("deck has no flashcards")

	// ErrInsufficientCards is returned when quiz or match is requested
	// for a deck with fewer than MinCards flashcards. Quiz needs three
	// distractors besides the correct meaning, so this is a hard gate.
	ErrInsufficientCards = errors.New("deck has too few flashcards")
)

// MinCards is the smallest deck quiz and match can run on.
const MinCards = 4
