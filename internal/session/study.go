package session

import (
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/pkg/shuffle"
)

type StudyItem struct {
	Card     models.Flashcard
	Known    bool
	Revealed bool
}

// Study is the flip-card state machine. Cards are visited once each, in
// a fresh random order per session; every card is classified known or
// unknown exactly once and never revisited.
type Study struct {
	items     []StudyItem
	index     int
	known     int
	completed bool
}

func NewStudy(cards []models.Flashcard) (*Study, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	items := make([]StudyItem, len(cards))
	for i, card := range cards {
		items[i] = StudyItem{Card: card}
	}
	shuffle.Slice(items)

	return &Study{items: items}, nil
}

// Current returns the item under review, or false once the session has
// completed.
func (s *Study) Current() (StudyItem, bool) {
	if s.completed {
		return StudyItem{}, false
	}
	return s.items[s.index], true
}

// Flip toggles the meaning side of the current card. It never advances.
func (s *Study) Flip() {
	if s.completed {
		return
	}
	s.items[s.index].Revealed = !s.items[s.index].Revealed
}

// MarkKnown classifies the current card as known and advances.
func (s *Study) MarkKnown() {
	if s.completed {
		return
	}
	s.items[s.index].Known = true
	s.known++
	s.advance()
}

// MarkUnknown advances without counting the current card as known.
func (s *Study) MarkUnknown() {
	if s.completed {
		return
	}
	s.advance()
}

func (s *Study) advance() {
	s.index++
	if s.index == len(s.items) {
		s.completed = true
	}
}

func (s *Study) Progress() (current, total int) {
	return s.index, len(s.items)
}

func (s *Study) Known() int {
	return s.known
}

func (s *Study) Completed() bool {
	return s.completed
}

func (s *Study) Result() Result {
	return Result{
		Mode:     ModeStudy,
		Total:    len(s.items),
		Correct:  s.known,
		Attempts: len(s.items),
	}
}
