package session

import (
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/pkg/shuffle"
)

// MaxBoardCards caps the match board for playability.
const MaxBoardCards = 8

type PairKind int

const (
	KindWord PairKind = iota
	KindMeaning
)

type Pair struct {
	ID      int
	Kind    PairKind
	Content string
	CardID  int64
	Matched bool
}

// Outcome reports what a single Select transition did.
type Outcome int

const (
	// OutcomeIgnored: the pair is already matched or unknown.
	OutcomeIgnored Outcome = iota
	// OutcomeSelected: the pair now occupies its kind's slot.
	OutcomeSelected
	// OutcomeDeselected: the pair was its kind's selection and was
	// toggled off.
	OutcomeDeselected
	// OutcomeMatched: both slots were filled and referred to the same
	// flashcard; both pairs are now matched and the slots are clear.
	OutcomeMatched
	// OutcomeMismatch: both slots were filled but disagreed; the slots
	// are clear and both pairs stay selectable.
	OutcomeMismatch
)

// Match is the word/meaning pairing state machine. The board holds one
// word pair and one meaning pair per working-set card; the word column
// keeps working-set order while the meaning column is shuffled. Two
// independent single-select slots, one per kind, drive the match check.
type Match struct {
	words    []Pair
	meanings []Pair

	// selected pair ID per kind, -1 when empty
	selWord    int
	selMeaning int

	attempts  int
	matched   int
	completed bool
}

func NewMatch(cards []models.Flashcard) (*Match, error) {
	if len(cards) < MinCards {
		return nil, ErrInsufficientCards
	}

	working := cards
	if len(working) > MaxBoardCards {
		working = working[:MaxBoardCards]
	}

	words := make([]Pair, len(working))
	meanings := make([]Pair, len(working))
	for i, card := range working {
		words[i] = Pair{
			ID:      i,
			Kind:    KindWord,
			Content: card.Word,
			CardID:  card.ID,
		}
		meanings[i] = Pair{
			ID:      len(working) + i,
			Kind:    KindMeaning,
			Content: card.Meaning,
			CardID:  card.ID,
		}
	}
	shuffle.Slice(meanings)

	return &Match{
		words:      words,
		meanings:   meanings,
		selWord:    -1,
		selMeaning: -1,
	}, nil
}

// Select applies one tap on a board pair and runs the match check
// inline whenever it leaves both slots occupied. Matched pairs are
// never selectable again; selecting the current selection of a kind
// toggles it off.
func (m *Match) Select(pairID int) Outcome {
	if m.completed {
		return OutcomeIgnored
	}

	pair := m.pair(pairID)
	if pair == nil || pair.Matched {
		return OutcomeIgnored
	}

	slot := &m.selWord
	if pair.Kind == KindMeaning {
		slot = &m.selMeaning
	}

	if *slot == pairID {
		*slot = -1
		return OutcomeDeselected
	}
	*slot = pairID

	if m.selWord < 0 || m.selMeaning < 0 {
		return OutcomeSelected
	}

	m.attempts++
	word := m.pair(m.selWord)
	meaning := m.pair(m.selMeaning)
	m.selWord = -1
	m.selMeaning = -1

	if word.CardID != meaning.CardID {
		return OutcomeMismatch
	}

	word.Matched = true
	meaning.Matched = true
	m.matched++
	// Completion comes from the updated count, never a stale copy.
	if m.matched == len(m.words) {
		m.completed = true
	}

	return OutcomeMatched
}

func (m *Match) pair(id int) *Pair {
	if id >= 0 && id < len(m.words) {
		return &m.words[id]
	}
	for i := range m.meanings {
		if m.meanings[i].ID == id {
			return &m.meanings[i]
		}
	}
	return nil
}

// Words returns the word column in board order.
func (m *Match) Words() []Pair {
	return m.words
}

// Meanings returns the meaning column in board order.
func (m *Match) Meanings() []Pair {
	return m.meanings
}

// Selected returns the current selection for a kind, if any.
func (m *Match) Selected(kind PairKind) (Pair, bool) {
	id := m.selWord
	if kind == KindMeaning {
		id = m.selMeaning
	}
	if id < 0 {
		return Pair{}, false
	}
	return *m.pair(id), true
}

func (m *Match) Attempts() int {
	return m.attempts
}

func (m *Match) MatchedCount() int {
	return m.matched
}

func (m *Match) Completed() bool {
	return m.completed
}

func (m *Match) Result() Result {
	return Result{
		Mode:     ModeMatch,
		Total:    len(m.words),
		Correct:  m.matched,
		Attempts: m.attempts,
	}
}
