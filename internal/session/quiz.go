package session

import (
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/pkg/shuffle"
)

const optionsPerQuestion = 4

type Question struct {
	Card    models.Flashcard
	Options []string
	Answer  string
}

// Quiz is the multiple-choice state machine. Every card in the deck is
// quizzed exactly once, in a fresh random order per session; each
// question shows the correct meaning alongside three distractor
// meanings sampled from the other cards.
type Quiz struct {
	questions   []Question
	index       int
	correct     int
	answered    bool
	lastCorrect bool
	completed   bool
}

func NewQuiz(cards []models.Flashcard) (*Quiz, error) {
	if len(cards) < MinCards {
		return nil, ErrInsufficientCards
	}

	order := shuffle.Shuffled(cards)

	questions := make([]Question, 0, len(order))
	for _, card := range order {
		wrong := make([]string, 0, len(cards)-1)
		for _, other := range cards {
			if other.ID == card.ID {
				continue
			}
			wrong = append(wrong, other.Meaning)
		}

		options := shuffle.Sample(wrong, optionsPerQuestion-1)
		options = append(options, card.Meaning)
		shuffle.Slice(options)

		questions = append(questions, Question{
			Card:    card,
			Options: options,
			Answer:  card.Meaning,
		})
	}

	return &Quiz{questions: questions}, nil
}

// Current returns the open question, or false once the session has
// completed.
func (q *Quiz) Current() (Question, bool) {
	if q.completed {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Select records the answer for the current question. The first call
// locks the question; later calls are no-ops until Advance.
func (q *Quiz) Select(answer string) {
	if q.completed || q.answered {
		return
	}

	q.answered = true
	q.lastCorrect = answer == q.questions[q.index].Answer
	if q.lastCorrect {
		q.correct++
	}
}

// Answered reports whether the current question is locked.
func (q *Quiz) Answered() bool {
	return q.answered
}

// LastCorrect reports whether the locked answer was right. Only
// meaningful while Answered is true.
func (q *Quiz) LastCorrect() bool {
	return q.lastCorrect
}

// Advance moves to the next question once the current one is answered.
// Answering the final question's advance completes the session.
func (q *Quiz) Advance() {
	if q.completed || !q.answered {
		return
	}

	q.answered = false
	q.lastCorrect = false
	q.index++
	if q.index == len(q.questions) {
		q.completed = true
	}
}

func (q *Quiz) Progress() (current, total int) {
	return q.index, len(q.questions)
}

func (q *Quiz) Correct() int {
	return q.correct
}

func (q *Quiz) Completed() bool {
	return q.completed
}

func (q *Quiz) Result() Result {
	return Result{
		Mode:     ModeQuiz,
		Total:    len(q.questions),
		Correct:  q.correct,
		Attempts: len(q.questions),
	}
}
