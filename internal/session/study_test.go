package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
)

func testDeck(n int) []models.Flashcard {
	cards := make([]models.Flashcard, n)
	for i := range cards {
		cards[i] = models.Flashcard{
			ID:      int64(i + 1),
			DeckID:  1,
			Word:    fmt.Sprintf("word-%d", i+1),
			Meaning: fmt.Sprintf("meaning-%d", i+1),
		}
	}
	return cards
}

func TestNewStudy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cards   []models.Flashcard
		wantErr error
	}{
		{
			name:  "single card",
			cards: testDeck(1),
		},
		{
			name:  "many cards",
			cards: testDeck(20),
		},
		{
			name:    "empty deck",
			cards:   nil,
			wantErr: ErrEmptyDeck,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			study, err := NewStudy(tt.cards)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, study)
				return
			}

			require.NoError(t, err)
			_, total := study.Progress()
			assert.Equal(t, len(tt.cards), total)
			assert.False(t, study.Completed())
		})
	}
}

func TestStudy_VisitsEachCardOnce(t *testing.T) {
	t.Parallel()

	cards := testDeck(10)
	study, err := NewStudy(cards)
	require.NoError(t, err)

	seen := make(map[int64]int)
	for !study.Completed() {
		item, ok := study.Current()
		require.True(t, ok)
		seen[item.Card.ID]++
		study.MarkUnknown()
	}

	require.Len(t, seen, len(cards))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestStudy_FlipDoesNotAdvance(t *testing.T) {
	t.Parallel()

	study, err := NewStudy(testDeck(3))
	require.NoError(t, err)

	before, ok := study.Current()
	require.True(t, ok)
	assert.False(t, before.Revealed)

	study.Flip()
	after, ok := study.Current()
	require.True(t, ok)
	assert.Equal(t, before.Card.ID, after.Card.ID)
	assert.True(t, after.Revealed)

	study.Flip()
	again, _ := study.Current()
	assert.False(t, again.Revealed)

	current, _ := study.Progress()
	assert.Equal(t, 0, current)
}

func TestStudy_KnownUnknownSumToTotal(t *testing.T) {
	t.Parallel()

	cards := testDeck(9)
	study, err := NewStudy(cards)
	require.NoError(t, err)

	unknown := 0
	for i := 0; !study.Completed(); i++ {
		if i%3 == 0 {
			study.MarkKnown()
		} else {
			study.MarkUnknown()
			unknown++
		}
	}

	res := study.Result()
	assert.Equal(t, len(cards), res.Total)
	assert.Equal(t, len(cards), res.Correct+unknown)
}

func TestStudy_ActionsAfterCompletionAreNoOps(t *testing.T) {
	t.Parallel()

	study, err := NewStudy(testDeck(1))
	require.NoError(t, err)

	study.MarkKnown()
	require.True(t, study.Completed())

	study.MarkKnown()
	study.MarkUnknown()
	study.Flip()

	res := study.Result()
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Correct)

	_, ok := study.Current()
	assert.False(t, ok)
}

func TestStudy_ScenarioAlternatingClassification(t *testing.T) {
	t.Parallel()

	// Four cards, marked known/unknown/known/unknown in visit order.
	study, err := NewStudy(testDeck(4))
	require.NoError(t, err)

	study.MarkKnown()
	study.MarkUnknown()
	study.MarkKnown()
	study.MarkUnknown()

	require.True(t, study.Completed())
	res := study.Result()
	assert.Equal(t, ModeStudy, res.Mode)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 50, res.Percent())
}
