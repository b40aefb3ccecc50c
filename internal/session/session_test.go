package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "study", ModeStudy.String())
	assert.Equal(t, "quiz", ModeQuiz.String())
	assert.Equal(t, "match", ModeMatch.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestResult_Summary(t *testing.T) {
	t.Parallel()

	res := Result{Mode: ModeQuiz, Total: 10, Correct: 7, Attempts: 10}
	summary := res.Summary(456, 9)

	assert.Equal(t, int64(456), summary.UserID)
	assert.Equal(t, int64(9), summary.DeckID)
	assert.Equal(t, "quiz", summary.SessionType)
	assert.Equal(t, 7, summary.Score)
	assert.Equal(t, 10, summary.TotalCards)
}

func TestResult_Percent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{
			name:    "all correct",
			correct: 4,
			total:   4,
			want:    100,
		},
		{
			name:    "rounds up",
			correct: 2,
			total:   3,
			want:    67,
		},
		{
			name:    "rounds down",
			correct: 1,
			total:   3,
			want:    33,
		},
		{
			name:    "zero total",
			correct: 0,
			total:   0,
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Result{Correct: tt.correct, Total: tt.total}
			assert.Equal(t, tt.want, res.Percent())
		})
	}
}
