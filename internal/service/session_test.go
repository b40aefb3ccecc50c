package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/session"
	mock_service "github.com/tranquocan24/FlashcardLearning-sub000/internal/service/mock"
)

func newSessionServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *SessionS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	log := zap.NewNop()

	return &SessionS{
		decks:    repo,
		sessions: repo,
		log:      log,
	}
}

func serviceDeck(n int) []models.Flashcard {
	cards := make([]models.Flashcard, n)
	for i := range cards {
		cards[i] = models.Flashcard{
			ID:      int64(i + 1),
			DeckID:  7,
			Word:    "word",
			Meaning: "meaning",
		}
	}
	return cards
}

func TestSessionS_StartStudy(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		deckID int64
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockRepositoryI)
		wantErr error
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				deckID: 7,
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(serviceDeck(5), nil)
			},
		},
		{
			name: "empty deck rejected",
			args: args{
				ctx:    context.Background(),
				deckID: 7,
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(nil, nil)
			},
			wantErr: session.ErrEmptyDeck,
		},
		{
			name: "load failure aborts start",
			args: args{
				ctx:    context.Background(),
				deckID: 7,
			},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("failed to load flashcards"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionS := newSessionServiceMock(t, ctrl, tt.f)

			study, err := sessionS.StartStudy(tt.args.ctx, tt.args.deckID)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, study)
				if errors.Is(tt.wantErr, session.ErrEmptyDeck) {
					assert.ErrorIs(t, err, session.ErrEmptyDeck)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, study)
			_, total := study.Progress()
			assert.Equal(t, 5, total)
		})
	}
}

func TestSessionS_StartQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(serviceDeck(4), nil)
			},
		},
		{
			name: "three cards rejected",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(serviceDeck(3), nil)
			},
			wantErr: session.ErrInsufficientCards,
		},
		{
			name: "load failure aborts start",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(nil, errors.New("timeout"))
			},
			wantErr: errors.New("failed to load flashcards"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionS := newSessionServiceMock(t, ctrl, tt.f)

			quiz, err := sessionS.StartQuiz(context.Background(), 7)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, quiz)
				if errors.Is(tt.wantErr, session.ErrInsufficientCards) {
					assert.ErrorIs(t, err, session.ErrInsufficientCards)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, quiz)
		})
	}
}

func TestSessionS_StartMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(serviceDeck(10), nil)
			},
		},
		{
			name: "three cards rejected",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DeckFlashcards(gomock.Any(), int64(7)).Return(serviceDeck(3), nil)
			},
			wantErr: session.ErrInsufficientCards,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionS := newSessionServiceMock(t, ctrl, tt.f)

			match, err := sessionS.StartMatch(context.Background(), 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, match)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, match)
			assert.Len(t, match.Words(), 8)
		})
	}
}

func TestSessionS_Complete(t *testing.T) {
	t.Parallel()

	res := session.Result{Mode: session.ModeQuiz, Total: 4, Correct: 3, Attempts: 4}

	tests := []struct {
		name   string
		userID int64
		f      func(*mock_service.MockRepositoryI)
	}{
		{
			name:   "persists summary",
			userID: 456,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AddSession(gomock.Any(), models.SessionSummary{
					UserID:      456,
					DeckID:      7,
					SessionType: "quiz",
					Score:       3,
					TotalCards:  4,
				}).Return(models.SessionRecord{}, nil)
			},
		},
		{
			name:   "persistence failure is swallowed",
			userID: 456,
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AddSession(gomock.Any(), gomock.Any()).Return(models.SessionRecord{}, errors.New("insert error"))
			},
		},
		{
			name:   "missing user skips persistence",
			userID: 0,
			f:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionS := newSessionServiceMock(t, ctrl, tt.f)

			// Complete never fails the caller, whatever storage does.
			sessionS.Complete(context.Background(), res, tt.userID, 7)
		})
	}
}

func TestSessionS_SessionStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		want    string
		wantErr bool
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SessionStats(gomock.Any(), int64(456)).Return(models.SessionStats{
					TotalCount:   3,
					StudyCount:   1,
					QuizCount:    1,
					MatchCount:   1,
					CardsSeen:    12,
					CardsCorrect: 9,
				}, nil)
			},
			want: sessionStatsFormat(models.SessionStats{
				TotalCount:   3,
				StudyCount:   1,
				QuizCount:    1,
				MatchCount:   1,
				CardsSeen:    12,
				CardsCorrect: 9,
			}),
		},
		{
			name: "db error",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().SessionStats(gomock.Any(), int64(456)).Return(models.SessionStats{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionS := newSessionServiceMock(t, ctrl, tt.f)

			got, err := sessionS.SessionStats(context.Background(), 456)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, got, "Sessions completed")
		})
	}
}
