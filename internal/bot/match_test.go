package bot

import (
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	mock_bot "github.com/tranquocan24/FlashcardLearning-sub000/internal/bot/mock"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/session"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/storage/cache"
)

func newMatchTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *MatchT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewMatchTAPI(mockBot, cache, mockService)
}

func meaningFor(t *testing.T, match *session.Match, cardID int64) session.Pair {
	t.Helper()

	for _, pair := range match.Meanings() {
		if pair.CardID == cardID {
			return pair
		}
	}
	t.Fatalf("no meaning pair for card %d", cardID)
	return session.Pair{}
}

func TestMatchT_startMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: sends board",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				match, err := session.NewMatch(quizDeck(4))
				require.NoError(t, err)
				ms.EXPECT().StartMatch(gomock.Any(), int64(7)).Return(match, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Pair each word with its meaning")
				assert.Contains(t, msg.Text, "Matched: 0 of 4")

				keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				// 4 word/meaning rows plus the main menu row.
				assert.Equal(t, 5, len(keyboard.InlineKeyboard))
			},
		},
		{
			name: "too few cards message",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartMatch(gomock.Any(), int64(7)).Return(nil, session.ErrInsufficientCards)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "at least 4 cards")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			matchT := newMatchTMock(t, ctrl, tt.f)
			mb, _ := matchT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			matchT.handleMatchCallbackQuery(callbackQuery("mode_match_7"))

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestMatchT_handleMatchCallbackQuery_mismatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matchT := newMatchTMock(t, ctrl, nil)
	mb, _ := matchT.bot.(*mock_bot.MockBot)

	match, err := session.NewMatch(quizDeck(4))
	require.NoError(t, err)
	matchT.cache.SetSession(456, cache.Session{DeckID: 7, Match: match})

	word := match.Words()[0]
	wrong := meaningFor(t, match, match.Words()[1].CardID)

	matchT.handleMatchCallbackQuery(callbackQuery("mt_" + strconv.Itoa(word.ID)))
	matchT.handleMatchCallbackQuery(callbackQuery("mt_" + strconv.Itoa(wrong.ID)))

	require.Equal(t, 2, len(mb.SentMessages))

	first := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, first.Text, "Attempts: 0")

	second := mb.SentMessages[1].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, second.Text, "Not a pair")
	assert.Contains(t, second.Text, "Attempts: 1")
	assert.Equal(t, 0, match.MatchedCount())
}

func TestMatchT_fullRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}
	matchT := NewMatchTAPI(mockBot, cache.NewCache(), mockService)

	match, err := session.NewMatch(quizDeck(4))
	require.NoError(t, err)
	matchT.cache.SetSession(456, cache.Session{DeckID: 7, Match: match})

	mockService.EXPECT().Complete(gomock.Any(), session.Result{
		Mode:     session.ModeMatch,
		Total:    4,
		Correct:  4,
		Attempts: 4,
	}, int64(456), int64(7))

	for _, word := range match.Words() {
		meaning := meaningFor(t, match, word.CardID)
		matchT.handleMatchCallbackQuery(callbackQuery("mt_" + strconv.Itoa(word.ID)))
		matchT.handleMatchCallbackQuery(callbackQuery("mt_" + strconv.Itoa(meaning.ID)))
	}

	_, exists := matchT.cache.GetSession(456)
	assert.False(t, exists)

	last := mockBot.SentMessages[len(mockBot.SentMessages)-1].(tgbotapi.MessageConfig)
	assert.Contains(t, last.Text, "Match session finished")
	assert.Contains(t, last.Text, "4/4")
}
