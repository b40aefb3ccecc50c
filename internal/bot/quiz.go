package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/session"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/storage/cache"
)

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service SessionSI
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service SessionSI) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *QuizT) startQuiz(message *tgbotapi.Message, userID, deckID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	quiz, err := t.service.StartQuiz(ctx, deckID)
	if err != nil {
		log.Printf("failed to start quiz session for deck %d: %v", deckID, err)

		text := "❌ Couldn't start the quiz. Try again later."
		if errors.Is(err, session.ErrInsufficientCards) {
			text = "🗂 Quiz needs at least 4 cards in the deck. Add some more!"
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, text)
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetSession(userID, cache.Session{DeckID: deckID, Quiz: quiz})

	text, keyboard := renderQuiz(quiz)
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func renderQuiz(quiz *session.Quiz) (string, tgbotapi.InlineKeyboardMarkup) {
	question, _ := quiz.Current()
	current, total := quiz.Progress()

	text := fmt.Sprintf("🧠 Question %d of %d\n\n❓ What does *%s* mean?",
		current+1, total, question.Card.Word)

	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, option := range question.Options {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(option, "qz_opt_"+strconv.Itoa(i)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return text, tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, "mode_quiz_"):
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "mode_quiz_"), 10, 64)
		if err != nil {
			log.Printf("bad quiz callback data: %s", data)
			return
		}
		t.startQuiz(query.Message, userID, deckID)

	case strings.HasPrefix(data, "qz_opt_"):
		t.processQuizAnswer(query)

	case data == "qz_next":
		t.advanceQuiz(query)

	default:
		log.Printf("Unknown quiz callback data: %s", data)
	}
}

func (t *QuizT) processQuizAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	active, exists := t.cache.GetSession(userID)
	if !exists || active.Quiz == nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ No active quiz. Open a deck to start one.")
		sendMessage(t.bot, msg)
		return
	}
	quiz := active.Quiz

	question, ok := quiz.Current()
	if !ok {
		return
	}

	idx, err := strconv.Atoi(strings.TrimPrefix(query.Data, "qz_opt_"))
	if err != nil || idx < 0 || idx >= len(question.Options) {
		log.Printf("bad quiz option data: %s", query.Data)
		return
	}

	// The engine locks the question on the first answer; a second tap
	// on the same keyboard changes nothing.
	alreadyAnswered := quiz.Answered()
	quiz.Select(question.Options[idx])
	if alreadyAnswered {
		return
	}

	statusText := "✅ Correct! " + question.Answer
	if !quiz.LastCorrect() {
		statusText = "❌ Wrong. The answer is: " + question.Answer
	}

	fullText := fmt.Sprintf("%s\n\n%s", query.Message.Text, statusText)
	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fullText,
	)
	editMsg.ParseMode = "markdown"
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next", "qz_next"),
		},
	)
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}

func (t *QuizT) advanceQuiz(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	active, exists := t.cache.GetSession(userID)
	if !exists || active.Quiz == nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ No active quiz. Open a deck to start one.")
		sendMessage(t.bot, msg)
		return
	}
	quiz := active.Quiz

	quiz.Advance()

	if quiz.Completed() {
		t.cache.DeleteSession(userID)

		ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer canceled()
		res := quiz.Result()
		t.service.Complete(ctx, res, userID, active.DeckID)

		sendSessionSummary(t.bot, query.Message, res)
		return
	}

	text, keyboard := renderQuiz(quiz)
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}
