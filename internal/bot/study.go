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

type SessionSI interface {
	StartStudy(ctx context.Context, deckID int64) (*session.Study, error)
	StartQuiz(ctx context.Context, deckID int64) (*session.Quiz, error)
	StartMatch(ctx context.Context, deckID int64) (*session.Match, error)
	Complete(ctx context.Context, res session.Result, userID, deckID int64)
}

type StudyT struct {
	bot     BotSender
	cache   *cache.Cache
	service SessionSI
}

func NewStudyTAPI(bot BotSender, cache *cache.Cache, service SessionSI) *StudyT {
	return &StudyT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *StudyT) startStudy(message *tgbotapi.Message, userID, deckID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	study, err := t.service.StartStudy(ctx, deckID)
	if err != nil {
		log.Printf("failed to start study session for deck %d: %v", deckID, err)

		text := "❌ Couldn't start the session. Try again later."
		if errors.Is(err, session.ErrEmptyDeck) {
			text = "🗂 This deck has no cards yet. Add some first!"
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, text)
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetSession(userID, cache.Session{DeckID: deckID, Study: study})

	text, keyboard := renderStudy(study)
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func renderStudy(study *session.Study) (string, tgbotapi.InlineKeyboardMarkup) {
	item, _ := study.Current()
	current, total := study.Progress()

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 Card %d of %d\n\n", current+1, total)

	if item.Revealed {
		sb.WriteString("💡 *")
		sb.WriteString(item.Card.Meaning)
		sb.WriteString("*")
		if item.Card.Example != "" {
			sb.WriteString("\n\n💬 _")
			sb.WriteString(item.Card.Example)
			sb.WriteString("_")
		}
	} else {
		sb.WriteString("🃏 *")
		sb.WriteString(item.Card.Word)
		sb.WriteString("*")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", "st_flip"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✅ Know it", "st_know"),
			tgbotapi.NewInlineKeyboardButtonData("🤔 Still learning", "st_unknown"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		},
	)

	return sb.String(), keyboard
}

func (t *StudyT) handleStudyCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	data := query.Data

	if strings.HasPrefix(data, "mode_study_") {
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "mode_study_"), 10, 64)
		if err != nil {
			log.Printf("bad study callback data: %s", data)
			return
		}
		t.startStudy(query.Message, userID, deckID)
		return
	}

	active, exists := t.cache.GetSession(userID)
	if !exists || active.Study == nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ No active study session. Open a deck to start one.")
		sendMessage(t.bot, msg)
		return
	}
	study := active.Study

	switch data {
	case "st_flip":
		study.Flip()
	case "st_know":
		study.MarkKnown()
	case "st_unknown":
		study.MarkUnknown()
	default:
		log.Printf("Unknown study callback data: %s", data)
		return
	}

	if study.Completed() {
		t.cache.DeleteSession(userID)

		ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer canceled()
		res := study.Result()
		t.service.Complete(ctx, res, userID, active.DeckID)

		sendSessionSummary(t.bot, query.Message, res)
		return
	}

	text, keyboard := renderStudy(study)
	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}

func sendSessionSummary(bot BotSender, message *tgbotapi.Message, res session.Result) {
	var label string
	switch res.Mode {
	case session.ModeStudy:
		label = "📖 Study"
	case session.ModeQuiz:
		label = "🧠 Quiz"
	case session.ModeMatch:
		label = "🧩 Match"
	}

	text := fmt.Sprintf("🏁 %s session finished!\n\n✅ Score: **%d/%d** (%d%%)",
		label, res.Correct, res.Total, res.Percent())

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(bot, msg)
}
