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

type MatchT struct {
	bot     BotSender
	cache   *cache.Cache
	service SessionSI
}

func NewMatchTAPI(bot BotSender, cache *cache.Cache, service SessionSI) *MatchT {
	return &MatchT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *MatchT) startMatch(message *tgbotapi.Message, userID, deckID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	match, err := t.service.StartMatch(ctx, deckID)
	if err != nil {
		log.Printf("failed to start match session for deck %d: %v", deckID, err)

		text := "❌ Couldn't start the game. Try again later."
		if errors.Is(err, session.ErrInsufficientCards) {
			text = "🗂 Match needs at least 4 cards in the deck. Add some more!"
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, text)
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetSession(userID, cache.Session{DeckID: deckID, Match: match})

	text, keyboard := renderMatch(match, "")
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func renderMatch(match *session.Match, status string) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧩 Pair each word with its meaning\n\n✅ Matched: %d of %d  🎯 Attempts: %d",
		match.MatchedCount(), len(match.Words()), match.Attempts())
	if status != "" {
		sb.WriteString("\n\n")
		sb.WriteString(status)
	}

	selWord, hasWord := match.Selected(session.KindWord)
	selMeaning, hasMeaning := match.Selected(session.KindMeaning)

	label := func(pair session.Pair) string {
		switch {
		case pair.Matched:
			return "✅ " + pair.Content
		case hasWord && pair.Kind == session.KindWord && pair.ID == selWord.ID:
			return "▶️ " + pair.Content
		case hasMeaning && pair.Kind == session.KindMeaning && pair.ID == selMeaning.ID:
			return "▶️ " + pair.Content
		default:
			return pair.Content
		}
	}

	words := match.Words()
	meanings := match.Meanings()

	var buttons [][]tgbotapi.InlineKeyboardButton
	for i := range words {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label(words[i]), "mt_"+strconv.Itoa(words[i].ID)),
			tgbotapi.NewInlineKeyboardButtonData(label(meanings[i]), "mt_"+strconv.Itoa(meanings[i].ID)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (t *MatchT) handleMatchCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	data := query.Data

	if strings.HasPrefix(data, "mode_match_") {
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "mode_match_"), 10, 64)
		if err != nil {
			log.Printf("bad match callback data: %s", data)
			return
		}
		t.startMatch(query.Message, userID, deckID)
		return
	}

	active, exists := t.cache.GetSession(userID)
	if !exists || active.Match == nil {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ No active match game. Open a deck to start one.")
		sendMessage(t.bot, msg)
		return
	}
	match := active.Match

	pairID, err := strconv.Atoi(strings.TrimPrefix(data, "mt_"))
	if err != nil {
		log.Printf("bad match pair data: %s", data)
		return
	}

	outcome := match.Select(pairID)

	if match.Completed() {
		t.cache.DeleteSession(userID)

		ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer canceled()
		res := match.Result()
		t.service.Complete(ctx, res, userID, active.DeckID)

		sendSessionSummary(t.bot, query.Message, res)
		return
	}

	var status string
	switch outcome {
	case session.OutcomeMatched:
		status = "🎉 Matched!"
	case session.OutcomeMismatch:
		status = "❌ Not a pair. Try again."
	case session.OutcomeIgnored:
		return
	}

	text, keyboard := renderMatch(match, status)
	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}
