package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/models"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/service"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/storage/cache"
)

type DeckSI interface {
	CreateDeck(ctx context.Context, input service.DeckInput) (int64, error)
	Deck(ctx context.Context, deckID int64) (models.Deck, error)
	Decks(ctx context.Context, userID int64, offset int) ([]models.Deck, int, error)
	DeleteDeck(ctx context.Context, userID, deckID int64) error
	DeckFlashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error)
	AddFlashcard(ctx context.Context, input service.FlashcardInput) (int64, error)
	DeleteFlashcard(ctx context.Context, deckID, cardID int64) error
	CreateFolder(ctx context.Context, userID int64, name string) (int64, error)
	Folders(ctx context.Context, userID int64) ([]models.Folder, error)
	SessionStats(ctx context.Context, userID int64) (string, error)
}

const decksPageSize = 10

type DeckT struct {
	bot     BotSender
	cache   *cache.Cache
	service DeckSI
}

func NewDeckTAPI(bot BotSender, cache *cache.Cache, service DeckSI) *DeckT {
	return &DeckT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *DeckT) showDecks(message *tgbotapi.Message, userID int64, offset int) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	decks, total, err := t.service.Decks(ctx, userID, offset)
	if err != nil {
		log.Printf("failed to list decks for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load your decks. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	if total == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "🗂 You have no decks yet. Create one with \"New deck\"!")
		sendMessage(t.bot, msg)
		return
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, deck := range decks {
		label := fmt.Sprintf("%s (%d cards)", deck.Name, deck.CardCount)
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "deck_"+strconv.FormatInt(deck.ID, 10)),
		})
	}

	var nav []tgbotapi.InlineKeyboardButton
	if offset > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("decks_%d", offset-decksPageSize)))
	}
	if offset+decksPageSize < total {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("decks_%d", offset+decksPageSize)))
	}
	if len(nav) > 0 {
		buttons = append(buttons, nav)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("🗂 Your decks (%d):", total))
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *DeckT) showDeckDetail(message *tgbotapi.Message, deckID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	deck, err := t.service.Deck(ctx, deckID)
	if err != nil {
		log.Printf("failed to get deck %d: %v", deckID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't open that deck.")
		sendMessage(t.bot, msg)
		return
	}

	id := strconv.FormatInt(deck.ID, 10)
	buttons := [][]tgbotapi.InlineKeyboardButton{
		{
			tgbotapi.NewInlineKeyboardButtonData("📖 Study", "mode_study_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🧠 Quiz", "mode_quiz_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🧩 Match", "mode_match_"+id),
		},
		{
			tgbotapi.NewInlineKeyboardButtonData("➕ Add card", "add_card_"+id),
			tgbotapi.NewInlineKeyboardButtonData("➖ Remove card", "del_card_"+id),
		},
		{
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete deck", "del_deck_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		},
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	text := fmt.Sprintf("🗂 *%s*\n\n🃏 Cards: **%d**\n\nPick a learning mode:", deck.Name, deck.CardCount)
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *DeckT) showFolders(message *tgbotapi.Message, userID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	folders, err := t.service.Folders(ctx, userID)
	if err != nil {
		log.Printf("failed to list folders for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load your folders. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	if len(folders) == 0 {
		sb.WriteString("📁 You have no folders yet. Folders group related decks together.")
	} else {
		fmt.Fprintf(&sb, "📁 Your folders (%d):\n", len(folders))
		for _, folder := range folders {
			fmt.Fprintf(&sb, "\n• *%s* — %d decks", folder.Name, folder.DeckCount)
		}
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➕ New folder", "new_folder"),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *DeckT) startNewFolder(message *tgbotapi.Message, userID int64) {
	t.cache.SetDraft(userID, cache.Draft{Kind: cache.DraftFolderName})

	msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ Send me a name for the new folder:")
	sendMessage(t.bot, msg)
}

// showRemovableCards lists the deck's cards as delete buttons.
func (t *DeckT) showRemovableCards(message *tgbotapi.Message, deckID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	cards, err := t.service.DeckFlashcards(ctx, deckID)
	if err != nil {
		log.Printf("failed to list flashcards for deck %d: %v", deckID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load the cards.")
		sendMessage(t.bot, msg)
		return
	}

	if len(cards) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "🗂 This deck has no cards to remove.")
		sendMessage(t.bot, msg)
		return
	}

	id := strconv.FormatInt(deckID, 10)
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, card := range cards {
		label := fmt.Sprintf("🗑 %s — %s", card.Word, card.Meaning)
		data := fmt.Sprintf("rm_card_%s_%d", id, card.ID)
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("⏪ Back", "deck_"+id),
	})
	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Tap a card to remove it from the deck:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *DeckT) removeCard(message *tgbotapi.Message, deckID, cardID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	if err := t.service.DeleteFlashcard(ctx, deckID, cardID); err != nil {
		log.Printf("failed to delete flashcard %d from deck %d: %v", cardID, deckID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't remove the card.")
		sendMessage(t.bot, msg)
		return
	}

	id := strconv.FormatInt(deckID, 10)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➖ Remove another", "del_card_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🗂 Open deck", "deck_"+id),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🗑 Card removed.")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *DeckT) startNewDeck(message *tgbotapi.Message, userID int64) {
	t.cache.SetDraft(userID, cache.Draft{Kind: cache.DraftDeckName})

	msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ Send me a name for the new deck:")
	sendMessage(t.bot, msg)
}

func (t *DeckT) startAddCard(message *tgbotapi.Message, userID, deckID int64) {
	t.cache.SetDraft(userID, cache.Draft{Kind: cache.DraftCardWord, DeckID: deckID})

	msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ Send me the word for the new card:")
	sendMessage(t.bot, msg)
}

// handleDraftInput consumes free text belonging to a pending deck or
// card flow. Returns false when no flow is pending so the caller can
// treat the text as a menu action.
func (t *DeckT) handleDraftInput(message *tgbotapi.Message, userID int64) bool {
	draft, exists := t.cache.GetDraft(userID)
	if !exists {
		return false
	}

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	switch draft.Kind {
	case cache.DraftDeckName:
		t.cache.DeleteDraft(userID)

		deckID, err := t.service.CreateDeck(ctx, service.DeckInput{UserID: userID, Name: message.Text})
		if err != nil {
			log.Printf("failed to create deck for user %d: %v", userID, err)
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't create the deck. Try another name.")
			sendMessage(t.bot, msg)
			return true
		}

		id := strconv.FormatInt(deckID, 10)
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("➕ Add a card", "add_card_"+id),
				tgbotapi.NewInlineKeyboardButtonData("🗂 Open deck", "deck_"+id),
			},
		)

		msg := tgbotapi.NewMessage(message.Chat.ID, "✅ Deck created! Add some cards to it:")
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)

	case cache.DraftCardWord:
		draft.Word = message.Text
		draft.Kind = cache.DraftCardMeaning
		t.cache.SetDraft(userID, draft)

		msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ Now send me its meaning:")
		sendMessage(t.bot, msg)

	case cache.DraftCardMeaning:
		t.cache.DeleteDraft(userID)

		_, err := t.service.AddFlashcard(ctx, service.FlashcardInput{
			DeckID:  draft.DeckID,
			Word:    draft.Word,
			Meaning: message.Text,
		})
		if err != nil {
			log.Printf("failed to add flashcard to deck %d: %v", draft.DeckID, err)
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't save the card. Try again.")
			sendMessage(t.bot, msg)
			return true
		}

		id := strconv.FormatInt(draft.DeckID, 10)
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("➕ Add another", "add_card_"+id),
				tgbotapi.NewInlineKeyboardButtonData("🏁 Done", "deck_"+id),
			},
		)

		msg := tgbotapi.NewMessage(message.Chat.ID, "✅ Card saved!")
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)

	case cache.DraftFolderName:
		t.cache.DeleteDraft(userID)

		if _, err := t.service.CreateFolder(ctx, userID, message.Text); err != nil {
			log.Printf("failed to create folder for user %d: %v", userID, err)
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't create the folder. Try another name.")
			sendMessage(t.bot, msg)
			return true
		}

		msg := tgbotapi.NewMessage(message.Chat.ID, "✅ Folder created!")
		sendMessage(t.bot, msg)

	default:
		t.cache.DeleteDraft(userID)
		return false
	}

	return true
}

func (t *DeckT) sendProgress(message *tgbotapi.Message, userID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	stats, err := t.service.SessionStats(ctx, userID)
	if err != nil {
		log.Printf("failed to get session stats for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load your progress.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, stats)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}

func (t *DeckT) handleDeckCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, "decks_"):
		offset, err := strconv.Atoi(strings.TrimPrefix(data, "decks_"))
		if err != nil || offset < 0 {
			offset = 0
		}
		t.showDecks(query.Message, userID, offset)

	case strings.HasPrefix(data, "deck_"):
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "deck_"), 10, 64)
		if err != nil {
			log.Printf("bad deck callback data: %s", data)
			return
		}
		t.showDeckDetail(query.Message, deckID)

	case strings.HasPrefix(data, "add_card_"):
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "add_card_"), 10, 64)
		if err != nil {
			log.Printf("bad add_card callback data: %s", data)
			return
		}
		t.startAddCard(query.Message, userID, deckID)

	case strings.HasPrefix(data, "del_card_"):
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "del_card_"), 10, 64)
		if err != nil {
			log.Printf("bad del_card callback data: %s", data)
			return
		}
		t.showRemovableCards(query.Message, deckID)

	case strings.HasPrefix(data, "rm_card_"):
		parts := strings.Split(strings.TrimPrefix(data, "rm_card_"), "_")
		if len(parts) != 2 {
			log.Printf("bad rm_card callback data: %s", data)
			return
		}
		deckID, errDeck := strconv.ParseInt(parts[0], 10, 64)
		cardID, errCard := strconv.ParseInt(parts[1], 10, 64)
		if errDeck != nil || errCard != nil {
			log.Printf("bad rm_card callback data: %s", data)
			return
		}
		t.removeCard(query.Message, deckID, cardID)

	case data == "new_folder":
		t.startNewFolder(query.Message, userID)

	case strings.HasPrefix(data, "del_deck_"):
		deckID, err := strconv.ParseInt(strings.TrimPrefix(data, "del_deck_"), 10, 64)
		if err != nil {
			log.Printf("bad del_deck callback data: %s", data)
			return
		}

		ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer canceled()

		if err := t.service.DeleteDeck(ctx, userID, deckID); err != nil {
			log.Printf("failed to delete deck %d for user %d: %v", deckID, userID, err)
			msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't delete the deck.")
			sendMessage(t.bot, msg)
			return
		}

		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "🗑 Deck deleted.")
		sendMessage(t.bot, msg)

	default:
		log.Printf("Unknown deck callback data: %s", data)
	}
}
