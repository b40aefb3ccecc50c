package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonMyDecks   = "🗂 My decks"
	ButtonNewDeck   = "➕ New deck"
	ButtonMyFolders = "📁 My folders"
	ButtonProgress  = "📊 My progress"
	ButtonMainMenu  = "🏠 Main menu"
	ButtonBack      = "⏪ Back"
	ButtonHelp      = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I help you learn vocabulary with flashcards!\n\n" +
		"✨ What I can do:\n" +
		"• 🗂 Keep your decks of flashcards\n" +
		"• 📖 Drill a deck with flip cards\n" +
		"• 🧠 Quiz you with multiple choice\n" +
		"• 🧩 Play word/meaning matching\n\n" +
		"Tap a button below to get going!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyDecks),
			tgbotapi.NewKeyboardButton(ButtonNewDeck),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyFolders),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/help — this message

🎯 Use the buttons:
• "My decks" — browse your decks and start a session
• "New deck" — create a deck, then add cards to it
• "My folders" — group related decks into folders
• "My progress" — your session history at a glance
• "Help" — hints and contacts

🎮 Learning modes (pick one on a deck):
• 📖 Study — flip each card, mark it known or not
• 🧠 Quiz — choose the right meaning out of four
• 🧩 Match — pair up words with their meanings
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID
	text := message.Text

	// A pending draft flow swallows free text before button matching.
	if t.decks.handleDraftInput(message, userID) {
		return
	}

	switch {
	case text == ButtonMyDecks:
		t.decks.showDecks(message, userID, 0)
	case text == ButtonNewDeck:
		t.decks.startNewDeck(message, userID)
	case text == ButtonMyFolders:
		t.decks.showFolders(message, userID)
	case text == ButtonProgress:
		t.decks.sendProgress(message, userID)
	case text == ButtonMainMenu || text == ButtonBack:
		t.showMainMenu(message)
	case text == ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "decks_") || strings.HasPrefix(data, "deck_") ||
		strings.HasPrefix(data, "add_card_") || strings.HasPrefix(data, "del_card_") ||
		strings.HasPrefix(data, "rm_card_") || strings.HasPrefix(data, "del_deck_") ||
		data == "new_folder":
		t.decks.handleDeckCallbackQuery(query)

	case strings.HasPrefix(data, "mode_study_") || strings.HasPrefix(data, "st_"):
		t.study.handleStudyCallbackQuery(query)

	case strings.HasPrefix(data, "mode_quiz_") || strings.HasPrefix(data, "qz_"):
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, "mode_match_") || strings.HasPrefix(data, "mt_"):
		t.match.handleMatchCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
