package bot

import (
	"strconv"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonReview   = "🧠 Review"
	ButtonList     = "📚 My vocabulary"
	ButtonStats    = "📊 Stats"
	ButtonTags     = "🏷 Tags"
	ButtonMainMenu = "🏠 Main menu"
	ButtonHelp     = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		t.vocab.dropPager(userID)
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "review":
		t.handleReviewCommand(message, userID, args)
	case "list":
		t.vocab.showList(message, userID, strings.Fields(args))
	case "history":
		t.vocab.showHistory(message, args)
	case "stats":
		t.stats.sendDashboard(message, userID)
	case "tags":
		t.stats.sendTags(message, userID)
	case "newtag":
		t.stats.addTag(message, userID, args)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.sender, t.log, msg)
	}
}

func (t *TelegramAPI) handleReviewCommand(message *tgbotapi.Message, userID int64, args string) {
	if args == "" {
		t.review.startReview(message, userID, session.DueQueue())
		return
	}

	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil || id <= 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Usage: /review or /review <item id>")
		sendMessage(t.sender, t.log, msg)
		return
	}

	t.review.startReview(message, userID, session.SingleItem(id))
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I help you review your vocabulary.\n\n" +
		"✨ What I can do:\n" +
		"• 🧠 Run a review of everything that is due\n" +
		"• 📚 Browse and filter your vocabulary\n" +
		"• 📊 Show your review statistics\n\n" +
		"Press a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.sender, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.sender, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonReview),
			tgbotapi.NewKeyboardButton(ButtonList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonTags),
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
📚 Commands:
/start - show the menu
/review - review everything that is due
/review <id> - review one item, due or not
/list [filters] - browse vocabulary
/history <id> - latest reviews of one item
/stats - review statistics
/tags - list tags
/newtag <name> - create a tag
/help - this message

🔎 List filters (combine freely):
search=<text> letter=<a> tag=<name,name> hard=true|false
fam=<min>-<max> due_before=<YYYY-MM-DD> due_after=<YYYY-MM-DD>
created_after=... created_before=... reviewed_after=... reviewed_before=...
size=<n>   /list reset clears all filters

⌨️ During a review you can also type:
space - show the answer
← or wrong - I did not know it
→ or right - I knew it
r - restart once the session is over
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.sender, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	text := message.Text

	if t.review.handleShortcut(message, userID) {
		return
	}

	switch text {
	case ButtonReview:
		t.review.startReview(message, userID, session.DueQueue())
	case ButtonList:
		t.vocab.showList(message, userID, nil)
	case ButtonStats:
		t.stats.sendDashboard(message, userID)
	case ButtonTags:
		t.stats.sendTags(message, userID)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below.")
		sendMessage(t.sender, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	switch {
	case strings.HasPrefix(data, reviewCallbackPrefix):
		t.review.handleReviewCallback(query)

	case strings.HasPrefix(data, listCallbackPrefix):
		answerCallback(t.sender, t.log, query.ID, "")
		t.vocab.handlePagination(query)

	case data == "main_menu":
		answerCallback(t.sender, t.log, query.ID, "")
		if query.Message != nil {
			t.review.endSession(query.From.ID, query.Message.MessageID)
			t.showMainMenu(query.Message)
		}

	default:
		answerCallback(t.sender, t.log, query.ID, "")
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
