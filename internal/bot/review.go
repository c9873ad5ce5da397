package bot

import (
	"context"
	"errors"

	"github.com/chen-yiru/Vocabulary-review/internal/input"
	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/session"
	"github.com/chen-yiru/Vocabulary-review/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	reviewCallbackPrefix = "rv_"

	callbackReveal  = "rv_reveal"
	callbackRight   = "rv_right"
	callbackWrong   = "rv_wrong"
	callbackRestart = "rv_restart"

	sourceButtons  = "telegram-buttons"
	sourceKeyboard = "telegram-text"
)

type ReviewSI interface {
	NewSession(userID int64) *session.Engine
	Render(e *session.Engine) string
}

type ReviewT struct {
	bot     BotSender
	cache   *cache.Cache
	service ReviewSI
	opts    Options
	log     *zap.Logger
}

func NewReviewTAPI(bot BotSender, cache *cache.Cache, service ReviewSI, opts Options, log *zap.Logger) *ReviewT {
	return &ReviewT{
		bot:     bot,
		cache:   cache,
		service: service,
		opts:    opts,
		log:     log,
	}
}

// startReview replaces the user's session with a fresh one for req and
// posts the message that will render it from now on.
func (t *ReviewT) startReview(message *tgbotapi.Message, userID int64, req session.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	engine := t.service.NewSession(userID)
	adapter := input.NewAdapter(engine, t.opts.RepeatWindow, t.log.With(zap.Int64("user_id", userID)))

	if err := engine.Load(ctx, req); err != nil {
		t.log.Warn("failed to load review session", zap.Int64("user_id", userID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, t.service.Render(engine))
	if kb := reviewKeyboard(engine.State()); kb != nil {
		msg.ReplyMarkup = kb
	}

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		return
	}

	adapter.Attach()
	t.cache.SetSession(userID, &cache.ReviewSession{
		Engine:    engine,
		Input:     adapter,
		MessageID: sent.MessageID,
	})
}

func (t *ReviewT) handleReviewCallback(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	s, exists := t.cache.Session(userID)
	if !exists || query.Message == nil {
		answerCallback(t.bot, t.log, query.ID, "No active review. Use /review")
		return
	}

	if query.Message.MessageID != s.MessageID {
		answerCallback(t.bot, t.log, query.ID, callbackNotice(input.ErrDetached))
		return
	}

	cmd := clickCommand(query.Data)
	if cmd == input.CommandNone {
		answerCallback(t.bot, t.log, query.ID, "")
		t.log.Warn("unknown review callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	handled, err := s.Input.HandleClick(ctx, input.ClickEvent{Source: sourceButtons, Command: cmd})
	if handled == input.CommandNone && err == nil {
		answerCallback(t.bot, t.log, query.ID, callbackNotice(session.ErrCommandRejected))
		return
	}

	answerCallback(t.bot, t.log, query.ID, callbackNotice(err))
	if !shouldRerender(err) {
		return
	}

	t.render(query.Message.Chat.ID, query.Message.MessageID, s.Engine)
}

// handleShortcut treats short texts as key presses for the active session.
// It reports whether the text was consumed.
func (t *ReviewT) handleShortcut(message *tgbotapi.Message, userID int64) bool {
	key, ok := input.ParseKey(message.Text)
	if !ok {
		return false
	}

	s, exists := t.cache.Session(userID)
	if !exists {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	cmd, err := s.Input.HandleKey(ctx, input.KeyEvent{Source: sourceKeyboard, Code: key})
	if cmd == input.CommandNone && err == nil {
		return true
	}

	if notice := callbackNotice(err); notice != "" {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, notice))
	}
	if shouldRerender(err) {
		t.render(message.Chat.ID, s.MessageID, s.Engine)
	}

	return true
}

func (t *ReviewT) render(chatID int64, messageID int, engine *session.Engine) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, t.service.Render(engine))
	if kb := reviewKeyboard(engine.State()); kb != nil {
		edit.ReplyMarkup = kb
	}

	sendMessage(t.bot, t.log, edit)
}

func clickCommand(data string) input.Command {
	switch data {
	case callbackReveal:
		return input.CommandReveal
	case callbackRight:
		return input.CommandCorrect
	case callbackWrong:
		return input.CommandIncorrect
	case callbackRestart:
		return input.CommandRestart
	}
	return input.CommandNone
}

// callbackNotice is the short toast shown for commands the engine refused.
func callbackNotice(err error) string {
	switch {
	case err == nil, errors.Is(err, session.ErrSuperseded):
		return ""
	case errors.Is(err, session.ErrAnswerInFlight):
		return "⏳ Still saving the previous answer..."
	case errors.Is(err, session.ErrCommandRejected):
		return "This button is no longer active."
	case errors.Is(err, input.ErrDetached):
		return "This review has ended. Use /review"
	default:
		return "❌ Could not save the answer. Try again."
	}
}

// shouldRerender is false for refusals that left the session untouched.
func shouldRerender(err error) bool {
	return err == nil ||
		!(errors.Is(err, session.ErrAnswerInFlight) ||
			errors.Is(err, session.ErrCommandRejected) ||
			errors.Is(err, session.ErrSuperseded) ||
			errors.Is(err, input.ErrDetached))
}

func reviewKeyboard(state models.SessionState) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton

	switch {
	case state.Phase == models.PhaseInProgress && !state.Revealed:
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("👀 Show answer", callbackReveal))
	case state.Phase == models.PhaseInProgress:
		row = append(row,
			tgbotapi.NewInlineKeyboardButtonData("❌ Didn't know", callbackWrong),
			tgbotapi.NewInlineKeyboardButtonData("✅ Knew it", callbackRight),
		)
	case state.Phase.Terminal():
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("🔁 Restart", callbackRestart))
	default:
		return nil
	}

	buttons := [][]tgbotapi.InlineKeyboardButton{
		row,
		{tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu")},
	}

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

// endSession drops the user's session if it is the one shown in messageID.
func (t *ReviewT) endSession(userID int64, messageID int) {
	s, exists := t.cache.Session(userID)
	if !exists || s.MessageID != messageID {
		return
	}

	t.cache.DeleteSession(userID)
	t.log.Debug("review session closed", zap.Int64("user_id", userID))
}
