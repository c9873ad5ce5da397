package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type StatsSI interface {
	DashboardText(ctx context.Context, userID int64) (string, error)
}

type TagSI interface {
	TagsText(ctx context.Context, userID int64) (string, error)
	AddPending(userID int64, name string) (models.TagRef, error)
	Reconcile(ctx context.Context, userID int64) ([]models.TagRef, error)
	FilterIDs(ctx context.Context, userID int64, names []string) ([]int64, []string, error)
}

type statsSI interface {
	StatsSI
	TagSI
}

type StatsT struct {
	bot     BotSender
	service statsSI
	opts    Options
	log     *zap.Logger
}

func NewStatsTAPI(bot BotSender, service statsSI, opts Options, log *zap.Logger) *StatsT {
	return &StatsT{
		bot:     bot,
		service: service,
		opts:    opts,
		log:     log,
	}
}

func (t *StatsT) sendDashboard(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	text, err := t.service.DashboardText(ctx, userID)
	if err != nil {
		t.log.Error("failed to load dashboard", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load statistics")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	sendMessage(t.bot, t.log, msg)
}

func (t *StatsT) sendTags(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	text, err := t.service.TagsText(ctx, userID)
	if err != nil {
		t.log.Error("failed to load tags", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load tags")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	sendMessage(t.bot, t.log, msg)
}

// addTag records the tag locally first and then tries to create it. A tag
// the catalog did not accept stays pending and is retried by /tags.
func (t *StatsT) addTag(message *tgbotapi.Message, userID int64, name string) {
	ref, err := t.service.AddPending(userID, name)
	if err != nil {
		text := "❌ Usage: /newtag <name>"
		if !errors.Is(err, models.ErrValidation) {
			text = "❌ " + err.Error()
		}
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, text))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	confirmed, err := t.service.Reconcile(ctx, userID)
	if err != nil {
		t.log.Warn("tag left pending", zap.Int64("user_id", userID), zap.String("tag", ref.Name()), zap.Error(err))
	}

	for _, c := range confirmed {
		if strings.EqualFold(c.Name(), ref.Name()) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "✅ Tag created: "+c.Name()))
			return
		}
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID,
		"⏳ Tag saved as pending: "+ref.Name()+". It will be created with the next /tags."))
}
