package bot

import (
	"context"
	"sync"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go

type ServiceI interface {
	ReviewSI
	VocabSI
	StatsSI
	TagSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	Timeout      time.Duration
	RepeatWindow time.Duration
	PageSize     int
}

type TelegramAPI struct {
	bot    *tgbotapi.BotAPI
	sender BotSender
	review *ReviewT
	vocab  *VocabT
	stats  *StatsT
	log    *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, opts Options, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &TelegramAPI{
		bot:    bot,
		sender: bot,
		review: NewReviewTAPI(bot, cache, service, opts, log),
		vocab:  NewVocabTAPI(bot, cache, service, opts, log),
		stats:  NewStatsTAPI(bot, service, opts, log),
		log:    log,
	}, nil
}

// Start polls for updates until ctx is done. Updates are handled
// concurrently; each user's engine serializes its own commands.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.handleUpdate(update)
			}()
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) (tgbotapi.Message, bool) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return tgbotapi.Message{}, false
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
	return sentMsg, true
}

func answerCallback(bot BotSender, log *zap.Logger, queryID, text string) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = false
	if _, err := bot.Request(callback); err != nil {
		log.Warn("failed to answer callback", zap.Error(err))
	}
}
