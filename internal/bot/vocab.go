package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/chen-yiru/Vocabulary-review/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	listCallbackPrefix = "vl_"

	callbackPrevPage = "vl_prev"
	callbackNextPage = "vl_next"
)

type VocabSI interface {
	Items(ctx context.Context, q query.Query) (string, models.ItemPage, error)
	History(ctx context.Context, vocabularyID int64) (string, error)
}

type listSI interface {
	VocabSI
	FilterIDs(ctx context.Context, userID int64, names []string) ([]int64, []string, error)
}

type VocabT struct {
	bot     BotSender
	cache   *cache.Cache
	service listSI
	opts    Options
	log     *zap.Logger
}

func NewVocabTAPI(bot BotSender, cache *cache.Cache, service listSI, opts Options, log *zap.Logger) *VocabT {
	return &VocabT{
		bot:     bot,
		cache:   cache,
		service: service,
		opts:    opts,
		log:     log,
	}
}

// showList applies the /list arguments to the user's pager and sends the
// resulting page.
func (t *VocabT) showList(message *tgbotapi.Message, userID int64, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	parsed, err := parseListArgs(args)
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ "+err.Error()+"\nSee /help for the filter syntax.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	pager := t.cache.Pager(userID, t.opts.PageSize)
	if parsed.reset {
		pager.ResetFilters()
	}

	var notice string
	var tagIDs []int64
	if parsed.hasTags && len(parsed.tags) > 0 {
		ids, skipped, err := t.service.FilterIDs(ctx, userID, parsed.tags)
		if err != nil {
			t.log.Error("failed to resolve tags", zap.Int64("user_id", userID), zap.Error(err))
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load tags")
			sendMessage(t.bot, t.log, msg)
			return
		}
		tagIDs = ids
		if len(skipped) > 0 {
			notice = fmt.Sprintf("⚠️ Ignored unknown or pending tags: %s\n\n", strings.Join(skipped, ", "))
		}
	}

	if parsed.changesFilter() {
		pager.UpdateFilters(func(f *models.FilterSpec) {
			for _, patch := range parsed.patches {
				patch(f)
			}
			if parsed.hasTags {
				f.TagIDs = tagIDs
			}
		})
	}
	if parsed.size > 0 {
		pager.SetSize(parsed.size)
	}

	text, page, err := t.service.Items(ctx, pager.Query())
	if err != nil {
		t.log.Error("failed to load vocabulary", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load vocabulary")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, notice+text)
	msg.ReplyMarkup = t.paginationKeyboard(page)
	sendMessage(t.bot, t.log, msg)
}

func (t *VocabT) handlePagination(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback without message", zap.Int64("user_id", query.From.ID))
		return
	}
	userID := query.From.ID

	pager := t.cache.Pager(userID, t.opts.PageSize)
	current := pager.Page().Page

	switch query.Data {
	case callbackPrevPage:
		pager.SetPage(current - 1)
	case callbackNextPage:
		pager.SetPage(current + 1)
	default:
		t.log.Warn("unknown list callback", zap.String("data", query.Data))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	text, page, err := t.service.Items(ctx, pager.Query())
	if err != nil {
		pager.SetPage(current)
		t.log.Error("failed to load vocabulary page", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Failed to load vocabulary")
		sendMessage(t.bot, t.log, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	editMsg.ReplyMarkup = t.paginationKeyboard(page)

	sendMessage(t.bot, t.log, editMsg)
}

func (t *VocabT) paginationKeyboard(page models.ItemPage) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	if page.HasPrev() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", callbackPrevPage))
	}

	if page.HasNext() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", callbackNextPage))
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func (t *VocabT) showHistory(message *tgbotapi.Message, args string) {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil || id <= 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Usage: /history <item id>")
		sendMessage(t.bot, t.log, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.opts.Timeout)
	defer cancel()

	text, err := t.service.History(ctx, id)
	switch {
	case errors.Is(err, models.ErrNotFound):
		text = fmt.Sprintf("❌ Item %d not found", id)
	case err != nil:
		t.log.Error("failed to load history", zap.Int64("vocabulary_id", id), zap.Error(err))
		text = "❌ Failed to load review history"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	sendMessage(t.bot, t.log, msg)
}

// dropPager forgets the user's filters and page.
func (t *VocabT) dropPager(userID int64) {
	t.cache.DeletePager(userID)
}
