package bot

import (
	"errors"
	"testing"

	mock_bot "github.com/chen-yiru/Vocabulary-review/internal/bot/mock"
	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/chen-yiru/Vocabulary-review/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVocabTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*VocabT, *mock_bot.MockBot, *cache.Cache) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	c := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewVocabTAPI(mockBot, c, mockService, testOptions, zap.NewNop()), mockBot, c
}

func TestVocabT_showList(t *testing.T) {
	t.Parallel()

	hard := true

	tests := []struct {
		name       string
		args       []string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "default listing",
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().Items(gomock.Any(), query.Query{{Key: "page", Value: "1"}, {Key: "size", Value: "2"}}).
					Return("page text", models.ItemPage{Page: 1, PageCount: 3, Total: 5}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "page text", msg.Text)
				assert.Equal(t, []string{callbackNextPage, "main_menu"}, keyboardData(t, msg.ReplyMarkup))
			},
		},
		{
			name: "filters with tags",
			args: []string{"search=ap", "hard=true", "tag=gre,draft"},
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().FilterIDs(gomock.Any(), int64(456), []string{"gre", "draft"}).Return([]int64{4}, []string{"draft"}, nil)
				want := query.Compose(models.FilterSpec{Search: "ap", IsHard: &hard, TagIDs: []int64{4}}, &models.PageSpec{Page: 1, Size: 2})
				ms.EXPECT().Items(gomock.Any(), want).Return("page text", models.ItemPage{Page: 1, PageCount: 1}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Ignored unknown or pending tags: draft")
				assert.Equal(t, []string{"main_menu"}, keyboardData(t, msg.ReplyMarkup))
				assert.Equal(t, []int64{4}, c.Pager(456, 2).Filters().TagIDs)
			},
		},
		{
			name: "bad argument",
			args: []string{"colour=red"},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, `unknown filter "colour"`)
			},
		},
		{
			name: "catalog error",
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().Items(gomock.Any(), gomock.Any()).Return("", models.ItemPage{}, errors.New("down"))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, _ *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Failed to load vocabulary", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			vocab, mb, c := newVocabTMock(t, ctrl, tt.f)

			vocab.showList(testMessage("/list"), 456, tt.args)

			tt.assertFunc(t, mb, c)
		})
	}
}

func TestVocabT_FilterChangeResetsPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vocab, _, c := newVocabTMock(t, ctrl, func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
		ms.EXPECT().Items(gomock.Any(), gomock.Any()).Return("text", models.ItemPage{Page: 1, PageCount: 1}, nil).AnyTimes()
	})

	pager := c.Pager(456, 2)
	pager.SetPage(3)

	vocab.showList(testMessage("/list"), 456, nil)
	assert.Equal(t, 3, pager.Page().Page)

	vocab.showList(testMessage("/list"), 456, []string{"letter=b"})
	assert.Equal(t, 1, pager.Page().Page)
	assert.Equal(t, "b", pager.Filters().Letter)

	pager.SetPage(2)
	vocab.showList(testMessage("/list"), 456, []string{"size=5"})
	assert.Equal(t, models.PageSpec{Page: 1, Size: 5}, pager.Page())

	vocab.showList(testMessage("/list"), 456, []string{"reset"})
	assert.Equal(t, models.FilterSpec{}, pager.Filters())
}

func TestVocabT_handlePagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vocab, mb, c := newVocabTMock(t, ctrl, func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
		gomock.InOrder(
			ms.EXPECT().Items(gomock.Any(), query.Query{{Key: "page", Value: "2"}, {Key: "size", Value: "2"}}).
				Return("page two", models.ItemPage{Page: 2, PageCount: 3}, nil),
			ms.EXPECT().Items(gomock.Any(), query.Query{{Key: "page", Value: "3"}, {Key: "size", Value: "2"}}).
				Return("", models.ItemPage{}, errors.New("down")),
		)
	})

	vocab.handlePagination(testCallback(callbackNextPage, 7))
	require.Len(t, mb.SentMessages, 1)
	edit, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 7, edit.MessageID)
	assert.Equal(t, "page two", edit.Text)
	assert.Equal(t, []string{callbackPrevPage, callbackNextPage, "main_menu"}, keyboardData(t, edit.ReplyMarkup))

	vocab.handlePagination(testCallback(callbackNextPage, 7))
	assert.Equal(t, 2, c.Pager(456, 2).Page().Page, "failed fetch keeps the page")
}

func TestVocabT_showHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     string
		f        func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantText string
	}{
		{
			name: "success",
			args: "7",
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().History(gomock.Any(), int64(7)).Return("history text", nil)
			},
			wantText: "history text",
		},
		{
			name:     "bad id",
			args:     "seven",
			wantText: "❌ Usage: /history <item id>",
		},
		{
			name: "not found",
			args: "7",
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().History(gomock.Any(), int64(7)).Return("", &models.NotFoundError{Resource: "vocabulary", ID: 7})
			},
			wantText: "❌ Item 7 not found",
		},
		{
			name: "catalog error",
			args: "7",
			f: func(ms *mock_bot.MockServiceI, _ *mock_bot.MockBot) {
				ms.EXPECT().History(gomock.Any(), int64(7)).Return("", errors.New("refused"))
			},
			wantText: "❌ Failed to load review history",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, mb, _ := newVocabTMock(t, ctrl, tt.f)

			handler.showHistory(testMessage("/history "+tt.args), tt.args)

			require.Len(t, mb.SentMessages, 1)
			msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, msg.Text)
		})
	}
}
