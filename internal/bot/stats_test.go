package bot

import (
	"errors"
	"testing"

	mock_bot "github.com/chen-yiru/Vocabulary-review/internal/bot/mock"
	"github.com/chen-yiru/Vocabulary-review/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStatsTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*StatsT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	return NewStatsTAPI(mockBot, mockService, testOptions, zap.NewNop()), mockBot
}

func sentText(t *testing.T, mb *mock_bot.MockBot, i int) string {
	t.Helper()

	require.Greater(t, len(mb.SentMessages), i)
	msg, ok := mb.SentMessages[i].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg.Text
}

func TestStatsT_sendDashboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_bot.MockServiceI)
		want string
	}{
		{
			name: "success",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().DashboardText(gomock.Any(), int64(456)).Return("⏰ Due now: 3", nil)
			},
			want: "⏰ Due now: 3",
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().DashboardText(gomock.Any(), int64(456)).Return("", errors.New("down"))
			},
			want: "❌ Failed to load statistics",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stats, mb := newStatsTMock(t, ctrl, tt.f)
			stats.sendDashboard(testMessage("/stats"), 456)

			assert.Equal(t, tt.want, sentText(t, mb, 0))
		})
	}
}

func TestStatsT_sendTags(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats, mb := newStatsTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().TagsText(gomock.Any(), int64(456)).Return("🏷 Tags:\n• gre", nil)
	})
	stats.sendTags(testMessage("/tags"), 456)

	assert.Equal(t, "🏷 Tags:\n• gre", sentText(t, mb, 0))
}

func TestStatsT_addTag(t *testing.T) {
	t.Parallel()

	pending := models.PendingTag("verbs")

	tests := []struct {
		name string
		tag  string
		f    func(*mock_bot.MockServiceI)
		want string
	}{
		{
			name: "created",
			tag:  "verbs",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddPending(int64(456), "verbs").Return(pending, nil)
				ms.EXPECT().Reconcile(gomock.Any(), int64(456)).
					Return([]models.TagRef{pending.Confirm(models.Tag{ID: 3, Name: "verbs"})}, nil)
			},
			want: "✅ Tag created: verbs",
		},
		{
			name: "left pending",
			tag:  "verbs",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddPending(int64(456), "verbs").Return(pending, nil)
				ms.EXPECT().Reconcile(gomock.Any(), int64(456)).Return(nil, errors.New("offline"))
			},
			want: "⏳ Tag saved as pending: verbs. It will be created with the next /tags.",
		},
		{
			name: "missing name",
			tag:  "",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddPending(int64(456), "").Return(models.TagRef{}, &models.ValidationError{Message: "tag name is required"})
			},
			want: "❌ Usage: /newtag <name>",
		},
		{
			name: "duplicate",
			tag:  "verbs",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().AddPending(int64(456), "verbs").Return(models.TagRef{}, errors.New(`"verbs": tag already exists`))
			},
			want: `❌ "verbs": tag already exists`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stats, mb := newStatsTMock(t, ctrl, tt.f)
			stats.addTag(testMessage("/newtag "+tt.tag), 456, tt.tag)

			require.Len(t, mb.SentMessages, 1)
			assert.Equal(t, tt.want, sentText(t, mb, 0))
		})
	}
}
