package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/chen-yiru/Vocabulary-review/internal/bot"
	"github.com/chen-yiru/Vocabulary-review/internal/storage/cache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.BotToken == "" {
				return errors.New("bot_token is required (set BOT_TOKEN)")
			}

			services, closeFn, err := a.services(true)
			if err != nil {
				return err
			}
			defer closeFn()

			handler, err := bot.NewTelegramAPI(a.cfg.BotToken, a.cfg.Env, services, cache.NewCache(), bot.Options{
				Timeout:      a.cfg.App.Timeout,
				RepeatWindow: a.cfg.Review.RepeatWindow,
				PageSize:     a.cfg.List.PageSize,
			}, a.log.Named("bot"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("bot started")
			handler.Start(ctx)
			a.log.Info("bot stopped", zap.Error(context.Cause(ctx)))

			return nil
		},
	}
}
