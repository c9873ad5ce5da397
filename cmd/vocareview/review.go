package main

import (
	"os"
	"os/signal"

	"github.com/chen-yiru/Vocabulary-review/internal/input"
	"github.com/chen-yiru/Vocabulary-review/internal/session"
	"github.com/chen-yiru/Vocabulary-review/internal/terminal"
	"github.com/spf13/cobra"
)

// localUserID keys the journal rows written from the terminal.
const localUserID int64 = 0

func newReviewCmd(a *app) *cobra.Command {
	var (
		itemID    int64
		noJournal bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review due items in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, closeFn, err := a.services(!noJournal)
			if err != nil {
				return err
			}
			defer closeFn()

			req := session.DueQueue()
			if cmd.Flags().Changed("id") {
				req = session.SingleItem(itemID)
			}

			engine := services.NewSession(localUserID)
			adapter := input.NewAdapter(engine, a.cfg.Review.RepeatWindow, a.log.Named("input"))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return terminal.NewShell(engine, adapter, cmd.InOrStdin(), cmd.OutOrStdout(), a.log).Run(ctx, req)
		},
	}

	cmd.Flags().Int64Var(&itemID, "id", 0, "review only this item, due or not")
	cmd.Flags().BoolVar(&noJournal, "no-journal", false, "do not record results in the local database")

	return cmd
}
