package main

import (
	"fmt"

	"github.com/chen-yiru/Vocabulary-review/internal/client"
	"github.com/chen-yiru/Vocabulary-review/internal/config"
	"github.com/chen-yiru/Vocabulary-review/internal/repository"
	"github.com/chen-yiru/Vocabulary-review/internal/service"
	"github.com/chen-yiru/Vocabulary-review/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once the config is loaded.
type app struct {
	configDir string
	cfg       *config.Config
	log       *zap.Logger
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vocareview",
		Short:         "Review and browse a personal vocabulary catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Init(a.configDir)
			if err != nil {
				return fmt.Errorf("failed load config: %w", err)
			}
			a.cfg = cfg
			a.log = setupLogger(cfg.Env)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "configs", "directory holding <CONFIG_NAME>.yaml")

	root.AddCommand(
		newBotCmd(a),
		newReviewCmd(a),
		newListCmd(a),
	)

	return root
}

// services wires the catalog client and, when withJournal is set, the
// Postgres journal. The returned close func releases the database.
func (a *app) services(withJournal bool) (*service.Service, func(), error) {
	api, err := client.InitClients(a.cfg.Catalog, a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed init catalog client: %w", err)
	}

	if !withJournal {
		return service.InitServices(api, nil, a.cfg.Review.ReviewType, a.log), func() {}, nil
	}

	conn, err := db.InitDB(a.cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed init db: %w", err)
	}

	repos := repository.NewRepository(conn)

	return service.InitServices(api, repos, a.cfg.Review.ReviewType, a.log), closeDB(conn, a.log), nil
}

func closeDB(conn *sqlx.DB, log *zap.Logger) func() {
	return func() {
		if err := conn.Close(); err != nil {
			log.Warn("failed close db", zap.Error(err))
		}
	}
}
