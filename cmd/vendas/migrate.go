package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/config"
	"github.com/MikeMC777/vendas-whatsapp/internal/database"
	"github.com/MikeMC777/vendas-whatsapp/internal/logger"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate up|down|version",
		Short:     "Apply, roll back or inspect the schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(opts.envFile)
			log := logger.New(cfg.LogLevel, cfg.LogFormat)
			defer func() { _ = log.Sync() }()

			mg, err := database.NewMigrator(cfg.PostgresDSN, log)
			if err != nil {
				log.Error("migrator", zap.Error(err))
				return err
			}
			defer func() { _ = mg.Close() }()

			switch args[0] {
			case "up":
				return mg.Up()
			case "down":
				return mg.Down()
			default:
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d dirty=%t\n", v, dirty)
				return nil
			}
		},
	}
	return cmd
}
