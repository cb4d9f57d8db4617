package main

import (
	"github.com/hireloop/identity/internal/config"
	"github.com/hireloop/identity/pkg/log"
	"github.com/hireloop/identity/pkg/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		_, flush := log.Setup(cfg.Service.LogLevel)
		defer flush()

		zap.S().Info("Starting db migration")
		defer zap.S().Info("Db migrated")

		if cfg.Database.Type != "pgsql" {
			zap.S().Infow("skipping sql migrations", "type", cfg.Database.Type)
			return nil
		}

		if err := migrations.MigrateStore(cfg.PostgresDSN(), cfg.Service.MigrationFolder); err != nil {
			zap.S().Fatalw("running migrations", "error", err)
		}

		return nil
	},
}
