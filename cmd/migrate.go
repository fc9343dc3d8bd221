package main

import (
	"github.com/spf13/cobra"

	"keyword-dashboard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}
