package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"keyword-dashboard/internal/db"
)

var seedKeywords int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo campaigns, ad groups and keywords",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err = db.Seed(cmd.Context(), pool, seedKeywords); err != nil {
			return err
		}
		logger.Info("seed data inserted", slog.Int("keywords_per_campaign", seedKeywords))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedKeywords, "keywords", "n", 20, "Keywords to generate per campaign")
}
