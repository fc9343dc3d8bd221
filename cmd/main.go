package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"keyword-dashboard/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd is the keyword dashboard server. Configuration comes from the
// environment; see the config package.
var rootCmd = &cobra.Command{
	Use:           "keyword-dashboard",
	Short:         "Keyword management dashboard for advertising campaigns",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger = newLogger(cfg)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger initialises the structured logger based on configuration.
func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
}
