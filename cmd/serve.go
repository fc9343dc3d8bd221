package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "keyword-dashboard/internal/adapter/http"
	"keyword-dashboard/internal/adapter/postgres"
	redisadapter "keyword-dashboard/internal/adapter/redis"
	"keyword-dashboard/internal/adapter/usecase"
	"keyword-dashboard/internal/core/port"
	"keyword-dashboard/internal/db"
	"keyword-dashboard/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	poolStats := metrics.NewPoolStatsCollector(pool)
	poolStats.Start(15 * time.Second)
	defer poolStats.Stop()

	var notifier port.ChangeNotifier
	if cfg.Redis.Enabled() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		notifier = redisadapter.NewChangeNotifier(rdb, cfg.Redis.Channel)
		logger.Info("publishing status changes", slog.String("channel", cfg.Redis.Channel))
	}

	svc := usecase.NewKeywordUseCase(
		postgres.NewKeywordRepository(pool),
		postgres.NewDirectoryRepository(pool),
		notifier,
		logger,
	)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.WithRequestTimeout(cfg.HTTP.RequestTimeout))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
