package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/svarno/svarno_backend/internal/core/services"
	"github.com/svarno/svarno_backend/internal/events"
	"github.com/svarno/svarno_backend/internal/platform/config"
	"github.com/svarno/svarno_backend/internal/repositories/database/pgsql"
	"github.com/svarno/svarno_backend/internal/worker"
	"github.com/svarno/svarno_backend/pkg/database"
)

// insights_worker consumes ledger events and keeps each user's budget alerts current.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the insights worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	insights := services.NewInsightService(repos.TransactionRepo, repos.BudgetRepo, repos.DashboardRepo)

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close()

	logger.Info("Insights worker started", slog.String("queue", cfg.AMQPQueue))
	if err := worker.NewInsightsWorker(insights, client).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Insights worker stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Insights worker stopped gracefully")
}
