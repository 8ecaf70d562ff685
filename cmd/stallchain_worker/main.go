package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/jobs"
	"github.com/SscSPs/stallchain/internal/platform/cache"
	"github.com/SscSPs/stallchain/internal/platform/config"
	"github.com/SscSPs/stallchain/internal/repositories/database/pgsql"
	"github.com/SscSPs/stallchain/pkg/database"
	"github.com/hibiken/asynq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.RedisURL == "" {
		return errors.New("REDIS_URL is required to run the worker")
	}
	redisOpts, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	redisClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	repos.DeliveryZoneRepo = cache.NewZoneRepository(repos.DeliveryZoneRepo, redisClient, cfg.ZoneCacheTTL)

	queue := asynq.NewClientFromRedisClient(redisClient)
	serviceContainer := services.NewServiceContainer(cfg, repos, nil,
		services.WithClock(func() time.Time { return time.Now().In(cfg.Location) }),
		services.WithNotifier(jobs.NewMailNotifier(queue, cfg.NotifyEmail, cfg.Location)),
	)

	var mailer jobs.Mailer
	if cfg.SMTP.Enabled() {
		mailer = jobs.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		logger.Warn("SMTP_HOST not set: mails will be logged and dropped")
	}
	taskHandlers := jobs.NewHandlers(serviceContainer.Inventory, serviceContainer.Expense, mailer, logger)

	refreshTask, err := jobs.NewRefreshBatchesTask()
	if err != nil {
		return err
	}
	recurringTask, err := jobs.NewAdvanceRecurringTask()
	if err != nil {
		return err
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   redisOpts,
		Logger:      logger,
		Concurrency: cfg.Scheduler.Concurrency,
		Location:    cfg.Location,
		Handlers:    taskHandlers.TaskHandlers(),
		Cron: []jobs.CronRegistration{
			{Spec: cfg.Scheduler.BatchRefreshSpec, Task: refreshTask, Options: []asynq.Option{asynq.MaxRetry(3), asynq.Unique(30 * time.Minute)}},
			{Spec: cfg.Scheduler.RecurringExpenseSpec, Task: recurringTask, Options: []asynq.Option{asynq.MaxRetry(3), asynq.Unique(time.Hour)}},
		},
	})
	if err != nil {
		return err
	}

	logger.Info("Worker starting", slog.Int("concurrency", cfg.Scheduler.Concurrency))
	return worker.Run(ctx)
}
