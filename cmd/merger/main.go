package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"schedule_merger/internal/config"
	"schedule_merger/internal/publisher"
	"schedule_merger/internal/scheduler"
	"schedule_merger/internal/service"
	"schedule_merger/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	sourceFilter := flag.String("source", "", "merge only this source")
	rebuild := flag.Bool("rebuild", false, "replay all historical observations once and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	observationStore := postgres.NewObservationStore(db)
	classStore := postgres.NewClassStore(db)
	runStore := postgres.NewRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	sources := cfg.Merge.Sources
	if *sourceFilter != "" {
		sources = []string{*sourceFilter}
	}

	mergers := make([]*service.MergeService, 0, len(sources))
	for _, src := range sources {
		mergers = append(mergers, service.NewMergeService(
			src,
			observationStore,
			classStore,
			runStore,
			txManager,
			rabbitMQ,
			logger,
			cfg.Merge,
		))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *rebuild {
		for _, m := range mergers {
			logger.Info("rebuilding canonical table", "source", m.Source())
			if _, err := m.Rebuild(ctx); err != nil {
				logger.Error("rebuild failed", "source", m.Source(), "error", err)
				os.Exit(1)
			}
		}
		return
	}

	scheduled := make([]scheduler.Merger, len(mergers))
	for i, m := range mergers {
		scheduled[i] = m
	}

	sched := scheduler.NewScheduler(scheduled, cfg.Merge.Interval, logger)

	logger.Info("starting schedule merger",
		"sources", sources,
		"interval", cfg.Merge.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
