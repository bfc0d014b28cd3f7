package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"utopian_syncer/internal/config"
	"utopian_syncer/internal/pool"
	"utopian_syncer/internal/publisher"
	"utopian_syncer/internal/service"
	"utopian_syncer/internal/source/gsheets"
	"utopian_syncer/internal/source/sheet"
	"utopian_syncer/internal/source/steem"
	"utopian_syncer/internal/storage/mongodb"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	update := flag.Bool("update", true, "sync only the current and previous review weeks plus the unreviewed page; pass -update=false for full history")
	banned := flag.Bool("banned", false, "print banned users as JSON lines and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	epoch, err := cfg.Sync.EpochDate()
	if err != nil {
		logger.Error("invalid sync epoch", "error", err)
		os.Exit(1)
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

	sheets := gsheets.New(gsheets.Config{
		BaseURL:        cfg.Sheets.BaseURL,
		APIKey:         cfg.Sheets.APIKey,
		SpreadsheetID:  cfg.Sheets.SpreadsheetID,
		Timeout:        cfg.Sheets.Timeout,
		MaxAttempts:    cfg.Sheets.Retry.MaxAttempts,
		InitialBackoff: cfg.Sheets.Retry.InitialBackoff,
		MaxBackoff:     cfg.Sheets.Retry.MaxBackoff,
	}, logger)

	content := steem.New(steem.Config{
		NodeURL:  cfg.Steem.NodeURL,
		Timeout:  cfg.Steem.Timeout,
		RetryMax: cfg.Steem.RetryMax,
	}, logger)

	workers := pool.New(cfg.Sync.Workers)

	source := sheet.New(sheets, content, workers, logger, sheet.Config{
		Epoch:   epoch,
		Curator: cfg.Steem.CuratorAccount,
	})

	if *banned {
		if err := printBannedUsers(ctx, source); err != nil {
			logger.Error("failed to list banned users", "error", err)
			os.Exit(1)
		}
		return
	}

	db, err := mongodb.Connect(ctx, mongodb.Config{
		Host:       cfg.Mongo.Host,
		DBName:     cfg.Mongo.DBName,
		Username:   cfg.Mongo.Username,
		Password:   cfg.Mongo.Password,
		AuthSource: cfg.Mongo.AuthSource,
	})
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()
	logger.Info("connected to mongodb", "db", cfg.Mongo.DBName, "collection", cfg.Mongo.Collection)

	store := mongodb.NewContributionStore(db, cfg.Mongo.Collection)
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
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
		events = rabbitMQ
	}

	syncService := service.NewSyncService(source, store, events, workers, logger)

	logger.Info("starting contribution syncer",
		"epoch", cfg.Sync.Epoch,
		"workers", cfg.Sync.Workers,
		"incremental", *update,
	)

	// Isolated task failures are reported in the summary and its log lines;
	// the process still exits 0 so batch jobs are not blocked by bad rows.
	summary := syncService.Run(ctx, !*update)
	if summary.Failed() {
		logger.Warn("run finished with failures",
			"row_errors", summary.RowErrors,
			"week_errors", summary.WeekErrors,
			"store_errors", summary.StoreErrors,
			"publish_errors", summary.PublishErrors,
		)
	}
}

func printBannedUsers(ctx context.Context, source *sheet.Source) error {
	users, err := source.WatchedUsers(ctx, true)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	for i := range users {
		if err := enc.Encode(&users[i]); err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
	}
	return nil
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
