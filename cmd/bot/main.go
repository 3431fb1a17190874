package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"homework-bot/internal/bot/commands"
	"homework-bot/internal/bot/notifier"
	"homework-bot/internal/config"
	"homework-bot/internal/db"
	"homework-bot/internal/monitor"
	"homework-bot/internal/practicum"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.Load()
	logger := setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *db.DB
	if cfg.MongoDBURI != "" {
		var err error
		store, err = db.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = store.Close(closeCtx)
		}()
		logger.Info("notification history enabled", slog.String("database", cfg.DatabaseName))
	}

	b, err := gotgbot.NewBot(cfg.TelegramToken, nil)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	client := practicum.NewClient(cfg.PracticumToken, cfg.Endpoint, cfg.RequestTimeout)

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			logger.Error("error processing update", slog.String("error", err.Error()))
			return ext.DispatcherActionNoop
		},
	})
	updater := ext.NewUpdater(dispatcher, nil)

	cmdHandler := commands.NewCommandHandler(cfg, client, store)
	dispatcher.AddHandler(handlers.NewCommand("start", cmdHandler.Start))
	dispatcher.AddHandler(handlers.NewCommand("help", cmdHandler.Help))
	dispatcher.AddHandler(handlers.NewCommand("status", cmdHandler.Status))
	dispatcher.AddHandler(handlers.NewCommand("history", cmdHandler.History))

	go func() {
		err := updater.StartPolling(b, &ext.PollingOpts{
			DropPendingUpdates: true,
			GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
				Timeout: 9,
				RequestOpts: &gotgbot.RequestOpts{
					Timeout: time.Second * 10,
				},
			},
		})
		if err != nil {
			log.Fatalf("Failed to start polling: %v", err)
		}
	}()

	logger.Info("bot started", slog.String("username", b.User.Username))

	n := notifier.New(b, cfg.ChatID, logger)

	var history monitor.History
	if store != nil {
		history = store
	}

	m := monitor.New(client, n, history, cfg.PollInterval, logger)
	m.Run(ctx)

	_ = updater.Stop()
	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: lvl,
	}))
	slog.SetDefault(logger)

	return logger
}
