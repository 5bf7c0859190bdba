package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InsYst3m/notification-telegram-bot/internal/app"
	"github.com/InsYst3m/notification-telegram-bot/internal/infra/coincap"
	"github.com/InsYst3m/notification-telegram-bot/internal/infra/config"
	idb "github.com/InsYst3m/notification-telegram-bot/internal/infra/database"
	"github.com/InsYst3m/notification-telegram-bot/internal/infra/logger"
	"github.com/InsYst3m/notification-telegram-bot/internal/infra/scheduler"
	itg "github.com/InsYst3m/notification-telegram-bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Notification Telegram Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	baseLogger := logger.Get().WithField("app", "notification-telegram-bot")
	baseLogger.WithFields(logrus.Fields{
		"environment":    cfg.Environment,
		"coin_api_url":   cfg.CoinAPIURL,
		"cron_spec":      cfg.NotificationsCronSpec,
		"default_assets": len(cfg.DefaultAssets),
	}).Info("Configuration loaded")

	// Database and repositories
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		baseLogger.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()
	baseLogger.Info("Database connection established")

	subscriberRepo := idb.NewPostgresSubscriberRepository(db)

	// Upstream price API and application services
	coinClient := coincap.NewClient(cfg.CoinAPIURL, cfg.CoinAPITimeout)
	assetService := app.NewAssetService(coinClient, subscriberRepo, cfg.DefaultAssets)
	messageProvider := app.NewMessageProvider()

	// Telegram bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := baseLogger.WithError(err)
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram update handling failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		baseLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	telegramClient := itg.NewTelebotAdapter(bot)
	dispatcher := app.NewDispatcher(
		assetService,
		messageProvider,
		telegramClient,
		baseLogger.WithField("component", "dispatcher"),
	)
	notificationService := app.NewNotificationService(
		assetService,
		messageProvider,
		telegramClient,
		subscriberRepo,
		baseLogger.WithField("component", "notifications"),
		cfg.DefaultChatID,
	)

	notifScheduler := scheduler.NewNotificationScheduler(
		notificationService,
		baseLogger.WithField("component", "scheduler"),
		cfg.NotificationsCronSpec,
	)
	if err := notifScheduler.Start(); err != nil {
		baseLogger.WithError(err).Fatal("Could not start notification scheduler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	itg.RegisterHandlers(ctx, bot, dispatcher, baseLogger.WithField("component", "telegram"))
	baseLogger.Info("Command handlers registered")

	go bot.Start()
	baseLogger.Info("Application setup complete. Bot and scheduler are running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLogger.Info("Shutting down application...")
	cancel()
	bot.Stop()
	notifScheduler.Stop()
	baseLogger.Info("Application shut down gracefully")
}
