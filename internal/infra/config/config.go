package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultAssets is the fallback favourites list used for chats and
// notification fires before any subscriber has registered favourites.
// Overridable via DEFAULT_ASSETS.
var defaultAssets = []string{
	"bitcoin",
	"ethereum",
	"polkadot",
	"near-protocol",
	"litecoin",
	"cosmos",
	"xrp",
	"solana",
	"dash",
	"cardano",
	"mina",
	"helium",
	"polygon",
}

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken         string
	DatabaseURL           string
	CoinAPIURL            string
	CoinAPITimeout        time.Duration
	DefaultChatID         int64
	DefaultAssets         []string
	NotificationsCronSpec string
	LogLevel              string
	Environment           string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables; errors are
	// ignored when no .env file exists.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	defaultChatIDStr := os.Getenv("DEFAULT_CHAT_ID")
	if defaultChatIDStr == "" {
		return nil, fmt.Errorf("DEFAULT_CHAT_ID is not set")
	}
	cfg.DefaultChatID, err = strconv.ParseInt(defaultChatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CHAT_ID: %w", err)
	}

	cfg.CoinAPIURL = os.Getenv("COIN_API_URL")
	if cfg.CoinAPIURL == "" {
		cfg.CoinAPIURL = "https://api.coincap.io"
	}

	timeoutStr := os.Getenv("COIN_API_TIMEOUT_SEC")
	if timeoutStr == "" {
		cfg.CoinAPITimeout = 15 * time.Second
	} else {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid COIN_API_TIMEOUT_SEC: %q", timeoutStr)
		}
		cfg.CoinAPITimeout = time.Duration(seconds) * time.Second
	}

	cfg.DefaultAssets = defaultAssets
	if assetsStr := os.Getenv("DEFAULT_ASSETS"); assetsStr != "" {
		cfg.DefaultAssets = nil
		for _, id := range strings.Split(assetsStr, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.DefaultAssets = append(cfg.DefaultAssets, id)
			}
		}
		if len(cfg.DefaultAssets) == 0 {
			return nil, fmt.Errorf("DEFAULT_ASSETS contains no asset ids")
		}
	}

	cfg.NotificationsCronSpec = os.Getenv("NOTIFICATIONS_CRON_SPEC")
	if cfg.NotificationsCronSpec == "" {
		cfg.NotificationsCronSpec = "0 0,12 * * *" // Default: noon and midnight, local time
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
