package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabaseURL      string
	ReminderInterval time.Duration
	TelegramToken    string
	TelegramChatID   int64
	AuthUsername     string
	AuthPassword     string
}

// Load reads configuration from environment variables with sane
// defaults. A .env file in the working directory is honored if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReminderInterval: parseSeconds(strings.TrimSpace(os.Getenv("REMINDER_INTERVAL_SECONDS"))),
		TelegramToken:    strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		TelegramChatID:   parseChatID(strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))),
		AuthUsername:     strings.TrimSpace(os.Getenv("AUTH_USERNAME")),
		AuthPassword:     os.Getenv("AUTH_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "studyplanner.db"
	}

	if cfg.ReminderInterval == 0 {
		cfg.ReminderInterval = 30 * time.Second
	}

	if cfg.AuthUsername == "" {
		cfg.AuthUsername = "admin"
	}
	if cfg.AuthPassword == "" {
		cfg.AuthPassword = "admin"
	}

	return cfg, nil
}

func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func parseChatID(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
