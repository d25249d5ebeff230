package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "REMINDER_INTERVAL_SECONDS", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "AUTH_USERNAME", "AUTH_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "studyplanner.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ReminderInterval != 30*time.Second {
		t.Errorf("ReminderInterval = %v", cfg.ReminderInterval)
	}
	if cfg.AuthUsername != "admin" || cfg.AuthPassword != "admin" {
		t.Errorf("demo credential = %q/%q", cfg.AuthUsername, cfg.AuthPassword)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "/tmp/p.db")
	t.Setenv("REMINDER_INTERVAL_SECONDS", "5")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "/tmp/p.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ReminderInterval != 5*time.Second {
		t.Errorf("ReminderInterval = %v", cfg.ReminderInterval)
	}
	if cfg.TelegramChatID != 42 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("REMINDER_INTERVAL_SECONDS", "-3")
	t.Setenv("TELEGRAM_CHAT_ID", "not a number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReminderInterval != 30*time.Second {
		t.Errorf("ReminderInterval = %v, want default", cfg.ReminderInterval)
	}
	if cfg.TelegramChatID != 0 {
		t.Errorf("TelegramChatID = %d, want 0", cfg.TelegramChatID)
	}
}
