package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"studyplanner/internal/config"
	"studyplanner/internal/notify"
	"studyplanner/internal/planner"
	"studyplanner/internal/repository"
	"studyplanner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	store := repository.NewSlotRepository(db, logger)
	plan := planner.New(store, logger)
	plan.Load()

	sinks := notify.Multi{notify.NewLogNotifier(logger)}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal("telegram", zap.Error(err))
		}
		sinks = append(sinks, tg)
	}

	engine := service.NewReminderEngine(plan, sinks, cfg.ReminderInterval, logger)
	if err := engine.Start(); err != nil {
		logger.Fatal("start reminder engine", zap.Error(err))
	}
	defer engine.Stop()

	logger.Info("study planner started")
	<-ctx.Done()
	logger.Info("shutdown complete")
}
