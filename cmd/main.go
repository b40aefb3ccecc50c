package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/bot"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/config"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/repository"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/service"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/storage/cache"
	"github.com/tranquocan24/FlashcardLearning-sub000/internal/storage/db"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	services := service.InitServices(repos, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
