package main

import (
	"go.uber.org/zap"

	"github.com/mtharrison/fitlog/backend/config"
	"github.com/mtharrison/fitlog/backend/internal/database"
	"github.com/mtharrison/fitlog/backend/internal/logger"
)

func main() {
	log := logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations applied")
}
