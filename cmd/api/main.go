package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mtharrison/fitlog/backend/config"
	"github.com/mtharrison/fitlog/backend/internal/database"
	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/server"
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
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Rate limiting degrades gracefully when Redis is unavailable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Warn("redis unavailable, record writes will not be rate limited", zap.Error(err))
		redisClient = nil
	}

	srv := server.New(db, redisClient, cfg.JWTSecret)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Fatal("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
