package main

import (
	"fmt"
	"log"
	"os"

	"learnify/config"
	"learnify/database"
	"learnify/session"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		logger.Fatal("failed to create uploads directory", zap.Error(err))
	}

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := database.CreateInitialAdmin(cfg); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	var store session.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to parse redis url", zap.Error(err))
		}
		store = session.NewRedisStore(redis.NewClient(opts))
		logger.Info("using redis session store")
	} else {
		store = session.NewMemoryStore()
		logger.Info("using in-memory session store")
	}

	app := newApp(cfg, logger, store)

	logger.Info("server listening",
		zap.Int("port", cfg.HTTPPort),
		zap.String("uploads_dir", cfg.UploadsDir),
		zap.Bool("strict_paths", cfg.StrictPaths),
	)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTPPort)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
