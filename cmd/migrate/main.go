package main

import (
	"context"
	"log"

	"economy-quiz/internal/config"
	"economy-quiz/internal/database"
	"economy-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.WaitForDatabase(ctx, db, cfg.DB.RetryAttempts, cfg.DB.RetryDelay); err != nil {
		l.Fatal("Database is not reachable", zap.Error(err))
	}

	if err := database.EnsureSchema(ctx, db, cfg.DB.Driver); err != nil {
		l.Fatal("Failed to apply schema", zap.Error(err))
	}
}
