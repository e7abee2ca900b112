// @title Economy Quiz API
// @version 1.0
// @description True/false economics quiz API.
// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "economy-quiz/cmd/api/docs"
	"economy-quiz/internal/adapter"
	"economy-quiz/internal/cache"
	"economy-quiz/internal/config"
	"economy-quiz/internal/database"
	"economy-quiz/internal/domain"
	"economy-quiz/internal/health"
	"economy-quiz/internal/logger"
	"economy-quiz/internal/repository"
	"economy-quiz/internal/router"
	"economy-quiz/internal/service"
	"economy-quiz/internal/web"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Error("Server exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Failed to close database", zap.Error(err))
		}
	}()

	ensureSchema := func(ctx context.Context) error {
		return database.EnsureSchema(ctx, db, cfg.DB.Driver)
	}

	// Optional Redis cache
	var quizCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			quizCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	checker := health.NewChecker(db, ensureSchema, quizCache)

	// Wait for the database; on exhaustion keep serving in degraded mode
	if err := database.WaitForDatabase(ctx, db, cfg.DB.RetryAttempts, cfg.DB.RetryDelay); err != nil {
		checker.MarkDegraded(err)
	} else if err := ensureSchema(ctx); err != nil {
		checker.MarkDegraded(fmt.Errorf("failed to apply schema: %w", err))
	} else {
		checker.MarkReady()
	}

	assets, err := web.Load()
	if err != nil {
		return fmt.Errorf("failed to load web assets: %w", err)
	}

	quizService := service.NewQuizService(
		repository.NewQuizDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		quizCache,
		cfg.Cache.TTL,
	)

	app := router.New(cfg.Server, router.Dependencies{
		QuizService: quizService,
		Health:      checker,
		Assets:      assets,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := cfg.ListenAddr()
		appLogger.Info("Starting server", zap.String("addr", addr), zap.Bool("ready", checker.Ready()))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	if !checker.Ready() {
		g.Go(func() error {
			checker.Watch(gctx, cfg.DB.RetryDelay)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	appLogger.Info("Server stopped")
	return nil
}
