package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"economy-quiz/cmd/seed_initial_data/internal/seedmodels"
	"economy-quiz/internal/config"
	"economy-quiz/internal/database"
	"economy-quiz/internal/domain"
	"economy-quiz/internal/logger"
	"economy-quiz/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSeedFile = "configs/seed_data/economy_quizzes.json"
	maxConcurrency  = 4
)

// seedResult is the tally printed at the end of a run.
type seedResult struct {
	Inserted int64
	Skipped  int64
	Failed   int64
}

func firstN(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func main() {
	seedFile := flag.String("file", defaultSeedFile, "path to the JSON seed file")
	skipExisting := flag.Bool("skip-existing", false, "skip quizzes whose question text already exists")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.WaitForDatabase(ctx, db, cfg.DB.RetryAttempts, cfg.DB.RetryDelay); err != nil {
		log.Fatal("Database is not reachable", zap.Error(err))
	}
	if err := database.EnsureSchema(ctx, db, cfg.DB.Driver); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	log.Info("Loading seed data from file", zap.String("path", *seedFile))
	seeds, err := seedmodels.LoadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	result := seedQuizzes(ctx,
		repository.NewQuizDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		seeds,
		*skipExisting,
	)

	log.Info("Initial data seeding process completed.",
		zap.Int64("inserted", result.Inserted),
		zap.Int64("skipped", result.Skipped),
		zap.Int64("failed", result.Failed),
	)
	if result.Failed > 0 {
		_ = logger.Sync()
		os.Exit(1)
	}
}

// seedQuizzes inserts every seed in its own transaction, at most maxConcurrency at a time.
// A failed quiz is logged and counted; it does not stop the others.
func seedQuizzes(
	ctx context.Context,
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	seeds []seedmodels.SeedQuiz,
	skipExisting bool,
) seedResult {
	log := logger.Get()
	var inserted, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, seed := range seeds {
		g.Go(func() error {
			preview := zap.String("question_preview", firstN(seed.Question, 20))

			quiz, err := seed.ToDomain()
			if err != nil {
				log.Error("Invalid seed entry", zap.Int("index", i), zap.Error(err))
				failed.Add(1)
				return nil
			}

			wasSkipped := false
			err = txManager.WithTransaction(gctx, func(txCtx context.Context) error {
				if skipExisting {
					count, err := repo.CountByQuestion(txCtx, quiz.Question)
					if err != nil {
						return err
					}
					if count > 0 {
						wasSkipped = true
						return nil
					}
				}
				quiz.Touch(time.Now())
				return repo.SaveQuiz(txCtx, quiz)
			})

			switch {
			case err != nil:
				log.Error("Failed to seed quiz, transaction rolled back", preview, zap.Error(err))
				failed.Add(1)
			case wasSkipped:
				log.Info("Quiz already exists, skipping", preview)
				skipped.Add(1)
			default:
				log.Info("Seeded quiz", preview, zap.Int64("quiz_id", quiz.ID))
				inserted.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return seedResult{
		Inserted: inserted.Load(),
		Skipped:  skipped.Load(),
		Failed:   failed.Load(),
	}
}
