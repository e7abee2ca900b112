package database

import (
	"context"
	"fmt"
	"time"

	"economy-quiz/internal/config"
	"economy-quiz/internal/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver, registered as "sqlite"
)

// Open creates the connection pool without contacting the server, so that a
// database that is still starting up does not prevent the process from booting.
func Open(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		// SQLite serialises writers; a single connection avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	return db, nil
}

// Pinger is the part of *sqlx.DB used to probe availability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitForDatabase pings db up to attempts times, sleeping delay between tries.
// It returns the last ping error when every attempt failed.
func WaitForDatabase(ctx context.Context, db Pinger, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	if delay <= 0 {
		delay = time.Millisecond
	}
	log := logger.Get()

	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(delay))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn("Waiting for database...",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", attempts),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database unavailable after %d attempts: %w", attempt, err)
	}

	log.Info("Successfully connected to database", zap.Int("attempts", attempt))
	return nil
}
