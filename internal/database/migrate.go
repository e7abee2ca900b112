package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"economy-quiz/internal/config"
	"economy-quiz/internal/logger"

	"go.uber.org/zap"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Execer is satisfied by *sqlx.DB and *sql.DB.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SchemaStatements returns the baseline DDL for driver, one statement per element.
func SchemaStatements(driver string) ([]string, error) {
	var file string
	switch driver {
	case config.DriverMySQL:
		file = "schema/mysql.sql"
	case config.DriverSQLite:
		file = "schema/sqlite.sql"
	default:
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}

	content, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read schema file %s: %w", file, err)
	}

	var stmts []string
	for _, stmt := range strings.Split(string(content), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// EnsureSchema creates the quizzes table and its indexes when they do not exist yet.
// Every statement is idempotent, so it is safe to run on each start.
func EnsureSchema(ctx context.Context, db Execer, driver string) error {
	stmts, err := SchemaStatements(driver)
	if err != nil {
		return err
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute schema statement %d: %w", i+1, err)
		}
	}

	logger.Get().Info("Schema is up to date", zap.String("driver", driver), zap.Int("statements", len(stmts)))
	return nil
}
