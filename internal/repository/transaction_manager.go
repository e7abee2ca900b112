package repository

import (
	"context"
	"fmt"

	"economy-quiz/internal/domain"
	"economy-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// contextKey는 context value의 key 타입
type contextKey string

const (
	// TransactionContextKey 트랜잭션을 저장하는 context key
	TransactionContextKey contextKey = "tx"
)

// GetExecutor context에서 트랜잭션을 가져오거나 기본 DB를 반환하는 헬퍼 함수
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx := ctx.Value(TransactionContextKey); tx != nil {
		if sqlxTx, ok := tx.(*sqlx.Tx); ok {
			return sqlxTx
		}
	}
	return db
}

// TransactionManagerAdapter sqlx.DB를 사용한 트랜잭션 매니저 구현체
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

// NewTransactionManagerAdapter 새로운 트랜잭션 매니저 어댑터 인스턴스를 생성
func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithTransaction 트랜잭션 내에서 함수를 실행 (도메인 인터페이스 구현)
// fn이 에러를 반환하거나 패닉이 발생하면 롤백, 그 외에는 커밋
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok {
		// 이미 트랜잭션 안이면 그대로 참여
		return fn(ctx)
	}

	tx, err := tma.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Get().Error("failed to rollback transaction after panic", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, TransactionContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
