package service

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"economy-quiz/internal/cache"
	"economy-quiz/internal/domain"
	"economy-quiz/internal/dto"
	"economy-quiz/internal/logger"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	ListQuizzes(ctx context.Context, params dto.ListQuizzesParams) ([]*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id int64) (*dto.QuizResponse, error)
	GetRandomQuiz(ctx context.Context, filter domain.QuizFilter) (*dto.QuizResponse, error)
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, id int64, patch domain.QuizPatch) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id int64) error
	GetCategories(ctx context.Context) ([]string, error)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	txManager domain.TransactionManager
	cache     domain.Cache // nil when Redis is not configured
	cacheTTL  time.Duration
	now       func() time.Time

	// fillMu orders cache fills against invalidations; generation moves on every invalidation.
	fillMu     sync.Mutex
	generation atomic.Uint64
}

// NewQuizService creates a new instance of quizService.
// quizCache may be nil.
func NewQuizService(
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	quizCache domain.Cache,
	cacheTTL time.Duration,
) QuizService {
	return &quizService{
		repo:      repo,
		txManager: txManager,
		cache:     quizCache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context, params dto.ListQuizzesParams) ([]*dto.QuizResponse, error) {
	filter := domain.QuizFilter{Category: params.Category, Difficulty: params.Difficulty}
	opts := domain.ListOptions{Skip: params.Skip, Limit: params.Limit}

	var quizzes []*domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		quizzes, err = s.repo.ListQuizzes(txCtx, filter, opts)
		return err
	})
	if err != nil {
		return nil, s.storeError("list quizzes", err, filterFields(filter)...)
	}
	return dto.NewQuizResponses(quizzes), nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id int64) (*dto.QuizResponse, error) {
	cacheKey := cache.QuizItemKey(id)
	var cached dto.QuizResponse
	if s.readCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}
	gen := s.generation.Load()

	var quiz *domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		quiz, err = s.repo.GetQuizByID(txCtx, id)
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(id)
		}
		return nil
	})
	if err != nil {
		return nil, s.storeError("get quiz", err, zap.Int64("quiz_id", id))
	}

	resp := dto.NewQuizResponse(quiz)
	s.fillCache(ctx, gen, cacheKey, resp)
	return resp, nil
}

// GetRandomQuiz implements QuizService
func (s *quizService) GetRandomQuiz(ctx context.Context, filter domain.QuizFilter) (*dto.QuizResponse, error) {
	var quiz *domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		quiz, err = s.repo.GetRandomQuiz(txCtx, filter)
		return err
	})
	if err != nil {
		return nil, s.storeError("get random quiz", err, filterFields(filter)...)
	}
	return dto.NewQuizResponse(quiz), nil
}

// CreateQuiz implements QuizService. req must already be validated.
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	difficulty := ""
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}
	quiz := domain.NewQuiz(*req.Question, *req.Answer, req.Explanation, req.Category, difficulty)
	quiz.Touch(s.now())

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.SaveQuiz(txCtx, quiz)
	})
	if err != nil {
		return nil, s.storeError("create quiz", err)
	}

	logger.Get().Info("Quiz created", zap.Int64("quiz_id", quiz.ID))
	s.invalidate(ctx, cache.CategoriesKey())
	return dto.NewQuizResponse(quiz), nil
}

// UpdateQuiz implements QuizService. Only the fields present in patch change.
func (s *quizService) UpdateQuiz(ctx context.Context, id int64, patch domain.QuizPatch) (*dto.QuizResponse, error) {
	var quiz *domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		quiz, err = s.repo.GetQuizByID(txCtx, id)
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(id)
		}
		quiz.ApplyPatch(patch, s.now())
		return s.repo.UpdateQuiz(txCtx, quiz)
	})
	if err != nil {
		return nil, s.storeError("update quiz", err, zap.Int64("quiz_id", id))
	}

	s.invalidate(ctx, cache.QuizItemKey(id), cache.CategoriesKey())
	return dto.NewQuizResponse(quiz), nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteQuiz(txCtx, id)
	})
	if err != nil {
		return s.storeError("delete quiz", err, zap.Int64("quiz_id", id))
	}

	logger.Get().Info("Quiz deleted", zap.Int64("quiz_id", id))
	s.invalidate(ctx, cache.QuizItemKey(id), cache.CategoriesKey())
	return nil
}

// GetCategories implements QuizService
func (s *quizService) GetCategories(ctx context.Context) ([]string, error) {
	cacheKey := cache.CategoriesKey()
	var cached []string
	if s.readCache(ctx, cacheKey, &cached) {
		return cached, nil
	}
	gen := s.generation.Load()

	var categories []string
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		categories, err = s.repo.GetDistinctCategories(txCtx)
		return err
	})
	if err != nil {
		return nil, s.storeError("get categories", err)
	}
	if categories == nil {
		categories = []string{}
	}

	s.fillCache(ctx, gen, cacheKey, categories)
	return categories, nil
}

// storeError passes domain errors through and classifies everything else.
func (s *quizService) storeError(op string, err error, fields ...zap.Field) error {
	if _, ok := domain.AsDomainError(err); ok {
		return err
	}

	log := logger.Get().With(fields...)
	if isUnavailable(err) {
		log.Error("Database unavailable", zap.String("operation", op), zap.Error(err))
		return domain.NewUnavailableError("데이터베이스에 연결할 수 없습니다.", err)
	}
	log.Error("Store operation failed", zap.String("operation", op), zap.Error(err))
	return domain.NewInternalError("Failed to "+op, err)
}

// isUnavailable reports whether err means the database could not be reached at all.
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func filterFields(filter domain.QuizFilter) []zap.Field {
	var fields []zap.Field
	if filter.Category != nil {
		fields = append(fields, zap.String("category", *filter.Category))
	}
	if filter.Difficulty != nil {
		fields = append(fields, zap.String("difficulty", *filter.Difficulty))
	}
	return fields
}

// readCache fills dest from the cache. Any failure is treated as a miss.
func (s *quizService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	logger.Get().Debug("Cache hit", zap.String("key", key))
	return true
}

// fillCache stores a value read from the store, unless an invalidation happened
// since gen was taken. The read may predate a committed write in that case.
func (s *quizService) fillCache(ctx context.Context, gen uint64, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if s.generation.Load() != gen {
		logger.Get().Debug("Skipping cache fill after invalidation", zap.String("key", key))
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *quizService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	s.generation.Add(1)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
