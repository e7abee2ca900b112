package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"economy-quiz/internal/domain"
	"economy-quiz/internal/repository/models"
	"economy-quiz/internal/util"
)

const quizColumns = `id, question, answer, explanation, category, difficulty, created_at, updated_at`

const (
	queryGetQuizByID = `SELECT ` + quizColumns + ` FROM quizzes WHERE id = ?`

	queryInsertQuiz = `INSERT INTO quizzes (
		question, answer, explanation, category, difficulty, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`

	queryUpdateQuiz = `UPDATE quizzes SET
		question = ?,
		answer = ?,
		explanation = ?,
		category = ?,
		difficulty = ?,
		updated_at = ?
	WHERE id = ?`

	queryDeleteQuiz = `DELETE FROM quizzes WHERE id = ?`

	queryDistinctCategories = `SELECT DISTINCT category FROM quizzes WHERE category IS NOT NULL ORDER BY category`

	queryCountByQuestion = `SELECT COUNT(*) FROM quizzes WHERE question = ?`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
// Every query runs on the transaction carried by the context, if any.
type QuizDatabaseAdapter struct {
	db   DBTX
	intn func(n int) int
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db DBTX) *QuizDatabaseAdapter {
	return &QuizDatabaseAdapter{db: db, intn: rand.IntN}
}

// WithRandomSource replaces the uniform index picker used by GetRandomQuiz.
// intn must return a value in [0, n).
func (a *QuizDatabaseAdapter) WithRandomSource(intn func(n int) int) *QuizDatabaseAdapter {
	a.intn = intn
	return a
}

// filterClause builds the WHERE clause shared by list and random selection.
func filterClause(filter domain.QuizFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Difficulty != nil {
		conds = append(conds, "difficulty = ?")
		args = append(args, *filter.Difficulty)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context, filter domain.QuizFilter, opts domain.ListOptions) ([]*domain.Quiz, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + quizColumns + ` FROM quizzes` + where + ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Skip)

	var rows []models.Quiz
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return toDomainQuizzes(rows), nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	var row models.Quiz
	err := GetExecutor(ctx, a.db).GetContext(ctx, &row, queryGetQuizByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %d: %w", id, err)
	}
	return toDomainQuiz(&row), nil
}

// GetRandomQuiz implements domain.QuizRepository.
// All matching rows are loaded and one is chosen uniformly in memory.
func (a *QuizDatabaseAdapter) GetRandomQuiz(ctx context.Context, filter domain.QuizFilter) (*domain.Quiz, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + quizColumns + ` FROM quizzes` + where + ` ORDER BY id`

	var rows []models.Quiz
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load quizzes for random selection: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFoundError(domain.MsgQuizNotFound)
	}
	return toDomainQuiz(&rows[a.intn(len(rows))]), nil
}

// SaveQuiz implements domain.QuizRepository. It assigns quiz.ID.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	row := toModelQuiz(quiz)

	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, queryInsertQuiz,
		row.Question,
		row.Answer,
		row.Explanation,
		row.Category,
		row.Difficulty,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted quiz id: %w", err)
	}
	quiz.ID = id
	return nil
}

// UpdateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot update nil quiz")
	}
	row := toModelQuiz(quiz)

	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, queryUpdateQuiz,
		row.Question,
		row.Answer,
		row.Explanation,
		row.Category,
		row.Difficulty,
		row.UpdatedAt,
		row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz %d: %w", quiz.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(quiz.ID)
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, queryDeleteQuiz, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// GetDistinctCategories implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetDistinctCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &categories, queryDistinctCategories); err != nil {
		return nil, fmt.Errorf("failed to query distinct categories: %w", err)
	}
	return categories, nil
}

// CountByQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CountByQuestion(ctx context.Context, question string) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, queryCountByQuestion, question); err != nil {
		return 0, fmt.Errorf("failed to count quizzes by question: %w", err)
	}
	return count, nil
}

func toModelQuiz(q *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:          q.ID,
		Question:    q.Question,
		Answer:      q.Answer,
		Explanation: util.PtrToNullString(q.Explanation),
		Category:    util.PtrToNullString(q.Category),
		Difficulty:  q.Difficulty,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:          m.ID,
		Question:    m.Question,
		Answer:      m.Answer,
		Explanation: util.NullStringToPtr(m.Explanation),
		Category:    util.NullStringToPtr(m.Category),
		Difficulty:  m.Difficulty,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toDomainQuizzes(rows []models.Quiz) []*domain.Quiz {
	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes
}
