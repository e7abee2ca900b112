package domain

import "context"

// QuizRepository defines the persistence operations over quizzes.
// Absence on GetQuizByID is reported as (nil, nil).
type QuizRepository interface {
	ListQuizzes(ctx context.Context, filter QuizFilter, opts ListOptions) ([]*Quiz, error)
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	// GetRandomQuiz picks uniformly among the quizzes matching filter.
	// It fails with a NOT_FOUND DomainError when nothing matches.
	GetRandomQuiz(ctx context.Context, filter QuizFilter) (*Quiz, error)
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	// UpdateQuiz fails with QUIZ_NOT_FOUND when quiz.ID does not exist.
	UpdateQuiz(ctx context.Context, quiz *Quiz) error
	// DeleteQuiz fails with QUIZ_NOT_FOUND when id does not exist.
	DeleteQuiz(ctx context.Context, id int64) error
	GetDistinctCategories(ctx context.Context) ([]string, error)
	CountByQuestion(ctx context.Context, question string) (int, error)
}

// TransactionManager runs fn inside a single database transaction.
// The transaction travels in the context passed to fn.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
