package domain

import (
	"time"
)

// DefaultDifficulty is applied when a quiz is created without a difficulty.
const DefaultDifficulty = "medium"

// Recognised difficulty values. The store passes any string through unchanged.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Quiz represents a true/false economics question.
type Quiz struct {
	ID          int64
	Question    string
	Answer      bool // true: the statement is correct (O), false: incorrect (X)
	Explanation *string
	Category    *string
	Difficulty  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance. An empty difficulty falls back to DefaultDifficulty.
func NewQuiz(question string, answer bool, explanation, category *string, difficulty string) *Quiz {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	return &Quiz{
		Question:    question,
		Answer:      answer,
		Explanation: explanation,
		Category:    category,
		Difficulty:  difficulty,
	}
}

// Touch stamps the quiz for persistence. created_at is only set once;
// updated_at always moves forward, even if the clock did not.
func (q *Quiz) Touch(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
		q.UpdatedAt = now
		return
	}
	if !now.After(q.UpdatedAt) {
		now = q.UpdatedAt.Add(time.Microsecond)
	}
	q.UpdatedAt = now
}

// ApplyPatch merges the supplied fields of p into q and refreshes updated_at.
// Callers are expected to have validated p.
func (q *Quiz) ApplyPatch(p QuizPatch, now time.Time) {
	if p.Question.HasValue() {
		q.Question = p.Question.Value
	}
	if p.Answer.HasValue() {
		q.Answer = p.Answer.Value
	}
	if p.Explanation.Present {
		q.Explanation = optionalToPtr(p.Explanation)
	}
	if p.Category.Present {
		q.Category = optionalToPtr(p.Category)
	}
	if p.Difficulty.HasValue() {
		q.Difficulty = p.Difficulty.Value
	}
	q.Touch(now)
}

func optionalToPtr(o Optional[string]) *string {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// QuizPatch is a merge-patch over the mutable quiz fields.
type QuizPatch struct {
	Question    Optional[string]
	Answer      Optional[bool]
	Explanation Optional[string]
	Category    Optional[string]
	Difficulty  Optional[string]
}

// IsEmpty reports whether no field was supplied.
func (p QuizPatch) IsEmpty() bool {
	return !p.Question.Present && !p.Answer.Present && !p.Explanation.Present &&
		!p.Category.Present && !p.Difficulty.Present
}

// QuizFilter holds the optional equality filters shared by list and random.
// Nil means "no filter".
type QuizFilter struct {
	Category   *string
	Difficulty *string
}

// ListOptions is the offset/limit window applied after filtering.
type ListOptions struct {
	Skip  int
	Limit int
}
