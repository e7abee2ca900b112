package models

import (
	"database/sql"
	"time"
)

// Quiz is the row shape of the quizzes table.
type Quiz struct {
	ID          int64          `db:"id"`
	Question    string         `db:"question"`
	Answer      bool           `db:"answer"`
	Explanation sql.NullString `db:"explanation"`
	Category    sql.NullString `db:"category"`
	Difficulty  string         `db:"difficulty"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// TableName returns the table backing Quiz.
func (Quiz) TableName() string {
	return "quizzes"
}
