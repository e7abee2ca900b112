package seedmodels

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"economy-quiz/internal/domain"
)

// SeedQuiz defines the structure for a quiz item in the JSON seed file.
type SeedQuiz struct {
	Question    string  `json:"question"`
	Answer      *bool   `json:"answer"`
	Explanation *string `json:"explanation"`
	Category    *string `json:"category"`
	Difficulty  string  `json:"difficulty"`
}

// ToDomain validates the seed entry and converts it into a new quiz.
func (s SeedQuiz) ToDomain() (*domain.Quiz, error) {
	if strings.TrimSpace(s.Question) == "" {
		return nil, fmt.Errorf("seed quiz has an empty question")
	}
	if s.Answer == nil {
		return nil, fmt.Errorf("seed quiz %q has no answer", s.Question)
	}
	return domain.NewQuiz(s.Question, *s.Answer, s.Explanation, s.Category, s.Difficulty), nil
}

// LoadFile reads a JSON array of SeedQuiz.
func LoadFile(path string) ([]SeedQuiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var quizzes []SeedQuiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file %s: %w", path, err)
	}
	return quizzes, nil
}
