package dto

import (
	"economy-quiz/internal/domain"
)

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID          int64   `json:"id" example:"1"`
	Question    string  `json:"question" example:"GDP는 국내총생산이다."`
	Answer      bool    `json:"answer" example:"true"`
	Explanation *string `json:"explanation"`
	Category    *string `json:"category" example:"기본경제개념"`
	Difficulty  string  `json:"difficulty" example:"easy"`
}

// NewQuizResponse maps a domain quiz onto its API shape.
func NewQuizResponse(q *domain.Quiz) *QuizResponse {
	return &QuizResponse{
		ID:          q.ID,
		Question:    q.Question,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
	}
}

// NewQuizResponses maps a slice of domain quizzes, never returning nil.
func NewQuizResponses(quizzes []*domain.Quiz) []*QuizResponse {
	out := make([]*QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, NewQuizResponse(q))
	}
	return out
}

// CreateQuizRequest is the body of POST /api/quizzes.
// Pointers tell a missing field apart from its zero value.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Question    *string `json:"question" example:"GDP는 국내총생산이다."`
	Answer      *bool   `json:"answer" example:"true"`
	Explanation *string `json:"explanation"`
	Category    *string `json:"category" example:"기본경제개념"`
	Difficulty  *string `json:"difficulty" example:"easy"`
}

// UpdateQuizRequest is the merge-patch body of PUT /api/quizzes/{id}.
// @Description Request body for partially updating a quiz. Only supplied fields change.
type UpdateQuizRequest struct {
	Question    domain.Optional[string] `json:"question" swaggertype:"string"`
	Answer      domain.Optional[bool]   `json:"answer" swaggertype:"boolean"`
	Explanation domain.Optional[string] `json:"explanation" swaggertype:"string"`
	Category    domain.Optional[string] `json:"category" swaggertype:"string"`
	Difficulty  domain.Optional[string] `json:"difficulty" swaggertype:"string"`
}

// ToPatch converts the request into a domain merge-patch.
func (r *UpdateQuizRequest) ToPatch() domain.QuizPatch {
	return domain.QuizPatch{
		Question:    r.Question,
		Answer:      r.Answer,
		Explanation: r.Explanation,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
	}
}

// ListQuizzesParams are the parsed query parameters of GET /api/quizzes.
type ListQuizzesParams struct {
	Skip       int
	Limit      int
	Category   *string
	Difficulty *string
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"퀴즈가 삭제되었습니다."`
}

// HealthResponse reports readiness.
type HealthResponse struct {
	Status   string `json:"status" example:"ready"`
	Database string `json:"database" example:"up"`
	Cache    string `json:"cache,omitempty" example:"up"`
	Error    string `json:"error,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string                   `json:"code" example:"QUIZ_NOT_FOUND"`
	Message string                   `json:"message" example:"퀴즈를 찾을 수 없습니다."`
	Status  int                      `json:"status" example:"404"`
	Details map[string]interface{}   `json:"details,omitempty"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}
