package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"economy-quiz/internal/domain"
	"economy-quiz/internal/dto"
)

// Column widths of the quizzes table, in characters.
const (
	MaxQuestionLength   = 2000
	MaxCategoryLength   = 100
	MaxDifficultyLength = 20
)

// List window defaults.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates the create quiz request
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Question == nil || strings.TrimSpace(*req.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if n := utf8.RuneCountInString(*req.Question); n > MaxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", n, 1, MaxQuestionLength))
	}

	if req.Answer == nil {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	if req.Category != nil {
		if n := utf8.RuneCountInString(*req.Category); n > MaxCategoryLength {
			errors = append(errors, domain.NewOutOfRangeError("category", n, 0, MaxCategoryLength))
		}
	}

	// 생략하면 medium, 빈 문자열은 update와 동일하게 거부
	if req.Difficulty != nil {
		if n := utf8.RuneCountInString(*req.Difficulty); n < 1 || n > MaxDifficultyLength {
			errors = append(errors, domain.NewOutOfRangeError("difficulty", n, 1, MaxDifficultyLength))
		}
	}

	return errors
}

// ValidateUpdateQuizRequest validates a merge-patch. question, answer and difficulty
// are NOT NULL columns, so an explicit null on them is rejected.
func (v *Validator) ValidateUpdateQuizRequest(req *dto.UpdateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Question.Null {
		errors = append(errors, domain.NewNullNotAllowedError("question"))
	} else if req.Question.Present {
		if strings.TrimSpace(req.Question.Value) == "" {
			errors = append(errors, domain.NewMissingFieldError("question"))
		} else if n := utf8.RuneCountInString(req.Question.Value); n > MaxQuestionLength {
			errors = append(errors, domain.NewOutOfRangeError("question", n, 1, MaxQuestionLength))
		}
	}

	if req.Answer.Null {
		errors = append(errors, domain.NewNullNotAllowedError("answer"))
	}

	if req.Category.HasValue() {
		if n := utf8.RuneCountInString(req.Category.Value); n > MaxCategoryLength {
			errors = append(errors, domain.NewOutOfRangeError("category", n, 0, MaxCategoryLength))
		}
	}

	if req.Difficulty.Null {
		errors = append(errors, domain.NewNullNotAllowedError("difficulty"))
	} else if req.Difficulty.Present {
		if n := utf8.RuneCountInString(req.Difficulty.Value); n < 1 || n > MaxDifficultyLength {
			errors = append(errors, domain.NewOutOfRangeError("difficulty", n, 1, MaxDifficultyLength))
		}
	}

	return errors
}

// ParseListParams parses skip/limit and the optional filters of the list endpoint.
// Empty skip/limit fall back to the defaults.
func (v *Validator) ParseListParams(skipStr, limitStr, category, difficulty string) (dto.ListQuizzesParams, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	params := dto.ListQuizzesParams{Skip: DefaultSkip, Limit: DefaultLimit}

	if skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		switch {
		case err != nil:
			errors = append(errors, domain.NewInvalidFormatError("skip", skipStr))
		case skip < 0:
			errors = append(errors, domain.NewOutOfRangeError("skip", skip, 0, -1))
		default:
			params.Skip = skip
		}
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		switch {
		case err != nil:
			errors = append(errors, domain.NewInvalidFormatError("limit", limitStr))
		case limit < 0:
			errors = append(errors, domain.NewOutOfRangeError("limit", limit, 0, -1))
		default:
			params.Limit = limit
		}
	}

	filter := ParseFilter(category, difficulty)
	params.Category = filter.Category
	params.Difficulty = filter.Difficulty

	return params, errors
}

// ParseQuizID parses the {id} path segment.
func (v *Validator) ParseQuizID(raw string) (int64, domain.ValidationErrors) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}

// ParseFilter turns optional query values into a filter; empty means no filter.
func ParseFilter(category, difficulty string) domain.QuizFilter {
	var filter domain.QuizFilter
	if category != "" {
		filter.Category = &category
	}
	if difficulty != "" {
		filter.Difficulty = &difficulty
	}
	return filter
}
