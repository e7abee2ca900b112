package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal    ErrorCode = "INTERNAL_ERROR"
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Quiz specific errors
	CodeQuizNotFound ErrorCode = "QUIZ_NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// MsgQuizNotFound is the client-facing message for a missing quiz.
const MsgQuizNotFound = "퀴즈를 찾을 수 없습니다."

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is surfaced as response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnavailableError(message string, cause error) *DomainError {
	return NewError(CodeUnavailable, message, cause)
}

func NewQuizNotFoundError(quizID int64) *DomainError {
	return NewError(CodeQuizNotFound, MsgQuizNotFound, nil).WithContext("quiz_id", quizID)
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	de, ok := AsDomainError(err)
	if !ok {
		return false
	}
	return de.Code == CodeNotFound || de.Code == CodeQuizNotFound
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a list of field-level validation failures.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	msg := fmt.Sprintf("%s must be between %d and %d", field, min, max)
	if max < 0 {
		msg = fmt.Sprintf("%s must be at least %d", field, min)
	}
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: msg,
		Value:   value,
	}
}

func NewNullNotAllowedError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s cannot be null", field),
	}
}
