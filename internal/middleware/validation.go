package middleware

import (
	"economy-quiz/internal/dto"
	"economy-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys filled by the validation middleware.
const (
	LocalQuizID     = "validated_quiz_id"
	LocalListParams = "validated_list_params"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizID parses the :id path parameter
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errs := vm.validator.ParseQuizID(c.Params("id"))
		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler
		}

		c.Locals(LocalQuizID, id)
		return c.Next()
	}
}

// ValidateListParams parses skip, limit, category and difficulty
func (vm *ValidationMiddleware) ValidateListParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, errs := vm.validator.ParseListParams(
			c.Query("skip"),
			c.Query("limit"),
			c.Query("category"),
			c.Query("difficulty"),
		)
		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalListParams, params)
		return c.Next()
	}
}

// QuizID returns the id stored by ValidateQuizID.
func QuizID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalQuizID).(int64)
	return id, ok
}

// ListParams returns the params stored by ValidateListParams.
func ListParams(c *fiber.Ctx) (dto.ListQuizzesParams, bool) {
	params, ok := c.Locals(LocalListParams).(dto.ListQuizzesParams)
	return params, ok
}
