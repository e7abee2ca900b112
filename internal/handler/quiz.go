package handler

import (
	"economy-quiz/internal/domain"
	"economy-quiz/internal/dto"
	"economy-quiz/internal/middleware"
	"economy-quiz/internal/service"
	"economy-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MsgQuizDeleted is returned after a successful delete.
const MsgQuizDeleted = "퀴즈가 삭제되었습니다."

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns quizzes in id order, optionally filtered by category and difficulty
// @Tags quiz
// @Produce json
// @Param skip query int false "Number of quizzes to skip" default(0)
// @Param limit query int false "Maximum number of quizzes" default(10)
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	params, ok := middleware.ListParams(c)
	if !ok {
		var errs domain.ValidationErrors
		params, errs = h.validator.ParseListParams(c.Query("skip"), c.Query("limit"), c.Query("category"), c.Query("difficulty"))
		if len(errs) > 0 {
			return errs
		}
	}

	quizzes, err := h.service.ListQuizzes(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetRandomQuiz godoc
// @Summary Get a random quiz
// @Description Picks one quiz uniformly among those matching the optional filters
// @Tags quiz
// @Produce json
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/random [get]
func (h *QuizHandler) GetRandomQuiz(c *fiber.Ctx) error {
	filter := validation.ParseFilter(c.Query("category"), c.Query("difficulty"))

	quiz, err := h.service.GetRandomQuiz(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id, err := h.quizID(c)
	if err != nil {
		return err
	}

	quiz, err := h.service.GetQuiz(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description question and answer are required; difficulty defaults to "medium"
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.CreateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// UpdateQuiz godoc
// @Summary Partially update a quiz
// @Description Only the supplied fields change. null clears explanation or category.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Fields to change"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	id, err := h.quizID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateUpdateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.UpdateQuiz(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id, err := h.quizID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteQuiz(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: MsgQuizDeleted})
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every distinct non-null category
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *QuizHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *QuizHandler) quizID(c *fiber.Ctx) (int64, error) {
	if id, ok := middleware.QuizID(c); ok {
		return id, nil
	}
	id, errs := h.validator.ParseQuizID(c.Params("id"))
	if len(errs) > 0 {
		return 0, errs
	}
	return id, nil
}
