package handler

import (
	"economy-quiz/internal/dto"
	"economy-quiz/internal/health"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes readiness
type HealthHandler struct {
	checker *health.Checker
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health godoc
// @Summary Readiness probe
// @Description 200 when the database is reachable, 503 while degraded
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	report := h.checker.Check(c.UserContext())

	resp := dto.HealthResponse{
		Status:   string(report.Status),
		Database: report.Database,
		Cache:    report.Cache,
	}
	if report.Err != nil {
		resp.Error = report.Err.Error()
	}

	status := fiber.StatusOK
	if report.Status != health.StatusReady {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
