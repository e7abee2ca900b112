package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"economy-quiz/internal/domain"
	"economy-quiz/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(requestid.New())
	app.Use(RequestLogger())
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"quiz not found", domain.NewQuizNotFoundError(3), http.StatusNotFound, string(domain.CodeQuizNotFound)},
		{"random no match", domain.NewNotFoundError(domain.MsgQuizNotFound), http.StatusNotFound, string(domain.CodeNotFound)},
		{"wrapped domain error", fmt.Errorf("wrap: %w", domain.NewNotFoundError("x")), http.StatusNotFound, string(domain.CodeNotFound)},
		{"unavailable", domain.NewUnavailableError("db down", errors.New("dial tcp")), http.StatusServiceUnavailable, string(domain.CodeUnavailable)},
		{"internal", domain.NewInternalError("boom", errors.New("x")), http.StatusInternalServerError, string(domain.CodeInternal)},
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("question")}, http.StatusBadRequest, string(domain.CodeValidation)},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeError(t, resp)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
		})
	}
}

func TestErrorHandler_QuizNotFoundBody(t *testing.T) {
	app := newTestApp()
	app.Get("/fail", func(c *fiber.Ctx) error { return domain.NewQuizNotFoundError(3) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	body := decodeError(t, resp)
	assert.Equal(t, domain.MsgQuizNotFound, body.Message)
	assert.EqualValues(t, 3, body.Details["quiz_id"])
}

func TestValidationMiddleware(t *testing.T) {
	vm := NewValidationMiddleware()
	app := newTestApp()
	app.Get("/quizzes", vm.ValidateListParams(), func(c *fiber.Ctx) error {
		params, ok := ListParams(c)
		if !ok {
			return errors.New("list params missing")
		}
		category := ""
		if params.Category != nil {
			category = *params.Category
		}
		return c.SendString(fmt.Sprintf("%d/%d/%s", params.Skip, params.Limit, category))
	})
	app.Get("/quizzes/:id", vm.ValidateQuizID(), func(c *fiber.Ctx) error {
		id, ok := QuizID(c)
		if !ok {
			return errors.New("quiz id missing")
		}
		return c.SendString(fmt.Sprint(id))
	})

	t.Run("list defaults", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quizzes", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "0/10/", string(body))
	})

	t.Run("list explicit", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quizzes?skip=4&limit=2&category=trade", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "4/2/trade", string(body))
	})

	t.Run("list invalid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quizzes?limit=ten", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "limit", body.Errors[0].Field)
	})

	t.Run("id valid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quizzes/17", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "17", string(body))
	})

	t.Run("id invalid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quizzes/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
