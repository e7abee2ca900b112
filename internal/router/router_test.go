package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"economy-quiz/internal/config"
	"economy-quiz/internal/database"
	"economy-quiz/internal/dto"
	"economy-quiz/internal/health"
	"economy-quiz/internal/repository"
	"economy-quiz/internal/service"
	"economy-quiz/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the real stack over a throwaway sqlite database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, Path: t.TempDir() + "/quiz.sqlite"}}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ensureSchema := func(ctx context.Context) error {
		return database.EnsureSchema(ctx, db, config.DriverSQLite)
	}
	require.NoError(t, ensureSchema(context.Background()))

	checker := health.NewChecker(db, ensureSchema, nil)
	checker.MarkReady()

	assets, err := web.Load()
	require.NoError(t, err)

	quizService := service.NewQuizService(
		repository.NewQuizDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		nil,
		time.Minute,
	)

	return New(config.ServerConfig{}, Dependencies{
		QuizService: quizService,
		Health:      checker,
		Assets:      assets,
	})
}

func call(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestQuizLifecycle(t *testing.T) {
	app := newTestApp(t)

	// create
	status, body := call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{
		"question":   "GDP는 국내총생산이다.",
		"answer":     true,
		"category":   "기본경제개념",
		"difficulty": "easy",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var created dto.QuizResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.ID)
	quizURL := "/api/quizzes/" + strconv.FormatInt(created.ID, 10)

	// get returns the same fields
	status, body = call(t, app, http.MethodGet, quizURL, nil)
	require.Equal(t, http.StatusOK, status)
	var fetched dto.QuizResponse
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	// partial update changes only difficulty
	status, body = call(t, app, http.MethodPut, quizURL, map[string]interface{}{"difficulty": "hard"})
	require.Equal(t, http.StatusOK, status, string(body))
	var updated dto.QuizResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	want := created
	want.Difficulty = "hard"
	assert.Equal(t, want, updated)

	status, body = call(t, app, http.MethodGet, quizURL, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, want, fetched)

	// delete then get is not found
	status, body = call(t, app, http.MethodDelete, quizURL, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"퀴즈가 삭제되었습니다."}`, string(body))

	status, body = call(t, app, http.MethodGet, quizURL, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), "퀴즈를 찾을 수 없습니다.")

	status, _ = call(t, app, http.MethodDelete, quizURL, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodPut, quizURL, map[string]interface{}{"question": "x"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListRandomAndCategories(t *testing.T) {
	app := newTestApp(t)

	for i, category := range []string{"금융정책", "무역", "금융정책"} {
		status, body := call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{
			"question": "Q" + strconv.Itoa(i),
			"answer":   i%2 == 0,
			"category": category,
		})
		require.Equal(t, http.StatusOK, status, string(body))
	}
	status, _ := call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{"question": "no category", "answer": false})
	require.Equal(t, http.StatusOK, status)

	// list
	status, body := call(t, app, http.MethodGet, "/api/quizzes?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, status)
	var page []dto.QuizResponse
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page, 2)
	assert.Equal(t, "Q1", page[0].Question)
	assert.Equal(t, "Q2", page[1].Question)
	assert.Equal(t, "medium", page[0].Difficulty)

	status, body = call(t, app, http.MethodGet, "/api/quizzes?category=%EA%B8%88%EC%9C%B5%EC%A0%95%EC%B1%85", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Len(t, page, 2)

	// random
	status, body = call(t, app, http.MethodGet, "/api/quizzes/random?category=%EB%AC%B4%EC%97%AD", nil)
	require.Equal(t, http.StatusOK, status)
	var random dto.QuizResponse
	require.NoError(t, json.Unmarshal(body, &random))
	assert.Equal(t, "Q1", random.Question)

	status, _ = call(t, app, http.MethodGet, "/api/quizzes/random?category=unknown", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// categories
	status, body = call(t, app, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, status)
	var categories []string
	require.NoError(t, json.Unmarshal(body, &categories))
	assert.ElementsMatch(t, []string{"금융정책", "무역"}, categories)
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{"question": "only question"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{"question": "Q", "answer": true, "difficulty": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "OUT_OF_RANGE")

	status, body = call(t, app, http.MethodPost, "/api/quizzes", map[string]interface{}{"question": "Q", "answer": true})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"difficulty":"medium"`)

	status, _ = call(t, app, http.MethodGet, "/api/quizzes?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodGet, "/api/quizzes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthAndFrontEnd(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"status":"ready"`)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	status, _ = call(t, app, http.MethodGet, "/static/js/app.js", nil)
	assert.Equal(t, http.StatusOK, status)
}
