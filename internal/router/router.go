package router

import (
	"economy-quiz/internal/config"
	"economy-quiz/internal/handler"
	"economy-quiz/internal/health"
	"economy-quiz/internal/middleware"
	"economy-quiz/internal/service"
	"economy-quiz/internal/util"
	"economy-quiz/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

const bodyLimit = 1 * 1024 * 1024

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	QuizService service.QuizService
	Health      *health.Checker
	Assets      *web.Assets
}

// New builds the fiber application with middleware and routes.
func New(cfg config.ServerConfig, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "economy-quiz",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	quizHandler := handler.NewQuizHandler(deps.QuizService)
	healthHandler := handler.NewHealthHandler(deps.Health)
	staticHandler := handler.NewStaticHandler(deps.Assets)
	vm := middleware.NewValidationMiddleware()

	// Front end
	app.Get("/", staticHandler.Index)
	app.Get("/static/*", staticHandler.Asset)

	app.Get("/health", healthHandler.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	api.Get("/quizzes", vm.ValidateListParams(), quizHandler.ListQuizzes)
	api.Post("/quizzes", quizHandler.CreateQuiz)
	// random must be registered before /:id
	api.Get("/quizzes/random", quizHandler.GetRandomQuiz)
	api.Get("/quizzes/:id", vm.ValidateQuizID(), quizHandler.GetQuiz)
	api.Put("/quizzes/:id", vm.ValidateQuizID(), quizHandler.UpdateQuiz)
	api.Delete("/quizzes/:id", vm.ValidateQuizID(), quizHandler.DeleteQuiz)
	api.Get("/categories", quizHandler.GetCategories)

	return app
}
