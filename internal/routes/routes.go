package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/virtual-panel/internal/handlers"
	"alfredoptarigan/virtual-panel/internal/middleware"
)

// multipart framing on top of the largest accepted resume
const bodyLimitHeadroom = 1024 * 1024

type AppOptions struct {
	Name          string
	MaxResumeSize int64
	Development   bool
	AccessLog     bool
}

func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		// Files just over the resume cap still reach the handler. Anything past
		// BodyLimit is cut off by the server and mapped to 400 by ErrorHandler.
		BodyLimit:    int(opts.MaxResumeSize) + bodyLimitHeadroom,
		ErrorHandler: handlers.ErrorHandler(opts.Development),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders: middleware.RequestIDHeader,
	}))

	return app
}

func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	interview *handlers.InterviewHandler,
	resume *handlers.ResumeHandler,
) {
	api := app.Group("/api")

	api.Get("/health", health.HandleHealth)

	api.Post("/interview/questions", interview.HandleGenerateQuestions)
	api.Post("/interview/analyze", interview.HandleAnalyze)

	api.Post("/resume/analyze", resume.HandleAnalyze)
}
