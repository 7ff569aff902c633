package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// multipartOverhead leaves room for boundaries and form fields on top of the file itself.
const multipartOverhead = 1 << 20

type RouterConfig struct {
	InterviewHandler *InterviewHandler
	ResumeHandler    *ResumeHandler
	Gatherer         prometheus.Gatherer
	MaxFileSize      int64
	AccessLog        bool
}

func NewRouter(cfg RouterConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.MaxFileSize) + multipartOverhead,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// Any origin is reflected back, so credentials can be allowed without a wildcard.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))

	app.Post("/generate-question", cfg.InterviewHandler.HandleGenerateQuestion)
	app.Post("/evaluate-answer", cfg.InterviewHandler.HandleEvaluateAnswer)
	app.Post("/analyze-resume", cfg.ResumeHandler.HandleAnalyzeResume)
	app.Post("/analyze-resume/question", cfg.ResumeHandler.HandleResumeQuestion)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Coach API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /generate-question",
				"POST /evaluate-answer",
				"POST /analyze-resume",
				"POST /analyze-resume/question",
				"GET /health",
				"GET /metrics",
			},
		})
	})

	return app
}
