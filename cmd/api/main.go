package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"interview-ai/backend/internal/config"
	"interview-ai/backend/internal/handlers"
	"interview-ai/backend/internal/repositories"
	"interview-ai/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.Server.Env == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Info("✅ Config loaded successfully")

	// Initialize session store
	sessionRepo, err := repositories.NewSessionRepository(cfg.Storage.SessionsPath)
	if err != nil {
		logrus.Fatalf("❌ Failed to initialize session store: %v", err)
	}
	logrus.Info("✅ Session store initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		logrus.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	logrus.Info("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		logrus.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	logrus.Info("✅ Gemini AI initialized successfully")

	// Collaborators
	transcriber := services.NewTranscriptionService(geminiService)
	expressionService := services.NewExpressionService(cfg.Expression.ServiceURL)
	scorer := services.NewScoringService(geminiService, cfg.Collaborator.RetryMaxAttempts)
	summarizer := services.NewSummaryService(geminiService, cfg.Collaborator.RetryMaxAttempts)
	questionService := services.NewQuestionService(geminiService, cfg.Collaborator.RetryMaxAttempts)

	// Session lifecycle manager
	interviewService := services.NewInterviewService(
		sessionRepo,
		transcriber,
		expressionService,
		scorer,
		summarizer,
		cfg.Collaborator.Timeout,
	)
	pdfService := services.NewReportPDFService()
	logrus.Info("✅ Interview service initialized")

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(
		storageService,
		resumeParser,
		questionService,
		interviewService,
		cfg.Storage.MaxFileSize,
		cfg.Collaborator.QuestionCount,
	)
	interviewHandler := handlers.NewInterviewHandler(
		interviewService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	reportHandler := handlers.NewReportHandler(interviewService, pdfService)
	logrus.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview AI Backend",
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/resume/upload", resumeHandler.HandleUpload)
	api.Post("/interview/start", interviewHandler.HandleStart)
	api.Post("/interview/answer", interviewHandler.HandleAnswer)
	api.Post("/interview/end", interviewHandler.HandleEnd)
	api.Get("/report/:session_id", reportHandler.HandleGetReport)
	api.Get("/report/:session_id/pdf", reportHandler.HandleGetReportPDF)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Interview AI Backend",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume/upload",
				"POST /api/v1/interview/start",
				"POST /api/v1/interview/answer",
				"POST /api/v1/interview/end",
				"GET /api/v1/report/:session_id",
				"GET /api/v1/report/:session_id/pdf",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logrus.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		logrus.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
