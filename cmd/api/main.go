package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careerforge/interview-lab/internal/apperrors"
	"careerforge/interview-lab/internal/config"
	"careerforge/interview-lab/internal/handlers"
	"careerforge/interview-lab/internal/repositories"
	"careerforge/interview-lab/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	subRepo := repositories.NewSubscriptionRepository(db)
	practiceRepo := repositories.NewPracticeSessionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	entitlementService := services.NewEntitlementService(subRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize question bank
	questionBank, err := services.NewQuestionBankService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionBank.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Question bank initialized successfully")

	// Initialize interview services
	generator := services.NewQuestionGenerator(geminiService, questionBank)
	scorer := services.NewAnswerScorer(geminiService)
	orchestrator := services.NewTurnOrchestrator(
		entitlementService,
		generator,
		scorer,
		cfg.Interview.UpstreamTimeout,
	)
	transcriber := services.NewTranscriptionService(geminiService, cfg.Interview.UpstreamTimeout)
	packService := services.NewQuestionPackService(geminiService, cfg.Interview.UpstreamTimeout)
	log.Println("✅ Interview services initialized")

	// Initialize summarizer + worker
	summarizer := services.NewSessionSummarizer(
		practiceRepo,
		geminiService,
		questionBank,
		cfg.Worker.RetryMaxAttempts,
	)

	worker := services.NewWorker(
		practiceRepo,
		summarizer,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)

	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	turnHandler := handlers.NewTurnHandler(orchestrator)
	transcribeHandler := handlers.NewTranscribeHandler(
		entitlementService,
		transcriber,
		cfg.Interview.MaxAudioBytes,
	)
	questionPackHandler := handlers.NewQuestionPackHandler(packService)
	jobDescHandler := handlers.NewJobDescriptionHandler(
		storageService,
		pdfParser,
		cfg.Storage.MaxFileSize,
	)
	practiceHandler := handlers.NewPracticeHandler(practiceRepo, entitlementService, worker)
	billingHandler := handlers.NewBillingHandler(subRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Lab API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Interview.MaxAudioBytes),
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
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/interview/turn", turnHandler.HandleTurn)
	api.Post("/interview/transcribe", transcribeHandler.HandleTranscribe)
	api.Post("/interview/questions", questionPackHandler.HandleGenerate)
	api.Post("/interview/job-description", jobDescHandler.HandleUpload)
	api.Post("/practice-sessions", practiceHandler.HandleArchive)
	api.Get("/practice-sessions/:id", practiceHandler.HandleGet)
	api.Post("/billing/events", billingHandler.HandleEvent)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Interview Lab API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/interview/turn",
				"POST /api/v1/interview/transcribe",
				"POST /api/v1/interview/questions",
				"POST /api/v1/interview/job-description",
				"POST /api/v1/practice-sessions",
				"GET /api/v1/practice-sessions/:id",
				"POST /api/v1/billing/events",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"error": appErr.Message,
			"kind":  string(appErr.Kind),
		})
	}

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
