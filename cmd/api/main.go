package main

import (
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

	"prepai/interview-api/internal/config"
	"prepai/interview-api/internal/handlers"
	"prepai/interview-api/internal/middleware"
	"prepai/interview-api/internal/repositories"
	"prepai/interview-api/internal/services"
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
	resumeRepo := repositories.NewResumeRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize completion client
	completion, err := newCompletionClient(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize completion client: %v", err)
	}
	log.Printf("✅ Completion client initialized (%s)\n", cfg.LLM.Provider)

	profileExtractor := services.NewProfileExtractor(completion)
	questionGenerator := services.NewQuestionGenerator(completion)
	answerEvaluator := services.NewAnswerEvaluator(completion)

	// Initialize session store
	sessionStore := services.NewSessionStore(cfg.Session.TTL, cfg.Session.SweepInterval)
	log.Println("✅ Session store initialized")

	// Initialize audit recorder
	audit := services.NewAuditRecorder(resumeRepo, interviewRepo, cfg.Worker.Concurrency)
	audit.Start()
	log.Println("✅ Audit recorder started successfully")

	// Initialize interview service
	interviewService := services.NewInterviewService(
		questionGenerator,
		answerEvaluator,
		sessionStore,
		audit,
	)
	log.Println("✅ Interview service initialized")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		storageService,
		pdfParser,
		profileExtractor,
		cfg.Storage.MaxFileSize,
	)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(middleware.RateLimiter(30, time.Minute))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	app.Post("/upload-resume", uploadHandler.HandleUploadResume)
	app.Post("/start-interview", interviewHandler.HandleStartInterview)
	app.Post("/submit-answer", interviewHandler.HandleSubmitAnswer)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Mock Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /upload-resume",
				"POST /start-interview",
				"POST /submit-answer",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		audit.Stop()
		sessionStore.Stop()
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

func newCompletionClient(cfg *config.Config) (services.CompletionClient, error) {
	switch cfg.LLM.Provider {
	case "groq":
		return services.NewGroqClient(
			cfg.LLM.GroqBaseURL,
			cfg.LLM.GroqAPIKey,
			cfg.LLM.GroqModel,
			cfg.LLM.Timeout,
		), nil
	case "gemini":
		return services.NewGeminiClient(
			cfg.LLM.GeminiAPIKey,
			cfg.LLM.GeminiModel,
			cfg.LLM.Timeout,
		)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
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
