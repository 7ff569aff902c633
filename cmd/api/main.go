package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/handlers"
	"alfredoptarigan/interview-coach/internal/metrics"
	"alfredoptarigan/interview-coach/internal/repositories"
	"alfredoptarigan/interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	resultRepo := repositories.NewInterviewResultRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Initialize completion provider
	completion, err := newCompletionClient(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.LLM.Provider, err)
	}
	log.Printf("✅ %s completion client initialized", cfg.LLM.Provider)

	// Initialize recorder
	recorder := services.NewResultRecorder(
		resultRepo,
		appMetrics,
		cfg.Recorder.Workers,
		cfg.Recorder.QueueSize,
		cfg.Database.WriteTimeout,
	)
	recorder.Start(context.Background())
	log.Println("✅ Result recorder started successfully")

	// Initialize services
	interviewService := services.NewInterviewService(completion, recorder, appMetrics, cfg.LLM.Timeout)
	resumeService := services.NewResumeService(
		completion,
		services.NewDocumentParserService(),
		appMetrics,
		cfg.LLM.Timeout,
	)
	log.Println("✅ Services initialized successfully")

	app := handlers.NewRouter(handlers.RouterConfig{
		InterviewHandler: handlers.NewInterviewHandler(interviewService),
		ResumeHandler:    handlers.NewResumeHandler(resumeService, cfg.Storage.MaxFileSize),
		Gatherer:         registry,
		MaxFileSize:      cfg.Storage.MaxFileSize,
		AccessLog:        true,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}

	// In-flight requests have finished, so every pending result is already queued.
	recorder.Stop()
	log.Println("✅ Result recorder drained")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newCompletionClient(cfg config.LLMConfig) (services.CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return services.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	}
}
