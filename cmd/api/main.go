package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/virtual-panel/internal/config"
	"alfredoptarigan/virtual-panel/internal/handlers"
	"alfredoptarigan/virtual-panel/internal/routes"
	"alfredoptarigan/virtual-panel/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize the model client. A missing key is not fatal: every
	// endpoint answers from the local fallbacks instead.
	llm, err := services.NewLLMClient(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.AI.Provider, err)
	}
	if llm == nil {
		log.Println("⚠️ No valid AI API key configured, serving fallback content only")
	} else {
		log.Printf("✅ %s client initialized successfully", cfg.AI.Provider)
	}

	knowledge := initKnowledgeBase(ctx, cfg, llm)

	gateway := services.NewAIGateway(llm, knowledge, services.GatewayOptions{
		Timeout:     cfg.AI.Timeout,
		MaxAttempts: cfg.AI.MaxAttempts,
		Temperature: cfg.AI.Temperature,
	})
	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	healthHandler := handlers.NewHealthHandler()
	interviewHandler := handlers.NewInterviewHandler(gateway)
	resumeHandler := handlers.NewResumeHandler(
		gateway,
		pdfParser,
		cfg.Upload.MaxResumeSize,
		cfg.Upload.MinResumeText,
		cfg.IsDevelopment(),
	)
	log.Println("✅ Handlers initialized")

	app := routes.NewApp(routes.AppOptions{
		Name:          "Virtual Interview Panel API",
		MaxResumeSize: cfg.Upload.MaxResumeSize,
		Development:   cfg.IsDevelopment(),
		AccessLog:     true,
	})
	routes.Register(app, healthHandler, interviewHandler, resumeHandler)

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
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📍 Environment: %s\n", cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initKnowledgeBase connects to Qdrant when configured. Any failure leaves
// prompts without reference material rather than stopping the server.
func initKnowledgeBase(ctx context.Context, cfg *config.Config, llm services.LLMClient) services.KnowledgeBase {
	if !cfg.Qdrant.Enabled() || llm == nil {
		return services.NoKnowledgeBase()
	}

	qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Printf("⚠️ Failed to initialize Qdrant, continuing without guides: %v", err)
		return services.NoKnowledgeBase()
	}

	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Printf("⚠️ Failed to initialize Qdrant collection, continuing without guides: %v", err)
		return services.NoKnowledgeBase()
	}

	log.Println("✅ Qdrant initialized successfully")
	return services.NewKnowledgeBase(llm, qdrantService, cfg.Qdrant.Limit)
}
