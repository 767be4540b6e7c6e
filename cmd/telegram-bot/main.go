package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-meal-planner/internal/app"
	"budget-meal-planner/internal/config"
	"budget-meal-planner/internal/database"
	"budget-meal-planner/internal/llm"
	"budget-meal-planner/internal/metrics"
	"budget-meal-planner/internal/planner"
	"budget-meal-planner/internal/pricefeed"
	"budget-meal-planner/internal/pricing"
	"budget-meal-planner/internal/recipe"
	"budget-meal-planner/internal/shopping"
	"budget-meal-planner/internal/storage"
	"budget-meal-planner/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	ctx := context.Background()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)

	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	if closer, ok := geminiClient.(llm.Closer); ok {
		defer closer.Close()
	}
	groqClient := llm.NewGroqClient(cfg)

	recipeGen := recipe.NewGenerator(metrics.NewMeteredGenerator("recipe-generator", geminiClient, metricsStore))
	resolver := buildResolver(cfg, metrics.NewMeteredGenerator("price-analyst", groqClient, metricsStore))

	recipeRepo := recipe.NewRepository(db.SQL)
	planRepo := planner.NewRepository(db.SQL)
	listRepo := shopping.NewRepository(db.SQL)
	sessions := telegram.NewSessionRepository(db.SQL)

	planStore, err := storage.NewPlanStore(cfg.PlanStoragePath)
	if err != nil {
		log.Fatalf("Failed to initialize plan store: %v", err)
	}

	application := app.NewApp(
		recipeGen,
		shopping.NewGenerator(resolver),
		recipeRepo,
		planRepo,
		listRepo,
		planStore,
	)

	bot, err := telegram.NewBot(cfg, application, metricsStore, planRepo, listRepo, sessions)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	if err := sessions.CleanupExpired(ctx); err != nil {
		log.Printf("Warning: failed to clean up expired sessions: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func buildResolver(cfg *config.Config, priceGen llm.TextGenerator) *pricing.Resolver {
	scraper := pricing.NewScraper()

	strategies := make([]pricing.Strategy, 0, 6)
	if cfg.PriceFeedURL != "" {
		strategies = append(strategies, pricing.NewFeedStrategy(pricefeed.NewClient(cfg)))
	}
	strategies = append(strategies,
		pricing.NewAIStrategy(priceGen),
		pricing.NewStoreSearchStrategy(scraper, cfg.PricingDelay),
		pricing.NewRetailerStrategy(scraper),
		pricing.NewRegionalEstimateStrategy(),
		pricing.NewBasicEstimateStrategy(),
	)

	return pricing.NewResolver(cfg.PricingDelay, strategies...)
}
