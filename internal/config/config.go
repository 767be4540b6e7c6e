package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the application.
type Config struct {
	GroqAPIKey   string
	GeminiAPIKey string

	// Hosted bulk price-feed function (optional; the resolver falls back
	// to scraping and estimates when unset).
	PriceFeedURL    string
	PriceFeedSecret string

	DatabasePath    string
	PlanStoragePath string

	// Minimum delay between outbound pricing calls.
	PricingDelay time.Duration

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	priceFeedURL := os.Getenv("PRICE_FEED_URL")
	priceFeedSecret := os.Getenv("PRICE_FEED_SECRET")
	if priceFeedURL != "" && priceFeedSecret == "" {
		return nil, fmt.Errorf("PRICE_FEED_SECRET environment variable not set")
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "data/mealplanner.db"
	}

	planStoragePath := os.Getenv("PLAN_STORAGE_PATH")
	if planStoragePath == "" {
		planStoragePath = "data/plans"
	}

	pricingDelay := 300 * time.Millisecond
	if v := os.Getenv("PRICING_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PRICING_DELAY_MS must be an integer: %w", err)
		}
		pricingDelay = time.Duration(ms) * time.Millisecond
	}

	// Telegram Config (Optional for CLI, required for Bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")
	telegramAllowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	var telegramAllowUserID int64
	if telegramAllowUserIDStr != "" {
		fmt.Sscanf(telegramAllowUserIDStr, "%d", &telegramAllowUserID)
	}

	return &Config{
		GroqAPIKey:          groqAPIKey,
		GeminiAPIKey:        geminiAPIKey,
		PriceFeedURL:        priceFeedURL,
		PriceFeedSecret:     priceFeedSecret,
		DatabasePath:        databasePath,
		PlanStoragePath:     planStoragePath,
		PricingDelay:        pricingDelay,
		TelegramBotToken:    telegramBotToken,
		TelegramWebhookURL:  telegramWebhookURL,
		TelegramAllowUserID: telegramAllowUserID,
	}, nil
}
