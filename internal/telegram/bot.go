package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"budget-meal-planner/internal/app"
	"budget-meal-planner/internal/config"
	"budget-meal-planner/internal/metrics"
	"budget-meal-planner/internal/planner"
	"budget-meal-planner/internal/shopping"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sessionTTLSeconds = 24 * 60 * 60

// Bot wraps the Telegram API around the meal planning application.
type Bot struct {
	api          *tgbotapi.BotAPI
	planner      *app.App
	metricsStore *metrics.Store
	planRepo     *planner.Repository
	listRepo     *shopping.Repository
	sessions     *SessionRepository
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	application *app.App,
	metricsStore *metrics.Store,
	planRepo *planner.Repository,
	listRepo *shopping.Repository,
	sessions *SessionRepository,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:          bot,
		planner:      application,
		metricsStore: metricsStore,
		planRepo:     planRepo,
		listRepo:     listRepo,
		sessions:     sessions,
		cfg:          cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/plan"):
		b.handlePlanCommand(msg, strings.TrimSpace(strings.TrimPrefix(text, "/plan")))
	case strings.HasPrefix(text, "/swap"):
		b.handleSwapCommand(msg, strings.TrimSpace(strings.TrimPrefix(text, "/swap")))
	case text == "/list":
		b.handleListCommand(msg)
	case text == "/metrics":
		b.handleMetricsCommand(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, helpText())
	}
}

func helpText() string {
	return strings.Join([]string{
		"🍽 *Budget Meal Planner*",
		"",
		"*/plan* `<budget> <adults> [kid-ages] [zip] [allergies]`",
		"  e.g. `/plan 150 2 4,8 78701 dairy`",
		"  Use `none` for kid-ages and `-` for zip to skip them.",
		"*/swap* `<meal number>` — replace one meal of the last plan",
		"*/list* — show the shopping list for the last plan",
	}, "\n")
}

// parsePlanArgs parses the positional /plan arguments:
// budget, adults, kid ages ("none" to skip), zip ("-" to skip), allergies.
func parsePlanArgs(argText string) (app.FamilyParams, error) {
	fields := strings.Fields(argText)
	if len(fields) < 2 {
		return app.FamilyParams{}, fmt.Errorf("usage: /plan <budget> <adults> [kid-ages] [zip] [allergies]")
	}

	budget, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return app.FamilyParams{}, fmt.Errorf("budget %q is not a number", fields[0])
	}
	adults, err := strconv.Atoi(fields[1])
	if err != nil {
		return app.FamilyParams{}, fmt.Errorf("adults %q is not a number", fields[1])
	}

	params := app.FamilyParams{
		WeeklyBudget: budget,
		Adults:       adults,
		MealsCount:   7,
	}

	rest := fields[2:]
	if len(rest) >= 1 && rest[0] != "none" {
		ages, err := app.ParseKidAges(rest[0])
		if err != nil {
			return app.FamilyParams{}, err
		}
		params.KidAges = ages
		params.Kids = len(ages)
	}
	if len(rest) >= 2 && rest[1] != "-" {
		params.ZIPCode = rest[1]
	}
	if len(rest) >= 3 {
		params.Allergies = strings.Join(rest[2:], " ")
	}

	return params, nil
}

func (b *Bot) handlePlanCommand(msg *tgbotapi.Message, argText string) {
	params, err := parsePlanArgs(argText)
	if err != nil {
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ %v", err))
		return
	}

	sentMsg, err := b.api.Send(b.markdownMessage(msg.Chat.ID, "🧑‍🍳 *Planning your week...*\n(Pricing ingredients takes a moment)"))
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx := context.Background()
	result, err := b.planner.PlanMeals(ctx, params)
	if err != nil {
		log.Printf("Error generating plan: %v", err)
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		b.edit(msg.Chat.ID, sentMsg.MessageID, fmt.Sprintf("❌ *Error generating plan:*\n```\n%v\n```", safeErr))
		return
	}

	userID := fmt.Sprintf("%d", msg.From.ID)
	if _, err := b.sessions.Create(ctx, userID, "plan", "active", SessionContextData{
		PlanID: result.Plan.ID,
		Params: params,
	}, sessionTTLSeconds); err != nil {
		log.Printf("Warning: failed to create session for user %s: %v", userID, err)
	}

	b.edit(msg.Chat.ID, sentMsg.MessageID, formatPlanMarkdown(result.Plan))
	b.reply(msg.Chat.ID, formatShoppingMarkdown(result.ShoppingList))
}

func (b *Bot) handleSwapCommand(msg *tgbotapi.Message, argText string) {
	index, err := strconv.Atoi(argText)
	if err != nil || index < 1 {
		b.reply(msg.Chat.ID, "Usage: /swap <meal number> (from the last plan)")
		return
	}

	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	session, err := b.sessions.GetActive(ctx, userID, time.Now())
	if err != nil || session == nil {
		b.reply(msg.Chat.ID, "No recent plan found. Run /plan first.")
		return
	}
	data, err := session.GetContextData()
	if err != nil {
		b.reply(msg.Chat.ID, "No recent plan found. Run /plan first.")
		return
	}

	replacement, err := b.planner.RegenerateMeal(ctx, data.PlanID, index-1, data.Params)
	if err != nil {
		log.Printf("Error swapping meal: %v", err)
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ Could not swap meal %d: %v", index, err))
		return
	}
	if replacement == nil {
		b.reply(msg.Chat.ID, "No alternative recipe fits your constraints for that slot.")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("🔄 Meal %d is now *%s* ($%.2f). Shopping list updated — see /list.",
		index, replacement.Name, replacement.Pricing.TotalCost))
}

func (b *Bot) handleListCommand(msg *tgbotapi.Message) {
	ctx := context.Background()
	userID := fmt.Sprintf("%d", msg.From.ID)

	planID := ""
	if session, err := b.sessions.GetActive(ctx, userID, time.Now()); err == nil && session != nil {
		if data, err := session.GetContextData(); err == nil {
			planID = data.PlanID
		}
	}
	if planID == "" {
		plans, err := b.planRepo.List(ctx)
		if err != nil || len(plans) == 0 {
			b.reply(msg.Chat.ID, "No saved plans yet. Run /plan first.")
			return
		}
		planID = plans[0].ID
	}

	list, err := b.listRepo.GetForPlan(ctx, planID)
	if err != nil || list == nil {
		b.reply(msg.Chat.ID, "No shopping list found for the last plan.")
		return
	}

	b.reply(msg.Chat.ID, formatShoppingMarkdown(*list))
}

func formatPlanMarkdown(plan planner.Plan) string {
	var sb strings.Builder
	sb.WriteString("📅 *Weekly Meal Plan*\n\n")

	for i, meal := range plan.Meals {
		sb.WriteString(fmt.Sprintf("*%d. %s* — $%.2f ($%.2f/serving)\n",
			i+1, meal.Name, meal.Pricing.TotalCost, meal.Pricing.CostPerServing))
		if meal.Description != "" {
			sb.WriteString(fmt.Sprintf("_%s_\n", meal.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("💰 *Total:* $%.2f", plan.TotalCost))
	return sb.String()
}

func formatShoppingMarkdown(list shopping.ShoppingList) string {
	var sb strings.Builder
	sb.WriteString("🛒 *Shopping List*\n")

	for _, key := range shopping.CategoryOrder {
		items := list.Categories[key]
		if len(items) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n*%s*\n", shopping.CategoryNames[key]))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("• %s — $%.2f\n", item.StoreUnit, item.Price))
			if item.Bulk.Available && item.Bulk.Recommended {
				sb.WriteString(fmt.Sprintf("  _Bulk: $%.2f (save $%.2f)_\n", item.Bulk.BulkPrice, item.Bulk.Savings))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\n💰 *Estimated Total:* $%.2f", list.Totals.TotalCost))
	if list.Totals.PotentialSavings > 0 {
		sb.WriteString(fmt.Sprintf("\n💡 Potential bulk savings: $%.2f", list.Totals.PotentialSavings))
	}
	return sb.String()
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.reply(chatID, "❌ Error fetching metrics.")
		return
	}

	health := metrics.GetSysHealth(filepath.Dir(b.cfg.DatabasePath), b.cfg.PlanStoragePath)

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDiskSize))

	b.reply(chatID, sb.String())
}

func (b *Bot) markdownMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	return msg
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(b.markdownMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}
