package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

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
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)

	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
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

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(ctx, application, os.Args[2:])
	case "swap":
		runSwap(ctx, application, os.Args[2:])
	case "list":
		runList(ctx, planRepo, listRepo, os.Args[2:])
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		if err := metricsStore.Cleanup(*days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Println("Old metric records removed.")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// buildResolver assembles the pricing fallback chain. The hosted price feed
// leads when configured; the basic estimate anchors the chain so pricing can
// never fail outright.
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

func familyFlags(fs *flag.FlagSet) (budget *float64, adults *int, kidAges, zip, allergies *string, meals *int) {
	budget = fs.Float64("budget", 150, "Weekly grocery budget in dollars")
	adults = fs.Int("adults", 2, "Number of adults")
	kidAges = fs.String("kid-ages", "", "Comma-separated kid ages, e.g. 4,8")
	zip = fs.String("zip", "", "5-digit ZIP code for regional pricing")
	allergies = fs.String("allergies", "", "Comma-separated allergies to avoid")
	meals = fs.Int("meals", 7, "Number of meals to plan")
	return
}

func buildParams(budget float64, adults int, kidAgesText, zip, allergies string, meals int) (app.FamilyParams, error) {
	ages, err := app.ParseKidAges(kidAgesText)
	if err != nil {
		return app.FamilyParams{}, err
	}
	return app.FamilyParams{
		Adults:       adults,
		Kids:         len(ages),
		KidAges:      ages,
		WeeklyBudget: budget,
		MealsCount:   meals,
		ZIPCode:      zip,
		Allergies:    allergies,
	}, nil
}

func runPlan(ctx context.Context, application *app.App, args []string) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	budget, adults, kidAges, zip, allergies, meals := familyFlags(planCmd)
	csvOut := planCmd.Bool("csv", false, "Also print the shopping list as CSV")
	planCmd.Parse(args)

	params, err := buildParams(*budget, *adults, *kidAges, *zip, *allergies, *meals)
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	fmt.Printf("Planning %d meals for %d people on $%.2f...\n\n", params.MealsCount, params.TotalPeople(), params.WeeklyBudget)

	result, err := application.PlanMeals(ctx, params)
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	printPlan(result.Plan)
	fmt.Println()
	fmt.Println(shopping.Printable(result.ShoppingList))

	if *csvOut {
		csv, err := shopping.CSV(result.ShoppingList)
		if err != nil {
			log.Fatalf("CSV export failed: %v", err)
		}
		fmt.Println(csv)
	}
}

func runSwap(ctx context.Context, application *app.App, args []string) {
	swapCmd := flag.NewFlagSet("swap", flag.ExitOnError)
	budget, adults, kidAges, zip, allergies, meals := familyFlags(swapCmd)
	planID := swapCmd.String("plan", "", "Plan ID to modify")
	mealNum := swapCmd.Int("meal", 1, "Meal number to replace (1-based)")
	swapCmd.Parse(args)

	if *planID == "" {
		log.Fatal("The -plan flag is required.")
	}

	params, err := buildParams(*budget, *adults, *kidAges, *zip, *allergies, *meals)
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	replacement, err := application.RegenerateMeal(ctx, *planID, *mealNum-1, params)
	if err != nil {
		log.Fatalf("Swap failed: %v", err)
	}
	if replacement == nil {
		fmt.Println("No alternative recipe fits the constraints for that slot.")
		return
	}

	fmt.Printf("Meal %d is now: %s ($%.2f, $%.2f/serving)\n",
		*mealNum, replacement.Name, replacement.Pricing.TotalCost, replacement.Pricing.CostPerServing)
}

func runList(ctx context.Context, planRepo *planner.Repository, listRepo *shopping.Repository, args []string) {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	planID := listCmd.String("plan", "", "Plan ID (defaults to the most recent plan)")
	csvOut := listCmd.Bool("csv", false, "Print as CSV instead of a checklist")
	listCmd.Parse(args)

	id := *planID
	if id == "" {
		plans, err := planRepo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}
		if len(plans) == 0 {
			fmt.Println("No saved plans yet. Run the plan command first.")
			return
		}
		id = plans[0].ID
	}

	list, err := listRepo.GetForPlan(ctx, id)
	if err != nil {
		log.Fatalf("Failed to load shopping list: %v", err)
	}
	if list == nil {
		fmt.Printf("No shopping list found for plan %s.\n", id)
		return
	}

	if *csvOut {
		csv, err := shopping.CSV(*list)
		if err != nil {
			log.Fatalf("CSV export failed: %v", err)
		}
		fmt.Println(csv)
		return
	}
	fmt.Println(shopping.Printable(*list))
}

func printPlan(plan planner.Plan) {
	fmt.Printf("=== WEEKLY MEAL PLAN (%s) ===\n", plan.ID)
	for i, meal := range plan.Meals {
		fmt.Printf("%d. %s — $%.2f ($%.2f/serving, serves %d)\n",
			i+1, meal.Name, meal.Pricing.TotalCost, meal.Pricing.CostPerServing, meal.ScaledServings)
	}
	fmt.Printf("\nTotal: $%.2f\n", plan.TotalCost)
}

func printUsage() {
	fmt.Println("Usage: budget-meal-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan               Generate a weekly meal plan and shopping list")
	fmt.Println("  swap               Replace one meal of a saved plan")
	fmt.Println("  list               Print the shopping list of a saved plan")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
