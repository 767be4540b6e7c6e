package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	db "budget-meal-planner/internal/recipe/db"
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	queries *db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: db.New(d),
		db:      d,
	}
}

// Save inserts or updates a recipe in the database.
func (r *Repository) Save(ctx context.Context, rec Recipe) error {
	recipeJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe to JSON: %w", err)
	}

	return r.queries.InsertRecipe(ctx, db.InsertRecipeParams{
		ID:        rec.ID,
		Data:      string(recipeJSON),
		UpdatedAt: time.Now().UTC(),
	})
}

// Get retrieves a recipe by its ID. Returns (nil, nil) when not found.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	dbRecipe, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	var rec Recipe
	if err := json.Unmarshal([]byte(dbRecipe.Data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe JSON: %w", err)
	}
	return &rec, nil
}

// List returns every stored recipe, newest first. Rows that fail to decode
// are logged and skipped so one bad record cannot poison the catalog.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.queries.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		var rec Recipe
		if err := json.Unmarshal([]byte(row.Data), &rec); err != nil {
			log.Printf("Skipping undecodable recipe row %s: %v", row.ID, err)
			continue
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// Delete removes a recipe by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteRecipe(ctx, id)
}
