package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"budget-meal-planner/internal/shopping/db"
)

// Repository persists shopping lists keyed by the meal plan they were
// generated for.
type Repository struct {
	queries *db.Queries
}

func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: db.New(d)}
}

// Save stores the list for a plan, replacing any previous version.
func (r *Repository) Save(ctx context.Context, planID string, list ShoppingList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode shopping list: %w", err)
	}

	id := list.ID
	if id == "" {
		id = planID + "-list"
	}

	err = r.queries.InsertShoppingList(ctx, db.InsertShoppingListParams{
		ID:        id,
		PlanID:    planID,
		Data:      string(data),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to save shopping list: %w", err)
	}
	return nil
}

// GetForPlan loads the most recent list for a plan. Returns (nil, nil) when
// none exists.
func (r *Repository) GetForPlan(ctx context.Context, planID string) (*ShoppingList, error) {
	row, err := r.queries.GetShoppingListByPlanID(ctx, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}

	var list ShoppingList
	if err := json.Unmarshal([]byte(row.Data), &list); err != nil {
		return nil, fmt.Errorf("failed to decode shopping list %s: %w", row.ID, err)
	}
	list.ID = row.ID
	return &list, nil
}

// Delete removes a stored list by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.queries.DeleteShoppingList(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	return nil
}
