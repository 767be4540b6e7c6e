package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"budget-meal-planner/internal/planner/db"
)

// Repository persists meal plans in the application database.
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a plan repository over an open database handle.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: db.New(d)}
}

// Save stores or replaces a plan.
func (r *Repository) Save(ctx context.Context, plan Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	createdAt := plan.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = r.queries.InsertMealPlan(ctx, db.InsertMealPlanParams{
		ID:        plan.ID,
		Data:      string(data),
		TotalCost: plan.TotalCost,
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// Get loads a plan by ID. Returns (nil, nil) when the plan does not exist.
func (r *Repository) Get(ctx context.Context, id string) (*Plan, error) {
	row, err := r.queries.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal([]byte(row.Data), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", id, err)
	}
	return &plan, nil
}

// List returns all saved plans, newest first. Rows that fail to decode are
// skipped with a log line rather than failing the whole listing.
func (r *Repository) List(ctx context.Context) ([]Plan, error) {
	rows, err := r.queries.ListMealPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]Plan, 0, len(rows))
	for _, row := range rows {
		var plan Plan
		if err := json.Unmarshal([]byte(row.Data), &plan); err != nil {
			log.Printf("skipping undecodable plan %s: %v", row.ID, err)
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Delete removes a plan by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.queries.DeleteMealPlan(ctx, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
