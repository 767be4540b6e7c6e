package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"budget-meal-planner/internal/planner"
)

// PlanStore provides file-based storage for generated meal plans, one
// versioned JSON snapshot per plan.
type PlanStore struct {
	basePath string
}

// NewPlanStore creates a new PlanStore and ensures the base directory exists.
func NewPlanStore(basePath string) (*PlanStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &PlanStore{basePath: basePath}, nil
}

// sanitizeTimestamp makes the timestamp safe for filenames.
func sanitizeTimestamp(ts string) string {
	return strings.ReplaceAll(ts, ":", "-")
}

func (s *PlanStore) versionedPath(planID, createdAt string) string {
	filename := fmt.Sprintf("%s_%s.json", planID, sanitizeTimestamp(createdAt))
	return filepath.Join(s.basePath, filename)
}

// Save writes a plan snapshot, replacing any earlier versions of the same plan.
func (s *PlanStore) Save(plan planner.Plan) error {
	if err := s.RemoveStaleVersions(plan.ID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	filePath := s.versionedPath(plan.ID, plan.CreatedAt.Format("2006-01-02T15-04-05"))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// Load retrieves the latest snapshot for a plan ID, or nil when none exists.
func (s *PlanStore) Load(planID string) (*planner.Plan, error) {
	matches, err := s.versions(planID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	// Versions sort lexically by timestamp; the last one is current.
	sort.Strings(matches)
	data, err := os.ReadFile(matches[len(matches)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan planner.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &plan, nil
}

// Exists checks whether any snapshot for the plan ID is on disk.
func (s *PlanStore) Exists(planID string) bool {
	matches, err := s.versions(planID)
	return err == nil && len(matches) > 0
}

// RemoveStaleVersions removes all snapshot files for a plan ID.
func (s *PlanStore) RemoveStaleVersions(planID string) error {
	matches, err := s.versions(planID)
	if err != nil {
		return err
	}

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("failed to remove stale file %s: %w", match, err)
		}
	}
	return nil
}

func (s *PlanStore) versions(planID string) ([]string, error) {
	pattern := filepath.Join(s.basePath, fmt.Sprintf("%s_*.json", planID))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob plan files: %w", err)
	}
	return matches, nil
}
