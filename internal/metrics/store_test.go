package metrics

import (
	"database/sql"
	"testing"
	"time"

	"budget-meal-planner/internal/shared"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE execution_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		agent_name TEXT NOT NULL,
		model TEXT NOT NULL,
		prompt_tokens INTEGER NOT NULL DEFAULT 0,
		completion_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		timestamp TIMESTAMP NOT NULL
	)`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func TestRecordAndDailyUsage(t *testing.T) {
	store := NewStore(newTestDB(t))

	err := store.Record(ExecutionMetric{
		AgentName:        "recipe-generator",
		Model:            "gemini-2.0-flash",
		PromptTokens:     120,
		CompletionTokens: 300,
		LatencyMS:        850,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	usage, err := store.GetDailyUsage(1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("Expected 1 day of usage, got %d", len(usage))
	}
	if usage[0].TotalPrompt != 120 || usage[0].TotalCompletion != 300 {
		t.Errorf("Unexpected totals: %+v", usage[0])
	}
	if usage[0].TotalExecution != 1 {
		t.Errorf("Expected 1 execution, got %d", usage[0].TotalExecution)
	}
}

func TestRecordMetaSkipsEmptyUsage(t *testing.T) {
	store := NewStore(newTestDB(t))

	err := store.RecordMeta(shared.AgentMeta{AgentName: "price-analyst"})
	if err != nil {
		t.Fatalf("RecordMeta failed: %v", err)
	}

	usage, err := store.GetDailyUsage(1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("Expected no recorded usage, got %d rows", len(usage))
	}
}

func TestCleanup(t *testing.T) {
	store := NewStore(newTestDB(t))

	old := ExecutionMetric{
		AgentName:        "recipe-generator",
		Model:            "gemini-2.0-flash",
		PromptTokens:     10,
		CompletionTokens: 10,
		Timestamp:        time.Now().AddDate(0, 0, -60).UTC(),
	}
	if err := store.Record(old); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := store.Cleanup(30); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	usage, err := store.GetDailyUsage(90)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("Expected old metrics purged, got %d rows", len(usage))
	}
}
