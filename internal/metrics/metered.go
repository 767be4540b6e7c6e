package metrics

import (
	"context"
	"log"
	"time"

	"budget-meal-planner/internal/llm"
	"budget-meal-planner/internal/shared"
)

// MeteredGenerator wraps a TextGenerator and records token usage and latency
// for every successful call. Recording failures are logged, never surfaced.
type MeteredGenerator struct {
	agentName string
	inner     llm.TextGenerator
	store     *Store
}

// NewMeteredGenerator wraps gen so its usage lands in the store under agentName.
func NewMeteredGenerator(agentName string, gen llm.TextGenerator, store *Store) *MeteredGenerator {
	return &MeteredGenerator{agentName: agentName, inner: gen, store: store}
}

func (m *MeteredGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	start := time.Now()
	resp, err := m.inner.GenerateContent(ctx, prompt)
	if err != nil {
		return resp, err
	}

	if recordErr := m.store.RecordMeta(shared.AgentMeta{
		AgentName: m.agentName,
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}); recordErr != nil {
		log.Printf("Warning: failed to record metrics for %s: %v", m.agentName, recordErr)
	}
	return resp, nil
}
