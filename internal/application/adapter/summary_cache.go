package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache defines the interface for caching rendered dashboard summaries.
// Implementations are best-effort: a miss or a backend failure must never
// prevent the summary from being recomputed.
type SummaryCache interface {
	// Get retrieves a cached payload by key. Returns (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)

	// Set stores a payload under the given key for the user.
	Set(ctx context.Context, userID uuid.UUID, key string, payload []byte) error

	// InvalidateUser drops every cached summary belonging to the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
