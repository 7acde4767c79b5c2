// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/driverdash/backend/internal/domain/entity"
)

// TripRepository defines the interface for trip persistence operations.
type TripRepository interface {
	// Create creates a new trip in the database.
	Create(ctx context.Context, trip *entity.Trip) error

	// FindByID retrieves a trip by its ID, scoped to its owner.
	// Trips belonging to other users are reported as not found.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Trip, error)

	// FindByUser retrieves all trips for a user, newest date first,
	// ties broken by most recent creation.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error)

	// FindByUserAndDateRange retrieves a user's trips whose date falls
	// within [start, end] inclusive, ordered ascending by date.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Trip, error)

	// Update updates an existing trip in the database.
	Update(ctx context.Context, trip *entity.Trip) error

	// Delete removes a trip owned by the given user.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
