// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driverdash/backend/internal/application/adapter"
	"github.com/driverdash/backend/internal/domain/entity"
	domainerror "github.com/driverdash/backend/internal/domain/error"
	"github.com/driverdash/backend/internal/integration/persistence/model"
)

// tripRepository implements the adapter.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository instance.
func NewTripRepository(db *gorm.DB) adapter.TripRepository {
	return &tripRepository{
		db: db,
	}
}

// Create creates a new trip in the database.
func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	tripModel := model.TripFromEntity(trip)
	result := r.db.WithContext(ctx).Create(tripModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a trip by its ID, scoped to its owner. A trip that
// exists but belongs to another user is reported as not found.
func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Trip, error) {
	var tripModel model.TripModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tripModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTripNotFound
		}
		return nil, result.Error
	}
	return tripModel.ToEntity(), nil
}

// FindByUser retrieves all trips for a user, newest date first, ties broken
// by most recent creation.
func (r *tripRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error) {
	var tripModels []model.TripModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&tripModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trips := make([]*entity.Trip, len(tripModels))
	for i := range tripModels {
		trips[i] = tripModels[i].ToEntity()
	}
	return trips, nil
}

// FindByUserAndDateRange retrieves a user's trips whose date falls within
// [start, end] inclusive, ordered ascending by date.
func (r *tripRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Trip, error) {
	var tripModels []model.TripModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC, created_at ASC").
		Find(&tripModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trips := make([]*entity.Trip, len(tripModels))
	for i := range tripModels {
		trips[i] = tripModels[i].ToEntity()
	}
	return trips, nil
}

// Update updates an existing trip in the database.
func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	tripModel := model.TripFromEntity(trip)
	result := r.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id = ? AND user_id = ?", trip.ID, trip.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(tripModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTripNotFound
	}
	return nil
}

// Delete removes a trip owned by the given user. The row is removed
// permanently, there is no soft delete for trips.
func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TripModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTripNotFound
	}
	return nil
}
