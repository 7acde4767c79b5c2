package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/driverdash/backend/internal/domain/entity"
	domainerror "github.com/driverdash/backend/internal/domain/error"
	"github.com/driverdash/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.TripModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newStoredTrip(userID uuid.UUID, date string, createdAt time.Time) *entity.Trip {
	parsed, _ := time.Parse("2006-01-02", date)
	rate := decimal.NewFromFloat(12.5)
	return &entity.Trip{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            parsed,
		Distance:        decimal.NewFromInt(100),
		FuelConsumption: decimal.NewFromInt(10),
		FuelPrice:       decimal.NewFromInt(5),
		StartTime:       "08:00",
		EndTime:         "16:00",
		Earnings:        decimal.NewFromInt(150),
		LitersUsed:      decimal.NewFromInt(10),
		FuelCost:        decimal.NewFromInt(50),
		WorkedMinutes:   480,
		NetEarnings:     decimal.NewFromInt(100),
		EarningsPerKm:   decimal.NewFromInt(1),
		EarningsPerHour: &rate,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestTripRepository_CreateAndFindByID(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	trip := newStoredTrip(userID, "2025-03-10", time.Now().UTC())
	if err := repo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	found, err := repo.FindByID(ctx, trip.ID, userID)
	if err != nil {
		t.Fatalf("failed to find trip: %v", err)
	}
	if found.ID != trip.ID {
		t.Errorf("expected trip %s, got %s", trip.ID, found.ID)
	}
	if !found.NetEarnings.Equal(trip.NetEarnings) {
		t.Errorf("expected net earnings %s, got %s", trip.NetEarnings, found.NetEarnings)
	}
	if found.EarningsPerHour == nil || !found.EarningsPerHour.Equal(*trip.EarningsPerHour) {
		t.Errorf("per-hour rate did not survive storage: %v", found.EarningsPerHour)
	}
}

func TestTripRepository_NilPerHourRateRoundTrip(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	trip := newStoredTrip(userID, "2025-03-10", time.Now().UTC())
	trip.WorkedMinutes = 0
	trip.EarningsPerHour = nil
	if err := repo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	found, err := repo.FindByID(ctx, trip.ID, userID)
	if err != nil {
		t.Fatalf("failed to find trip: %v", err)
	}
	if found.EarningsPerHour != nil {
		t.Errorf("expected nil per-hour rate, got %s", found.EarningsPerHour)
	}
}

func TestTripRepository_FindByIDScopedToOwner(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	trip := newStoredTrip(owner, "2025-03-10", time.Now().UTC())
	if err := repo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	_, err := repo.FindByID(ctx, trip.ID, uuid.New())
	if !errors.Is(err, domainerror.ErrTripNotFound) {
		t.Errorf("expected not found for another user's trip, got %v", err)
	}
}

func TestTripRepository_FindByUserOrdering(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	older := newStoredTrip(userID, "2025-03-01", base)
	newerSameDay := newStoredTrip(userID, "2025-03-05", base.Add(2*time.Hour))
	olderSameDay := newStoredTrip(userID, "2025-03-05", base.Add(time.Hour))
	other := newStoredTrip(uuid.New(), "2025-03-09", base)

	for _, trip := range []*entity.Trip{older, newerSameDay, olderSameDay, other} {
		if err := repo.Create(ctx, trip); err != nil {
			t.Fatalf("failed to create trip: %v", err)
		}
	}

	trips, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("failed to list trips: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("expected 3 trips for user, got %d", len(trips))
	}
	if trips[0].ID != newerSameDay.ID || trips[1].ID != olderSameDay.ID || trips[2].ID != older.ID {
		t.Error("expected trips ordered by date desc, then creation desc")
	}
}

func TestTripRepository_FindByUserAndDateRange(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	inRangeStart := newStoredTrip(userID, "2025-03-01", now)
	inRangeEnd := newStoredTrip(userID, "2025-03-31", now)
	before := newStoredTrip(userID, "2025-02-28", now)
	after := newStoredTrip(userID, "2025-04-01", now)

	for _, trip := range []*entity.Trip{after, inRangeEnd, before, inRangeStart} {
		if err := repo.Create(ctx, trip); err != nil {
			t.Fatalf("failed to create trip: %v", err)
		}
	}

	start, _ := time.Parse("2006-01-02", "2025-03-01")
	end, _ := time.Parse("2006-01-02", "2025-03-31")
	trips, err := repo.FindByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("failed to query range: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips in range, got %d", len(trips))
	}
	if trips[0].ID != inRangeStart.ID || trips[1].ID != inRangeEnd.ID {
		t.Error("expected range results ordered by date ascending")
	}
}

func TestTripRepository_Update(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	trip := newStoredTrip(userID, "2025-03-10", time.Now().UTC())
	if err := repo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	trip.Earnings = decimal.NewFromInt(200)
	trip.NetEarnings = decimal.NewFromInt(150)
	trip.EarningsPerHour = nil
	if err := repo.Update(ctx, trip); err != nil {
		t.Fatalf("failed to update trip: %v", err)
	}

	found, err := repo.FindByID(ctx, trip.ID, userID)
	if err != nil {
		t.Fatalf("failed to find trip: %v", err)
	}
	if !found.Earnings.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected updated earnings 200, got %s", found.Earnings)
	}
	if found.EarningsPerHour != nil {
		t.Errorf("expected per-hour rate cleared, got %s", found.EarningsPerHour)
	}

	missing := newStoredTrip(userID, "2025-03-11", time.Now().UTC())
	if err := repo.Update(ctx, missing); !errors.Is(err, domainerror.ErrTripNotFound) {
		t.Errorf("expected not found updating a missing trip, got %v", err)
	}
}

func TestTripRepository_Delete(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	trip := newStoredTrip(userID, "2025-03-10", time.Now().UTC())
	if err := repo.Create(ctx, trip); err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	if err := repo.Delete(ctx, trip.ID, uuid.New()); !errors.Is(err, domainerror.ErrTripNotFound) {
		t.Errorf("expected not found deleting another user's trip, got %v", err)
	}

	if err := repo.Delete(ctx, trip.ID, userID); err != nil {
		t.Fatalf("failed to delete trip: %v", err)
	}

	if _, err := repo.FindByID(ctx, trip.ID, userID); !errors.Is(err, domainerror.ErrTripNotFound) {
		t.Errorf("expected trip gone after delete, got %v", err)
	}

	if err := repo.Delete(ctx, trip.ID, userID); !errors.Is(err, domainerror.ErrTripNotFound) {
		t.Errorf("expected delete of a deleted trip to report not found, got %v", err)
	}
}
