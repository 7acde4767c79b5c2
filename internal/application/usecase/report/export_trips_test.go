package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driverdash/backend/internal/domain/entity"
	domainerror "github.com/driverdash/backend/internal/domain/error"
)

type stubTripRepo struct {
	trips []*entity.Trip
	err   error
}

func (s *stubTripRepo) Create(ctx context.Context, trip *entity.Trip) error { return nil }
func (s *stubTripRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Trip, error) {
	return nil, domainerror.ErrTripNotFound
}
func (s *stubTripRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Trip, error) {
	return s.trips, s.err
}
func (s *stubTripRepo) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Trip, error) {
	return s.trips, s.err
}
func (s *stubTripRepo) Update(ctx context.Context, trip *entity.Trip) error { return nil }
func (s *stubTripRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func exportTrip(date string, perHour *decimal.Decimal) *entity.Trip {
	parsed, _ := time.Parse("2006-01-02", date)
	return &entity.Trip{
		ID:              uuid.New(),
		UserID:          uuid.New(),
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
		EarningsPerHour: perHour,
	}
}

func TestExportTrips(t *testing.T) {
	rate := decimal.NewFromFloat(12.5)
	repo := &stubTripRepo{trips: []*entity.Trip{
		exportTrip("2025-03-01", &rate),
		exportTrip("2025-03-02", nil),
	}}
	uc := NewExportTripsUseCase(repo)

	output, err := uc.Execute(context.Background(), ExportTripsInput{
		UserID:    uuid.New(),
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Header) != 13 {
		t.Errorf("expected 13 header columns, got %d", len(output.Header))
	}
	if len(output.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(output.Rows))
	}
	for i, row := range output.Rows {
		if len(row) != len(output.Header) {
			t.Errorf("row %d has %d cells, header has %d", i, len(row), len(output.Header))
		}
	}

	if output.Rows[0][0] != "2025-03-01" {
		t.Errorf("expected first row date 2025-03-01, got %s", output.Rows[0][0])
	}
	if got := output.Rows[0][12]; got != "12.5" {
		t.Errorf("expected per-hour rate 12.5, got %s", got)
	}
	if got := output.Rows[1][12]; got != "N/A" {
		t.Errorf("expected N/A for undefined per-hour rate, got %s", got)
	}
}

func TestExportTrips_InvalidRange(t *testing.T) {
	uc := NewExportTripsUseCase(&stubTripRepo{})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start", start: "01/03/2025", end: "2025-03-31"},
		{name: "malformed end", start: "2025-03-01", end: "march"},
		{name: "inverted range", start: "2025-03-31", end: "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), ExportTripsInput{
				UserID:    uuid.New(),
				StartDate: tt.start,
				EndDate:   tt.end,
			})

			var dashErr *domainerror.DashboardError
			if !errors.As(err, &dashErr) {
				t.Fatalf("expected DashboardError, got %v", err)
			}
			if dashErr.Code != domainerror.ErrCodeInvalidDateRange {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateRange, dashErr.Code)
			}
		})
	}
}

func TestExportTrips_EmptyRange(t *testing.T) {
	uc := NewExportTripsUseCase(&stubTripRepo{})

	output, err := uc.Execute(context.Background(), ExportTripsInput{
		UserID:    uuid.New(),
		StartDate: "2025-03-01",
		EndDate:   "2025-03-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(output.Rows))
	}
	if len(output.Header) == 0 {
		t.Error("expected header even for empty export")
	}
}
